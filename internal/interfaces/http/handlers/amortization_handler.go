package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"loanflow.backend/internal/domain/entities"
	domainerrors "loanflow.backend/internal/domain/errors"
	"loanflow.backend/internal/interfaces/http/response"
	"loanflow.backend/internal/usecases"
)

// AmortizationHandler handles EMI calculator endpoints
type AmortizationHandler struct {
	engine *usecases.AmortizationEngine
}

// NewAmortizationHandler creates a new amortization handler
func NewAmortizationHandler(engine *usecases.AmortizationEngine) *AmortizationHandler {
	return &AmortizationHandler{engine: engine}
}

func parseAmortizationQuery(c *gin.Context) (entities.AmortizationInput, error) {
	principal, err := strconv.ParseFloat(c.Query("principal"), 64)
	if err != nil {
		return entities.AmortizationInput{}, domainerrors.BadRequest("principal must be a number")
	}
	rate, err := strconv.ParseFloat(c.Query("annualRate"), 64)
	if err != nil {
		return entities.AmortizationInput{}, domainerrors.BadRequest("annualRate must be a number")
	}
	term, err := strconv.Atoi(c.Query("termMonths"))
	if err != nil {
		return entities.AmortizationInput{}, domainerrors.BadRequest("termMonths must be an integer")
	}

	return entities.AmortizationInput{
		Principal:     principal,
		AnnualRatePct: rate,
		TermMonths:    term,
	}, nil
}

// ComputeEMI returns the EMI and slider range for the given inputs
// GET /api/v1/emi?principal=&annualRate=&termMonths=
func (h *AmortizationHandler) ComputeEMI(c *gin.Context) {
	in, err := parseAmortizationQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	emi, err := h.engine.ComputeEMI(in)
	if err != nil {
		response.Error(c, err)
		return
	}
	rng, err := h.engine.EMIRange(in)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"emi":   emi,
		"range": rng,
	})
}

// Preview returns the first rows of the schedule
// GET /api/v1/emi/preview
func (h *AmortizationHandler) Preview(c *gin.Context) {
	in, err := parseAmortizationQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	rows, err := h.engine.Preview(in)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rows": rows})
}

// Schedule returns the full month-by-month schedule
// GET /api/v1/emi/schedule
func (h *AmortizationHandler) Schedule(c *gin.Context) {
	in, err := parseAmortizationQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	rows, err := h.engine.Schedule(in)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rows": rows})
}
