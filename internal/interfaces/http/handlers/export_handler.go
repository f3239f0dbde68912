package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"loanflow.backend/internal/domain/entities"
	"loanflow.backend/internal/interfaces/http/response"
	"loanflow.backend/internal/usecases"
)

type ExportService interface {
	AmortizationSchedule(ctx context.Context, in entities.AmortizationInput) (*usecases.ExportFile, error)
	CompletedReport(ctx context.Context, query string) (*usecases.ExportFile, error)
}

// ExportHandler handles spreadsheet download endpoints
type ExportHandler struct {
	exportUsecase ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportUsecase ExportService) *ExportHandler {
	return &ExportHandler{exportUsecase: exportUsecase}
}

func writeAttachment(c *gin.Context, f *usecases.ExportFile) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.FileName))
	c.Data(http.StatusOK, f.ContentType, f.Data)
}

// EMISchedule downloads the full schedule as a spreadsheet
// GET /api/v1/exports/emi-schedule?principal=&annualRate=&termMonths=
func (h *ExportHandler) EMISchedule(c *gin.Context) {
	in, err := parseAmortizationQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	f, err := h.exportUsecase.AmortizationSchedule(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}

	writeAttachment(c, f)
}

// CompletedReport downloads the completed-disbursement report
// GET /api/v1/exports/completed?q=
func (h *ExportHandler) CompletedReport(c *gin.Context) {
	f, err := h.exportUsecase.CompletedReport(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}

	writeAttachment(c, f)
}
