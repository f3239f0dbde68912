package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"loanflow.backend/internal/domain/entities"
	domainerrors "loanflow.backend/internal/domain/errors"
	"loanflow.backend/internal/interfaces/http/response"
	"loanflow.backend/internal/usecases"
)

type DisbursementService interface {
	CreateCase(ctx context.Context, input usecases.CreateCaseInput) (*entities.DisbursementCase, error)
	GetCase(ctx context.Context, leadID string) (*entities.DisbursementCase, error)
	ToggleFlag(ctx context.Context, leadID string, flag entities.ReadinessFlag, value bool) (*entities.DisbursementCase, error)
	SetPendingDocs(ctx context.Context, leadID string, docs []string) (*entities.DisbursementCase, error)
	SetScheduleField(ctx context.Context, leadID string, field entities.ScheduleField, date time.Time) (*entities.DisbursementCase, error)
	SetAppointmentTime(ctx context.Context, leadID string, slot string) (*entities.DisbursementCase, error)
	SetMonetaryField(ctx context.Context, leadID string, field entities.MonetaryField, value string) (*entities.DisbursementCase, error)
	Finalize(ctx context.Context, leadID string) (*entities.CompletedDisbursement, error)
	ListPending(ctx context.Context, query string) ([]*entities.DisbursementCase, error)
	ListCompleted(ctx context.Context, query string) ([]*entities.CompletedDisbursement, error)
}

// DisbursementHandler handles disbursement tracker endpoints
type DisbursementHandler struct {
	disbursementUsecase DisbursementService
}

// NewDisbursementHandler creates a new disbursement handler
func NewDisbursementHandler(disbursementUsecase DisbursementService) *DisbursementHandler {
	return &DisbursementHandler{disbursementUsecase: disbursementUsecase}
}

type createCaseRequest struct {
	LeadID           string `json:"leadId" binding:"required"`
	LeadName         string `json:"leadName" binding:"required"`
	SalesExecutive   string `json:"salesExecutive" binding:"required"`
	BankName         string `json:"bankName" binding:"required"`
	DisbursementType string `json:"disbursementType" binding:"required"`
	RequestedAmount  int64  `json:"requestedAmount" binding:"required,gt=0"`
}

// CreateCase registers a new pending case
// POST /api/v1/disbursements
func (h *DisbursementHandler) CreateCase(c *gin.Context) {
	var req createCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	dc, err := h.disbursementUsecase.CreateCase(c.Request.Context(), usecases.CreateCaseInput{
		LeadID:           req.LeadID,
		LeadName:         req.LeadName,
		SalesExecutive:   req.SalesExecutive,
		BankName:         req.BankName,
		DisbursementType: entities.DisbursementType(req.DisbursementType),
		RequestedAmount:  req.RequestedAmount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"case": dc})
}

// GetCase returns one pending case
// GET /api/v1/disbursements/:leadId
func (h *DisbursementHandler) GetCase(c *gin.Context) {
	dc, err := h.disbursementUsecase.GetCase(c.Request.Context(), c.Param("leadId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"case": dc})
}

// ListPending lists pending cases, optionally filtered by ?q=
// GET /api/v1/disbursements
func (h *DisbursementHandler) ListPending(c *gin.Context) {
	cases, err := h.disbursementUsecase.ListPending(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cases": cases})
}

// ListCompleted lists completed disbursements, optionally filtered by ?q=
// GET /api/v1/disbursements/completed
func (h *DisbursementHandler) ListCompleted(c *gin.Context) {
	recs, err := h.disbursementUsecase.ListCompleted(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"completed": recs})
}

type toggleFlagRequest struct {
	Flag  string `json:"flag" binding:"required"`
	Value *bool  `json:"value" binding:"required"`
}

// ToggleFlag sets one readiness flag
// PATCH /api/v1/disbursements/:leadId/flags
func (h *DisbursementHandler) ToggleFlag(c *gin.Context) {
	var req toggleFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	dc, err := h.disbursementUsecase.ToggleFlag(c.Request.Context(), c.Param("leadId"), entities.ReadinessFlag(req.Flag), *req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"case": dc})
}

type pendingDocsRequest struct {
	PendingDocs []string `json:"pendingDocs" binding:"required"`
}

// SetPendingDocs replaces the outstanding bank-document list
// PUT /api/v1/disbursements/:leadId/pending-docs
func (h *DisbursementHandler) SetPendingDocs(c *gin.Context) {
	var req pendingDocsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	dc, err := h.disbursementUsecase.SetPendingDocs(c.Request.Context(), c.Param("leadId"), req.PendingDocs)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"case": dc})
}

type scheduleFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Date  string `json:"date" binding:"required"`
}

// SetScheduleField sets one of the independent case dates
// PATCH /api/v1/disbursements/:leadId/schedule
func (h *DisbursementHandler) SetScheduleField(c *gin.Context) {
	var req scheduleFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("date must be in YYYY-MM-DD format"))
		return
	}

	dc, err := h.disbursementUsecase.SetScheduleField(c.Request.Context(), c.Param("leadId"), entities.ScheduleField(req.Field), date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"case": dc})
}

type appointmentTimeRequest struct {
	Slot string `json:"slot" binding:"required"`
}

// SetAppointmentTime books one of the fixed appointment slots
// PATCH /api/v1/disbursements/:leadId/appointment-time
func (h *DisbursementHandler) SetAppointmentTime(c *gin.Context) {
	var req appointmentTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	dc, err := h.disbursementUsecase.SetAppointmentTime(c.Request.Context(), c.Param("leadId"), req.Slot)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"case": dc})
}

type monetaryFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// SetMonetaryField sets one of the operator-entered amounts
// PATCH /api/v1/disbursements/:leadId/monetary
func (h *DisbursementHandler) SetMonetaryField(c *gin.Context) {
	var req monetaryFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	dc, err := h.disbursementUsecase.SetMonetaryField(c.Request.Context(), c.Param("leadId"), entities.MonetaryField(req.Field), req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"case": dc})
}

// Finalize moves a case from pending to completed, irreversibly
// POST /api/v1/disbursements/:leadId/finalize
func (h *DisbursementHandler) Finalize(c *gin.Context) {
	rec, err := h.disbursementUsecase.Finalize(c.Request.Context(), c.Param("leadId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"completed": rec})
}
