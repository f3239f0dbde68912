package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"loanflow.backend/internal/domain/entities"
	domainerrors "loanflow.backend/internal/domain/errors"
	"loanflow.backend/internal/interfaces/http/middleware"
	"loanflow.backend/internal/interfaces/http/response"
	"loanflow.backend/internal/usecases"
)

type DocumentService interface {
	Upload(ctx context.Context, input usecases.UploadDocumentInput) (*entities.UploadedDocument, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]*entities.UploadedDocument, error)
	ViewURL(ctx context.Context, id uuid.UUID) (string, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Status(ctx context.Context, ownerID uuid.UUID, category entities.DocumentCategory, variantChosen bool) (*usecases.ChecklistStatus, error)
	Submit(ctx context.Context, input usecases.SubmitDocumentsInput) (*entities.DocumentSubmission, error)
	Submissions(ctx context.Context, ownerID uuid.UUID) ([]*entities.DocumentSubmission, error)
}

// DocumentHandler handles borrower document endpoints
type DocumentHandler struct {
	documentUsecase DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentUsecase DocumentService) *DocumentHandler {
	return &DocumentHandler{documentUsecase: documentUsecase}
}

// maxUploadBytes caps a single document upload at 15 MB.
const maxUploadBytes = 15 << 20

// Upload stores one document for the authenticated owner
// POST /api/v1/documents
func (h *DocumentHandler) Upload(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	docType := c.PostForm("docType")
	if docType == "" {
		response.Error(c, domainerrors.BadRequest("docType is required"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("file is required"))
		return
	}
	if fileHeader.Size > maxUploadBytes {
		response.Error(c, domainerrors.BadRequest("file exceeds the upload size limit"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, domainerrors.BadRequest("could not read uploaded file"))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("could not read uploaded file"))
		return
	}

	doc, err := h.documentUsecase.Upload(c.Request.Context(), usecases.UploadDocumentInput{
		OwnerID:  userID,
		DocType:  docType,
		FileName: fileHeader.Filename,
		Data:     data,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"document": doc})
}

// List returns the owner's current uploads
// GET /api/v1/documents
func (h *DocumentHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	docs, err := h.documentUsecase.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"documents": docs})
}

// View resolves a document to a viewable URL
// GET /api/v1/documents/:id/view
func (h *DocumentHandler) View(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid document ID"))
		return
	}

	url, err := h.documentUsecase.ViewURL(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"url": url})
}

// Delete removes a document
// DELETE /api/v1/documents/:id
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid document ID"))
		return
	}

	if err := h.documentUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// Status reports checklist completeness for a category
// GET /api/v1/documents/status?category=...&addressProofVariant=...
func (h *DocumentHandler) Status(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	category := entities.DocumentCategory(c.Query("category"))
	variantChosen := c.Query("addressProofVariant") != ""

	status, err := h.documentUsecase.Status(c.Request.Context(), userID, category, variantChosen)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, status)
}

type submitRequest struct {
	Category            string `json:"category" binding:"required"`
	AddressProofVariant string `json:"addressProofVariant"`
}

// Submit freezes the owner's current document set
// POST /api/v1/documents/submit
func (h *DocumentHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	sub, err := h.documentUsecase.Submit(c.Request.Context(), usecases.SubmitDocumentsInput{
		OwnerID:             userID,
		Category:            entities.DocumentCategory(req.Category),
		AddressProofVariant: req.AddressProofVariant,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"submission": sub})
}

// Submissions lists the owner's past submissions
// GET /api/v1/documents/submissions
func (h *DocumentHandler) Submissions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	subs, err := h.documentUsecase.Submissions(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"submissions": subs})
}
