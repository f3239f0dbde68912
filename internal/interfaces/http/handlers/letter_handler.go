package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "loanflow.backend/internal/domain/errors"
	"loanflow.backend/internal/interfaces/http/response"
)

type LetterFetcher interface {
	FetchSanctionLetter(ctx context.Context, leadID string) ([]byte, string, error)
}

// LetterHandler proxies sanction-letter downloads from the letters service
type LetterHandler struct {
	letters LetterFetcher
}

// NewLetterHandler creates a new letter handler
func NewLetterHandler(letters LetterFetcher) *LetterHandler {
	return &LetterHandler{letters: letters}
}

// SanctionLetter downloads the lead's sanction letter
// GET /api/v1/letters/sanction/:leadId
func (h *LetterHandler) SanctionLetter(c *gin.Context) {
	leadID := c.Param("leadId")
	if leadID == "" {
		response.Error(c, domainerrors.BadRequest("leadId is required"))
		return
	}

	data, contentType, err := h.letters.FetchSanctionLetter(c.Request.Context(), leadID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "sanction-letter-"+leadID+".pdf"))
	c.Data(http.StatusOK, contentType, data)
}
