package response

import (
	"github.com/gin-gonic/gin"
	domainerrors "loanflow.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response, mapping the domain taxonomy to HTTP.
// Every error in this subsystem is an actionable operator-facing
// condition; the message is rendered verbatim.
func Error(c *gin.Context, err error) {
	appErr := domainerrors.FromDomain(err)

	body := gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	}

	// IncompleteDocumentSet carries the missing set so the screen can
	// render the checklist remainder.
	var incomplete *domainerrors.IncompleteDocumentSetError
	if e, ok := appErr.Err.(*domainerrors.IncompleteDocumentSetError); ok {
		incomplete = e
	}
	if incomplete != nil {
		body["missing"] = incomplete.Missing
	}

	c.JSON(appErr.Status, body)
}
