package appErrors

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"localgigs_backend/internal/logger"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes err as a JSON error response. Unknown errors are
// wrapped as internal errors; 5xx responses are logged with context.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= http.StatusInternalServerError {
		logger.CtxWithError(c.Request.Context(), "server error", appErr, "path", c.Request.URL.Path)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}
