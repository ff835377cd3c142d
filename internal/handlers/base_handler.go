package handlers

import (
	"localgigs_backend/internal/appErrors"
	"localgigs_backend/internal/logger"
	"localgigs_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindAndValidateJSON binds the request body and runs the validator.
// On failure the error response is already written and false returns.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWarn(ctx, "failed to bind request body", "error", err.Error(), "path", c.Request.URL.Path)
		appErrors.HandleError(c, appErrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			appErrors.HandleError(c, appErrors.ValidationError(vErr.Errors))
		} else {
			appErrors.HandleError(c, appErrors.InternalError(err))
		}
		return false
	}
	return true
}

// HandleServiceError maps a service error to its HTTP response.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	var appErr *appErrors.AppError
	if appErrors.As(err, &appErr) {
		appErrors.HandleError(c, appErr)
		return
	}
	appErrors.HandleError(c, appErrors.InternalError(err))
}

// GetAndAuthorizeUserID pulls the authenticated user id set by the auth
// middleware, writing a 401 when it is missing.
func (h *BaseHandler) GetAndAuthorizeUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("userID")
	if !exists {
		appErrors.HandleError(c, appErrors.NewUnauthorizedError("User not authenticated"))
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		appErrors.HandleError(c, appErrors.NewUnauthorizedError("Invalid user ID in context"))
		return "", false
	}
	return userID, true
}
