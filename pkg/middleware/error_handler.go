package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pos-platform/inventory-service/pkg/api"
	"github.com/pos-platform/inventory-service/pkg/errors"
)

// ErrorHandler is a middleware that converts errors attached to the gin
// context into the standard error envelope.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			appErr := errors.MapDomainError(err)

			logError(logger, c, appErr)

			api.SendError(c, appErr.HTTPStatus, appErr.Message, errorDetail(appErr))
		}
	}
}

// ErrorResponder provides helper methods for sending error envelopes
type ErrorResponder struct {
	ctx    *gin.Context
	logger *slog.Logger
}

// NewErrorResponder creates a new ErrorResponder
func NewErrorResponder(ctx *gin.Context, logger *slog.Logger) *ErrorResponder {
	return &ErrorResponder{ctx: ctx, logger: logger}
}

// RespondWithError sends an error envelope for any error
func (r *ErrorResponder) RespondWithError(err error) {
	r.RespondWithAppError(errors.MapDomainError(err))
}

// RespondWithAppError sends an error envelope for an AppError
func (r *ErrorResponder) RespondWithAppError(appErr *errors.AppError) {
	logError(r.logger, r.ctx, appErr)
	api.SendError(r.ctx, appErr.HTTPStatus, appErr.Message, errorDetail(appErr))
}

// RespondValidationError sends a 400 envelope with a fixed message
func (r *ErrorResponder) RespondValidationError(message string) {
	r.RespondWithAppError(errors.ErrValidation(message))
}

// RespondNotFound sends a 404 envelope
func (r *ErrorResponder) RespondNotFound(message string) {
	r.RespondWithAppError(errors.NewAppError(errors.CodeNotFound, message, http.StatusNotFound))
}

// RespondInternalError sends a 500 envelope. The underlying error is
// logged but never leaked to the caller.
func (r *ErrorResponder) RespondInternalError(err error) {
	r.RespondWithAppError(errors.ErrInternal("").Wrap(err))
}

// errorDetail returns the short detail string for the envelope. Internal
// errors never expose their cause.
func errorDetail(appErr *errors.AppError) string {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		return ""
	}
	return appErr.Code
}

func logError(logger *slog.Logger, c *gin.Context, appErr *errors.AppError) {
	logLevel := slog.LevelError
	if appErr.HTTPStatus < http.StatusInternalServerError {
		logLevel = slog.LevelWarn
	}

	requestID, _ := c.Get(ContextKeyRequestID)

	attrs := []any{
		"code", appErr.Code,
		"message", appErr.Message,
		"status", appErr.HTTPStatus,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"requestId", requestID,
		"clientIP", c.ClientIP(),
	}

	if appErr.Err != nil {
		attrs = append(attrs, "error", appErr.Err.Error())
	}

	logger.Log(c.Request.Context(), logLevel, "API error", attrs...)
}
