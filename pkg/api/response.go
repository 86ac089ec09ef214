package api

import (
	"github.com/gin-gonic/gin"
)

// SuccessEnvelope is the response body for every successful operation.
// Status carries the literal string "true" for wire compatibility with the
// clients of this API.
type SuccessEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorEnvelope is the response body for every failed operation. Detail is
// a short machine-oriented hint; internal errors never populate it.
type ErrorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// SendSuccess writes a success envelope with the given status code
func SendSuccess(c *gin.Context, statusCode int, message string, data any) {
	c.JSON(statusCode, SuccessEnvelope{
		Status:  "true",
		Message: message,
		Data:    data,
	})
}

// SendError writes an error envelope with the given status code
func SendError(c *gin.Context, statusCode int, message string, detail string) {
	c.JSON(statusCode, ErrorEnvelope{
		Status:  "false",
		Message: message,
		Error:   detail,
	})
}
