package httputil

import (
	"github.com/gin-gonic/gin"
	"github.com/kakeibo-app/backend/internal/i18n"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error  string       `json:"error" example:"無効なIDです"`
	Errors []FieldError `json:"errors,omitempty"`
}

// FieldError is the localized message for a single invalid field.
type FieldError struct {
	Field   string `json:"field" example:"amount"`
	Message string `json:"message" example:"金額は1円以上である必要があります"`
}

// NewError sends an error response. The message is a message key
// and is localized for the request.
func NewError(c *gin.Context, status int, message string, fields ...FieldError) {
	c.JSON(status, HTTPError{
		Error:  i18n.Printer(c).Sprintf(message),
		Errors: fields,
	})
}
