// Package validation binds JSON request bodies and turns binding failures
// into the error envelope every endpoint of this API speaks: a stable code,
// a human message, and per-field details where they exist.
package validation

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Code    string       `json:"code,omitempty"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// BindAndValidateJSON binds the request body into dst. On failure it writes
// a 400 with code VALIDATION_FAILED (field rules violated) or MALFORMED_BODY
// (body not valid JSON for dst) and reports false.
func BindAndValidateJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	if verrs, ok := err.(validator.ValidationErrors); ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, formatValidationErrors(verrs))
		return false
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Code:    "MALFORMED_BODY",
		Message: "request body could not be parsed",
		Errors: []FieldError{
			{
				Rule:    "syntax",
				Message: err.Error(),
			},
		},
	})
	return false
}

func formatValidationErrors(verrs validator.ValidationErrors) ErrorResponse {
	fields := make([]FieldError, 0, len(verrs))

	for _, fe := range verrs {
		jsonField := toJSONFieldName(fe.Field())
		fields = append(fields, FieldError{
			Field:   jsonField,
			Rule:    fe.Tag(),
			Message: buildMessage(jsonField, fe),
		})
	}

	return ErrorResponse{
		Code:    "VALIDATION_FAILED",
		Message: "validation failed",
		Errors:  fields,
	}
}

func toJSONFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func buildMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "gte":
		return field + " must be at least " + fe.Param()
	case "lte":
		return field + " must be at most " + fe.Param()
	default:
		return field + " is invalid (" + fe.Tag() + ")"
	}
}
