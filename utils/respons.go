package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type JSONResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool        `json:"success"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// FieldError is one entry of a VALIDATION_ERROR details list.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Success: code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

// RespondError translates any error into the error envelope. AppErrors keep
// their code and status; everything else becomes a 500 with the internal
// detail withheld outside debug mode.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, ErrorResponse{
			Success: false,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		})
		return
	}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Code:    CodeValidationError,
			Message: defaultMessages[CodeValidationError],
			Details: fieldErrors(vErrs),
		})
		return
	}

	ErrorLogger.Printf("unhandled error: %v", err)

	message := defaultMessages[CodeInternalError]
	if gin.Mode() == gin.DebugMode {
		message = err.Error()
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Success: false,
		Code:    CodeInternalError,
		Message: message,
	})
}

// RespondBindingError maps a ShouldBindJSON failure to a 400 VALIDATION_ERROR
// envelope, with per-field details when the validator produced them.
func RespondBindingError(c *gin.Context, err error) {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		RespondError(c, err)
		return
	}
	RespondError(c, BadRequest(CodeValidationError, err.Error()))
}

func fieldErrors(vErrs validator.ValidationErrors) []FieldError {
	out := make([]FieldError, 0, len(vErrs))
	for _, fe := range vErrs {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "gt":
			msg = fmt.Sprintf("must be greater than %s", fe.Param())
		case "gte":
			msg = fmt.Sprintf("must be greater than or equal to %s", fe.Param())
		case "min":
			msg = fmt.Sprintf("must have at least %s items", fe.Param())
		default:
			msg = fmt.Sprintf("failed %s validation", fe.Tag())
		}
		out = append(out, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}
