package utils

import "net/http"

// Stable error codes returned to clients in the error envelope.
const (
	CodeInternalError          = "INTERNAL_ERROR"
	CodeValidationError        = "VALIDATION_ERROR"
	CodeNotFound               = "NOT_FOUND"
	CodeIngredientNotFound     = "INGREDIENT_NOT_FOUND"
	CodeIngredientCreateError  = "INGREDIENT_CREATE_ERROR"
	CodeIngredientUpdateError  = "INGREDIENT_UPDATE_ERROR"
	CodeIngredientInsufficient = "INGREDIENT_INSUFFICIENT"
	CodeRecipeNotFound         = "RECIPE_NOT_FOUND"
	CodeRecipeCreateError      = "RECIPE_CREATE_ERROR"
	CodeOrderCreateError       = "ORDER_CREATE_ERROR"
	CodeOrderFetchError        = "ORDER_FETCH_ERROR"
	CodeAlertCheckError        = "ALERT_CHECK_ERROR"
	CodeAlertSendError         = "ALERT_SEND_ERROR"
)

var defaultMessages = map[string]string{
	CodeInternalError:          "Internal server error",
	CodeValidationError:        "Invalid request data",
	CodeNotFound:               "Resource not found",
	CodeIngredientNotFound:     "Ingredient not found",
	CodeIngredientCreateError:  "Could not create ingredient",
	CodeIngredientUpdateError:  "Could not update ingredient",
	CodeIngredientInsufficient: "Not enough ingredients in stock",
	CodeRecipeNotFound:         "Recipe not found",
	CodeRecipeCreateError:      "Could not create recipe",
	CodeOrderCreateError:       "Could not process order",
	CodeOrderFetchError:        "Could not fetch orders",
	CodeAlertCheckError:        "Could not check alerts",
	CodeAlertSendError:         "Could not send alert",
}

// AppError is a domain failure carrying everything the HTTP boundary needs:
// a stable code, the status to respond with, a human-readable message and
// optional structured details. Handlers map it to the error envelope without
// inspecting concrete error types.
type AppError struct {
	Code    string      `json:"code"`
	Status  int         `json:"-"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

func newAppError(code string, status int, message string) *AppError {
	if message == "" {
		message = defaultMessages[code]
	}
	return &AppError{Code: code, Status: status, Message: message}
}

func BadRequest(code, message string) *AppError {
	return newAppError(code, http.StatusBadRequest, message)
}

func NotFound(code, message string) *AppError {
	return newAppError(code, http.StatusNotFound, message)
}

func Internal(code, message string) *AppError {
	return newAppError(code, http.StatusInternalServerError, message)
}

// WithDetails attaches structured details (e.g. per-field validation errors).
func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}
