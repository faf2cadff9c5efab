package util

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/fadilmartias/careerboost/internal/config"
	"github.com/fadilmartias/careerboost/internal/model"
	"github.com/gofiber/fiber/v2"
)

type SuccessResponseFormat struct {
	Code    int
	Message string
	Data    any
	Meta    any
}

type OrderedSuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Meta    any    `json:"meta,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ErrorResponseFormat struct {
	Code       int
	Message    string
	DevMessage string
	Details    any
	Trace      string
}

type OrderedErrorResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	DevMessage string `json:"dev_message,omitempty"`
	Details    any    `json:"details,omitempty"`
	Trace      string `json:"trace,omitempty"`
}

type FormError struct {
	Errors  map[string]string
	Message string
}

func (e *FormError) Error() string {
	return fmt.Sprintf("form error: %s", e.Message)
}

func NewFormError(message string, errors map[string]string) *FormError {
	return &FormError{
		Message: message,
		Errors:  errors,
	}
}

// SuccessResponse writes the standard success envelope.
func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	response := OrderedSuccessResponse{
		Success: true,
		Message: params.Message,
		Data:    params.Data,
		Meta:    params.Meta,
	}
	code := params.Code
	if code == 0 {
		code = fiber.StatusOK
	}
	return c.Status(code).JSON(response)
}

// ErrorResponse writes the standard error envelope. Outside production the
// underlying error and a stack trace are included.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	response := OrderedErrorResponse{
		Success: false,
		Message: params.Message,
	}
	if params.Details != nil {
		response.Details = params.Details
	}
	if !config.LoadAppConfig().IsProduction() {
		if len(errs) > 0 && errs[0] != nil {
			response.DevMessage = errs[0].Error()
			response.Trace = string(debug.Stack())
		}

		if params.DevMessage != "" {
			response.DevMessage = params.DevMessage
		}
		if params.Trace != "" {
			response.Trace = params.Trace
		}
	}

	errorCode := params.Code
	if params.Code == 0 {
		errorCode = fiber.StatusInternalServerError
	}
	return c.Status(errorCode).JSON(response)
}

var errorStatus = []struct {
	err     error
	code    int
	message string
}{
	{model.ErrDuplicateUser, fiber.StatusConflict, "A user with this email already exists"},
	{model.ErrInvalidCredentials, fiber.StatusUnauthorized, "Invalid email or password"},
	{model.ErrUnauthenticated, fiber.StatusUnauthorized, "Authentication required"},
	{model.ErrNotFound, fiber.StatusNotFound, "User not found"},
	{model.ErrInvalidInput, fiber.StatusBadRequest, "Invalid input"},
	{model.ErrModelOutputInvalid, fiber.StatusBadGateway, "The AI model returned an unusable response"},
	{model.ErrModelUnavailable, fiber.StatusBadGateway, "The AI model is unavailable"},
	{model.ErrStorageDisabled, fiber.StatusNotImplemented, "File storage is not configured"},
}

// StatusFor maps a domain error to its HTTP status and public message.
func StatusFor(err error) (int, string) {
	var formErr *FormError
	if errors.As(err, &formErr) {
		return fiber.StatusBadRequest, formErr.Message
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			return e.code, e.message
		}
	}
	return fiber.StatusInternalServerError, "Internal server error"
}

// HandleError writes the error envelope for err. Form errors carry their
// per-field messages as details.
func HandleError(c *fiber.Ctx, err error) error {
	code, message := StatusFor(err)
	params := ErrorResponseFormat{Code: code, Message: message}

	var formErr *FormError
	if errors.As(err, &formErr) {
		params.Details = formErr.Errors
	}
	return ErrorResponse(c, params, err)
}
