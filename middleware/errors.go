package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AppError is the error shape every handler returns. The ErrorHandler
// renders it as the response body, so the three exported fields are the
// wire contract for every failure.
type AppError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
	ErrorType  string `json:"error_type"`

	// RetryAfter is emitted as a Retry-After header, in seconds.
	RetryAfter int `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewDatabaseOperationError(detail string) *AppError {
	if detail == "" {
		detail = "Database operation failed"
	}
	return &AppError{
		Message:    detail,
		StatusCode: fiber.StatusInternalServerError,
		ErrorType:  "DatabaseOperationError",
	}
}

func NewInternalServerError(detail string) *AppError {
	if detail == "" {
		detail = "Internal server error"
	}
	return &AppError{
		Message:    detail,
		StatusCode: fiber.StatusInternalServerError,
		ErrorType:  "InternalServerError",
	}
}

func NewNotFoundError(objectName string) *AppError {
	return &AppError{
		Message:    fmt.Sprintf("%s not found.", objectName),
		StatusCode: fiber.StatusNotFound,
		ErrorType:  "NotFoundError",
	}
}

func NewItemNotFoundError(itemName string, itemID uuid.UUID) *AppError {
	return &AppError{
		Message:    fmt.Sprintf("%s with id %s not found", capitalize(itemName), itemID),
		StatusCode: fiber.StatusNotFound,
		ErrorType:  "ItemNotFoundError",
	}
}

func NewPermissionDeniedError(detail string) *AppError {
	if detail == "" {
		detail = "Not enough permissions for this resource"
	}
	return &AppError{
		Message:    fmt.Sprintf("Access denied: %s", detail),
		StatusCode: fiber.StatusForbidden,
		ErrorType:  "PermissionDeniedError",
	}
}

func NewInvalidCredentialsError(detail string) *AppError {
	if detail == "" {
		detail = "Invalid credentials"
	}
	return &AppError{
		Message:    detail,
		StatusCode: fiber.StatusUnauthorized,
		ErrorType:  "InvalidCredentialsError",
	}
}

func NewItemAlreadyExistsError(itemName string) *AppError {
	return &AppError{
		Message:    fmt.Sprintf("'%s' already exists in the system", capitalize(itemName)),
		StatusCode: fiber.StatusConflict,
		ErrorType:  "ItemAlreadyExistsError",
	}
}

func NewValidationError(detail string) *AppError {
	if detail == "" {
		detail = "Validation error"
	}
	return &AppError{
		Message:    detail,
		StatusCode: fiber.StatusBadRequest,
		ErrorType:  "ValidationError",
	}
}

// NewValidationFieldErrors folds a field error map into one message,
// fields in alphabetical order so the output is stable.
func NewValidationFieldErrors(errs map[string]string) *AppError {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(errs))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, errs[field]))
	}
	return NewValidationError(strings.Join(parts, "; "))
}

func NewPasswordValidationError(detail string) *AppError {
	if detail == "" {
		detail = "Password validation failed"
	}
	err := NewValidationError(detail)
	err.ErrorType = "PasswordValidationError"
	return err
}

func NewEmailValidationError(detail string) *AppError {
	if detail == "" {
		detail = "Email validation failed"
	}
	err := NewValidationError(detail)
	err.ErrorType = "EmailValidationError"
	return err
}

func NewTokenValidationError(detail string) *AppError {
	if detail == "" {
		detail = "Invalid or expired token"
	}
	err := NewPermissionDeniedError(detail)
	err.ErrorType = "TokenValidationError"
	return err
}

func NewInactiveUserError() *AppError {
	err := NewValidationError("User account is inactive")
	err.ErrorType = "InactiveUserError"
	return err
}

func NewResourceConflictError(resourceType, detail string) *AppError {
	message := fmt.Sprintf("Conflict with existing %s", resourceType)
	if detail != "" {
		message = fmt.Sprintf("%s: %s", message, detail)
	}
	return &AppError{
		Message:    message,
		StatusCode: fiber.StatusConflict,
		ErrorType:  "ResourceConflictError",
	}
}

func NewRateLimitError(detail string, retryAfter int) *AppError {
	if detail == "" {
		detail = "Too many requests"
	}
	return &AppError{
		Message:    detail,
		StatusCode: fiber.StatusTooManyRequests,
		ErrorType:  "RateLimitError",
		RetryAfter: retryAfter,
	}
}

// NewPistonAPIError maps an upstream failure from the execution engine.
// Client errors pass through as 400 with the upstream message, engine
// errors surface as 502.
func NewPistonAPIError(upstreamStatus int, body []byte) *AppError {
	message := extractUpstreamMessage(body)
	statusCode := fiber.StatusBadGateway
	if upstreamStatus >= 400 && upstreamStatus < 500 {
		statusCode = fiber.StatusBadRequest
	}
	return &AppError{
		Message:    message,
		StatusCode: statusCode,
		ErrorType:  "PistonAPIError",
	}
}

// extractUpstreamMessage pulls the message field out of a JSON error
// body, falling back to the raw body text.
func extractUpstreamMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(body))
}

// ErrorHandler renders every handler error as the structured error body.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.RetryAfter > 0 {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(appErr.RetryAfter))
		}
		if appErr.StatusCode >= fiber.StatusInternalServerError {
			log.Printf("Error %s: %s", appErr.ErrorType, appErr.Message)
		}
		return c.Status(appErr.StatusCode).JSON(appErr)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(&AppError{
			Message:    fiberErr.Message,
			StatusCode: fiberErr.Code,
			ErrorType:  errorTypeForStatus(fiberErr.Code),
		})
	}

	log.Printf("Unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(NewInternalServerError(""))
}

func errorTypeForStatus(statusCode int) string {
	switch statusCode {
	case fiber.StatusBadRequest:
		return "ValidationError"
	case fiber.StatusUnauthorized:
		return "InvalidCredentialsError"
	case fiber.StatusForbidden:
		return "PermissionDeniedError"
	case fiber.StatusNotFound:
		return "NotFoundError"
	case fiber.StatusConflict:
		return "ResourceConflictError"
	case fiber.StatusTooManyRequests:
		return "RateLimitError"
	default:
		if statusCode >= fiber.StatusInternalServerError {
			return "InternalServerError"
		}
		return "HTTPError"
	}
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
