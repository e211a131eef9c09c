package errorutil

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// NewValidationError flags a payload missing or malforming required fields.
func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

// NewConfirmationMismatch is the distinguished validation failure for cleanup
// requests submitted without the exact confirmation phrase.
func NewConfirmationMismatch(expected string) error {
	return NewDomainError(
		"CONFIRMATION_MISMATCH",
		fmt.Sprintf("cleanup request requires confirmation=%q", expected),
		http.StatusBadRequest,
		map[string]any{"field": "confirmation"},
	)
}

// NewUnknownRequestType flags a kind outside the request catalog.
func NewUnknownRequestType(kind string) error {
	return NewDomainError(
		"UNKNOWN_REQUEST_TYPE",
		fmt.Sprintf("unknown request type %q", kind),
		http.StatusBadRequest,
		map[string]any{"request_type": kind},
	)
}

// NewUnknownTool flags a tool name outside the dispatch catalog.
func NewUnknownTool(name string) error {
	return NewDomainError(
		"UNKNOWN_TOOL",
		fmt.Sprintf("unknown tool %q", name),
		http.StatusNotFound,
		map[string]any{"tool": name},
	)
}

// NewNotFound flags a missing resource.
func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

// NewInvalidTransition flags an advance attempted on a terminal ticket.
func NewInvalidTransition(ticketID, status string) error {
	return NewDomainError(
		"INVALID_TRANSITION",
		fmt.Sprintf("ticket %s is %s and cannot advance", ticketID, status),
		http.StatusConflict,
		map[string]any{"ticket_id": ticketID, "status": status},
	)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
