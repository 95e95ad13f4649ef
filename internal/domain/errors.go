package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Catalog errors
	CodeCatalogLoad      ErrorCode = "CATALOG_LOAD"
	CodeInsufficientPool ErrorCode = "INSUFFICIENT_POOL"
	CodeUnknownCountry   ErrorCode = "UNKNOWN_COUNTRY"

	// Session errors
	CodeSessionNotFound   ErrorCode = "SESSION_NOT_FOUND"
	CodeInvalidTransition ErrorCode = "INVALID_TRANSITION"
	CodeAlreadyAnswered   ErrorCode = "ALREADY_ANSWERED"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// WithContext attaches a key/value pair that is returned to clients as error details.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsCode reports whether err is a DomainError carrying code.
func IsCode(err error, code ErrorCode) bool {
	de, ok := AsDomainError(err)
	return ok && de.Code == code
}

// AsDomainError unwraps err into a *DomainError when possible.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewCatalogLoadError(message string, err error) *DomainError {
	return NewError(CodeCatalogLoad, message, err)
}

func NewInsufficientPoolError(region, subregion string, size int) *DomainError {
	return NewError(CodeInsufficientPool,
		"Not enough countries in this level. Please choose a different region or subregion.", nil).
		WithContext("region", region).
		WithContext("subregion", subregion).
		WithContext("pool_size", size)
}

func NewUnknownCountryError(selection string) *DomainError {
	return NewError(CodeUnknownCountry, fmt.Sprintf("No country in the pool matches %q", selection), nil)
}

func NewSessionNotFoundError(id string) *DomainError {
	return NewError(CodeSessionNotFound, fmt.Sprintf("Session not found with ID: %s", id), nil)
}

func NewInvalidTransitionError(action string, state SessionState) *DomainError {
	return NewError(CodeInvalidTransition, fmt.Sprintf("Cannot %s while session is %s", action, state), nil).
		WithContext("state", string(state))
}

func NewAlreadyAnsweredError(questionIndex int) *DomainError {
	return NewError(CodeAlreadyAnswered, "This question has already been answered", nil).
		WithContext("question_index", questionIndex)
}
