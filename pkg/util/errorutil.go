package util

import (
	"errors"
	"fmt"
)

// Error codes shared by errors and notices.
const (
	CodeQuotaExceeded       = "QUOTA_EXCEEDED"
	CodeEmptySelection      = "EMPTY_SELECTION"
	CodeNotFound            = "NOT_FOUND"
	CodeInvalidImportFormat = "INVALID_IMPORT_FORMAT"
	CodeValidationFailed    = "VALIDATION_FAILED"
	CodeInternalError       = "INTERNAL_ERROR"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
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
func NewDomainError(code, message string, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError(CodeValidationFailed, message, details)
}

func NewInvalidImportFormat(err error) error {
	return &DomainError{
		Code:    CodeInvalidImportFormat,
		Message: "invalid import format",
		Err:     err,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:    CodeInternalError,
		Message: "internal error",
		Err:     err,
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
		Code:    CodeInternalError,
		Message: "internal error",
		Err:     err,
	}
}

// Notice is a structured non-fatal outcome. Operations that decline to act
// (quota reached, nothing selected) return a Notice instead of an error so the
// caller can surface it as feedback rather than a failure.
type Notice struct {
	Code    string
	Message string
	Details map[string]any
}

// NewQuotaExceededNotice reports a creation blocked by the current plan limit.
func NewQuotaExceededNotice(resource string, limit int) *Notice {
	return &Notice{
		Code:    CodeQuotaExceeded,
		Message: fmt.Sprintf("%s limit reached on current plan", resource),
		Details: map[string]any{"resource": resource, "limit": limit},
	}
}

// NewEmptySelectionNotice reports a bulk operation invoked with zero ids.
func NewEmptySelectionNotice() *Notice {
	return &Notice{Code: CodeEmptySelection, Message: "no tickets selected"}
}
