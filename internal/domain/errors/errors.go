package errors

import (
	"fmt"
	"net/http"
)

// AppError is the transport-facing error type. Domain packages return
// their own typed errors; the recovery middleware folds those into an
// AppError carrying the code and status the API envelope needs.
type AppError struct {
	Code       string
	Message    string
	StatusCode int // same rule as HTTP status codes
	Err        error
	Details    map[string]interface{}
}

// Error returns a string representation of the error
func (e AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is implements the errors.Is interface
func (e AppError) Is(target error) bool {
	if target, ok := target.(AppError); ok {
		return target.Code == e.Code
	}
	return false
}

// Unwrap returns the underlying error
func (e AppError) Unwrap() error {
	return e.Err
}

// WithDetails adds details to the error
func (e AppError) WithDetails(details map[string]interface{}) AppError {
	e.Details = details
	return e
}

// WithDetail adds a single detail to the error
func (e AppError) WithDetail(key string, value interface{}) AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// NewValidationError creates a new validation error
func NewValidationError(message string) AppError {
	return AppError{
		Code:       "VALIDATION_ERROR",
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(message string, err error) AppError {
	return AppError{
		Code:       "INVALID_INPUT",
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Err:        err,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) AppError {
	return AppError{
		Code:       "NOT_FOUND",
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

// NewUnbalancedLedgerError creates the posting rejection for transactions
// whose entries do not balance.
func NewUnbalancedLedgerError(message string, err error) AppError {
	return AppError{
		Code:       "UNBALANCED_LEDGER",
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
		Err:        err,
	}
}

// NewEmptyTransactionError creates the posting rejection for transactions
// without entries.
func NewEmptyTransactionError(message string, err error) AppError {
	return AppError{
		Code:       "EMPTY_TRANSACTION",
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
		Err:        err,
	}
}

// NewInvalidSectionError creates the rejection for unknown TDS sections.
func NewInvalidSectionError(message string, err error) AppError {
	return AppError{
		Code:       "INVALID_SECTION",
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Err:        err,
	}
}

// NewInvalidStateCodeError creates the rejection for unrecognised GST
// state codes.
func NewInvalidStateCodeError(message string, err error) AppError {
	return AppError{
		Code:       "INVALID_STATE_CODE",
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Err:        err,
	}
}

// NewStoreReadError creates the error for upstream storage failures.
func NewStoreReadError(message string, err error) AppError {
	return AppError{
		Code:       "STORE_READ_ERROR",
		Message:    message,
		StatusCode: http.StatusBadGateway,
		Err:        err,
	}
}

// NewReportGenerationError creates the error for failed report assembly.
func NewReportGenerationError(message string, err error) AppError {
	return AppError{
		Code:       "REPORT_GENERATION_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) AppError {
	return AppError{
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}
