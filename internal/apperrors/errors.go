package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnavailable indicates that a downstream service could not be reached or answered with a failure.
var ErrUnavailable = errors.New("downstream service unavailable")

// ErrPersistence indicates that the transaction store failed to read or write.
var ErrPersistence = errors.New("persistence error")

// AppError is an error with a stable code and the HTTP status the API answers with.
// Kind is the broad category (ErrNotFound, ErrValidation, ...) and Err the underlying cause.
type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Kind       error
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes both the category sentinel and the cause to errors.Is / errors.As.
func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Is reports whether target is an AppError with the same code, so a wrapped copy
// still matches the sentinel it was built from.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Wrap returns a copy of sentinel carrying cause as the underlying error.
func Wrap(sentinel *AppError, cause error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Kind:       sentinel.Kind,
		Err:        cause,
	}
}

// WithMessage returns a copy of sentinel with a more specific message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Kind:       sentinel.Kind,
		Err:        sentinel.Err,
	}
}

// Eligibility violations raised when creating a transaction.
var (
	ErrDuplicateAccount = &AppError{
		Code:       "DUPLICATE_ACCOUNT",
		Message:    "the personal client cannot have more than one bank account",
		StatusCode: http.StatusConflict,
		Kind:       ErrValidation,
	}
	ErrDuplicateCredit = &AppError{
		Code:       "DUPLICATE_CREDIT",
		Message:    "the personal client cannot have more than one credit",
		StatusCode: http.StatusConflict,
		Kind:       ErrValidation,
	}
	ErrRestrictedProductForBusiness = &AppError{
		Code:       "RESTRICTED_PRODUCT_FOR_BUSINESS",
		Message:    "the business client cannot have a savings or fixed-term account",
		StatusCode: http.StatusUnprocessableEntity,
		Kind:       ErrValidation,
	}
)

// Lookup failures.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "transaction not found", StatusCode: http.StatusNotFound, Kind: ErrNotFound}
	ErrCustomerNotFound    = &AppError{Code: "CUSTOMER_NOT_FOUND", Message: "customer not found", StatusCode: http.StatusNotFound, Kind: ErrNotFound}
	ErrProductNotFound     = &AppError{Code: "PRODUCT_NOT_FOUND", Message: "product not found", StatusCode: http.StatusNotFound, Kind: ErrNotFound}
)

// Infrastructure failures.
var (
	ErrDownstreamUnavailable = &AppError{Code: "DOWNSTREAM_UNAVAILABLE", Message: "downstream service unavailable", StatusCode: http.StatusBadGateway, Kind: ErrUnavailable}
	ErrPersistenceFailed     = &AppError{Code: "PERSISTENCE_ERROR", Message: "transaction store failure", StatusCode: http.StatusInternalServerError, Kind: ErrPersistence}
	ErrInvalidInput          = &AppError{Code: "INVALID_INPUT", Message: "invalid input", StatusCode: http.StatusBadRequest, Kind: ErrValidation}
)

// StatusCode returns the HTTP status for err, defaulting to 500 for unknown errors.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnavailable):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
