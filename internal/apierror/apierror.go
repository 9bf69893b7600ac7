// Package apierror provides standardized error types and response structures
// for the API. All errors returned to clients go through this package to
// ensure consistency and to prevent leaking internal details (stack traces,
// DB errors, etc.).
package apierror

import "errors"

// Kind classifies a business error so the HTTP layer can pick a status code
// without inspecting message strings.
type Kind int

const (
	KindInternal   Kind = iota // unexpected failure — opaque to the client
	KindValidation             // malformed or out-of-range input, no mutation performed
	KindNotFound               // referenced record does not exist
	KindConflict               // business-invariant violation (overpayment, duplicate email)
	KindIntegrity              // foreign-key violation (nonexistent organization/module)
)

// Error is the domain error carried from services up to handlers.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }
func NotFound(msg string) *Error   { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) *Error   { return &Error{Kind: KindConflict, Message: msg} }
func Integrity(msg string) *Error  { return &Error{Kind: KindIntegrity, Message: msg} }

// Internal wraps an unexpected error. The original error is retained for
// logging but never serialized to the client.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Erro interno do servidor.", Err: err}
}

// KindOf extracts the Kind from any error chain. Unclassified errors are
// treated as internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// FieldErrors wraps multiple field errors from boundary validation.
type FieldErrors struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewFields(fields map[string]string) *FieldErrors {
	return &FieldErrors{Detail: "Input inválido.", Fields: fields}
}
