package billing

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorKind string

const (
	KindNotFound      ErrorKind = "NOT_FOUND"
	KindNotCancelable ErrorKind = "NOT_CANCELABLE"
	KindConflict      ErrorKind = "CONFLICT"
	KindUnclassified  ErrorKind = "UNCLASSIFIED"
)

// ErrorDetail is one entry of the provider's structured error list.
type ErrorDetail struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Detail   string `json:"detail"`
}

// ProviderError carries the provider's structured errors so callers can
// classify them without string-matching transport messages.
type ProviderError struct {
	StatusCode int
	Errors     []ErrorDetail
}

func (e *ProviderError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("billing provider error (HTTP %d)", e.StatusCode)
	}
	parts := make([]string, len(e.Errors))
	for i, d := range e.Errors {
		parts[i] = fmt.Sprintf("[%s/%s]: %s", d.Category, d.Code, d.Detail)
	}
	return strings.Join(parts, ", ")
}

// Kind classifies the error into the subset of failures the lifecycle layer
// reacts to. Everything else is UNCLASSIFIED and propagates verbatim.
func (e *ProviderError) Kind() ErrorKind {
	if e.StatusCode == 404 {
		return KindNotFound
	}
	for _, d := range e.Errors {
		switch d.Code {
		case "NOT_FOUND":
			return KindNotFound
		case "VERSION_MISMATCH", "CONFLICT":
			return KindConflict
		case "BAD_REQUEST":
			if strings.Contains(strings.ToLower(d.Detail), "cannot be canceled") {
				return KindNotCancelable
			}
		}
	}
	if e.StatusCode == 409 {
		return KindConflict
	}
	return KindUnclassified
}

func IsKind(err error, kind ErrorKind) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind() == kind
	}
	return false
}

func IsNotFound(err error) bool      { return IsKind(err, KindNotFound) }
func IsNotCancelable(err error) bool { return IsKind(err, KindNotCancelable) }
func IsConflict(err error) bool      { return IsKind(err, KindConflict) }
