package errorx

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrMalformedMessage = errors.New("malformed message")
	ErrCollaborator     = errors.New("collaborator call failed")
)

// ValidationError is returned before any side effect when a request is incomplete.
type ValidationError struct {
	Code    int
	Message string
	Details []ErrorDetail
}

type ErrorDetail struct {
	Path string `json:"path"`
	Info string `json:"info"`
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	paths := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		paths = append(paths, d.Path)
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(paths, ", "))
}

// MissingFields builds a 400 validation error for every empty value in fields.
// It returns nil when nothing is missing.
func MissingFields(fields map[string]string, order ...string) *ValidationError {
	var details []ErrorDetail
	for _, name := range order {
		if strings.TrimSpace(fields[name]) == "" {
			details = append(details, ErrorDetail{Path: name, Info: "required"})
		}
	}
	if len(details) == 0 {
		return nil
	}
	return &ValidationError{
		Code:    http.StatusBadRequest,
		Message: "Missing required fields",
		Details: details,
	}
}

// InvalidField builds a 400 validation error for a present but unacceptable value.
func InvalidField(path, info string) *ValidationError {
	return &ValidationError{
		Code:    http.StatusBadRequest,
		Message: "Invalid field",
		Details: []ErrorDetail{{Path: path, Info: info}},
	}
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as not worth retrying. Consumers drop such messages.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent reports whether err should be dropped instead of retried.
// Validation and malformed message errors are always permanent.
func IsPermanent(err error) bool {
	if err == nil {
		return false
	}
	var p *permanentError
	if errors.As(err, &p) {
		return true
	}
	var v *ValidationError
	if errors.As(err, &v) {
		return true
	}
	return errors.Is(err, ErrMalformedMessage)
}
