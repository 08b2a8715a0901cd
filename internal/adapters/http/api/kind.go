package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iitg/jobassessment/internal/adapters/repository"
)

// kindError tags an error with the operation that produced it and a
// sentinel kind, so callers can errors.Is against the kind while logs
// keep the operation context.
type kindError struct {
	op   string
	kind error
	err  error
}

func (e *kindError) Error() string {
	switch {
	case e.err == nil:
		return e.op + ": " + e.kind.Error()
	case e.kind == nil:
		return e.op + ": " + e.err.Error()
	default:
		return e.op + ": " + e.kind.Error() + ": " + e.err.Error()
	}
}

func (e *kindError) Unwrap() []error {
	out := make([]error, 0, 2)
	if e.kind != nil {
		out = append(out, e.kind)
	}
	if e.err != nil {
		out = append(out, e.err)
	}
	return out
}

// WrapKind wraps err as the given kind, tagged with the operation.
func WrapKind(op string, kind, err error) error {
	return &kindError{op: op, kind: kind, err: err}
}

// Wrap tags err with the operation without assigning a kind.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// isNotFound reports whether err represents a missing entity.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, ErrNotFound) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "not found")
}
