package question

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("question not found")
	ErrUnauthenticated = errors.New("login required")
	ErrForbidden       = errors.New("only the author may change this question")
)

// InvalidFilterError is returned for a malformed category/search pair
type InvalidFilterError struct {
	Reason string
}

func (e *InvalidFilterError) Error() string {
	return "invalid search criteria: " + e.Reason
}

// InvalidPaginationError is returned for an out-of-range page, size or sort target
type InvalidPaginationError struct {
	Field  string
	Reason string
}

func (e *InvalidPaginationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ValidationError represents a rejected question payload
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// RepositoryError wraps a failure of the underlying store
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return "question repository " + e.Op + ": " + e.Err.Error()
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}
