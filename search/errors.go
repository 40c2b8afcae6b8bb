package search

import (
	"errors"
	"fmt"

	"employeehub/validation"
)

const (
	TypeValidation = "validation_error"
	TypeExecution  = "execution_error"
)

// GenerationError wraps a failure of the language model itself. It is never retried.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate SQL: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// ExecutionError is the terminal failure of the execute/correct loop. Err is the
// database error of the last executed statement.
type ExecutionError struct {
	Attempts  int
	Exhausted bool
	Err       error
}

func (e *ExecutionError) Error() string {
	if e.Exhausted {
		return fmt.Sprintf("Query failed after %d attempts: %v", e.Attempts, e.Err)
	}
	return fmt.Sprintf("Query failed: %v", e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// ErrorType maps a pipeline error to the "type" reported to clients.
func ErrorType(err error) string {
	var rejected *validation.RejectedSQLError
	if errors.As(err, &rejected) {
		return TypeValidation
	}
	return TypeExecution
}
