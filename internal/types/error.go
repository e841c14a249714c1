package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the engine's failure taxonomy. Services wrap these with
// context; handlers map them to HTTP statuses with errors.Is.
var (
	// ErrNotFound marks a missing or foreign-owned entity.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks an identity change that would collide with another
	// existing record.
	ErrConflict = errors.New("conflict")
)

// ValidationError marks input whose identifying key could not be parsed.
// Recoverable value problems (negative weights, missing set numbers) are
// coerced by normalization instead and never raise this.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// CustomError carries an HTTP status and error type through the Fiber error
// handler.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}
