package planner

import (
	"errors"
	"fmt"
)

var (
	// ErrTitleRequired is wrapped by a ValidationError when Add gets an empty title.
	ErrTitleRequired = errors.New("title required")

	// ErrDateRequired is wrapped by a ValidationError when Add gets no date.
	ErrDateRequired = errors.New("date required")

	// ErrMalformed is returned by a Storage whose slot holds a value that
	// does not decode into a task list.
	ErrMalformed = errors.New("malformed task list")
)

// ValidationError reports an Add that was declined. Nothing was written.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a declined Add.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
