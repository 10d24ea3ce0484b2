package validate

import (
	"errors"
	"fmt"

	"github.com/ytget/solarsystem-gui/internal/model"
)

// Error kinds. Match them with errors.Is on a *FieldError.
var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrMalformedNumber      = errors.New("malformed number")
	ErrInvalidSize          = errors.New("invalid size")
)

// FieldError reports why the value of a single form field was rejected
type FieldError struct {
	Index  int    // position in model.Fields
	Field  string // display name of the field
	Reason string // human readable reason shown to the user
	Value  string // offending text, set for malformed numbers
	Err    error  // one of the Err* kinds
}

func newFieldError(index int, kind error, reason string) *FieldError {
	return &FieldError{
		Index:  index,
		Field:  model.Fields[index].Name,
		Reason: reason,
		Err:    kind,
	}
}

// Error implements error
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap returns the error kind
func (e *FieldError) Unwrap() error {
	return e.Err
}

// AsFieldError extracts a *FieldError from err
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
