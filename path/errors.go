package path

import (
	"errors"
	"fmt"
)

var (
	// ErrNotContainer is returned when a write must descend through a value
	// that is neither a map nor a slice.
	ErrNotContainer = errors.New("value is not a container")

	// ErrIndexOutOfRange is returned when a write addresses a slice element
	// that does not exist or with a segment that is not a decimal index.
	ErrIndexOutOfRange = errors.New("slice index out of range")

	// ErrElementType is returned when a typed container cannot hold the
	// value being written, such as a string into a map[string]int.
	ErrElementType = errors.New("value not assignable to container element type")
)

// SetError captures the location and cause of a failed write.
type SetError struct {
	Path Path
	Type string
	Err  error
}

func (e *SetError) Error() string {
	return fmt.Sprintf("cannot set %s through %s: %v", e.Path, e.Type, e.Err)
}

func (e *SetError) Unwrap() error {
	return e.Err
}
