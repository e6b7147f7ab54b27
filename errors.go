package reduction

import (
	"errors"
	"fmt"

	"github.com/tailored-agentic-units/reduction/path"
)

var (
	// ErrInvalidDeclaration is matched by every *DeclarationError.
	ErrInvalidDeclaration = errors.New("invalid reducer declaration")

	// ErrReducerPanic is matched by faults raised from a panicking reducer.
	ErrReducerPanic = errors.New("reducer panicked")
)

// DeclarationError reports a declaration that is neither a reducer, a map,
// nor empty. It is raised at composition and is not recoverable.
type DeclarationError struct {
	Path path.Path
	Type string
}

func (e *DeclarationError) Error() string {
	return fmt.Sprintf("cannot combine reducer of type %s at %s", e.Type, displayPath(e.Path, path.DefaultSeparator))
}

func (e *DeclarationError) Unwrap() error {
	return ErrInvalidDeclaration
}

// FaultError captures a failure raised by a mounted reducer during dispatch.
//
// Panic holds the recovered value when the reducer panicked.
type FaultError struct {
	Path  path.Path
	Err   error
	Panic any
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("reducer at %s: %v", displayPath(e.Path, path.DefaultSeparator), e.Err)
}

func (e *FaultError) Unwrap() error {
	return e.Err
}

func newPanicFault(p path.Path, recovered any) *FaultError {
	var err error
	if cause, ok := recovered.(error); ok {
		err = fmt.Errorf("%w: %w", ErrReducerPanic, cause)
	} else {
		err = fmt.Errorf("%w: %v", ErrReducerPanic, recovered)
	}
	return &FaultError{Path: p, Err: err, Panic: recovered}
}

func displayPath(p path.Path, sep string) string {
	if p.Root() {
		return "<root>"
	}
	return p.Join(sep)
}
