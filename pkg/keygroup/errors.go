package keygroup

import (
	"errors"
	"fmt"
)

// Sentinel errors for contract violations.
var (
	// ErrEmptyGroup indicates a navigation call on a group with no children.
	ErrEmptyGroup = errors.New("group has no children")

	// ErrNilChild indicates AddChild was called with a nil child.
	ErrNilChild = errors.New("child is nil")
)

// NavigationError reports a failed selection move. The group is left
// unchanged when one is returned.
type NavigationError struct {
	Op  string // "select_previous" or "select_next"
	Err error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("keygroup: %s: %v", e.Op, e.Err)
}

func (e *NavigationError) Unwrap() error {
	return e.Err
}

// InputError represents a failure in an input source (SDL init, opening an
// evdev device, parsing a mapping file). These are environment problems the
// group logic cannot recover from.
type InputError struct {
	Op  string // Operation that failed (e.g., "sdl_init", "open_device")
	Err error  // Underlying error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("keygroup: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("keygroup: %s", e.Op)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// NewInputError creates a new input error.
func NewInputError(op string, err error) *InputError {
	return &InputError{Op: op, Err: err}
}

// IsInputError checks if an error is an input error.
func IsInputError(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}

// IsEmptyGroup checks if an error came from navigating an empty group.
func IsEmptyGroup(err error) bool {
	return errors.Is(err, ErrEmptyGroup)
}
