package amp

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when element of unexpected kind is
	// passed where specific structure is required.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrSlotFilled is returned on second assignment of a document slot.
	ErrSlotFilled = errors.New("slot already filled")
)

// Warning is a recoverable conversion problem. Offending fragment was
// replaced with placeholder or dropped.
type Warning struct {
	Message string
	// Context is the article node or value which caused the warning.
	Context any
	Cause   error
}

func (w Warning) Error() string {
	if w.Cause != nil {
		return fmt.Sprintf("%s: %v", w.Message, w.Cause)
	}
	return w.Message
}

func (w Warning) Unwrap() error {
	return w.Cause
}
