package earnings

import (
	"errors"
	"fmt"
)

// ErrInvalidAmount is returned by ParseAmount for text that is not a plain
// non-negative decimal. Normalize never surfaces it.
var ErrInvalidAmount = errors.New("invalid amount")

// AmountError carries the rejected text.
type AmountError struct {
	Raw    string
	Reason string
}

func (e *AmountError) Error() string {
	return fmt.Sprintf("invalid amount %q: %s", e.Raw, e.Reason)
}

func (e *AmountError) Unwrap() error {
	return ErrInvalidAmount
}
