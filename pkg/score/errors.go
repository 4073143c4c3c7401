package score

import (
	"errors"
	"fmt"
)

var (
	ErrCountTooLarge    = errors.New("student count exceeds capacity")
	ErrCountNotPositive = errors.New("student count must be positive")
	ErrScoreOutOfRange  = errors.New("score out of range")
	ErrNotANumber       = errors.New("input is not an integer")
	ErrInputEnded       = errors.New("input ended before collection completed")
	ErrNoScores         = errors.New("no scores to summarize")
)

// InputError is a validation failure detected while collecting input.
// Kind is one of the sentinel errors above and is reachable via errors.Is.
type InputError struct {
	Kind  error
	Index int // 1-based student number, 0 for the count
	Value string
}

func (e *InputError) Error() string {
	if e.Index == 0 {
		return fmt.Sprintf("count %q: %v", e.Value, e.Kind)
	}
	return fmt.Sprintf("student %d score %q: %v", e.Index, e.Value, e.Kind)
}

func (e *InputError) Unwrap() error {
	return e.Kind
}

// IsInputError reports whether err is (or wraps) an *InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}
