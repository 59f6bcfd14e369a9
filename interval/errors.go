package interval

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidInterval signals that an interval with a low bound above its high
// bound has been provided
var ErrInvalidInterval = errors.New("interval low bound exceeds high bound")

// ErrInvalidFanout signals that the minimum fanout is below one or above half
// of the maximum fanout
var ErrInvalidFanout = errors.New("min fanout must be at least 1 and at most half of max fanout")

// InvalidInputError is returned when an interval with Low > High is offered to
// the index. The index is left unchanged.
type InvalidInputError struct {
	Interval Interval
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidInterval, e.Interval)
}

// Unwrap makes errors.Is(err, ErrInvalidInterval) hold.
func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInterval
}

// Check returns an *InvalidInputError when item is not a valid interval.
func Check(item Interval) error {
	if !item.Valid() {
		return &InvalidInputError{Interval: item}
	}

	return nil
}
