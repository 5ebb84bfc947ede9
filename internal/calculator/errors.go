package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySeries is returned when an operation needs at least one bar.
	ErrEmptySeries = errors.New("empty series")
	// ErrInsufficientData matches every *InsufficientDataError via errors.Is.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrInvalidPeriod is returned for non-positive periods and spans.
	ErrInvalidPeriod = errors.New("invalid period")
)

// InsufficientDataError reports that fewer bars were supplied than a window requires.
type InsufficientDataError struct {
	Op   string
	Need int
	Have int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: insufficient data: need %d bars, have %d", e.Op, e.Need, e.Have)
}

// Is lets errors.Is(err, ErrInsufficientData) match.
func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}
