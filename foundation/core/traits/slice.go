// File: slice.go
// Title: Slice Index Normalisation
// Description: Slice describes a start:stop:step selection and resolves it
//              against a sequence length.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package traits

import (
	"fmt"

	numerrors "github.com/msto63/numerical/foundation/core/errors"
)

// Slice selects start:stop:step. Nil bounds take the defaults for the sign
// of Step.
type Slice struct {
	Start *int
	Stop  *int
	Step  *int
}

// Span returns the slice start:stop
func Span(start, stop int) Slice {
	return Slice{Start: &start, Stop: &stop}
}

// SpanStep returns the slice start:stop:step
func SpanStep(start, stop, step int) Slice {
	return Slice{Start: &start, Stop: &stop, Step: &step}
}

// Indices resolves the slice against length and returns the effective
// start, stop and step plus the number of selected elements
func (s Slice) Indices(length int) (start, stop, step, count int, err error) {
	step = 1
	if s.Step != nil {
		step = *s.Step
	}
	if step == 0 {
		return 0, 0, 0, 0, numerrors.InvalidInput(numerrors.ModuleOperators, "a[i]", s, "non-zero slice step")
	}

	lower, upper := 0, length
	if step < 0 {
		lower, upper = -1, length-1
	}

	clamp := func(v *int, def int) int {
		if v == nil {
			return def
		}
		i := *v
		if i < 0 {
			i += length
			if i < lower {
				i = lower
			}
		} else if i > upper {
			i = upper
		}
		return i
	}

	if step > 0 {
		start, stop = clamp(s.Start, lower), clamp(s.Stop, upper)
		if stop > start {
			count = (stop - start + step - 1) / step
		}
	} else {
		start, stop = clamp(s.Start, upper), clamp(s.Stop, lower)
		if start > stop {
			count = (start - stop - step - 1) / -step
		}
	}
	return start, stop, step, count, nil
}

// Positions returns the selected positions for a sequence of length
func (s Slice) Positions(length int) ([]int, error) {
	start, _, step, count, err := s.Indices(length)
	if err != nil {
		return nil, err
	}
	out := make([]int, count)
	for i := range out {
		out[i] = start + i*step
	}
	return out, nil
}

// String renders the slice in start:stop:step notation
func (s Slice) String() string {
	part := func(v *int) string {
		if v == nil {
			return ""
		}
		return fmt.Sprint(*v)
	}
	if s.Step == nil {
		return part(s.Start) + ":" + part(s.Stop)
	}
	return part(s.Start) + ":" + part(s.Stop) + ":" + part(s.Step)
}

// NormalizeIndex maps a possibly negative index into [0, length)
func NormalizeIndex(i, length int) (int, error) {
	pos := i
	if pos < 0 {
		pos += length
	}
	if pos < 0 || pos >= length {
		return 0, numerrors.IndexOutOfRange(numerrors.ModuleOperators, "a[i]", i, length)
	}
	return pos, nil
}
