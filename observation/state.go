// SPDX-License-Identifier: MIT

package observation

import (
	"fmt"
	"math"
)

// State is the tri-state readout of one cell-feature entry.
// The zero value is Missing, so an entry nobody wrote is "not measured"
// and can never compare equal to Present or Absent.
type State uint8

const (
	// Missing marks an unmeasured entry. It never counts as a measurement.
	Missing State = iota

	// Absent marks a measured 0.
	Absent

	// Present marks a measured 1.
	Present
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Missing:
		return "missing"
	case Absent:
		return "absent"
	case Present:
		return "present"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the three defined states.
func (s State) Valid() bool { return s <= Present }

// Defined reports whether s is a measurement (Present or Absent).
func (s State) Defined() bool { return s == Absent || s == Present }

// StateFromFloat decodes the numeric convention 1 / 0 / NaN.
// Any other value, including ±Inf, yields ErrInvalidValue.
func StateFromFloat(v float64) (State, error) {
	switch {
	case math.IsNaN(v):
		return Missing, nil
	case v == 0:
		return Absent, nil
	case v == 1:
		return Present, nil
	default:
		return Missing, fmt.Errorf("StateFromFloat(%g): %w", v, ErrInvalidValue)
	}
}

// StateFromInt decodes the integer convention 1 / 0 / -1 (missing).
func StateFromInt(v int) (State, error) {
	switch v {
	case -1:
		return Missing, nil
	case 0:
		return Absent, nil
	case 1:
		return Present, nil
	default:
		return Missing, fmt.Errorf("StateFromInt(%d): %w", v, ErrInvalidValue)
	}
}
