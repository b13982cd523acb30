// Package validator enforces the physical ranges of equatorial coordinates.
package validator

import (
	"errors"
	"fmt"
)

// Physical bounds.
const (
	RAMin  = 0.0
	RAMax  = 24.0
	DECMin = -90.0
	DECMax = 90.0
)

// Range errors.
var (
	ErrRAOutOfRange  = errors.New("RA out of range")
	ErrDECOutOfRange = errors.New("DEC out of range")
)

// RangeValidator checks decimal axis values against their physical bounds.
// When disabled it passes every value through, including nonsense like hour 25
// or degree 95, which the formatter must still render.
type RangeValidator struct {
	enabled bool
}

// NewRangeValidator creates a range validator.
func NewRangeValidator(enabled bool) *RangeValidator {
	return &RangeValidator{enabled: enabled}
}

// Enabled reports whether range checks are active.
func (v *RangeValidator) Enabled() bool {
	return v.enabled
}

// ValidateRA fails unless 0 <= ra < 24 hours.
func (v *RangeValidator) ValidateRA(ra float64) error {
	if !v.enabled {
		return nil
	}

	if ra < RAMin || ra >= RAMax {
		return fmt.Errorf("%w: %g (valid range: 0 <= RA < 24 hours)", ErrRAOutOfRange, ra)
	}

	return nil
}

// ValidateDEC fails unless -90 <= dec <= 90 degrees.
func (v *RangeValidator) ValidateDEC(dec float64) error {
	if !v.enabled {
		return nil
	}

	if dec < DECMin || dec > DECMax {
		return fmt.Errorf("%w: %g (valid range: -90 <= DEC <= 90 degrees)", ErrDECOutOfRange, dec)
	}

	return nil
}
