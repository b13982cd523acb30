package parser

import "math"

// SexagesimalToDecimal combines magnitude components into a decimal value.
// integer, minutes and seconds are non-negative magnitudes; the sign comes
// from the explicit sign token captured at parse time, never from the integer
// part, which may legitimately be zero (e.g. "-00 58 20").
func SexagesimalToDecimal(integer, minutes int, seconds float64, negative bool) float64 {
	v := float64(integer) + float64(minutes)/60 + seconds/3600
	if negative {
		v = -v
	}

	return v
}

// DecimalToSexagesimal splits a decimal value into magnitude components plus
// an explicit sign. Truncation happens on the absolute value so minutes and
// seconds are always non-negative.
func DecimalToSexagesimal(value float64) (integer, minutes int, seconds float64, negative bool) {
	negative = math.Signbit(value)
	abs := math.Abs(value)

	integer = int(abs)
	rem := (abs - float64(integer)) * 60
	minutes = int(rem)
	seconds = (rem - float64(minutes)) * 60

	return integer, minutes, seconds, negative
}
