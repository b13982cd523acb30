// Package formatter renders validated coordinate pairs into the supported
// output formats.
package formatter

import (
	"fmt"
	"strconv"

	"astrosan/internal/models"
	"astrosan/internal/parser"
)

// Output format identifiers.
const (
	FormatAladin  = "aladin"
	FormatDecimal = "decimal"
	FormatHMSDMS  = "hms-dms"
)

// OutputFormats lists the supported output format identifiers.
func OutputFormats() []string {
	return []string{FormatAladin, FormatDecimal, FormatHMSDMS}
}

// IsSupported reports whether name is a recognized output format.
func IsSupported(name string) bool {
	switch name {
	case FormatAladin, FormatDecimal, FormatHMSDMS:
		return true
	default:
		return false
	}
}

// Formatter renders a coordinate pair according to the configured output
// format and precision.
type Formatter struct {
	outputFormat string
	precision    int
}

// New creates a formatter. precision applies to the decimal format only.
func New(outputFormat string, precision int) *Formatter {
	return &Formatter{
		outputFormat: outputFormat,
		precision:    precision,
	}
}

// Format renders both axes. The inputs are assumed parsed; they need not be
// range-validated (out-of-range values are rendered as-is).
func (f *Formatter) Format(ra, dec *models.AxisComponent) string {
	switch f.outputFormat {
	case FormatDecimal:
		return fmt.Sprintf("%s, %s",
			strconv.FormatFloat(ra.Decimal, 'f', f.precision, 64),
			strconv.FormatFloat(dec.Decimal, 'f', f.precision, 64),
		)
	case FormatHMSDMS:
		return fmt.Sprintf("%s, %s", f.formatHMS(ra.Decimal), f.formatDMS(dec.Decimal))
	default:
		return fmt.Sprintf("%s, %s", f.formatAladinRA(ra.Decimal), f.formatAladinDEC(dec.Decimal))
	}
}

// formatAladinRA renders "HH MM SS.sss" with width-2 zero-padded fields.
func (f *Formatter) formatAladinRA(value float64) string {
	h, m, s, negative := splitCarry(value)

	sign := ""
	if negative {
		// Only reachable with range validation off; keep the sign rather
		// than silently rendering a positive hour.
		sign = "-"
	}

	return fmt.Sprintf("%s%02d %02d %s", sign, h, m, padSeconds(s))
}

// formatAladinDEC renders "±DD MM SS.sss"; the degree field is padded on the
// unsigned magnitude with the sign prepended separately.
func (f *Formatter) formatAladinDEC(value float64) string {
	d, m, s, negative := splitCarry(value)

	sign := "+"
	if negative {
		sign = "-"
	}

	return fmt.Sprintf("%s%02d %02d %s", sign, d, m, padSeconds(s))
}

// formatHMS renders "Hh Mm S.sssS" with natural field widths.
func (f *Formatter) formatHMS(value float64) string {
	h, m, s, negative := splitCarry(value)

	sign := ""
	if negative {
		sign = "-"
	}

	return fmt.Sprintf("%s%dh %dm %.3fs", sign, h, m, s)
}

// formatDMS renders "±D° M' S.sss\"" with an explicit + for non-negative
// declinations.
func (f *Formatter) formatDMS(value float64) string {
	d, m, s, negative := splitCarry(value)

	sign := "+"
	if negative {
		sign = "-"
	}

	return fmt.Sprintf("%s%d° %d' %.3f\"", sign, d, m, s)
}

// splitCarry converts to sexagesimal components and carries the seconds field
// when it would round to 60.000 at 3 decimals.
func splitCarry(value float64) (integer, minutes int, seconds float64, negative bool) {
	integer, minutes, seconds, negative = parser.DecimalToSexagesimal(value)

	if fmt.Sprintf("%.3f", seconds) == "60.000" {
		seconds = 0
		minutes++

		if minutes == 60 {
			minutes = 0
			integer++
		}
	}

	return integer, minutes, seconds, negative
}

// padSeconds renders seconds with 3 fixed decimals, zero-padded to a total
// width of 6 ("00.000".."59.999").
func padSeconds(s float64) string {
	out := fmt.Sprintf("%.3f", s)
	if len(out) < 6 {
		out = "0" + out
	}

	return out
}
