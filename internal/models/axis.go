// Package models defines data structures shared by the sanitizer pipeline stages.
package models

// SourceFormat identifies which axis grammar matched the input substring.
type SourceFormat string

// Axis source formats.
const (
	SourceHMS        SourceFormat = "hms"
	SourceHMSCompact SourceFormat = "hms-compact"
	SourceDMS        SourceFormat = "dms"
	SourceDMSCompact SourceFormat = "dms-compact"
	SourceDecimal    SourceFormat = "decimal"
)

// Axis names the coordinate axis a component belongs to.
type Axis string

// Coordinate axes.
const (
	AxisRA  Axis = "RA"
	AxisDEC Axis = "DEC"
)

// AxisComponent is the parsed breakdown of a single coordinate axis.
//
// Negative is captured from an explicit sign token during parsing and is
// tracked separately from IntegerPart, because a leading component of zero
// (e.g. "-00° 58' 20\"") carries no sign of its own. IntegerPart, Minutes and
// Seconds are always non-negative magnitudes.
type AxisComponent struct {
	Valid        bool         `json:"valid"`
	Decimal      float64      `json:"decimal"`
	Err          string       `json:"error,omitempty"`
	SourceFormat SourceFormat `json:"sourceFormat,omitempty"`
	IntegerPart  int          `json:"integerPart"`
	Minutes      int          `json:"minutes"`
	Seconds      float64      `json:"seconds"`
	Negative     bool         `json:"negative"`
}
