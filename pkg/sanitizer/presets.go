package sanitizer

import (
	"errors"
	"fmt"
)

// ErrUnknownPreset is returned for an unrecognized preset name.
var ErrUnknownPreset = errors.New("unknown preset")

// Preset names accepted by CreatePreset.
const (
	PresetAladin  = "aladin"
	PresetDecimal = "decimal"
	PresetLoose   = "loose"
	PresetStrict  = "strict"
)

// PresetNames lists the available presets.
func PresetNames() []string {
	return []string{PresetAladin, PresetDecimal, PresetLoose, PresetStrict}
}

// PresetOptions returns the option bundle for a named preset.
func PresetOptions(name string) (*Options, error) {
	validate := true
	noValidate := false
	precision := DefaultPrecision

	switch name {
	case PresetAladin:
		return &Options{OutputFormat: "aladin", ValidateRanges: &validate}, nil
	case PresetDecimal:
		return &Options{OutputFormat: "decimal", Precision: &precision, ValidateRanges: &validate}, nil
	case PresetLoose:
		return &Options{OutputFormat: "aladin", ValidateRanges: &noValidate}, nil
	case PresetStrict:
		return &Options{OutputFormat: "aladin", ValidateRanges: &validate, StrictMode: true}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// CreatePreset builds a Sanitizer from a named option bundle.
func CreatePreset(name string) (*Sanitizer, error) {
	opts, err := PresetOptions(name)
	if err != nil {
		return nil, err
	}

	return New(opts)
}
