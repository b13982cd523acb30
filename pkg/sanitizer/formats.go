package sanitizer

import "astrosan/internal/formatter"

// Formats describes the supported input notations and output identifiers.
type Formats struct {
	Input  []string `json:"input"`
	Output []string `json:"output"`
}

// SupportedFormats lists the input notations the parser understands and the
// output format identifiers accepted by Options.OutputFormat.
func SupportedFormats() Formats {
	return Formats{
		Input: []string{
			`sexagesimal with unit markers: 12h 34m 56.78s, +12° 34' 56.78"`,
			"colon-separated sexagesimal: 12:34:56.78, -12:34:56.78",
			"space-separated sexagesimal: 16 37 13, -00 58 20",
			"compact sexagesimal: 123456.78, -123456.78",
			"decimal hours and degrees: 12.582439, -12.582439",
			"object catalog designations: M31, NGC 1234, ALPHA CENTAURI",
		},
		Output: formatter.OutputFormats(),
	}
}
