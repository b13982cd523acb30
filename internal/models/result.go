package models

// InputFormat classifies what kind of input the sanitizer received.
type InputFormat string

// Input classifications.
const (
	InputCoordinates  InputFormat = "coordinates"
	InputObjectName   InputFormat = "object-name"
	InputAlreadyValid InputFormat = "already-valid"
)

// ErrorKind tags a failure so callers can branch without matching message text.
type ErrorKind string

// Error kinds.
const (
	ErrorNone     ErrorKind = ""
	ErrorInput    ErrorKind = "input"
	ErrorSecurity ErrorKind = "security"
	ErrorParse    ErrorKind = "parse"
	ErrorRange    ErrorKind = "range"
)

// ResultMetadata describes how an input was interpreted.
//
// For InputObjectName the Coordinates field of the result holds either the
// canonical (normalized, uppercased) designation when a catalog pattern
// matched, or the trimmed original input when the text merely fell through
// the coordinate-likelihood heuristic.
type ResultMetadata struct {
	InputFormat  InputFormat    `json:"inputFormat,omitempty"`
	OutputFormat string         `json:"outputFormat,omitempty"`
	RA           *AxisComponent `json:"ra,omitempty"`
	Dec          *AxisComponent `json:"dec,omitempty"`
}

// SanitizationResult is the outcome of one sanitize call.
//
// Invariant: Valid == false implies Coordinates == "" and Err != "".
type SanitizationResult struct {
	Valid       bool           `json:"valid"`
	Coordinates string         `json:"coordinates"`
	Err         string         `json:"error,omitempty"`
	Kind        ErrorKind      `json:"errorKind,omitempty"`
	Metadata    ResultMetadata `json:"metadata"`
}

// Failure builds an invalid result with the given kind and message.
func Failure(kind ErrorKind, msg string) SanitizationResult {
	return SanitizationResult{
		Valid: false,
		Err:   msg,
		Kind:  kind,
	}
}
