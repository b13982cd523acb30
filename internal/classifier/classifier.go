// Package classifier decides whether sanitizer input is already in the target
// format, an astronomical object designation, or a coordinate pair.
package classifier

import (
	"regexp"
	"strings"

	"astrosan/internal/models"
)

// Outcome is the classification decision for one input.
type Outcome string

// Classification outcomes.
const (
	OutcomeAlreadyValid Outcome = "already-valid"
	OutcomeObjectName   Outcome = "object-name"
	OutcomeCoordinates  Outcome = "coordinates"
)

// Decision carries the outcome plus the passthrough text for non-coordinate
// inputs: the canonical (uppercased normalized) designation for catalog
// matches, or the trimmed original input for heuristic fall-through.
type Decision struct {
	Outcome     Outcome
	Passthrough string
}

// Classifier applies the classification rules in priority order.
type Classifier struct {
	aladinPattern   *regexp.Regexp
	catalogPatterns []*regexp.Regexp
	coordHints      []*regexp.Regexp
}

// New creates a classifier with its pattern sets compiled.
func New() *Classifier {
	return &Classifier{
		// Canonical aladin pair after normalization (whitespace around the
		// comma is already collapsed away): zero-padded width-2 fields,
		// seconds with exactly 3 fractional digits, optional sign on DEC.
		aladinPattern: regexp.MustCompile(`^\d{2} \d{2} \d{2}\.\d{3},[+-]?\d{2} \d{2} \d{2}\.\d{3}$`),
		// Designation shapes, matched case-insensitively against the
		// uppercased normalized input. A catalog match always wins over
		// coordinate-likeness.
		catalogPatterns: []*regexp.Regexp{
			// Messier: M31, M 104
			regexp.MustCompile(`^M ?\d{1,3}$`),
			// NGC/IC/UGC/PGC, spaced or compact: NGC 1234, IC434
			regexp.MustCompile(`^(NGC|IC|UGC|PGC) ?\d{1,5}$`),
			// Hipparcos / Henry Draper / SAO
			regexp.MustCompile(`^(HIP|HD|SAO) ?\d{1,6}$`),
			// Sharpless: Sh2-101
			regexp.MustCompile(`^SH ?2-\d{1,3}$`),
			// Barnard dark nebulae: Barnard 33, Barnard33
			regexp.MustCompile(`^BARNARD ?\d{1,3}$`),
			// Planetary nebulae: PK 164+31.1
			regexp.MustCompile(`^PK ?\d{1,3}[+-]\d{1,2}(\.\d+)?$`),
			// Lynds bright nebulae: LBN 974
			regexp.MustCompile(`^LBN ?\d{1,4}$`),
			// Two-token names: ALPHA CENTAURI
			regexp.MustCompile(`^[A-Z]{2,} [A-Z]{2,}$`),
			// Number + name: 51 ERI
			regexp.MustCompile(`^\d{1,3} [A-Z]{2,}$`),
			// Single letter + name: R AND
			regexp.MustCompile(`^[A-Z] [A-Z]{2,}$`),
		},
		// Any of these marks the input as coordinate-shaped.
		coordHints: []*regexp.Regexp{
			// Hour marker followed by digits
			regexp.MustCompile(`(?i)\dh ?\d|\dh$`),
			// Degree marker followed by digits (° already folded to d)
			regexp.MustCompile(`(?i)\dd ?\d|\dd$`),
			// Signed number
			regexp.MustCompile(`[+-]\d`),
			// Minutes marker followed by digits
			regexp.MustCompile(`(?i)\d[m'] ?\d`),
			// Seconds marker
			regexp.MustCompile(`(?i)\ds|\d"`),
			// Two decimal numbers separated by a comma
			regexp.MustCompile(`\d+\.\d+,[+-]?\d+\.\d+`),
			// Explicit axis labels
			regexp.MustCompile(`(?i)\b(RA|DEC|DECL)\b`),
			// Colon-separated sexagesimal
			regexp.MustCompile(`\d:\d`),
		},
	}
}

// Classify applies the rules in priority order. normalized is the
// canonicalized input, original the raw caller-supplied string, and
// outputFormat the configured target format (only "aladin" defines an exact
// already-valid grammar).
func (c *Classifier) Classify(normalized, original, outputFormat string) Decision {
	if outputFormat == "aladin" && c.aladinPattern.MatchString(normalized) {
		return Decision{
			Outcome:     OutcomeAlreadyValid,
			Passthrough: strings.TrimSpace(original),
		}
	}

	upper := strings.ToUpper(normalized)
	for _, p := range c.catalogPatterns {
		if p.MatchString(upper) {
			return Decision{
				Outcome:     OutcomeObjectName,
				Passthrough: upper,
			}
		}
	}

	for _, p := range c.coordHints {
		if p.MatchString(normalized) {
			return Decision{Outcome: OutcomeCoordinates}
		}
	}

	// Plain text that looks like neither: pass it through as an object name
	// rather than erroring.
	return Decision{
		Outcome:     OutcomeObjectName,
		Passthrough: strings.TrimSpace(original),
	}
}

// InputFormat maps an outcome onto the result metadata enum.
func (d Decision) InputFormat() models.InputFormat {
	switch d.Outcome {
	case OutcomeAlreadyValid:
		return models.InputAlreadyValid
	case OutcomeObjectName:
		return models.InputObjectName
	default:
		return models.InputCoordinates
	}
}
