// Package parser converts normalized coordinate text into per-axis decimal
// values with a sexagesimal component breakdown. Each axis is matched against
// an ordered list of grammars; the first success wins.
package parser

import (
	"errors"
	"regexp"
	"strings"

	"astrosan/internal/models"
)

// Pair-splitting errors.
var (
	ErrNotEnoughTokens = errors.New("expected at least 6 numeric tokens for a coordinate pair")
	ErrMissingAxis     = errors.New("coordinate pair is missing an axis")
)

// Parser splits a coordinate pair and parses both axes.
type Parser struct {
	ra           *AxisParser
	dec          *AxisParser
	numericToken *regexp.Regexp
}

// New creates a pair parser.
func New() *Parser {
	return &Parser{
		ra:  NewRAParser(),
		dec: NewDECParser(),
		// Tokens usable by the whitespace fallback: numbers with optional
		// sign, unit marker and fraction, e.g. "-00", "13", "56.78s"
		numericToken: regexp.MustCompile(`^[+-]?\d+(?:\.\d+)?[hmsd'":]?$`),
	}
}

// ParsePair splits normalized input into RA and DEC substrings and parses
// each independently. The split happens at the first comma or semicolon;
// without one, the whitespace-token fallback requires at least 6 numeric
// tokens (first 3 become RA components, next 3 DEC components).
func (p *Parser) ParsePair(normalized string) (ra, dec models.AxisComponent, err error) {
	if idx := strings.IndexAny(normalized, ",;"); idx >= 0 {
		left := strings.TrimSpace(normalized[:idx])
		right := strings.TrimSpace(normalized[idx+1:])

		if left == "" || right == "" {
			return ra, dec, ErrMissingAxis
		}

		return p.ra.Parse(left), p.dec.Parse(right), nil
	}

	tokens := strings.Fields(normalized)

	var numeric []string

	for _, tok := range tokens {
		if p.numericToken.MatchString(tok) {
			numeric = append(numeric, tok)
		}
	}

	if len(numeric) < 6 {
		return ra, dec, ErrNotEnoughTokens
	}

	return p.ra.Parse(strings.Join(numeric[:3], " ")),
		p.dec.Parse(strings.Join(numeric[3:6], " ")),
		nil
}
