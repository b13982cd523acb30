package normalizer

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrMaliciousInput is returned when input matches a denylisted pattern.
var ErrMaliciousInput = errors.New("input contains potentially malicious content")

// Gatekeeper rejects malformed or unsafe input before parsing. It is a
// denylist used as defense-in-depth, not a security boundary.
type Gatekeeper struct {
	patterns []*regexp.Regexp
}

// NewGatekeeper creates a gatekeeper with its denylist compiled.
func NewGatekeeper() *Gatekeeper {
	return &Gatekeeper{
		patterns: []*regexp.Regexp{
			// Markup tags
			regexp.MustCompile(`<[^>]*>`),
			// Script-execution URI scheme
			regexp.MustCompile(`(?i)javascript:`),
			// Inline event-handler attribute tokens, e.g. onerror=
			regexp.MustCompile(`(?i)\bon\w+\s*=`),
			// C0 control characters and DEL
			regexp.MustCompile("[\x00-\x1f\x7f]"),
		},
	}
}

// Check returns ErrMaliciousInput (wrapped with the matched pattern) when the
// input contains denylisted content, nil otherwise.
func (g *Gatekeeper) Check(input string) error {
	for _, p := range g.patterns {
		if p.MatchString(input) {
			return fmt.Errorf("%w: matched %q", ErrMaliciousInput, p.String())
		}
	}

	return nil
}
