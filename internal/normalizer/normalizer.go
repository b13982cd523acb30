// Package normalizer canonicalizes raw coordinate text before any pattern
// matching, and screens it for denylisted content.
package normalizer

import (
	"regexp"
	"strings"
)

// glyphFolder maps unicode variants onto the canonical ASCII alphabet the
// downstream parsers understand (digits, h m s d ' " : , ; + -, letters,
// space).
var glyphFolder = strings.NewReplacer(
	// Quote-like glyphs to straight double quote
	"“", `"`, // left double quotation mark
	"”", `"`, // right double quotation mark
	"„", `"`, // double low-9 quotation mark
	"″", `"`, // double prime
	// Prime and curly single quotes to straight apostrophe
	"‘", "'", // left single quotation mark
	"’", "'", // right single quotation mark
	"′", "'", // prime
	// Degree-like glyphs to a literal d
	"°", "d", // degree sign
	"º", "d", // masculine ordinal indicator
	"ª", "d", // feminine ordinal indicator
	// Dash variants to ASCII hyphen-minus
	"–", "-", // en dash
	"—", "-", // em dash
	"−", "-", // minus sign
	// Dot separators to comma
	"·", ",", // middle dot
	"•", ",", // bullet
)

// Normalizer rewrites raw input into a canonical form.
type Normalizer struct {
	separatorPattern  *regexp.Regexp
	colonPattern      *regexp.Regexp
	whitespacePattern *regexp.Regexp
}

// New creates a normalizer with its rewrite patterns compiled.
func New() *Normalizer {
	return &Normalizer{
		// Whitespace run optionally surrounding a comma or semicolon
		separatorPattern: regexp.MustCompile(`\s*([,;])\s*`),
		// Whitespace run around a colon
		colonPattern: regexp.MustCompile(`\s*:\s*`),
		// Any remaining whitespace run
		whitespacePattern: regexp.MustCompile(`\s+`),
	}
}

// Normalize applies the canonicalization steps in order: glyph folding,
// separator collapsing, whitespace collapsing, trimming. Every downstream
// stage assumes this canonical alphabet.
func (n *Normalizer) Normalize(input string) string {
	s := glyphFolder.Replace(input)
	s = n.separatorPattern.ReplaceAllString(s, "$1")
	s = n.colonPattern.ReplaceAllString(s, ":")
	s = n.whitespacePattern.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}
