package parser

import (
	"fmt"
	"regexp"
	"strconv"

	"astrosan/internal/models"
)

// axisGrammar is one prioritized grammar attempt for an axis substring.
// Matchers run in order; the first success wins.
type axisGrammar struct {
	pattern *regexp.Regexp
	build   func(match []string) (models.AxisComponent, error)
}

// AxisParser parses one coordinate axis by trying its grammars in priority
// order: symbolic sexagesimal, compact sexagesimal, bare decimal.
type AxisParser struct {
	axis     models.Axis
	grammars []axisGrammar
}

// NewRAParser creates the right-ascension parser. The symbolic hour field
// accepts no leading sign; a negative RA can only come in through the decimal
// grammar and is left for range validation to reject.
func NewRAParser() *AxisParser {
	return &AxisParser{
		axis: models.AxisRA,
		grammars: []axisGrammar{
			{
				// 12h 34m 56.78s, 12:34:56.78, 12 34 56.78
				pattern: regexp.MustCompile(`^(\d{1,2})(?:h|:| ) ?(\d{1,2})(?:m|:|'| ) ?(\d{1,2}(?:\.\d+)?) ?s?$`),
				build: func(m []string) (models.AxisComponent, error) {
					return buildSymbolic(m[1], m[2], m[3], "", models.SourceHMS)
				},
			},
			{
				// 123456.78
				pattern: regexp.MustCompile(`^(\d{2})(\d{2})(\d{2,}(?:\.\d+)?)$`),
				build: func(m []string) (models.AxisComponent, error) {
					return buildSymbolic(m[1], m[2], m[3], "", models.SourceHMSCompact)
				},
			},
			{
				// 12.5824, optionally signed so that negative hours parse and
				// fail range validation instead of masquerading as an
				// unrecognized format
				pattern: regexp.MustCompile(`^([+-]?)(\d+(?:\.\d+)?)d?$`),
				build: func(m []string) (models.AxisComponent, error) {
					return buildDecimal(m[2], m[1], models.SourceDecimal)
				},
			},
		},
	}
}

// NewDECParser creates the declination parser. All grammars accept a leading
// sign, captured separately from the magnitude.
func NewDECParser() *AxisParser {
	return &AxisParser{
		axis: models.AxisDEC,
		grammars: []axisGrammar{
			{
				// +12d 34' 56.78", -12:34:56.78, -00 58 20
				pattern: regexp.MustCompile(`^([+-]?)(\d{1,2})(?:d|:| ) ?(\d{1,2})(?:m|:|'| ) ?(\d{1,2}(?:\.\d+)?) ?(?:"|s)?$`),
				build: func(m []string) (models.AxisComponent, error) {
					return buildSymbolic(m[2], m[3], m[4], m[1], models.SourceDMS)
				},
			},
			{
				// -123456.78
				pattern: regexp.MustCompile(`^([+-]?)(\d{2})(\d{2})(\d{2,}(?:\.\d+)?)$`),
				build: func(m []string) (models.AxisComponent, error) {
					return buildSymbolic(m[2], m[3], m[4], m[1], models.SourceDMSCompact)
				},
			},
			{
				// -12.5824, 12.5824d
				pattern: regexp.MustCompile(`^([+-]?)(\d+(?:\.\d+)?)d?$`),
				build: func(m []string) (models.AxisComponent, error) {
					return buildDecimal(m[2], m[1], models.SourceDecimal)
				},
			},
		},
	}
}

// Parse tries each grammar in order and returns the first successful
// component. Failure yields an invalid component naming the substring and
// axis.
func (p *AxisParser) Parse(s string) models.AxisComponent {
	for _, g := range p.grammars {
		match := g.pattern.FindStringSubmatch(s)
		if match == nil {
			continue
		}

		component, err := g.build(match)
		if err != nil {
			continue
		}

		return component
	}

	return models.AxisComponent{
		Valid: false,
		Err:   fmt.Sprintf("unrecognized %s format: %q", p.axis, s),
	}
}

// buildSymbolic assembles a component from sexagesimal magnitude tokens plus
// an explicit sign token ("" or "+" means non-negative).
func buildSymbolic(integerTok, minutesTok, secondsTok, signTok string, source models.SourceFormat) (models.AxisComponent, error) {
	integer, err := strconv.Atoi(integerTok)
	if err != nil {
		return models.AxisComponent{}, err
	}

	minutes, err := strconv.Atoi(minutesTok)
	if err != nil {
		return models.AxisComponent{}, err
	}

	seconds, err := strconv.ParseFloat(secondsTok, 64)
	if err != nil {
		return models.AxisComponent{}, err
	}

	negative := signTok == "-"

	return models.AxisComponent{
		Valid:        true,
		Decimal:      SexagesimalToDecimal(integer, minutes, seconds, negative),
		SourceFormat: source,
		IntegerPart:  integer,
		Minutes:      minutes,
		Seconds:      seconds,
		Negative:     negative,
	}, nil
}

// buildDecimal assembles a component from a bare decimal magnitude plus sign,
// backfilling the sexagesimal breakdown from the value.
func buildDecimal(valueTok, signTok string, source models.SourceFormat) (models.AxisComponent, error) {
	value, err := strconv.ParseFloat(valueTok, 64)
	if err != nil {
		return models.AxisComponent{}, err
	}

	negative := signTok == "-"
	if negative {
		value = -value
	}

	integer, minutes, seconds, _ := DecimalToSexagesimal(value)

	return models.AxisComponent{
		Valid:        true,
		Decimal:      value,
		SourceFormat: source,
		IntegerPart:  integer,
		Minutes:      minutes,
		Seconds:      seconds,
		Negative:     negative,
	}, nil
}
