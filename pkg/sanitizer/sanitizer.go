// Package sanitizer normalizes free-form astronomical coordinate input into a
// standardized string representation. It distinguishes coordinate pairs
// (right ascension / declination) from object catalog names, parses several
// numeric notations per axis, validates physical ranges, and re-renders the
// pair in a configurable output format.
//
// A Sanitizer holds immutable configuration only; Sanitize is a pure function
// of (configuration, input) and is safe for concurrent use.
package sanitizer

import (
	"fmt"
	"strings"

	"astrosan/internal/classifier"
	"astrosan/internal/formatter"
	"astrosan/internal/models"
	"astrosan/internal/normalizer"
	"astrosan/internal/parser"
	rangecheck "astrosan/internal/validator"

	"github.com/go-playground/validator/v10"
)

// Re-exported result types; see the models package for field documentation.
type (
	// Result is the outcome of one Sanitize call.
	Result = models.SanitizationResult
	// AxisComponent is the parsed breakdown of one coordinate axis.
	AxisComponent = models.AxisComponent
	// Metadata describes how the input was interpreted.
	Metadata = models.ResultMetadata
)

// Input format identifiers reported in result metadata.
const (
	InputCoordinates  = models.InputCoordinates
	InputObjectName   = models.InputObjectName
	InputAlreadyValid = models.InputAlreadyValid
)

// Error kinds reported on failed results.
const (
	ErrorInput    = models.ErrorInput
	ErrorSecurity = models.ErrorSecurity
	ErrorParse    = models.ErrorParse
	ErrorRange    = models.ErrorRange
)

// Defaults applied by New for omitted options.
const (
	DefaultOutputFormat = formatter.FormatAladin
	DefaultPrecision    = 6
)

// Options configures a Sanitizer. Nil pointer fields take their defaults, so
// the zero value means "all defaults".
type Options struct {
	// OutputFormat is one of "aladin", "decimal", "hms-dms". Empty selects
	// aladin.
	OutputFormat string
	// Precision is the number of decimal places for the decimal output
	// format. Nil selects 6; zero is a valid explicit choice.
	Precision *int
	// ValidateRanges enables RA/DEC physical range checks. Nil selects true.
	ValidateRanges *bool
	// StrictMode is reserved: it is stored and queryable but consumed by no
	// parsing path.
	StrictMode bool
}

// Settings is the resolved, immutable configuration of a Sanitizer.
type Settings struct {
	OutputFormat   string `json:"outputFormat" validate:"required,output_format"`
	Precision      int    `json:"precision" validate:"gte=0"`
	ValidateRanges bool   `json:"validateRanges"`
	StrictMode     bool   `json:"strictMode"`
}

// Sanitizer runs the sanitization pipeline with a fixed configuration.
type Sanitizer struct {
	settings   Settings
	normalizer *normalizer.Normalizer
	gatekeeper *normalizer.Gatekeeper
	classifier *classifier.Classifier
	parser     *parser.Parser
	ranges     *rangecheck.RangeValidator
	formatter  *formatter.Formatter
}

// settingsValidator checks resolved settings at construction time.
var settingsValidator = newSettingsValidator()

func newSettingsValidator() *validator.Validate {
	v := validator.New()

	// Registration on a fresh instance cannot fail for a well-formed tag name.
	_ = v.RegisterValidation("output_format", func(fl validator.FieldLevel) bool {
		return formatter.IsSupported(fl.Field().String())
	})

	return v
}

// New creates a Sanitizer. A nil opts (or zero-value fields) selects the
// defaults: aladin output, precision 6, range validation on, strict mode off.
// Invalid option values are rejected here, never during Sanitize.
func New(opts *Options) (*Sanitizer, error) {
	settings := Settings{
		OutputFormat:   DefaultOutputFormat,
		Precision:      DefaultPrecision,
		ValidateRanges: true,
	}

	if opts != nil {
		if opts.OutputFormat != "" {
			settings.OutputFormat = opts.OutputFormat
		}

		if opts.Precision != nil {
			settings.Precision = *opts.Precision
		}

		if opts.ValidateRanges != nil {
			settings.ValidateRanges = *opts.ValidateRanges
		}

		settings.StrictMode = opts.StrictMode
	}

	if err := settingsValidator.Struct(settings); err != nil {
		return nil, fmt.Errorf("invalid sanitizer options: %w", err)
	}

	return &Sanitizer{
		settings:   settings,
		normalizer: normalizer.New(),
		gatekeeper: normalizer.NewGatekeeper(),
		classifier: classifier.New(),
		parser:     parser.New(),
		ranges:     rangecheck.NewRangeValidator(settings.ValidateRanges),
		formatter:  formatter.New(settings.OutputFormat, settings.Precision),
	}, nil
}

// Settings returns the resolved configuration.
func (s *Sanitizer) Settings() Settings {
	return s.settings
}

// Sanitize runs the pipeline on one input. It never panics for bad input; all
// failures are reported on the result.
func (s *Sanitizer) Sanitize(input string) Result {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return models.Failure(models.ErrorInput, "input must be a non-empty string")
	}

	normalized := s.normalizer.Normalize(input)
	if normalized == "" {
		return models.Failure(models.ErrorInput, "input must be a non-empty string")
	}

	if err := s.gatekeeper.Check(normalized); err != nil {
		return models.Failure(models.ErrorSecurity, err.Error())
	}

	decision := s.classifier.Classify(normalized, input, s.settings.OutputFormat)
	if decision.Outcome != classifier.OutcomeCoordinates {
		return Result{
			Valid:       true,
			Coordinates: decision.Passthrough,
			Metadata: Metadata{
				InputFormat:  decision.InputFormat(),
				OutputFormat: s.settings.OutputFormat,
			},
		}
	}

	ra, dec, err := s.parser.ParsePair(normalized)
	if err != nil {
		return models.Failure(models.ErrorParse, fmt.Sprintf("unable to parse coordinates %q: %v", trimmed, err))
	}

	if !ra.Valid {
		return parseFailure(ra.Err, &ra, &dec, s.settings.OutputFormat)
	}

	if !dec.Valid {
		return parseFailure(dec.Err, &ra, &dec, s.settings.OutputFormat)
	}

	// RA checked before DEC: the first offending axis wins.
	if err := s.ranges.ValidateRA(ra.Decimal); err != nil {
		return rangeFailure(err, &ra, &dec, s.settings.OutputFormat)
	}

	if err := s.ranges.ValidateDEC(dec.Decimal); err != nil {
		return rangeFailure(err, &ra, &dec, s.settings.OutputFormat)
	}

	return Result{
		Valid:       true,
		Coordinates: s.formatter.Format(&ra, &dec),
		Metadata: Metadata{
			InputFormat:  models.InputCoordinates,
			OutputFormat: s.settings.OutputFormat,
			RA:           &ra,
			Dec:          &dec,
		},
	}
}

func parseFailure(msg string, ra, dec *AxisComponent, outputFormat string) Result {
	r := models.Failure(models.ErrorParse, msg)
	r.Metadata = Metadata{
		InputFormat:  models.InputCoordinates,
		OutputFormat: outputFormat,
		RA:           ra,
		Dec:          dec,
	}

	return r
}

func rangeFailure(err error, ra, dec *AxisComponent, outputFormat string) Result {
	r := models.Failure(models.ErrorRange, err.Error())
	r.Metadata = Metadata{
		InputFormat:  models.InputCoordinates,
		OutputFormat: outputFormat,
		RA:           ra,
		Dec:          dec,
	}

	return r
}
