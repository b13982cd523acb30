package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"astrosan/pkg/sanitizer"

	"github.com/spf13/cobra"
)

// errSanitizationFailed signals a non-zero exit without an extra cobra error
// line beyond the printed result.
var errSanitizationFailed = errors.New("sanitization failed")

var (
	presetFlag       string
	outputFormatFlag string
	precisionFlag    int
	noValidateFlag   bool
	strictFlag       bool
	jsonFlag         bool
)

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize <input>",
	Short: "Sanitize a single coordinate string or object name",
	Example: `  astrosan sanitize "12h 34m 56.78s, +12° 34' 56.78\""
  astrosan sanitize --output-format decimal --precision 4 "16 37 13, -00 58 20"
  astrosan sanitize "M31"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := buildSanitizer()
		if err != nil {
			return err
		}

		result := s.Sanitize(args[0])

		if jsonFlag {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}

			cmd.Println(string(data))
		} else if result.Valid {
			cmd.Println(result.Coordinates)
		} else {
			cmd.PrintErrln("error: " + result.Err)
		}

		if !result.Valid {
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true

			return errSanitizationFailed
		}

		return nil
	},
}

func init() {
	sanitizeCmd.Flags().StringVar(&presetFlag, "preset", "",
		"Use a preset option bundle (aladin, decimal, loose, strict) instead of the option flags")
	sanitizeCmd.Flags().StringVar(&outputFormatFlag, "output-format", "aladin",
		"Output format: aladin, decimal, or hms-dms")
	sanitizeCmd.Flags().IntVar(&precisionFlag, "precision", sanitizer.DefaultPrecision,
		"Decimal places for the decimal output format")
	sanitizeCmd.Flags().BoolVar(&noValidateFlag, "no-validate", false,
		"Skip RA/DEC physical range validation")
	sanitizeCmd.Flags().BoolVar(&strictFlag, "strict", false,
		"Enable strict mode (reserved)")
	sanitizeCmd.Flags().BoolVar(&jsonFlag, "json", false,
		"Print the full result record as JSON")

	rootCmd.AddCommand(sanitizeCmd)
}

// buildSanitizer resolves the sanitize command flags. A --preset name wins
// over the individual option flags.
func buildSanitizer() (*sanitizer.Sanitizer, error) {
	if presetFlag != "" {
		s, err := sanitizer.CreatePreset(presetFlag)
		if err != nil {
			return nil, fmt.Errorf("invalid preset: %w", err)
		}

		return s, nil
	}

	validate := !noValidateFlag

	return sanitizer.New(&sanitizer.Options{
		OutputFormat:   outputFormatFlag,
		Precision:      &precisionFlag,
		ValidateRanges: &validate,
		StrictMode:     strictFlag,
	})
}
