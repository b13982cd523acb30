package main

import (
	"astrosan/internal/formatter"
	"astrosan/pkg/sanitizer"

	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported input notations and output formats",
	Run: func(cmd *cobra.Command, _ []string) {
		formats := sanitizer.SupportedFormats()

		cmd.Println("Input notations:")

		for _, f := range formats.Input {
			cmd.Println("  - " + f)
		}

		cmd.Println("\nOutput formats:")

		for _, f := range formats.Output {
			cmd.Println("  - " + f)
		}
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List preset option bundles",
	Run: func(cmd *cobra.Command, _ []string) {
		rows := make([][]string, 0, len(sanitizer.PresetNames()))

		for _, name := range sanitizer.PresetNames() {
			s, err := sanitizer.CreatePreset(name)
			if err != nil {
				continue
			}

			settings := s.Settings()
			rows = append(rows, []string{
				name,
				settings.OutputFormat,
				boolWord(settings.ValidateRanges),
				boolWord(settings.StrictMode),
			})
		}

		cmd.Print(formatter.RenderTable(
			[]string{"Preset", "Output", "Validate", "Strict"},
			rows,
		))
	},
}

func boolWord(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}

func init() {
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(presetsCmd)
}
