package main

import (
	"fmt"

	"astrosan/internal/config"
	"astrosan/internal/logger"
	"astrosan/internal/report"
	"astrosan/pkg/sanitizer"

	"github.com/spf13/cobra"
)

var configFlag string

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Sanitize a file of inputs according to a YAML configuration",
	Example: `  astrosan batch --config batch.yaml

  # batch.yaml
  batch:
    input: targets.txt
    output:
      path: results.jsonl
      format: jsonl
      report: report.md
  sanitizer:
    output_format: aladin`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadConfig(configFlag)
		if err != nil {
			return err
		}

		log := logger.New(resolveLogLevel(cmd, cfg), cfg.Logging.Format)

		s, err := sanitizer.New(&sanitizer.Options{
			OutputFormat:   cfg.Sanitizer.OutputFormat,
			Precision:      cfg.Sanitizer.Precision,
			ValidateRanges: cfg.Sanitizer.ValidateRanges,
			StrictMode:     cfg.Sanitizer.StrictMode,
		})
		if err != nil {
			return err
		}

		inputs, lines, err := report.ReadInputs(cfg.Batch.Input)
		if err != nil {
			return err
		}

		runID := report.NewRunID()
		log.Info("starting batch run", "run_id", runID, "inputs", len(inputs))

		records, summary := report.Process(s, runID, inputs, lines)

		if summary.Invalid > 0 && !cfg.Batch.ContinueOnError {
			for _, rec := range records {
				if !rec.Result.Valid {
					return fmt.Errorf("line %d: %s", rec.Line, rec.Result.Err)
				}
			}
		}

		writer := report.NewWriter(cfg.Batch.Output, log)

		if err := writer.WriteResults(records); err != nil {
			return err
		}

		if err := writer.WriteReport(summary, records, Version); err != nil {
			return err
		}

		log.Info("batch run complete",
			"run_id", runID,
			"valid", summary.Valid,
			"invalid", summary.Invalid,
		)

		return nil
	},
}

// resolveLogLevel picks the effective log level. Precedence: --log-level flag
// > config file > info.
func resolveLogLevel(cmd *cobra.Command, cfg *config.Config) string {
	if cmd.Flags().Changed("log-level") {
		return logLevelFlag
	}

	if cfg.Logging.Level != "" {
		return cfg.Logging.Level
	}

	return "info"
}

func init() {
	batchCmd.Flags().StringVar(&configFlag, "config", "astrosan.yaml",
		"Path to the batch configuration file")

	rootCmd.AddCommand(batchCmd)
}
