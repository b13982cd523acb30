package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"astrosan/internal/config"
	"astrosan/internal/formatter"
	"astrosan/internal/logger"
	"astrosan/pkg/metadata"
)

// Writer persists batch results according to the output configuration.
type Writer struct {
	cfg config.OutputConfig
	log *logger.Logger
}

// NewWriter creates a writer.
func NewWriter(cfg config.OutputConfig, log *logger.Logger) *Writer {
	return &Writer{cfg: cfg, log: log}
}

// WriteResults writes the record file as JSON or JSONL, backing up an
// existing file first when configured.
func (w *Writer) WriteResults(records []Record) error {
	if err := w.prepare(w.cfg.Path); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)

	switch w.cfg.Format {
	case "json":
		if w.cfg.PrettyPrint {
			data, err = json.MarshalIndent(records, "", "  ")
		} else {
			data, err = json.Marshal(records)
		}

		if err == nil {
			data = append(data, '\n')
		}
	default: // jsonl
		var sb strings.Builder

		for _, rec := range records {
			line, mErr := json.Marshal(rec)
			if mErr != nil {
				err = mErr

				break
			}

			sb.Write(line)
			sb.WriteByte('\n')
		}

		data = []byte(sb.String())
	}

	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	if err := os.WriteFile(w.cfg.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	w.log.Info("results written", "path", w.cfg.Path, "records", len(records))

	return nil
}

// WriteReport writes the markdown summary with an aligned result table and a
// signed provenance block. No-op when no report path is configured.
func (w *Writer) WriteReport(summary Summary, records []Record, toolVersion string) error {
	if w.cfg.Report == "" {
		return nil
	}

	if err := w.prepare(w.cfg.Report); err != nil {
		return err
	}

	content := renderReport(summary, records)
	signed := metadata.Sign(content, summary.RunID, "astrosan "+toolVersion)

	if err := os.WriteFile(w.cfg.Report, []byte(signed), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	w.log.Info("report written", "path", w.cfg.Report)

	return nil
}

// prepare creates the parent directory and backs up an existing file when
// configured.
func (w *Writer) prepare(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if !w.cfg.CreateBackup {
		return nil
	}

	existing, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("failed to read existing output: %w", err)
	}

	backup := path + ".bak"
	if err := os.WriteFile(backup, existing, 0644); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	w.log.Debug("backup created", "path", backup)

	return nil
}

func renderReport(summary Summary, records []Record) string {
	var sb strings.Builder

	sb.WriteString("# Sanitization Report\n\n")
	sb.WriteString(fmt.Sprintf("- Run: %s\n", summary.RunID))
	sb.WriteString(fmt.Sprintf("- Generated: %s\n", summary.GeneratedAt.Format("2006-01-02 15:04:05 UTC")))
	sb.WriteString(fmt.Sprintf("- Inputs: %d (%d valid, %d invalid)\n\n", summary.Total, summary.Valid, summary.Invalid))

	rows := make([][]string, 0, len(records))

	for _, rec := range records {
		status := "ok"
		detail := rec.Result.Coordinates

		if !rec.Result.Valid {
			status = string(rec.Result.Kind)
			detail = rec.Result.Err
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", rec.Line),
			rec.Input,
			status,
			string(rec.Result.Metadata.InputFormat),
			detail,
		})
	}

	sb.WriteString(formatter.RenderTable(
		[]string{"Line", "Input", "Status", "Classified", "Output / Error"},
		rows,
	))

	return sb.String()
}
