// Package report runs batch sanitization and writes the results: a JSON or
// JSONL record file plus an optional signed markdown summary.
package report

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"astrosan/internal/models"
	"astrosan/pkg/sanitizer"

	"github.com/google/uuid"
)

// Record pairs one input line with its sanitization result.
type Record struct {
	Line   int              `json:"line"`
	Input  string           `json:"input"`
	Result sanitizer.Result `json:"result"`
}

// Summary aggregates one batch run.
type Summary struct {
	RunID         string                     `json:"runId"`
	GeneratedAt   time.Time                  `json:"generatedAt"`
	Total         int                        `json:"total"`
	Valid         int                        `json:"valid"`
	Invalid       int                        `json:"invalid"`
	ByInputFormat map[models.InputFormat]int `json:"byInputFormat"`
	ByErrorKind   map[models.ErrorKind]int   `json:"byErrorKind"`
}

// NewRunID returns a unique identifier for one batch run.
func NewRunID() string {
	return uuid.NewString()
}

// ReadInputs loads one input per line from path, skipping blank lines and
// #-comments. The returned line numbers are 1-based positions in the file.
func ReadInputs(path string) ([]string, []int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	var (
		inputs []string
		lines  []int
	)

	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		inputs = append(inputs, line)
		lines = append(lines, n)
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read input file: %w", err)
	}

	return inputs, lines, nil
}

// Process sanitizes every input and aggregates the run summary.
func Process(s *sanitizer.Sanitizer, runID string, inputs []string, lines []int) ([]Record, Summary) {
	records := make([]Record, 0, len(inputs))
	summary := Summary{
		RunID:         runID,
		GeneratedAt:   time.Now().UTC(),
		ByInputFormat: make(map[models.InputFormat]int),
		ByErrorKind:   make(map[models.ErrorKind]int),
	}

	for i, input := range inputs {
		line := i + 1
		if i < len(lines) {
			line = lines[i]
		}

		result := s.Sanitize(input)
		records = append(records, Record{Line: line, Input: input, Result: result})

		summary.Total++

		if result.Valid {
			summary.Valid++
			summary.ByInputFormat[result.Metadata.InputFormat]++
		} else {
			summary.Invalid++
			summary.ByErrorKind[result.Kind]++
		}
	}

	return records, summary
}
