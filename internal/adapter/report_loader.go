// Package adapter contains infrastructure adapters for the wptdiff CLI.
package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	m "wptdiff.dev/pkg/wptdiff/internal/model"
)

// ErrInvalidReport marks malformed report input: invalid JSON, a missing
// "results" collection, or entries lacking required fields. Input errors
// are a distinct kind from comparison logic errors and abort the run.
var ErrInvalidReport = errors.New("invalid WPT report")

// ReportLoader loads a parsed report from a source. It hides file access
// and deserialization so the domain layer only ever sees valid Reports.
type ReportLoader interface {
	// Load reads and parses the report at path.
	Load(path m.Path) (*m.Report, error)
}

// LocalReportLoader reads WPT report JSON files from the local filesystem.
type LocalReportLoader struct{}

// NewLocalReportLoader constructs a LocalReportLoader ready to be wired
// into the workflow.
func NewLocalReportLoader() *LocalReportLoader {
	return &LocalReportLoader{}
}

// Load reads the file at path and parses it as a WPT report document.
func (l *LocalReportLoader) Load(path m.Path) (*m.Report, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}

	report, err := ParseReport(data)
	if err != nil {
		return nil, fmt.Errorf("parse report %s: %w", path, err)
	}

	return report, nil
}

// Wire types use pointer fields so missing keys are distinguishable from
// empty values and raise instead of being silently coerced.
type reportDocument struct {
	Results *[]resultEntry `json:"results"`
}

type resultEntry struct {
	Test     *string        `json:"test"`
	Status   *string        `json:"status"`
	Subtests []subtestEntry `json:"subtests"`
}

type subtestEntry struct {
	Name   *string `json:"name"`
	Status *string `json:"status"`
}

// ParseReport decodes a WPT report document and validates its structure.
func ParseReport(data []byte) (*m.Report, error) {
	var document reportDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReport, err)
	}

	if document.Results == nil {
		return nil, fmt.Errorf("%w: missing \"results\"", ErrInvalidReport)
	}

	results := make([]m.TestResult, 0, len(*document.Results))

	for i, entry := range *document.Results {
		if entry.Test == nil {
			return nil, fmt.Errorf("%w: results[%d] missing \"test\"", ErrInvalidReport, i)
		}

		if entry.Status == nil {
			return nil, fmt.Errorf("%w: results[%d] (%s) missing \"status\"", ErrInvalidReport, i, *entry.Test)
		}

		result := m.TestResult{
			Test:   *entry.Test,
			Status: m.Outcome(*entry.Status),
		}

		for j, subtest := range entry.Subtests {
			if subtest.Name == nil {
				return nil, fmt.Errorf("%w: results[%d].subtests[%d] missing \"name\"", ErrInvalidReport, i, j)
			}

			if subtest.Status == nil {
				return nil, fmt.Errorf("%w: results[%d].subtests[%d] (%s) missing \"status\"", ErrInvalidReport, i, j, *subtest.Name)
			}

			result.Subtests = append(result.Subtests, m.SubtestResult{
				Name:   *subtest.Name,
				Status: m.Outcome(*subtest.Status),
			})
		}

		results = append(results, result)
	}

	report, err := m.NewReport(results)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidReport, err)
	}

	return report, nil
}
