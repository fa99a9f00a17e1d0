package model

import "fmt"

// DetailLevel selects which change categories get itemized output.
type DetailLevel string

// Available detail levels.
const (
	DetailSummary DetailLevel = "summary"
	DetailNew     DetailLevel = "new"
	DetailRemoved DetailLevel = "removed"
	DetailChanges DetailLevel = "changes"
	DetailAll     DetailLevel = "all"
)

// ParseDetailLevel validates a detail level flag value.
func ParseDetailLevel(value string) (DetailLevel, error) {
	switch DetailLevel(value) {
	case DetailSummary, DetailNew, DetailRemoved, DetailChanges, DetailAll:
		return DetailLevel(value), nil
	default:
		return "", fmt.Errorf("invalid detail level %q (want summary, new, removed, changes or all)", value)
	}
}

// ReportingConfig is the consumed configuration surface of the core.
// Pure configuration, no mutation after construction.
type ReportingConfig struct {
	DetailLevel  DetailLevel
	MaxDetails   int
	ShowSubtests bool
	ShowPassing  bool
}
