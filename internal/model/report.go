package model

import (
	"errors"
	"fmt"
	"sort"

	pkg "wptdiff.dev/pkg/wptdiff/pkg"
)

// Scope selects the level a report query operates on.
type Scope int

const (
	// ScopeTest addresses top-level tests.
	ScopeTest Scope = iota
	// ScopeSubtest addresses the flattened subtest level.
	ScopeSubtest
)

func (s Scope) String() string {
	if s == ScopeSubtest {
		return "subtest"
	}

	return "test"
}

// SubtestKeySeparator joins a parent test and a subtest name into a flat key.
const SubtestKeySeparator = "::"

// SubtestKey builds the flat key for a subtest scoped to its parent test.
func SubtestKey(test, subtest string) string {
	return test + SubtestKeySeparator + subtest
}

// ErrDuplicateKey reports two results sharing a flat key within one scope.
// Parse-time uniqueness is assumed; duplicates are rejected rather than
// silently overwritten so data issues are not masked.
var ErrDuplicateKey = errors.New("duplicate result key")

// SubtestResult is a single subtest outcome within a test.
type SubtestResult struct {
	Name   string
	Status Outcome
}

// TestResult is a single test outcome with zero or more subtests.
type TestResult struct {
	Test     string
	Status   Outcome
	Subtests []SubtestResult
}

// Report is one parsed WPT run. It is constructed once and read-only
// thereafter.
type Report struct {
	results  []TestResult
	tests    map[string]Outcome
	subtests map[string]Outcome
}

// NewReport builds a Report from parsed results, rejecting duplicate keys
// at either scope.
func NewReport(results []TestResult) (*Report, error) {
	tests := make(map[string]Outcome, len(results))
	subtests := make(map[string]Outcome)

	for _, result := range results {
		if _, ok := tests[result.Test]; ok {
			return nil, fmt.Errorf("%w: test %q", ErrDuplicateKey, result.Test)
		}

		tests[result.Test] = result.Status

		for _, subtest := range result.Subtests {
			key := SubtestKey(result.Test, subtest.Name)
			if _, ok := subtests[key]; ok {
				return nil, fmt.Errorf("%w: subtest %q", ErrDuplicateKey, key)
			}

			subtests[key] = subtest.Status
		}
	}

	return &Report{results: results, tests: tests, subtests: subtests}, nil
}

// TotalTests returns the number of top-level tests.
func (r *Report) TotalTests() int {
	return len(r.results)
}

// TotalSubtests returns the number of subtests across all tests.
func (r *Report) TotalSubtests() int {
	return len(r.subtests)
}

// Total returns the entry count at the requested scope.
func (r *Report) Total(scope Scope) int {
	if scope == ScopeSubtest {
		return r.TotalSubtests()
	}

	return r.TotalTests()
}

// StatusSummary tallies outcomes at the requested scope.
func (r *Report) StatusSummary(scope Scope) pkg.Tally[Outcome] {
	tally := pkg.NewTally[Outcome]()
	for _, outcome := range r.Outcomes(scope) {
		tally.Add(outcome)
	}

	return tally
}

// Outcomes returns the flat key -> outcome mapping at the requested scope.
// The returned map is shared and must not be mutated.
func (r *Report) Outcomes(scope Scope) map[string]Outcome {
	if scope == ScopeSubtest {
		return r.subtests
	}

	return r.tests
}

// DetailedList returns entries at the requested scope sorted by
// (rank, key) ascending: passing outcomes first, lexical key order
// within equal rank. All rendering inherits this ordering.
func (r *Report) DetailedList(scope Scope) []DetailEntry {
	var entries []DetailEntry

	if scope == ScopeSubtest {
		for _, result := range r.results {
			for _, subtest := range result.Subtests {
				entries = append(entries, SubtestDetail{
					Test:    result.Test,
					Subtest: subtest.Name,
					Outcome: subtest.Status,
				})
			}
		}
	} else {
		for _, result := range r.results {
			entries = append(entries, TestDetail{
				Test:    result.Test,
				Outcome: result.Status,
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		left, right := entries[i], entries[j]
		if left.DetailOutcome().Rank() != right.DetailOutcome().Rank() {
			return left.DetailOutcome().Rank() < right.DetailOutcome().Rank()
		}

		return left.DetailKey() < right.DetailKey()
	})

	return entries
}

// DetailEntry is a test- or subtest-level detail line. The two variants
// are explicit so rendering can distinguish levels without probing for
// optional fields.
type DetailEntry interface {
	DetailKey() string
	DetailOutcome() Outcome
}

// TestDetail is a top-level test entry.
type TestDetail struct {
	Test    string
	Outcome Outcome
}

// DetailKey implements DetailEntry.
func (d TestDetail) DetailKey() string {
	return d.Test
}

// DetailOutcome implements DetailEntry.
func (d TestDetail) DetailOutcome() Outcome {
	return d.Outcome
}

// SubtestDetail is a subtest entry scoped to its parent test.
type SubtestDetail struct {
	Test    string
	Subtest string
	Outcome Outcome
}

// DetailKey implements DetailEntry.
func (d SubtestDetail) DetailKey() string {
	return SubtestKey(d.Test, d.Subtest)
}

// DetailOutcome implements DetailEntry.
func (d SubtestDetail) DetailOutcome() Outcome {
	return d.Outcome
}
