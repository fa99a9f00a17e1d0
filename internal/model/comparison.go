package model

// CountDelta is a headline count from each run plus the B-minus-A diff.
type CountDelta struct {
	A          int
	B          int
	Difference int
}

// ScopeComparison carries the full comparison result for one scope.
type ScopeComparison struct {
	Scope         Scope
	Total         CountDelta
	StatusSummary map[Outcome]CountDelta
	Changes       ChangeSet
}

// Comparison is the analysis of two reports: always tests, optionally the
// flattened subtest level.
type Comparison struct {
	Tests    ScopeComparison
	Subtests *ScopeComparison
}
