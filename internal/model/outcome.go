// Package model defines the data structures for WPT report analysis.
package model

// Outcome is a test or subtest result label as reported by the WPT runner.
type Outcome string

// Known outcome labels.
const (
	StatusPass    Outcome = "PASS"
	StatusOK      Outcome = "OK"
	StatusFail    Outcome = "FAIL"
	StatusTimeout Outcome = "TIMEOUT"
	StatusError   Outcome = "ERROR"
	StatusCrash   Outcome = "CRASH"
)

// UnknownRank is the severity assigned to labels outside the known set,
// worse than every known outcome so novel statuses are never mistaken
// for passing ones.
const UnknownRank = 3

var statusRank = map[Outcome]int{
	StatusPass:    0,
	StatusOK:      1,
	StatusFail:    2,
	StatusTimeout: 2,
	StatusError:   2,
	StatusCrash:   2,
}

// Rank returns the ordinal severity of the outcome; higher is worse.
// It is total: unrecognized labels rank UnknownRank rather than erroring.
func (o Outcome) Rank() int {
	if rank, ok := statusRank[o]; ok {
		return rank
	}

	return UnknownRank
}

// Passing reports whether the outcome is a passing state (PASS or OK).
func (o Outcome) Passing() bool {
	return o == StatusPass || o == StatusOK
}

// RankLess orders outcomes by (rank, label) ascending, so passing
// outcomes sort first and equal ranks break ties lexically.
func RankLess(a, b Outcome) bool {
	if a.Rank() != b.Rank() {
		return a.Rank() < b.Rank()
	}

	return a < b
}
