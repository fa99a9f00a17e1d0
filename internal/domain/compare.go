// Package domain holds the comparison engine and the analysis workflow.
package domain

import (
	"sort"

	m "wptdiff.dev/pkg/wptdiff/internal/model"
)

// Comparator diffs two parsed reports (run A against run B). It is
// immutable after construction and safe for read-only use.
type Comparator struct {
	a *m.Report
	b *m.Report
}

// NewComparator builds a Comparator over two reports.
func NewComparator(a, b *m.Report) *Comparator {
	return &Comparator{a: a, b: b}
}

// Diff partitions the union of two outcome mappings: keys only in B are
// new, keys only in A are removed, keys in both with differing outcomes
// are status changes. Unchanged keys appear nowhere. Each slice is sorted
// lexically by key so output is deterministic.
func Diff(a, b map[string]m.Outcome) m.ChangeSet {
	var changes m.ChangeSet

	for key, outcomeB := range b {
		outcomeA, ok := a[key]
		switch {
		case !ok:
			changes.New = append(changes.New, m.Entry{Key: key, Outcome: outcomeB})
		case outcomeA != outcomeB:
			changes.StatusChanges = append(changes.StatusChanges, m.StatusChange{
				Key: key,
				Old: outcomeA,
				New: outcomeB,
			})
		}
	}

	for key, outcomeA := range a {
		if _, ok := b[key]; !ok {
			changes.Removed = append(changes.Removed, m.Entry{Key: key, Outcome: outcomeA})
		}
	}

	sort.Slice(changes.New, func(i, j int) bool { return changes.New[i].Key < changes.New[j].Key })
	sort.Slice(changes.Removed, func(i, j int) bool { return changes.Removed[i].Key < changes.Removed[j].Key })
	sort.Slice(changes.StatusChanges, func(i, j int) bool {
		return changes.StatusChanges[i].Key < changes.StatusChanges[j].Key
	})

	return changes
}

// Changes diffs the two reports at the requested scope.
func (c *Comparator) Changes(scope m.Scope) m.ChangeSet {
	return Diff(c.a.Outcomes(scope), c.b.Outcomes(scope))
}

// CompareCounts applies a count getter to both reports and diffs the result.
func (c *Comparator) CompareCounts(get func(*m.Report) int) m.CountDelta {
	countA, countB := get(c.a), get(c.b)

	return m.CountDelta{A: countA, B: countB, Difference: countB - countA}
}

// CompareStatusSummaries diffs the per-outcome tallies at the requested
// scope across the union of outcomes seen in either run.
func (c *Comparator) CompareStatusSummaries(scope m.Scope) map[m.Outcome]m.CountDelta {
	summaryA := c.a.StatusSummary(scope)
	summaryB := c.b.StatusSummary(scope)

	deltas := make(map[m.Outcome]m.CountDelta, len(summaryA)+len(summaryB))

	for outcome := range summaryA {
		deltas[outcome] = m.CountDelta{
			A:          summaryA.Get(outcome),
			B:          summaryB.Get(outcome),
			Difference: summaryB.Get(outcome) - summaryA.Get(outcome),
		}
	}

	for outcome := range summaryB {
		if _, ok := deltas[outcome]; ok {
			continue
		}

		deltas[outcome] = m.CountDelta{
			A:          summaryA.Get(outcome),
			B:          summaryB.Get(outcome),
			Difference: summaryB.Get(outcome) - summaryA.Get(outcome),
		}
	}

	return deltas
}

// Analyze produces the full comparison: test scope always, subtest scope
// when requested.
func (c *Comparator) Analyze(showSubtests bool) m.Comparison {
	comparison := m.Comparison{Tests: c.analyzeScope(m.ScopeTest)}

	if showSubtests {
		subtests := c.analyzeScope(m.ScopeSubtest)
		comparison.Subtests = &subtests
	}

	return comparison
}

func (c *Comparator) analyzeScope(scope m.Scope) m.ScopeComparison {
	return m.ScopeComparison{
		Scope:         scope,
		Total:         c.CompareCounts(func(r *m.Report) int { return r.Total(scope) }),
		StatusSummary: c.CompareStatusSummaries(scope),
		Changes:       c.Changes(scope),
	}
}
