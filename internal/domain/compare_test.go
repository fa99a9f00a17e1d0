package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
	m "wptdiff.dev/pkg/wptdiff/internal/model"
)

func mustReport(t *testing.T, results []m.TestResult) *m.Report {
	t.Helper()

	report, err := m.NewReport(results)
	require.NoError(t, err)

	return report
}

// Every key of the union lands in exactly one bucket, or in none when
// its outcome is unchanged.
func TestDiffPartitionsUnion(t *testing.T) {
	a := map[string]m.Outcome{
		"stable": m.StatusPass,
		"gone":   m.StatusFail,
		"flips":  m.StatusPass,
	}
	b := map[string]m.Outcome{
		"stable": m.StatusPass,
		"flips":  m.StatusFail,
		"fresh":  m.StatusCrash,
	}

	changes := Diff(a, b)

	seen := map[string]int{}
	for _, entry := range changes.New {
		seen[entry.Key]++
	}
	for _, entry := range changes.Removed {
		seen[entry.Key]++
	}
	for _, change := range changes.StatusChanges {
		seen[change.Key]++
	}

	union := map[string]bool{}
	for key := range a {
		union[key] = true
	}
	for key := range b {
		union[key] = true
	}

	for key := range union {
		unchanged := a[key] == b[key]
		if unchanged {
			require.Zero(t, seen[key], "unchanged key %q must be omitted", key)
		} else {
			require.Equal(t, 1, seen[key], "key %q must appear exactly once", key)
		}
	}
}

func TestDiffAgainstSelfIsEmpty(t *testing.T) {
	outcomes := map[string]m.Outcome{
		"a": m.StatusPass,
		"b": m.StatusFail,
		"c": m.StatusCrash,
	}

	changes := Diff(outcomes, outcomes)

	require.Empty(t, changes.New)
	require.Empty(t, changes.Removed)
	require.Empty(t, changes.StatusChanges)
}

func TestDiffNewCrashes(t *testing.T) {
	a := map[string]m.Outcome{"t1": m.StatusPass}
	b := map[string]m.Outcome{"t1": m.StatusPass, "t2": m.StatusCrash, "t3": m.StatusCrash}

	changes := Diff(a, b)

	require.Equal(t, []m.Entry{
		{Key: "t2", Outcome: m.StatusCrash},
		{Key: "t3", Outcome: m.StatusCrash},
	}, changes.New)
	require.Empty(t, changes.Removed)
	require.Empty(t, changes.StatusChanges)
}

func TestDiffCarriesOldAndNewOutcomes(t *testing.T) {
	a := map[string]m.Outcome{"t": m.StatusPass, "r": m.StatusFail}
	b := map[string]m.Outcome{"t": m.StatusFail}

	changes := Diff(a, b)

	require.Equal(t, []m.Entry{{Key: "r", Outcome: m.StatusFail}}, changes.Removed)
	require.Equal(t, []m.StatusChange{{Key: "t", Old: m.StatusPass, New: m.StatusFail}}, changes.StatusChanges)
}

func TestDiffSortedByKey(t *testing.T) {
	a := map[string]m.Outcome{}
	b := map[string]m.Outcome{"c": m.StatusFail, "a": m.StatusCrash, "b": m.StatusPass}

	changes := Diff(a, b)

	require.Equal(t, "a", changes.New[0].Key)
	require.Equal(t, "b", changes.New[1].Key)
	require.Equal(t, "c", changes.New[2].Key)
}

func TestCompareCounts(t *testing.T) {
	comparator := NewComparator(
		mustReport(t, []m.TestResult{{Test: "a", Status: m.StatusPass}}),
		mustReport(t, []m.TestResult{
			{Test: "a", Status: m.StatusPass},
			{Test: "b", Status: m.StatusFail},
			{Test: "c", Status: m.StatusFail},
		}),
	)

	delta := comparator.CompareCounts(func(r *m.Report) int { return r.TotalTests() })

	require.Equal(t, m.CountDelta{A: 1, B: 3, Difference: 2}, delta)
}

func TestCompareStatusSummariesCoversUnion(t *testing.T) {
	comparator := NewComparator(
		mustReport(t, []m.TestResult{
			{Test: "a", Status: m.StatusPass},
			{Test: "b", Status: m.StatusFail},
		}),
		mustReport(t, []m.TestResult{
			{Test: "a", Status: m.StatusPass},
			{Test: "b", Status: m.StatusCrash},
		}),
	)

	deltas := comparator.CompareStatusSummaries(m.ScopeTest)

	require.Equal(t, m.CountDelta{A: 1, B: 1, Difference: 0}, deltas[m.StatusPass])
	require.Equal(t, m.CountDelta{A: 1, B: 0, Difference: -1}, deltas[m.StatusFail])
	require.Equal(t, m.CountDelta{A: 0, B: 1, Difference: 1}, deltas[m.StatusCrash])
}

func TestAnalyzeSubtestScopeToggle(t *testing.T) {
	a := mustReport(t, []m.TestResult{
		{Test: "t", Status: m.StatusOK, Subtests: []m.SubtestResult{{Name: "s", Status: m.StatusPass}}},
	})
	b := mustReport(t, []m.TestResult{
		{Test: "t", Status: m.StatusOK, Subtests: []m.SubtestResult{{Name: "s", Status: m.StatusFail}}},
	})

	comparator := NewComparator(a, b)

	withoutSubtests := comparator.Analyze(false)
	require.Nil(t, withoutSubtests.Subtests)
	require.Empty(t, withoutSubtests.Tests.Changes.StatusChanges)

	withSubtests := comparator.Analyze(true)
	require.NotNil(t, withSubtests.Subtests)
	require.Equal(t, m.ScopeSubtest, withSubtests.Subtests.Scope)
	require.Equal(t, []m.StatusChange{
		{Key: "t::s", Old: m.StatusPass, New: m.StatusFail},
	}, withSubtests.Subtests.Changes.StatusChanges)
}
