package controller_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"wptdiff.dev/pkg/wptdiff/internal/controller"
	"wptdiff.dev/pkg/wptdiff/internal/domain"
	m "wptdiff.dev/pkg/wptdiff/internal/model"
)

func mustReport(t *testing.T, results []m.TestResult) *m.Report {
	t.Helper()

	report, err := m.NewReport(results)
	require.NoError(t, err)

	return report
}

func plainConfig(level m.DetailLevel) m.ReportingConfig {
	return m.ReportingConfig{
		DetailLevel: level,
		MaxDetails:  10,
		ShowPassing: true,
	}
}

func TestRenderReportSummary(t *testing.T) {
	report := mustReport(t, []m.TestResult{
		{Test: "ok.html", Status: m.StatusPass},
		{Test: "bad.html", Status: m.StatusFail},
	})

	out := controller.RenderReport(report, plainConfig(m.DetailSummary), controller.NewPalette(false))

	require.Contains(t, out, "Tests: 2")
	require.Contains(t, out, "Tests Status Summary:")
	require.Contains(t, out, "  PASS       1")
	require.Contains(t, out, "  FAIL       1")
	require.NotContains(t, out, "Test Details:")
	require.NotContains(t, out, "Subtests:")
}

func TestRenderReportDetails(t *testing.T) {
	report := mustReport(t, []m.TestResult{
		{Test: "ok.html", Status: m.StatusPass},
		{Test: "bad.html", Status: m.StatusFail},
	})

	out := controller.RenderReport(report, plainConfig(m.DetailAll), controller.NewPalette(false))

	require.Contains(t, out, "Test Details:")
	require.Contains(t, out, "  bad.html (FAIL)")
	require.Contains(t, out, "  ok.html (PASS)")
}

func TestRenderReportHidesPassingDetails(t *testing.T) {
	report := mustReport(t, []m.TestResult{
		{Test: "ok.html", Status: m.StatusPass},
		{Test: "bad.html", Status: m.StatusFail},
	})

	cfg := plainConfig(m.DetailAll)
	cfg.ShowPassing = false

	out := controller.RenderReport(report, cfg, controller.NewPalette(false))

	require.Contains(t, out, "  bad.html (FAIL)")
	require.NotContains(t, out, "ok.html (PASS)")
	// The tally rows are summary numbers and are not filtered.
	require.Contains(t, out, "  PASS       1")
}

func TestRenderReportSubtestScope(t *testing.T) {
	report := mustReport(t, []m.TestResult{
		{Test: "t", Status: m.StatusOK, Subtests: []m.SubtestResult{{Name: "s", Status: m.StatusFail}}},
	})

	cfg := plainConfig(m.DetailAll)
	cfg.ShowSubtests = true

	out := controller.RenderReport(report, cfg, controller.NewPalette(false))

	require.Contains(t, out, "Subtests: 1")
	require.Contains(t, out, "Subtests Status Summary:")
	require.Contains(t, out, "Subtest Details:")
	require.Contains(t, out, "  t::s (FAIL)")
}

func TestRenderComparisonNewCrashes(t *testing.T) {
	a := mustReport(t, []m.TestResult{{Test: "t1", Status: m.StatusPass}})
	b := mustReport(t, []m.TestResult{
		{Test: "t1", Status: m.StatusPass},
		{Test: "t2", Status: m.StatusCrash},
		{Test: "t3", Status: m.StatusCrash},
	})

	comparison := domain.NewComparator(a, b).Analyze(false)
	out := controller.RenderComparison(comparison, plainConfig(m.DetailAll), controller.NewPalette(false))

	require.Contains(t, out, "Total: 1 -> 3 (2)")
	require.Contains(t, out, "Detailed Test Summary:")
	require.Contains(t, out, "  New: 2")
	require.Contains(t, out, "    CRASH: 2")
	require.Contains(t, out, "  New Details:")
	require.Contains(t, out, "    Non-passing:")
	require.Contains(t, out, "      t2 (CRASH)")
	require.Contains(t, out, "      t3 (CRASH)")
	require.Contains(t, out, "  Removed: 0")
	require.Contains(t, out, "  Changed status:")
	require.NotContains(t, out, "Regressions:")
	require.NotContains(t, out, "Improvements:")
}

func TestRenderComparisonTransitionBreakdown(t *testing.T) {
	a := mustReport(t, []m.TestResult{
		{Test: "t", Status: m.StatusPass},
		{Test: "u", Status: m.StatusPass},
		{Test: "v", Status: m.StatusFail},
	})
	b := mustReport(t, []m.TestResult{
		{Test: "t", Status: m.StatusFail},
		{Test: "u", Status: m.StatusFail},
		{Test: "v", Status: m.StatusPass},
	})

	comparison := domain.NewComparator(a, b).Analyze(false)
	out := controller.RenderComparison(comparison, plainConfig(m.DetailSummary), controller.NewPalette(false))

	require.Contains(t, out, "    PASS->FAIL: 2")
	require.Contains(t, out, "    FAIL->PASS: 1")
	// Summary level keeps the breakdown but not the per-key lists.
	require.NotContains(t, out, "Regressions:")
}

func TestRenderComparisonChangeLists(t *testing.T) {
	a := mustReport(t, []m.TestResult{
		{Test: "broke", Status: m.StatusPass},
		{Test: "fixed", Status: m.StatusFail},
		{Test: "shift", Status: m.StatusFail},
	})
	b := mustReport(t, []m.TestResult{
		{Test: "broke", Status: m.StatusFail},
		{Test: "fixed", Status: m.StatusPass},
		{Test: "shift", Status: m.StatusCrash},
	})

	comparison := domain.NewComparator(a, b).Analyze(false)
	out := controller.RenderComparison(comparison, plainConfig(m.DetailChanges), controller.NewPalette(false))

	require.Contains(t, out, "  Regressions:")
	require.Contains(t, out, "    broke: FAIL")
	require.Contains(t, out, "  Improvements:")
	require.Contains(t, out, "    fixed: PASS")
	require.Contains(t, out, "  Laterals:")
	require.Contains(t, out, "    shift: CRASH")
	// changes level does not unlock the new/removed detail sections
	require.NotContains(t, out, "New Details:")
}

func TestRenderComparisonDetailLevelGating(t *testing.T) {
	a := mustReport(t, []m.TestResult{{Test: "gone", Status: m.StatusFail}})
	b := mustReport(t, []m.TestResult{{Test: "fresh", Status: m.StatusFail}})

	comparison := domain.NewComparator(a, b).Analyze(false)

	newOnly := controller.RenderComparison(comparison, plainConfig(m.DetailNew), controller.NewPalette(false))
	require.Contains(t, newOnly, "  New Details:")
	require.Contains(t, newOnly, "      fresh (FAIL)")
	require.NotContains(t, newOnly, "Removed Details:")

	removedOnly := controller.RenderComparison(comparison, plainConfig(m.DetailRemoved), controller.NewPalette(false))
	require.Contains(t, removedOnly, "  Removed Details:")
	require.Contains(t, removedOnly, "      gone (FAIL)")
	require.NotContains(t, removedOnly, "New Details:")
}

func TestRenderComparisonTruncation(t *testing.T) {
	a := mustReport(t, nil)
	b := mustReport(t, []m.TestResult{
		{Test: "n1", Status: m.StatusFail},
		{Test: "n2", Status: m.StatusFail},
		{Test: "n3", Status: m.StatusFail},
		{Test: "n4", Status: m.StatusFail},
		{Test: "n5", Status: m.StatusFail},
	})

	comparison := domain.NewComparator(a, b).Analyze(false)

	cfg := plainConfig(m.DetailAll)
	cfg.MaxDetails = 2

	out := controller.RenderComparison(comparison, cfg, controller.NewPalette(false))

	require.Contains(t, out, "      n1 (FAIL)")
	require.Contains(t, out, "      n2 (FAIL)")
	require.NotContains(t, out, "n3 (FAIL)")
	require.Contains(t, out, "      ... and 3 more")
}

// With show_passing=false the passing detail groups and improvements
// landing on a passing state disappear, while counts, regressions and
// laterals stay intact.
func TestRenderComparisonHidePassing(t *testing.T) {
	a := mustReport(t, []m.TestResult{
		{Test: "broke", Status: m.StatusPass},
		{Test: "fixed", Status: m.StatusFail},
		{Test: "odd", Status: "WEIRD"},
		{Test: "shift", Status: m.StatusFail},
	})
	b := mustReport(t, []m.TestResult{
		{Test: "broke", Status: m.StatusFail},
		{Test: "fixed", Status: m.StatusPass},
		{Test: "odd", Status: m.StatusFail},
		{Test: "shift", Status: m.StatusCrash},
		{Test: "fresh", Status: m.StatusPass},
	})

	comparison := domain.NewComparator(a, b).Analyze(false)

	cfg := plainConfig(m.DetailAll)
	cfg.ShowPassing = false

	out := controller.RenderComparison(comparison, cfg, controller.NewPalette(false))

	// The only new entry is passing, so the whole section is dropped.
	require.NotContains(t, out, "New Details:")
	require.Contains(t, out, "  New: 1")
	require.Contains(t, out, "    PASS: 1")

	require.Contains(t, out, "  Regressions:")
	require.Contains(t, out, "    broke: FAIL")
	require.Contains(t, out, "  Laterals:")
	require.Contains(t, out, "    shift: CRASH")

	// Improvements to a passing state are hidden; improvements landing on
	// a non-passing state remain.
	require.NotContains(t, out, "fixed: PASS")
	require.Contains(t, out, "  Improvements:")
	require.Contains(t, out, "    odd: FAIL")

	require.Contains(t, out, "    PASS->FAIL: 1")
	require.Contains(t, out, "    FAIL->PASS: 1")
}

func TestRenderComparisonSubtestSection(t *testing.T) {
	a := mustReport(t, []m.TestResult{
		{Test: "t", Status: m.StatusOK, Subtests: []m.SubtestResult{{Name: "s", Status: m.StatusPass}}},
	})
	b := mustReport(t, []m.TestResult{
		{Test: "t", Status: m.StatusOK, Subtests: []m.SubtestResult{{Name: "s", Status: m.StatusFail}}},
	})

	comparison := domain.NewComparator(a, b).Analyze(true)
	out := controller.RenderComparison(comparison, plainConfig(m.DetailAll), controller.NewPalette(false))

	require.Contains(t, out, "Subtests:")
	require.Contains(t, out, "Detailed Subtest Summary:")
	require.Contains(t, out, "    t::s: FAIL")
	require.Contains(t, out, "    PASS->FAIL: 1")
}
