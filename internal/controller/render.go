package controller

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	m "wptdiff.dev/pkg/wptdiff/internal/model"
	pkg "wptdiff.dev/pkg/wptdiff/pkg"
)

// Section headers and detail markers are stable literal strings;
// downstream tooling greps the output.

// RenderReport formats a single report: per-scope totals and status
// tallies always, detail lists when the detail level asks for them.
func RenderReport(report *m.Report, cfg m.ReportingConfig, pal Palette) string {
	r := &renderer{cfg: cfg, pal: pal}

	r.reportScope(report, m.ScopeTest)
	if cfg.ShowSubtests {
		r.reportScope(report, m.ScopeSubtest)
	}

	return r.String()
}

// RenderComparison formats a two-run analysis: headline totals, the
// status-summary diff table and the detail sections, tests first,
// subtests second.
func RenderComparison(comparison m.Comparison, cfg m.ReportingConfig, pal Palette) string {
	r := &renderer{cfg: cfg, pal: pal}

	r.comparisonScope(comparison.Tests)
	if comparison.Subtests != nil {
		r.comparisonScope(*comparison.Subtests)
	}

	return r.String()
}

type renderer struct {
	pal   Palette
	cfg   m.ReportingConfig
	lines []string
}

func (r *renderer) addf(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *renderer) blank() {
	r.lines = append(r.lines, "")
}

func (r *renderer) String() string {
	return strings.Join(r.lines, "\n") + "\n"
}

// gated reports whether the given level's details should be emitted.
func (r *renderer) gated(level m.DetailLevel) bool {
	return r.cfg.DetailLevel == m.DetailAll || r.cfg.DetailLevel == level
}

func scopeTitles(scope m.Scope) (summary, details, analysis string) {
	if scope == m.ScopeSubtest {
		return "Subtests", "Subtest Details", "Detailed Subtest Summary"
	}

	return "Tests", "Test Details", "Detailed Test Summary"
}

func (r *renderer) reportScope(report *m.Report, scope m.Scope) {
	title, detailsTitle, _ := scopeTitles(scope)

	r.blank()
	r.addf("%s: %d", r.pal.Title(title), report.Total(scope))
	r.blank()
	r.addf("%s", r.pal.Title(title+" Status Summary:"))

	summary := report.StatusSummary(scope)
	for _, outcome := range summary.Keys(m.RankLess) {
		count := strconv.Itoa(summary.Get(outcome))
		r.addf("  %-10s %s", string(outcome), r.pal.Status(outcome, count))
	}

	if !r.gated(m.DetailChanges) {
		return
	}

	entries := report.DetailedList(scope)
	if !r.cfg.ShowPassing {
		entries = dropPassingDetails(entries)
	}

	r.blank()
	r.addf("%s:", r.pal.Title(detailsTitle))

	kept, more := pkg.Truncate(entries, r.cfg.MaxDetails)
	for _, entry := range kept {
		line := fmt.Sprintf("%s (%s)", entry.DetailKey(), entry.DetailOutcome())
		r.addf("  %s", r.pal.Status(entry.DetailOutcome(), line))
	}

	if more > 0 {
		r.addf("  ... and %d more", more)
	}
}

func dropPassingDetails(entries []m.DetailEntry) []m.DetailEntry {
	var kept []m.DetailEntry

	for _, entry := range entries {
		if !entry.DetailOutcome().Passing() {
			kept = append(kept, entry)
		}
	}

	return kept
}

func (r *renderer) comparisonScope(scope m.ScopeComparison) {
	title, _, analysisTitle := scopeTitles(scope.Scope)

	r.blank()
	r.addf("%s:", r.pal.Title(title))
	r.addf("Total: %d -> %d (%s)", scope.Total.A, scope.Total.B, r.pal.Diff(scope.Total.Difference, true))
	r.blank()
	r.addf("%s", r.pal.Title(title+" Status Summary:"))
	r.statusTable(scope.StatusSummary)
	r.analysis(scope.Changes, analysisTitle)
}

// statusTable renders the per-outcome A/B/diff table in rank-then-label
// order. Diff polarity follows the outcome: more passing is good, more
// failing is not.
func (r *renderer) statusTable(summary map[m.Outcome]m.CountDelta) {
	outcomes := make([]m.Outcome, 0, len(summary))
	for outcome := range summary {
		outcomes = append(outcomes, outcome)
	}

	sort.Slice(outcomes, func(i, j int) bool {
		return m.RankLess(outcomes[i], outcomes[j])
	})

	var buffer bytes.Buffer

	table := tablewriter.NewWriter(&buffer)
	table.SetHeader([]string{"Status", "A", "B", "Diff"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, outcome := range outcomes {
		delta := summary[outcome]
		table.Append([]string{
			string(outcome),
			strconv.Itoa(delta.A),
			strconv.Itoa(delta.B),
			r.pal.Diff(delta.Difference, outcome.Passing()),
		})
	}

	table.Render()

	for _, line := range strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n") {
		r.lines = append(r.lines, line)
	}
}

func (r *renderer) analysis(changes m.ChangeSet, title string) {
	r.blank()
	r.addf("%s:", r.pal.Title(title))

	r.categoryHeadline("New", changes.New)
	if r.gated(m.DetailNew) {
		r.entryDetails("New Details:", changes.New)
	}

	r.categoryHeadline("Removed", changes.Removed)
	if r.gated(m.DetailRemoved) {
		r.entryDetails("Removed Details:", changes.Removed)
	}

	r.transitionBreakdown(changes.StatusChanges)

	if r.gated(m.DetailChanges) {
		r.changeDetails("Regressions:", changes.ByCategory(m.Regression), m.Regression)
		r.changeDetails("Improvements:", r.visibleImprovements(changes), m.Improvement)
		r.changeDetails("Laterals:", changes.ByCategory(m.Lateral), m.Lateral)
	}
}

// categoryHeadline prints the new/removed count and its per-status
// breakdown. These are summary numbers and are never filtered.
func (r *renderer) categoryHeadline(name string, entries []m.Entry) {
	count := strconv.Itoa(len(entries))
	if len(entries) > 0 {
		category := m.Regression
		if name == "New" {
			category = m.Improvement
		}

		count = r.pal.Category(category, count)
	}

	r.addf("  %s: %s", name, count)

	tally := pkg.NewTally[m.Outcome]()
	for _, entry := range entries {
		tally.Add(entry.Outcome)
	}

	for _, outcome := range tally.Keys(m.RankLess) {
		r.addf("    %s: %s", string(outcome), r.pal.Status(outcome, strconv.Itoa(tally.Get(outcome))))
	}
}

// entryDetails prints a new/removed detail section grouped into passing
// and non-passing entries, each truncated independently. The passing
// group is what show_passing=false suppresses; the section disappears
// entirely when nothing is left.
func (r *renderer) entryDetails(header string, entries []m.Entry) {
	entries = m.FilterPassing(entries, r.cfg.ShowPassing)
	passing, nonPassing := m.SplitPassing(entries)

	if len(passing) == 0 && len(nonPassing) == 0 {
		return
	}

	r.blank()
	r.addf("  %s", header)
	r.entryGroup("Passing:", passing)
	r.entryGroup("Non-passing:", nonPassing)
}

func (r *renderer) entryGroup(name string, entries []m.Entry) {
	if len(entries) == 0 {
		return
	}

	r.addf("    %s", name)

	kept, more := pkg.Truncate(entries, r.cfg.MaxDetails)
	for _, entry := range kept {
		line := fmt.Sprintf("%s (%s)", entry.Key, entry.Outcome)
		r.addf("      %s", r.pal.Status(entry.Outcome, line))
	}

	if more > 0 {
		r.addf("      ... and %d more", more)
	}
}

// transitionBreakdown prints every OLD->NEW transition with its count,
// ordered by (rank(old), rank(new), label). Always emitted; NoChange
// pairs never reach a ChangeSet.
func (r *renderer) transitionBreakdown(statusChanges []m.StatusChange) {
	r.addf("  Changed status:")

	type transition struct {
		old m.Outcome
		new m.Outcome
	}

	tally := pkg.NewTally[transition]()
	for _, change := range statusChanges {
		tally.Add(transition{old: change.Old, new: change.New})
	}

	ordered := tally.Keys(func(a, b transition) bool {
		if a.old.Rank() != b.old.Rank() {
			return a.old.Rank() < b.old.Rank()
		}

		if a.new.Rank() != b.new.Rank() {
			return a.new.Rank() < b.new.Rank()
		}

		if a.old != b.old {
			return a.old < b.old
		}

		return a.new < b.new
	})

	for _, tr := range ordered {
		category := m.Classify(tr.old, tr.new)
		count := r.pal.Category(category, strconv.Itoa(tally.Get(tr)))
		r.addf("    %s->%s: %s", string(tr.old), string(tr.new), count)
	}
}

// visibleImprovements applies the passing filter to improvement details:
// with show_passing=false, improvements landing on a passing state are
// hidden. Regressions and laterals are never filtered.
func (r *renderer) visibleImprovements(changes m.ChangeSet) []m.StatusChange {
	improvements := changes.ByCategory(m.Improvement)
	if r.cfg.ShowPassing {
		return improvements
	}

	var kept []m.StatusChange

	for _, change := range improvements {
		if !change.New.Passing() {
			kept = append(kept, change)
		}
	}

	return kept
}

func (r *renderer) changeDetails(header string, changes []m.StatusChange, category m.ChangeCategory) {
	if len(changes) == 0 {
		return
	}

	r.blank()
	r.addf("  %s", header)

	kept, more := pkg.Truncate(changes, r.cfg.MaxDetails)
	for _, change := range kept {
		r.addf("    %s", r.pal.Category(category, fmt.Sprintf("%s: %s", change.Key, change.New)))
	}

	if more > 0 {
		r.addf("    ... and %d more", more)
	}
}
