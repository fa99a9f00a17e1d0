package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"wptdiff.dev/pkg/wptdiff/internal/adapter"
	"wptdiff.dev/pkg/wptdiff/internal/controller"
	m "wptdiff.dev/pkg/wptdiff/internal/model"
)

// AnalyzeArgs contains the arguments for single-report mode.
type AnalyzeArgs struct {
	Input  m.Path
	Config m.ReportingConfig
}

// CompareArgs contains the arguments for comparison mode.
type CompareArgs struct {
	InputA m.Path
	InputB m.Path
	Config m.ReportingConfig
}

// Workflow drives the two analysis modes end to end: load, compare,
// display.
type Workflow interface {
	Analyze(ctx context.Context, args AnalyzeArgs) error
	Compare(ctx context.Context, args CompareArgs) error
}

type workflow struct {
	loader adapter.ReportLoader
	ui     controller.UI
}

// NewWorkflow creates a Workflow instance with the provided dependencies.
func NewWorkflow(loader adapter.ReportLoader, ui controller.UI) Workflow {
	return &workflow{loader: loader, ui: ui}
}

// Analyze loads a single report and displays its summary.
func (w *workflow) Analyze(ctx context.Context, args AnalyzeArgs) error {
	report, err := w.loader.Load(args.Input)
	if err != nil {
		return err
	}

	slog.Debug("loaded report",
		"path", args.Input,
		"tests", report.TotalTests(),
		"subtests", report.TotalSubtests(),
	)

	return w.ui.DisplayReport(ctx, report, args.Config)
}

// Compare loads both reports and displays their structured diff. A failure
// on either input aborts the whole comparison.
func (w *workflow) Compare(ctx context.Context, args CompareArgs) error {
	var reportA, reportB *m.Report

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		reportA, err = w.loader.Load(args.InputA)

		return err
	})

	group.Go(func() error {
		var err error
		reportB, err = w.loader.Load(args.InputB)

		return err
	})

	if err := group.Wait(); err != nil {
		return fmt.Errorf("compare aborted: %w", err)
	}

	slog.Debug("loaded reports",
		"path_a", args.InputA,
		"path_b", args.InputB,
		"tests_a", reportA.TotalTests(),
		"tests_b", reportB.TotalTests(),
	)

	comparison := NewComparator(reportA, reportB).Analyze(args.Config.ShowSubtests)

	return w.ui.DisplayComparison(ctx, comparison, args.Config)
}
