package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	m "wptdiff.dev/pkg/wptdiff/internal/model"
)

// SimpleUI prints rendered output to the cobra command's stdout.
type SimpleUI struct {
	cmd *cobra.Command
	pal Palette
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, pal Palette) *SimpleUI {
	return &SimpleUI{cmd: cmd, pal: pal}
}

// DisplayReport prints the single-report summary.
func (s *SimpleUI) DisplayReport(ctx context.Context, report *m.Report, cfg m.ReportingConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.print(RenderReport(report, cfg, s.pal))
}

// DisplayComparison prints the two-run comparison.
func (s *SimpleUI) DisplayComparison(ctx context.Context, comparison m.Comparison, cfg m.ReportingConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.print(RenderComparison(comparison, cfg, s.pal))
}

func (s *SimpleUI) print(content string) error {
	_, err := fmt.Fprint(s.cmd.OutOrStdout(), content)

	return err
}
