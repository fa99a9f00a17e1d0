// Package controller provides output frontends for report analysis.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "wptdiff.dev/pkg/wptdiff/internal/model"
)

// UI displays a single report or a comparison. Implementations can use
// different output methods (plain text, pager TUI, etc).
type UI interface {
	DisplayReport(ctx context.Context, report *m.Report, cfg m.ReportingConfig) error
	DisplayComparison(ctx context.Context, comparison m.Comparison, cfg m.ReportingConfig) error
}

// IsTTY reports whether the file is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewUI picks the output frontend: the pager TUI when interactive,
// otherwise plain line output on the command's stdout.
func NewUI(cmd *cobra.Command, interactive bool, pal Palette) UI {
	if interactive {
		return NewTUI(cmd.OutOrStdout(), pal)
	}

	return NewSimpleUI(cmd, pal)
}
