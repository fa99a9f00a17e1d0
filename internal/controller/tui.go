package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	m "wptdiff.dev/pkg/wptdiff/internal/model"
)

var pagerFooterStyle = lipgloss.NewStyle().Faint(true)

// TUI shows rendered output in a scrollable pager when it does not fit
// the terminal; short output is printed directly.
type TUI struct {
	output io.Writer
	pal    Palette
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer, pal Palette) *TUI {
	return &TUI{output: output, pal: pal}
}

// DisplayReport shows the single-report summary.
func (t *TUI) DisplayReport(ctx context.Context, report *m.Report, cfg m.ReportingConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.page(RenderReport(report, cfg, t.pal))
}

// DisplayComparison shows the two-run comparison.
func (t *TUI) DisplayComparison(ctx context.Context, comparison m.Comparison, cfg m.ReportingConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.page(RenderComparison(comparison, cfg, t.pal))
}

func (t *TUI) page(content string) error {
	file, ok := t.output.(*os.File)
	if !ok {
		_, err := fmt.Fprint(t.output, content)
		return err
	}

	_, height, err := term.GetSize(int(file.Fd()))
	if err != nil || strings.Count(content, "\n")+1 <= height {
		_, err := fmt.Fprint(t.output, content)
		return err
	}

	program := tea.NewProgram(
		newPagerModel(content),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// pagerModel is a viewport over the rendered text.
type pagerModel struct {
	content  string
	viewport viewport.Model
	ready    bool
}

func newPagerModel(content string) pagerModel {
	return pagerModel{content: content}
}

func (p pagerModel) Init() tea.Cmd {
	return nil
}

func (p pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		}

	case tea.WindowSizeMsg:
		footerHeight := 1
		if !p.ready {
			p.viewport = viewport.New(msg.Width, msg.Height-footerHeight)
			p.viewport.SetContent(p.content)
			p.ready = true
		} else {
			p.viewport.Width = msg.Width
			p.viewport.Height = msg.Height - footerHeight
		}
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)

	return p, cmd
}

func (p pagerModel) View() string {
	if !p.ready {
		return "loading..."
	}

	footer := pagerFooterStyle.Render(
		fmt.Sprintf("%3.0f%% · j/k scroll · q quit", p.viewport.ScrollPercent()*100),
	)

	return p.viewport.View() + "\n" + footer
}
