package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/seqcalc/internal/ui"
)

// Style variables for the TUI form.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle        lipgloss.Style
	titleStyle        lipgloss.Style
	versionStyle      lipgloss.Style
	labelStyle        lipgloss.Style
	labelFocusedStyle lipgloss.Style
	kindActiveStyle   lipgloss.Style
	kindInactiveStyle lipgloss.Style
	resultLabelStyle  lipgloss.Style
	resultValueStyle  lipgloss.Style
	formulaStyle      lipgloss.Style
	errorStyle        lipgloss.Style
	footerKeyStyle    lipgloss.Style
	footerDescStyle   lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 2)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	labelStyle = lipgloss.NewStyle().
		Foreground(t.Dim).
		Width(14)

	labelFocusedStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true).
		Width(14)

	kindActiveStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	kindInactiveStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	resultLabelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	resultValueStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	formulaStyle = lipgloss.NewStyle().
		Foreground(t.Info)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}
