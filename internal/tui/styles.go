package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexbl00m/vo2calc/internal/ui"
)

// Styles bundles all lipgloss styles used by the form.
// Built from the active ui theme via newStyles().
type Styles struct {
	Panel        lipgloss.Style
	BoxTitle     lipgloss.Style
	Header       lipgloss.Style
	Title        lipgloss.Style
	Version      lipgloss.Style
	Muted        lipgloss.Style
	Primary      lipgloss.Style
	Success      lipgloss.Style
	Error        lipgloss.Style
	Info         lipgloss.Style
	Tab          lipgloss.Style
	TabActive    lipgloss.Style
	Label        lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	InputInvalid lipgloss.Style
	TableHeader  lipgloss.Style
	TableRow     lipgloss.Style
	TableRowHit  lipgloss.Style
	FooterKey    lipgloss.Style
	FooterDesc   lipgloss.Style
}

// newStyles builds the style set from the current ui theme.
// Called from Run() after InitTheme has been invoked.
func newStyles() Styles {
	t := ui.GetCurrentTUITheme()

	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		BoxTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Dim),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),
		Version: lipgloss.NewStyle().
			Foreground(t.Dim),
		Muted: lipgloss.NewStyle().
			Foreground(t.Dim),
		Primary: lipgloss.NewStyle().
			Foreground(t.Accent),
		Success: lipgloss.NewStyle().
			Foreground(t.Success),
		Error: lipgloss.NewStyle().
			Foreground(t.Error),
		Info: lipgloss.NewStyle().
			Foreground(t.Info),
		Tab: lipgloss.NewStyle().
			Foreground(t.Dim).
			Padding(0, 2),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent).
			Underline(true).
			Padding(0, 2),
		Label: lipgloss.NewStyle().
			Foreground(t.Text).
			PaddingLeft(2),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.Dim).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.Accent).
			Padding(0, 1),
		InputInvalid: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.Error).
			Padding(0, 1),
		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(t.Text),
		TableRow: lipgloss.NewStyle().
			Foreground(t.Text),
		TableRowHit: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),
		FooterKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),
		FooterDesc: lipgloss.NewStyle().
			Foreground(t.Dim),
	}
}
