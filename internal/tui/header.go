package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexbl00m/vo2calc/internal/format"
)

// renderHeader draws the title bar with the version and session elapsed time.
func (m Model) renderHeader() string {
	title := m.styles.Title.Render("VO2max Calculator")
	version := m.styles.Version.Render("v" + m.version)
	elapsed := m.styles.Muted.Render("  up " + format.ExecutionDuration(time.Since(m.startTime).Round(time.Second)))

	left := lipgloss.JoinHorizontal(lipgloss.Center, title, " ", version, elapsed)
	return m.styles.Header.Render(left)
}
