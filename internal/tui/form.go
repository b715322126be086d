package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexbl00m/vo2calc/internal/vo2max"
)

// joinFieldRow lays out the label, input box and range hint of one field
// on a single line, centered on the input box.
func joinFieldRow(parts ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// renderTabs draws the protocol tab bar with the active tab highlighted.
func (m Model) renderTabs() string {
	var b strings.Builder
	for i, tab := range m.tabs {
		style := m.styles.Tab
		if i == m.activeTab {
			style = m.styles.TabActive
		}
		b.WriteString(style.Render(tab.protocol.Label()))
	}
	return b.String()
}

// renderForm draws the input fields of the active tab plus the sex toggle.
func (m Model) renderForm() string {
	tab := m.tabs[m.activeTab]

	rows := make([]string, 0, len(tab.fields)+2)
	rows = append(rows, m.styles.Muted.Render(tab.protocol.Description()))
	for i, f := range tab.fields {
		rows = append(rows, f.render(m.styles, i == m.focusField))
	}
	rows = append(rows, m.renderSexToggle())

	form := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return m.styles.Panel.Render(form)
}

// renderSexToggle draws the sex selector used by the classification table.
func (m Model) renderSexToggle() string {
	male := m.styles.Muted.Render("Male")
	female := m.styles.Muted.Render("Female")
	if m.sex == vo2max.Male {
		male = m.styles.Primary.Bold(true).Render("Male")
	} else {
		female = m.styles.Primary.Bold(true).Render("Female")
	}
	label := m.styles.Label.Render("Sex (s):")
	return joinFieldRow(label, "  ", male, " / ", female)
}
