package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// helpBindings returns the key bindings shown in the footer, in display
// order. Help text comes from the bindings themselves so the footer cannot
// drift from the keymap.
func (m Model) helpBindings() []key.Binding {
	return []key.Binding{
		m.keymap.NextTab,
		m.keymap.NextField,
		m.keymap.Adjust,
		m.keymap.Calculate,
		m.keymap.ToggleSex,
		m.keymap.Export,
		m.keymap.Quit,
	}
}

// renderFooter draws the key help line plus a system resource readout.
func (m Model) renderFooter() string {
	bindings := m.helpBindings()
	parts := make([]string, 0, len(bindings)+1)
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, m.styles.FooterKey.Render(h.Key)+" "+m.styles.FooterDesc.Render(h.Desc))
	}

	stats := fmt.Sprintf("CPU %.0f%%  MEM %.0f%%", m.sysStats.CPUPercent, m.sysStats.MemPercent)
	parts = append(parts, m.styles.Muted.Render(stats))

	return m.styles.FooterDesc.Render(" ") + strings.Join(parts, m.styles.FooterDesc.Render("  •  "))
}
