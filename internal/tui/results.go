package tui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexbl00m/vo2calc/internal/format"
	"github.com/alexbl00m/vo2calc/internal/vo2max"
)

// renderResult draws the result panel: the four derived metrics, the
// classification table with the matching band highlighted, and the export
// status line.
func (m Model) renderResult() string {
	if m.resultErr != nil {
		return m.styles.Panel.Render(m.styles.Error.Render("Error: " + m.resultErr.Error()))
	}
	if m.result == nil {
		return m.styles.Panel.Render(m.styles.Muted.Render("Press Enter to calculate."))
	}

	res := *m.result
	rows := []string{
		m.styles.BoxTitle.Render("Results"),
		metricRow(m.styles, "Power at VO2max", format.Power(res.PowerAtVO2max)),
		metricRow(m.styles, "Power-to-Weight", format.PowerToWeight(res.PowerToWeight)),
		metricRow(m.styles, "VO2max (absolute)", format.VO2Absolute(res.VO2maxAbsolute)),
		metricRow(m.styles, "VO2max (relative)", format.VO2Relative(res.VO2maxRelative)),
		"",
	}
	rows = append(rows, m.renderClassification(res.VO2maxRelative)...)

	if m.exportErr != nil {
		rows = append(rows, "", m.styles.Error.Render("Export failed: "+m.exportErr.Error()))
	} else if m.exportPath != "" {
		rows = append(rows, "", m.styles.Success.Render("Exported to "+m.exportPath))
	}

	return m.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// metricRow formats one label/value pair of the result panel.
func metricRow(st Styles, label, value string) string {
	return st.Label.Width(22).Render(label+":") + st.Primary.Render(value)
}

// renderClassification draws the sex-specific band table. The row matching
// the relative VO2max is highlighted.
func (m Model) renderClassification(relative float64) []string {
	category := vo2max.Classify(relative, m.sex)

	lines := []string{
		m.styles.TableHeader.Render(fmt.Sprintf("Classification (%s): %s", m.sex, category)),
	}
	for _, band := range vo2max.Bands(m.sex) {
		rng := format.BandRange(band.Lo, band.Hi, math.IsInf(band.Lo, -1), math.IsInf(band.Hi, 1))
		row := fmt.Sprintf("%-12s %s ml/min/kg", band.Category, rng)
		if band.Category == category {
			lines = append(lines, m.styles.TableRowHit.Render("▶ "+row))
		} else {
			lines = append(lines, m.styles.TableRow.Render("  "+row))
		}
	}
	return lines
}
