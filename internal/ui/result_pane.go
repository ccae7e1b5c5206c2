package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/pressure-trend/internal/models"
)

// renderResultPane renders the trend report inside a bordered pane
func (m Model) renderResultPane() string {
	if m.result == nil {
		return paneStyle.Render(mutedStyle.Render("No result available"))
	}

	var content strings.Builder

	content.WriteString(titleStyle.Render("Pressure Trend"))
	content.WriteString("\n\n")

	if m.readings != (models.Readings{}) {
		current, past := m.unit.InputLabels()
		content.WriteString(labelStyle.Render("Readings: "))
		content.WriteString(mutedStyle.Render(fmt.Sprintf("%g %s now; %g, %g, %g %s (1h, 2h, 3h ago)",
			m.readings.Current, current,
			m.readings.Past1h, m.readings.Past2h, m.readings.Past3h, past)))
		content.WriteString("\n\n")
	}

	for _, line := range reportLines(*m.result) {
		content.WriteString(labelStyle.Render(line.label + ": "))
		content.WriteString(valueStyle.Render(line.value))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(labelStyle.Render("Symbol: "))
	content.WriteString(directionStyle(m.result.Overall).Render(m.result.TendencySymbol))

	width := 72
	if m.width > 0 && m.width-2 < width {
		width = max(m.width-2, 40)
	}

	return paneStyle.Width(width).Render(content.String())
}

// directionStyle colors a trend by its direction
func directionStyle(d models.Direction) lipgloss.Style {
	switch d {
	case models.Rising:
		return risingStyle
	case models.Falling:
		return fallingStyle
	default:
		return steadyStyle
	}
}
