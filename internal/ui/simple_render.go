package ui

import (
	"fmt"
	"strings"

	"github.com/ngmaloney/pressure-trend/internal/models"
)

// reportLine is one label/value row of the trend report
type reportLine struct {
	label string
	value string
}

// reportLines builds the report rows shared by the plain and styled renderers
func reportLines(r models.TrendResult) []reportLine {
	currentUnit, changeUnit := r.Unit.DisplayLabels()

	return []reportLine{
		{"Current Pressure", fmt.Sprintf("%s %s (%.1f mb)", formatPressure(r.CurrentDisplay, currentUnit), currentUnit, r.CurrentMb)},
		{"Station Model Pressure", r.StationModelCode()},
		{"Pressure Change (3 hours)", fmt.Sprintf("%s %s (%+.1f mb)", formatChange(r.ChangeDisplay, changeUnit), changeUnit, r.ChangeMb)},
		{"Pressure Trend", fmt.Sprintf("%d tenths of mb (%s)", r.TrendValue, r.Overall)},
		{"Pressure Tendency", fmt.Sprintf("%s (Symbol: %s)", r.TendencyDescription, r.TendencySymbol)},
	}
}

// RenderReport renders a result as plain text without styling
func RenderReport(r models.TrendResult) string {
	lines := reportLines(r)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = fmt.Sprintf("%s: %s", l.label, l.value)
	}
	return strings.Join(out, "\n")
}

func formatPressure(v float64, unit string) string {
	switch unit {
	case "hPa":
		return fmt.Sprintf("%.1f", v)
	default:
		// inHg and kPa
		return fmt.Sprintf("%.2f", v)
	}
}

func formatChange(v float64, unit string) string {
	switch unit {
	case "hPa":
		return fmt.Sprintf("%+.1f", v)
	case "kPa":
		return fmt.Sprintf("%+.2f", v)
	default:
		return fmt.Sprintf("%+.3f", v)
	}
}
