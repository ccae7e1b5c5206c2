package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/pressure-trend/internal/models"
	"github.com/ngmaloney/pressure-trend/internal/trend"
)

// trendComputedMsg is sent when a calculation succeeds
type trendComputedMsg struct {
	result *models.TrendResult
}

// errMsg is sent when a calculation fails
type errMsg struct {
	err error
}

// computeTrend runs the calculator off the update loop
func computeTrend(readings models.Readings, unit models.Unit) tea.Cmd {
	return func() tea.Msg {
		res, err := trend.Calculate(readings, unit)
		if err != nil {
			return errMsg{err: err}
		}
		return trendComputedMsg{result: &res}
	}
}
