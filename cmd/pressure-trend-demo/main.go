package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/pressure-trend/internal/models"
	"github.com/ngmaloney/pressure-trend/internal/trend"
	"github.com/ngmaloney/pressure-trend/internal/ui"
)

// This demo opens the UI on a precomputed result
func main() {
	readings := models.Readings{
		Current: 29.98,
		Past1h:  29.98,
		Past2h:  30.05,
		Past3h:  30.00,
	}

	res, err := trend.Calculate(readings, models.UnitInHg)
	if err != nil {
		fmt.Printf("Error computing demo trend: %v\n", err)
		os.Exit(1)
	}

	m := ui.NewModel(models.UnitInHg)
	m.SetResult(models.UnitInHg, readings, res)

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Printf("Error running demo: %v\n", err)
		os.Exit(1)
	}
	if fm, ok := final.(ui.Model); ok && fm.Done() {
		fmt.Println(ui.Farewell)
	}
}
