package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/ngmaloney/pressure-trend/internal/models"
)

const (
	minListWidth  = 50
	minListHeight = 20
)

// unitItem wraps a Unit for use in a list
type unitItem struct {
	unit  models.Unit
	index int
}

// FilterValue implements list.Item
func (u unitItem) FilterValue() string {
	return u.unit.String()
}

// Title implements list.DefaultItem
func (u unitItem) Title() string {
	name := u.unit.String()
	if u.unit == models.UnitCustom {
		name = "Custom"
	}
	return fmt.Sprintf("%d. %s", u.index+1, name)
}

// Description implements list.DefaultItem
func (u unitItem) Description() string {
	return u.unit.Description()
}

// createUnitList creates the unit menu with selected highlighted
func createUnitList(selected models.Unit, width, height int) list.Model {
	items := make([]list.Item, len(models.Units))
	cursor := 0
	for i, u := range models.Units {
		items[i] = unitItem{unit: u, index: i}
		if u == selected {
			cursor = i
		}
	}

	l := list.New(items, list.NewDefaultDelegate(), max(width, minListWidth), max(height, minListHeight))
	l.Title = "Select pressure unit"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Select(cursor)

	return l
}
