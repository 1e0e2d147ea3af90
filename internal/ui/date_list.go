package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"

	"weathercompare.app/internal/store"
)

// dateItem wraps an available calendar day for use in a list
type dateItem struct {
	date     time.Time
	selected bool
}

// FilterValue implements list.Item
func (d dateItem) FilterValue() string {
	return d.date.Format("2006-01-02")
}

// Title implements list.DefaultItem
func (d dateItem) Title() string {
	if d.selected {
		return fmt.Sprintf("✓ %s", d.date.Format("Mon Jan 2, 2006"))
	}
	return fmt.Sprintf("  %s", d.date.Format("Mon Jan 2, 2006"))
}

// Description implements list.DefaultItem
func (d dateItem) Description() string {
	if d.selected {
		return "selected for comparison"
	}
	return "press enter to select"
}

// createDateList creates a list.Model from the available dates
func createDateList(s *store.Store, dates []time.Time, width, height int) list.Model {
	items := make([]list.Item, len(dates))
	for i, date := range dates {
		items[i] = dateItem{date: date, selected: s.IsDateSelected(date)}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Available Dates"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)

	return l
}
