package tui

import (
	"github.com/charmbracelet/bubbles/list"

	"github.com/spec-kit/lead-dashboard/internal/grid"
)

type optionItem struct {
	label string
	value string
}

func (o optionItem) Title() string       { return o.label }
func (o optionItem) Description() string { return "" }
func (o optionItem) FilterValue() string { return o.label }

func newPicker() list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New([]list.Item{}, delegate, 40, 12)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.DisableQuitKeybindings()
	return l
}

// openPicker loads col's options into the picker and preselects current.
func (m *Model) openPicker(col grid.Column, current string) {
	items := make([]list.Item, 0, len(col.Options))
	selected := 0
	for i, o := range col.Options {
		items = append(items, optionItem{label: o.Label, value: o.Value})
		if o.Value == current {
			selected = i
		}
	}
	m.picker.ResetFilter()
	m.picker.Title = col.Header
	m.picker.SetItems(items)
	m.picker.SetFilteringEnabled(len(items) > 10)

	w := m.width - 8
	if w > 48 {
		w = 48
	}
	if w < 24 {
		w = 24
	}
	h := len(items) + 4
	if h > 16 {
		h = 16
	}
	m.picker.SetSize(w, h)
	m.picker.Select(selected)
}
