// Package tui renders the editable lead grid in a terminal.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/spec-kit/lead-dashboard/internal/domain"
	"github.com/spec-kit/lead-dashboard/internal/grid"
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeText
	modePicker
)

// Options tunes the front-end.
type Options struct {
	Title   string
	Timeout time.Duration
	Logger  *zap.Logger
}

type loadedMsg struct {
	err error
}

type committedMsg struct {
	leadID string
	err    error
}

// Model is the bubbletea model for the lead grid.
type Model struct {
	grid    *grid.Grid
	title   string
	timeout time.Duration
	logger  *zap.Logger

	width  int
	height int
	cx, cy int // cursor column and visible row
	mode   mode
	busy   bool
	err    error
	status string

	search textinput.Model
	cell   textinput.Model
	picker list.Model

	// value of the text cell when its editor was opened
	cellOrig string
}

// New builds a model over g. Call Init to start the first fetch.
func New(g *grid.Grid, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	title := opts.Title
	if title == "" {
		title = "Leads"
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search by name"
	search.CharLimit = 100
	search.Width = 40

	cell := textinput.New()
	cell.Prompt = ""
	cell.CharLimit = 200
	cell.Width = 30

	return Model{
		grid:    g,
		title:   title,
		timeout: timeout,
		logger:  logger,
		search:  search,
		cell:    cell,
		picker:  newPicker(),
		busy:    true,
	}
}

func (m Model) Init() tea.Cmd { return m.loadCmd() }

func (m Model) loadCmd() tea.Cmd {
	g, timeout := m.grid, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return loadedMsg{err: g.Load(ctx)}
	}
}

func (m Model) commitCmd(row int, leadID string) tea.Cmd {
	g, timeout := m.grid, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return committedMsg{leadID: leadID, err: g.Done(ctx, row)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.busy = false
		if msg.err != nil {
			m.logger.Warn("lead fetch failed", zap.Error(msg.err))
			m.err = msg.err
			return m, nil
		}
		m.status = ""
		m.clamp()
		return m, nil
	case committedMsg:
		return m.handleCommitted(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.err != nil {
			return m.updateError(msg)
		}
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeText:
			return m.updateText(msg)
		case modePicker:
			return m.updatePicker(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) handleCommitted(msg committedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	var commitErr *grid.CommitError
	var refreshErr *grid.RefreshError
	switch {
	case msg.err == nil:
		m.logger.Info("lead committed", zap.String("lead_id", msg.leadID))
		m.status = "saved " + msg.leadID
	case errors.As(msg.err, &commitErr):
		m.logger.Warn("lead commit failed", zap.String("lead_id", msg.leadID), zap.Error(commitErr.Err))
		m.err = msg.err
	case errors.As(msg.err, &refreshErr):
		m.logger.Warn("lead refetch failed", zap.String("lead_id", msg.leadID), zap.Error(refreshErr.Err))
		m.err = msg.err
	default:
		m.err = msg.err
	}
	m.clamp()
	return m, nil
}

// updateError holds every key except dismissal while an error is shown.
func (m Model) updateError(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.err = nil
	case "r":
		m.err = nil
		if !m.grid.Loaded() {
			m.busy = true
			return m, m.loadCmd()
		}
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := m.grid.Columns()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "left", "h":
		if m.cx > 0 {
			m.cx--
		}
	case "right", "l", "tab":
		if m.cx < len(cols)-1 {
			m.cx++
		}
	case "shift+tab":
		if m.cx > 0 {
			m.cx--
		}
	case "up", "k":
		if m.cy > 0 {
			m.cy--
		}
	case "down", "j":
		if m.cy < m.grid.Len()-1 {
			m.cy++
		}
	case "r":
		if !m.busy {
			m.busy = true
			m.status = "refreshing"
			return m, m.loadCmd()
		}
	case "/":
		if m.busy {
			return m, nil
		}
		m.mode = modeSearch
		m.search.SetValue(m.grid.Query())
		m.search.CursorEnd()
		return m, m.search.Focus()
	case "e":
		if !m.busy {
			m.beginEdit()
		}
	case "enter":
		if m.busy {
			return m, nil
		}
		if state, err := m.grid.State(m.cy); err != nil || state != domain.RowEditing {
			m.beginEdit()
			return m, nil
		}
		return m.openEditor(cols[m.cx])
	case "esc":
		if state, err := m.grid.State(m.cy); err == nil && state == domain.RowEditing && !m.busy {
			if err := m.grid.Cancel(m.cy); err != nil {
				m.err = err
			}
			m.status = "edit cancelled"
		}
	case "ctrl+s", "d":
		return m.done()
	}
	return m, nil
}

func (m *Model) beginEdit() {
	if err := m.grid.BeginEdit(m.cy); err != nil {
		if !errors.Is(err, grid.ErrRowOutOfRange) {
			m.err = err
		}
		return
	}
	m.status = ""
}

func (m Model) openEditor(col grid.Column) (tea.Model, tea.Cmd) {
	current, err := m.grid.CellValue(m.cy, col.ID)
	if err != nil {
		m.err = err
		return m, nil
	}
	if col.IsSelect() {
		m.openPicker(col, current)
		m.mode = modePicker
		return m, nil
	}
	m.cellOrig = current
	m.cell.SetValue(current)
	m.cell.CursorEnd()
	m.mode = modeText
	return m, m.cell.Focus()
}

func (m Model) done() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	state, err := m.grid.State(m.cy)
	if err != nil || state != domain.RowEditing {
		return m, nil
	}
	row, err := m.grid.Row(m.cy)
	if err != nil {
		return m, nil
	}
	m.busy = true
	m.status = "saving " + row.ID
	return m, m.commitCmd(m.cy, row.ID)
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = modeNormal
		m.search.Blur()
		return m, nil
	case "esc":
		m.mode = modeNormal
		m.search.Blur()
		m.search.SetValue("")
		m.grid.SetQuery("")
		m.clamp()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.grid.SetQuery(m.search.Value())
	m.clamp()
	return m, cmd
}

// updateText edits the cell draft. Leaving with enter or tab blurs the draft
// into the working row; ctrl+s blurs and commits.
func (m Model) updateText(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	col := m.grid.Columns()[m.cx]
	switch msg.String() {
	case "enter", "tab", "ctrl+s":
		m.mode = modeNormal
		m.cell.Blur()
		if err := m.grid.Blur(m.cy, col.ID); err != nil {
			m.err = err
			return m, nil
		}
		if msg.String() == "ctrl+s" {
			return m.done()
		}
		return m, nil
	case "esc":
		m.mode = modeNormal
		m.cell.Blur()
		if err := m.grid.EditText(m.cy, col.ID, m.cellOrig); err != nil {
			m.err = err
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.cell, cmd = m.cell.Update(msg)
	if err := m.grid.EditText(m.cy, col.ID, m.cell.Value()); err != nil {
		m.err = err
		m.mode = modeNormal
	}
	return m, cmd
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picker.FilterState() != list.Filtering {
		switch msg.String() {
		case "enter":
			m.mode = modeNormal
			item, ok := m.picker.SelectedItem().(optionItem)
			if !ok {
				return m, nil
			}
			col := m.grid.Columns()[m.cx]
			if err := m.grid.Select(m.cy, col.ID, item.value); err != nil {
				m.err = err
			}
			return m, nil
		case "esc":
			if m.picker.FilterState() == list.FilterApplied {
				m.picker.ResetFilter()
				return m, nil
			}
			m.mode = modeNormal
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m *Model) clamp() {
	n := m.grid.Len()
	if m.cy >= n {
		m.cy = n - 1
	}
	if m.cy < 0 {
		m.cy = 0
	}
	cols := len(m.grid.Columns())
	if m.cx >= cols {
		m.cx = cols - 1
	}
	if m.cx < 0 {
		m.cx = 0
	}
}
