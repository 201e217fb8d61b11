package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spec-kit/lead-dashboard/internal/domain"
	"github.com/spec-kit/lead-dashboard/internal/grid"
)

const (
	maxColWidth = 28
	minColWidth = 6
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(" " + m.title))
	if q := m.grid.Query(); q != "" && m.mode != modeSearch {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  filter: %q", q)))
	}
	b.WriteString("\n")

	if m.mode == modeSearch {
		b.WriteString(" " + m.search.View() + "\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(" error: "+m.err.Error()+" ") + "\n")
		b.WriteString(dimStyle.Render(" esc dismiss  r retry") + "\n")
	}

	if m.grid.Loading() {
		b.WriteString(dimStyle.Render(" Loading leads…") + "\n")
		b.WriteString(m.helpLine())
		return b.String()
	}

	b.WriteString(m.viewTable())

	if m.mode == modePicker {
		b.WriteString(pickerStyle.Render(m.picker.View()))
		b.WriteString("\n")
	}

	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteString("\n")
	b.WriteString(m.helpLine())
	return b.String()
}

func (m Model) viewTable() string {
	var b strings.Builder
	cols := m.grid.Columns()
	rows := m.grid.Rows()
	widths := m.colWidths(cols, len(rows))

	// marker column shows the row state
	b.WriteString(headerStyle.Render("   "))
	for ci, c := range cols {
		b.WriteString(headerStyle.Render(" " + pad(c.Header, widths[ci]) + " "))
		if ci < len(cols)-1 {
			b.WriteString(dimStyle.Render("│"))
		}
	}
	b.WriteString("\n")

	dataHeight := m.height - 8
	if dataHeight < 1 {
		dataHeight = len(rows)
	}
	start := 0
	if m.cy >= dataHeight {
		start = m.cy - dataHeight + 1
	}
	end := start + dataHeight
	if end > len(rows) {
		end = len(rows)
	}

	for ri := start; ri < end; ri++ {
		state, _ := m.grid.State(ri)
		editing := state == domain.RowEditing
		if editing {
			b.WriteString(editingStyle.Render(" ✎ "))
		} else {
			b.WriteString("   ")
		}
		for ci, c := range cols {
			val, _ := m.grid.CellValue(ri, c.ID)
			if m.mode == modeText && ri == m.cy && ci == m.cx {
				val = m.cell.View()
			}
			cell := " " + pad(val, widths[ci]) + " "
			switch {
			case ri == m.cy && ci == m.cx:
				b.WriteString(cursorStyle.Render(cell))
			case editing:
				b.WriteString(editingStyle.Render(cell))
			default:
				b.WriteString(cell)
			}
			if ci < len(cols)-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) colWidths(cols []grid.Column, n int) []int {
	widths := make([]int, len(cols))
	for ci, c := range cols {
		w := lipgloss.Width(c.Header)
		for ri := 0; ri < n; ri++ {
			val, _ := m.grid.CellValue(ri, c.ID)
			if vw := lipgloss.Width(val); vw > w {
				w = vw
			}
		}
		if m.mode == modeText && ci == m.cx {
			if cw := m.cell.Width + 2; cw > w {
				w = cw
			}
		}
		if w < minColWidth {
			w = minColWidth
		}
		if w > maxColWidth && !(m.mode == modeText && ci == m.cx) {
			w = maxColWidth
		}
		widths[ci] = w
	}
	return widths
}

func (m Model) statusLine() string {
	mode := "VIEW"
	if state, err := m.grid.State(m.cy); err == nil && state == domain.RowEditing {
		mode = "EDIT"
	}
	line := fmt.Sprintf(" [%d/%d] %s", m.cy+1, m.grid.Len(), mode)
	if m.status != "" {
		line += "  " + m.status
	}
	return line
}

func (m Model) helpLine() string {
	var help string
	switch m.mode {
	case modeSearch:
		help = " enter keep filter  esc clear"
	case modeText:
		help = " enter/tab apply  ctrl+s apply and save  esc discard"
	case modePicker:
		help = " ↑/↓ choose  enter select  esc close"
	default:
		help = " hjkl move  e edit  enter edit cell  d/ctrl+s done  esc cancel  / search  r reload  q quit"
	}
	return dimStyle.Render(help)
}

// pad truncates or right-pads s to exactly w cells.
func pad(s string, w int) string {
	sw := lipgloss.Width(s)
	if sw > w {
		r := []rune(s)
		for len(r) > 0 && lipgloss.Width(string(r))+1 > w {
			r = r[:len(r)-1]
		}
		return string(r) + "…"
	}
	return s + strings.Repeat(" ", w-sw)
}
