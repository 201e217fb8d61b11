package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spec-kit/lead-dashboard/internal/countries"
	"github.com/spec-kit/lead-dashboard/internal/domain"
	"github.com/spec-kit/lead-dashboard/internal/grid"
	"github.com/spec-kit/lead-dashboard/internal/repository"
	"github.com/spec-kit/lead-dashboard/internal/service"
)

type brokenSource struct {
	leads []domain.Lead
}

func (b *brokenSource) List(context.Context) ([]domain.Lead, error) {
	return append([]domain.Lead(nil), b.leads...), nil
}

func (b *brokenSource) Update(context.Context, string, domain.LeadPatch) (domain.Lead, error) {
	return domain.Lead{}, errors.New("503 service unavailable")
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	right = tea.KeyMsg{Type: tea.KeyRight}
	ctrlS = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func newStore() *service.LeadService {
	repo := repository.NewMemoryLeadRepository(repository.SeedLeads(), repository.MemoryLeadOptions{
		Now: func() time.Time { return time.Date(2026, time.October, 18, 16, 5, 0, 0, time.UTC) },
	})
	return service.NewLeadService(service.LeadDependencies{LeadRepo: repo})
}

func newModel(t *testing.T, source grid.LeadSource) (Model, *grid.Grid) {
	t.Helper()
	g := grid.New(source, grid.DefaultColumns(countries.NewDirectory(countries.DirectoryOptions{})))
	m := New(g, Options{Timeout: time.Second})
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, g
}

// send feeds msg to the model and drops the returned command, which for
// plain keys is at most a cursor blink.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// sendRun feeds msg and runs the returned fetch or commit to completion.
func sendRun(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	return runCmd(t, next.(Model), cmd)
}

func runCmd(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	switch res := cmd().(type) {
	case loadedMsg, committedMsg:
		next, _ := m.Update(res)
		return next.(Model)
	default:
		t.Fatalf("unexpected message %T", res)
	}
	return m
}

func load(t *testing.T, m Model) Model {
	t.Helper()
	return runCmd(t, m, m.Init())
}

func storedLead(t *testing.T, store *service.LeadService, id string) domain.Lead {
	t.Helper()
	leads, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, l := range leads {
		if l.ID == id {
			return l
		}
	}
	t.Fatalf("lead %s missing", id)
	return domain.Lead{}
}

func TestLoadingPlaceholderBeforeFetch(t *testing.T) {
	m, _ := newModel(t, newStore())
	if !strings.Contains(m.View(), "Loading leads") {
		t.Fatalf("expected loading placeholder, got:\n%s", m.View())
	}
	m = load(t, m)
	view := m.View()
	if strings.Contains(view, "Loading leads") || !strings.Contains(view, "Jorge Ruiz") {
		t.Fatalf("expected table after load, got:\n%s", view)
	}
}

func TestPickStatusAndCommit(t *testing.T) {
	store := newStore()
	m, g := newModel(t, store)
	m = load(t, m)

	m = send(t, m, runes("e"))
	m = send(t, m, right)
	m = send(t, m, right)
	m = send(t, m, enter)
	if m.mode != modePicker {
		t.Fatalf("expected picker on status column, mode=%v", m.mode)
	}
	m = send(t, m, down)
	m = send(t, m, enter)
	if v, _ := g.CellValue(0, grid.ColumnStatus); v != string(domain.LeadStatusReachedOut) {
		t.Fatalf("expected working status Reached Out, got %q", v)
	}

	m = sendRun(t, m, runes("d"))
	if m.busy || m.err != nil {
		t.Fatalf("unexpected state after commit busy=%v err=%v", m.busy, m.err)
	}
	got := storedLead(t, store, "001")
	if got.Status != domain.LeadStatusReachedOut || got.Submitted != "Oct 18, 2026, 4:05 PM" {
		t.Fatalf("unexpected stored lead %+v", got)
	}
	if state, _ := g.State(0); state != domain.RowViewing {
		t.Fatalf("expected viewing after commit, got %v", state)
	}
}

func TestTextEditBlursBeforeSave(t *testing.T) {
	store := newStore()
	m, _ := newModel(t, store)
	m = load(t, m)

	m = send(t, m, runes("e"))
	m = send(t, m, enter)
	if m.mode != modeText {
		t.Fatalf("expected text editor, mode=%v", m.mode)
	}
	m = send(t, m, runes(" Jr"))
	m = sendRun(t, m, ctrlS)

	if got := storedLead(t, store, "001"); got.Name != "Jorge Ruiz Jr" {
		t.Fatalf("expected blurred name to be saved, got %+v", got)
	}
}

func TestEscapeInTextEditorDiscardsDraft(t *testing.T) {
	m, g := newModel(t, newStore())
	m = load(t, m)

	m = send(t, m, runes("e"))
	m = send(t, m, enter)
	m = send(t, m, runes("zzz"))
	m = send(t, m, esc)
	if m.mode != modeNormal {
		t.Fatalf("expected normal mode, got %v", m.mode)
	}
	if v, _ := g.CellValue(0, grid.ColumnName); v != "Jorge Ruiz" {
		t.Fatalf("draft survived escape: %q", v)
	}
	if state, _ := g.State(0); state != domain.RowEditing {
		t.Fatalf("row should stay in edit mode, got %v", state)
	}
}

func TestCancelRestoresCountry(t *testing.T) {
	m, g := newModel(t, newStore())
	m = load(t, m)

	m = send(t, m, runes("e"))
	for i := 0; i < 3; i++ {
		m = send(t, m, right)
	}
	m = send(t, m, enter)
	m = send(t, m, down)
	m = send(t, m, enter)
	if v, _ := g.CellValue(0, grid.ColumnCountry); v == "Mexico" {
		t.Fatalf("expected a different country after picking")
	}

	m = send(t, m, esc)
	if v, _ := g.CellValue(0, grid.ColumnCountry); v != "Mexico" {
		t.Fatalf("cancel did not restore country, got %q", v)
	}
	if state, _ := g.State(0); state != domain.RowViewing {
		t.Fatalf("expected viewing after cancel, got %v", state)
	}
}

func TestSearchFiltersAndClears(t *testing.T) {
	m, g := newModel(t, newStore())
	m = load(t, m)

	m = send(t, m, runes("/"))
	m = send(t, m, runes("MARY"))
	if g.Len() != 1 {
		t.Fatalf("expected 1 row for MARY, got %d", g.Len())
	}
	if !strings.Contains(m.View(), "Mary Lopez") || strings.Contains(m.View(), "Jorge Ruiz") {
		t.Fatalf("unexpected filtered view:\n%s", m.View())
	}
	m = send(t, m, esc)
	if g.Len() != 8 || g.Query() != "" {
		t.Fatalf("expected full set after clearing, got %d", g.Len())
	}
}

func TestCommitFailureBlocksUntilDismissed(t *testing.T) {
	m, g := newModel(t, &brokenSource{leads: repository.SeedLeads()})
	m = load(t, m)

	m = send(t, m, runes("e"))
	m = sendRun(t, m, runes("d"))
	var commitErr *grid.CommitError
	if !errors.As(m.err, &commitErr) {
		t.Fatalf("expected commit error, got %v", m.err)
	}
	if !strings.Contains(m.View(), "503 service unavailable") {
		t.Fatalf("error bar missing:\n%s", m.View())
	}

	m = send(t, m, runes("j"))
	if m.cy != 0 {
		t.Fatalf("navigation should be blocked while the error is shown")
	}
	if state, _ := g.State(0); state != domain.RowEditing {
		t.Fatalf("row should stay editing after failed commit, got %v", state)
	}

	m = send(t, m, esc)
	if m.err != nil {
		t.Fatalf("expected error dismissed")
	}
	m = send(t, m, runes("j"))
	if m.cy != 1 {
		t.Fatalf("expected cursor to move after dismissal, got %d", m.cy)
	}
}
