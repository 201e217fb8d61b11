// Package grid keeps the client-side state of the editable lead table: the
// fetched collection, the search filter and a Viewing/Editing state machine
// per row with drafts and revert snapshots.
package grid

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spec-kit/lead-dashboard/internal/domain"
)

var (
	ErrRowOutOfRange = errors.New("row index out of range")
	ErrUnknownColumn = errors.New("unknown column")
	ErrNotEditing    = errors.New("row is not in edit mode")
	ErrInvalidOption = errors.New("value is not a column option")
	ErrNotTextColumn = errors.New("column is not a text column")
)

// LeadSource is the store capability the grid needs.
type LeadSource interface {
	List(ctx context.Context) ([]domain.Lead, error)
	Update(ctx context.Context, id string, patch domain.LeadPatch) (domain.Lead, error)
}

// CommitError reports a failed update. The row stays in edit mode with its
// working copy untouched.
type CommitError struct {
	LeadID string
	Err    error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commit lead %s: %v", e.LeadID, e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

// RefreshError reports that an update succeeded but re-fetching the collection
// failed. The committed row already shows the stored record.
type RefreshError struct {
	Err error
}

func (e *RefreshError) Error() string {
	return fmt.Sprintf("refresh leads: %v", e.Err)
}

func (e *RefreshError) Unwrap() error {
	return e.Err
}

// Grid is safe for concurrent use. Network calls never hold the lock.
type Grid struct {
	mu      sync.Mutex
	source  LeadSource
	columns []Column
	colIdx  map[ColumnID]int

	rows    []domain.Lead // working copy of the fetched collection
	visible []int         // indexes into rows matching the query
	query   string
	loaded  bool

	states    map[string]domain.RowState
	snapshots map[string]domain.Lead
	drafts    map[string]map[ColumnID]string
}

// New builds an empty grid over source.
func New(source LeadSource, columns []Column) *Grid {
	idx := make(map[ColumnID]int, len(columns))
	for i, c := range columns {
		idx[c.ID] = i
	}
	return &Grid{
		source:    source,
		columns:   columns,
		colIdx:    idx,
		states:    make(map[string]domain.RowState),
		snapshots: make(map[string]domain.Lead),
		drafts:    make(map[string]map[ColumnID]string),
	}
}

// Columns returns the column layout.
func (g *Grid) Columns() []Column {
	out := make([]Column, len(g.columns))
	copy(out, g.columns)
	return out
}

// Load fetches the full collection and republishes it into the grid.
func (g *Grid) Load(ctx context.Context) error {
	fresh, err := g.source.List(ctx)
	if err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.replaceLocked(fresh)
	return nil
}

// Loaded reports whether a fetch has completed at least once.
func (g *Grid) Loaded() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loaded
}

// Loading reports whether the grid should show its loading placeholder,
// which is whenever the fetched collection is empty.
func (g *Grid) Loading() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.rows) == 0
}

// SetQuery filters rendered rows by case-insensitive substring on name.
func (g *Grid) SetQuery(q string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.query = q
	g.refilterLocked()
}

// Query returns the current search text.
func (g *Grid) Query() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.query
}

// Len returns the number of rendered rows.
func (g *Grid) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.visible)
}

// Rows returns the rendered rows in fetched order.
func (g *Grid) Rows() []domain.Lead {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]domain.Lead, 0, len(g.visible))
	for _, i := range g.visible {
		out = append(out, g.rows[i])
	}
	return out
}

// Row returns the rendered row at rowIndex.
func (g *Grid) Row(rowIndex int) (domain.Lead, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	i, err := g.rowLocked(rowIndex)
	if err != nil {
		return domain.Lead{}, err
	}
	return g.rows[i], nil
}

// State returns the edit state of the rendered row at rowIndex.
func (g *Grid) State(rowIndex int) (domain.RowState, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	i, err := g.rowLocked(rowIndex)
	if err != nil {
		return domain.RowViewing, err
	}
	return g.states[g.rows[i].ID], nil
}

// BeginEdit moves the row to Editing and captures its revert snapshot.
// Calling it on a row already in Editing keeps the original snapshot.
func (g *Grid) BeginEdit(rowIndex int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	i, err := g.rowLocked(rowIndex)
	if err != nil {
		return err
	}
	id := g.rows[i].ID
	if g.states[id] == domain.RowEditing {
		return nil
	}
	g.states[id] = domain.RowEditing
	g.snapshots[id] = g.rows[i]
	g.drafts[id] = make(map[ColumnID]string)
	return nil
}

// CellValue returns what the cell shows: its draft when one exists, else the
// working value.
func (g *Grid) CellValue(rowIndex int, col ColumnID) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	i, err := g.rowLocked(rowIndex)
	if err != nil {
		return "", err
	}
	if _, ok := g.colIdx[col]; !ok {
		return "", ErrUnknownColumn
	}
	if v, ok := g.drafts[g.rows[i].ID][col]; ok {
		return v, nil
	}
	return fieldValue(g.rows[i], col), nil
}

// EditText changes the draft of a text cell without touching the row.
func (g *Grid) EditText(rowIndex int, col ColumnID, value string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	i, c, err := g.editableLocked(rowIndex, col)
	if err != nil {
		return err
	}
	if c.IsSelect() {
		return ErrNotTextColumn
	}
	g.drafts[g.rows[i].ID][col] = value
	return nil
}

// Blur merges a text cell's draft into the row's working copy.
func (g *Grid) Blur(rowIndex int, col ColumnID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	i, _, err := g.editableLocked(rowIndex, col)
	if err != nil {
		return err
	}
	draft, ok := g.drafts[g.rows[i].ID][col]
	if !ok {
		return nil
	}
	setField(&g.rows[i], col, draft)
	return nil
}

// Select sets a select cell's draft and writes it through to the row.
func (g *Grid) Select(rowIndex int, col ColumnID, value string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	i, c, err := g.editableLocked(rowIndex, col)
	if err != nil {
		return err
	}
	if !c.IsSelect() {
		return fmt.Errorf("%w: %s", ErrInvalidOption, col)
	}
	if !c.HasOption(value) {
		return fmt.Errorf("%w: %q", ErrInvalidOption, value)
	}
	g.drafts[g.rows[i].ID][col] = value
	setField(&g.rows[i], col, value)
	return nil
}

// UpdateData writes value into the rendered row at rowIndex. Local only.
func (g *Grid) UpdateData(rowIndex int, col ColumnID, value string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	i, err := g.rowLocked(rowIndex)
	if err != nil {
		return err
	}
	if _, ok := g.colIdx[col]; !ok {
		return ErrUnknownColumn
	}
	setField(&g.rows[i], col, value)
	return nil
}

// RevertData restores the row's snapshot when revert is true; otherwise the
// working copy becomes the new snapshot. Local only.
func (g *Grid) RevertData(rowIndex int, revert bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	i, err := g.rowLocked(rowIndex)
	if err != nil {
		return err
	}
	g.revertLocked(i, revert)
	return nil
}

// Cancel discards drafts, restores the snapshot and returns the row to Viewing.
func (g *Grid) Cancel(rowIndex int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	i, err := g.rowLocked(rowIndex)
	if err != nil {
		return err
	}
	id := g.rows[i].ID
	if g.states[id] != domain.RowEditing {
		return ErrNotEditing
	}
	g.revertLocked(i, true)
	g.clearEditLocked(id)
	return nil
}

// Done sends the row's working copy to the store, then re-fetches the whole
// collection. Unblurred text drafts are not part of the commit.
func (g *Grid) Done(ctx context.Context, rowIndex int) error {
	g.mu.Lock()
	i, err := g.rowLocked(rowIndex)
	if err != nil {
		g.mu.Unlock()
		return err
	}
	row := g.rows[i]
	if g.states[row.ID] != domain.RowEditing {
		g.mu.Unlock()
		return ErrNotEditing
	}
	g.mu.Unlock()

	updated, err := g.source.Update(ctx, row.ID, domain.PatchFromLead(row))
	if err != nil {
		return &CommitError{LeadID: row.ID, Err: err}
	}

	fresh, listErr := g.source.List(ctx)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.clearEditLocked(row.ID)
	if listErr != nil {
		if j := g.indexOfLocked(row.ID); j >= 0 {
			g.rows[j] = updated
		}
		return &RefreshError{Err: listErr}
	}
	g.replaceLocked(fresh)
	return nil
}

func (g *Grid) rowLocked(rowIndex int) (int, error) {
	if rowIndex < 0 || rowIndex >= len(g.visible) {
		return 0, fmt.Errorf("%w: %d", ErrRowOutOfRange, rowIndex)
	}
	return g.visible[rowIndex], nil
}

func (g *Grid) editableLocked(rowIndex int, col ColumnID) (int, Column, error) {
	i, err := g.rowLocked(rowIndex)
	if err != nil {
		return 0, Column{}, err
	}
	ci, ok := g.colIdx[col]
	if !ok {
		return 0, Column{}, ErrUnknownColumn
	}
	if g.states[g.rows[i].ID] != domain.RowEditing {
		return 0, Column{}, ErrNotEditing
	}
	return i, g.columns[ci], nil
}

func (g *Grid) revertLocked(i int, revert bool) {
	id := g.rows[i].ID
	if !revert {
		g.snapshots[id] = g.rows[i]
		return
	}
	if snap, ok := g.snapshots[id]; ok {
		g.rows[i] = snap
	}
}

func (g *Grid) clearEditLocked(id string) {
	delete(g.states, id)
	delete(g.snapshots, id)
	delete(g.drafts, id)
}

func (g *Grid) indexOfLocked(id string) int {
	for i := range g.rows {
		if g.rows[i].ID == id {
			return i
		}
	}
	return -1
}

// replaceLocked installs a freshly fetched collection. Rows still in Editing
// keep their working copy, snapshot and drafts; state for ids that vanished
// is dropped.
func (g *Grid) replaceLocked(fresh []domain.Lead) {
	editing := make(map[string]domain.Lead, len(g.states))
	for i := range g.rows {
		if g.states[g.rows[i].ID] == domain.RowEditing {
			editing[g.rows[i].ID] = g.rows[i]
		}
	}

	rows := make([]domain.Lead, len(fresh))
	present := make(map[string]struct{}, len(fresh))
	for i, lead := range fresh {
		present[lead.ID] = struct{}{}
		if working, ok := editing[lead.ID]; ok {
			rows[i] = working
			continue
		}
		rows[i] = lead
	}
	for id := range g.states {
		if _, ok := present[id]; !ok {
			g.clearEditLocked(id)
		}
	}

	g.rows = rows
	g.loaded = true
	g.refilterLocked()
}

func (g *Grid) refilterLocked() {
	g.visible = g.visible[:0]
	q := strings.ToLower(g.query)
	for i := range g.rows {
		if q == "" || strings.Contains(strings.ToLower(g.rows[i].Name), q) {
			g.visible = append(g.visible, i)
		}
	}
}
