package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/spec-kit/lead-dashboard/internal/domain"
)

// ErrLeadNotFound is returned when no lead carries the requested id.
var ErrLeadNotFound = errors.New("lead not found")

// LeadRepository defines access to the lead collection.
type LeadRepository interface {
	List(ctx context.Context) ([]domain.Lead, error)
	// Update returns the record as it was before and after the merge.
	Update(ctx context.Context, id string, patch domain.LeadPatch) (before, after domain.Lead, err error)
}

// MemoryLeadOptions tunes the in-memory store.
type MemoryLeadOptions struct {
	ListLatency   time.Duration
	UpdateLatency time.Duration
	Now           func() time.Time
}

type memoryLeadRepository struct {
	mu    sync.RWMutex
	order []string
	leads map[string]domain.Lead
	opts  MemoryLeadOptions
}

// NewMemoryLeadRepository returns a store seeded with the given leads, in order.
func NewMemoryLeadRepository(seed []domain.Lead, opts MemoryLeadOptions) LeadRepository {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	r := &memoryLeadRepository{
		order: make([]string, 0, len(seed)),
		leads: make(map[string]domain.Lead, len(seed)),
		opts:  opts,
	}
	for _, lead := range seed {
		if _, dup := r.leads[lead.ID]; dup {
			continue
		}
		r.order = append(r.order, lead.ID)
		r.leads[lead.ID] = lead
	}
	return r
}

func (r *memoryLeadRepository) List(ctx context.Context) ([]domain.Lead, error) {
	if err := wait(ctx, r.opts.ListLatency); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Lead, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.leads[id])
	}
	return result, nil
}

// Update merges patch over the stored lead and stamps Submitted with the current time.
// The stored id and map key are never replaced by the caller's id string.
func (r *memoryLeadRepository) Update(ctx context.Context, id string, patch domain.LeadPatch) (domain.Lead, domain.Lead, error) {
	if err := wait(ctx, r.opts.UpdateLatency); err != nil {
		return domain.Lead{}, domain.Lead{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	before, ok := r.leads[id]
	if !ok {
		return domain.Lead{}, domain.Lead{}, ErrLeadNotFound
	}
	after := patch.Apply(before)
	after.ID = before.ID
	after.Submitted = r.opts.Now().Format(domain.SubmittedLayout)
	r.leads[before.ID] = after
	return before, after, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
