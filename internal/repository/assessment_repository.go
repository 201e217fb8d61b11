package repository

import (
	"context"
	"sync"

	"github.com/spec-kit/lead-dashboard/internal/domain"
)

// AssessmentRepository keeps intake submissions.
type AssessmentRepository interface {
	Create(ctx context.Context, req *domain.AssessmentRequest) error
	List(ctx context.Context) ([]domain.AssessmentRequest, error)
}

type memoryAssessmentRepository struct {
	mu    sync.RWMutex
	items []domain.AssessmentRequest
}

// NewMemoryAssessmentRepository returns an empty in-memory repository.
func NewMemoryAssessmentRepository() AssessmentRepository {
	return &memoryAssessmentRepository{}
}

func (r *memoryAssessmentRepository) Create(ctx context.Context, req *domain.AssessmentRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *req)
	return nil
}

func (r *memoryAssessmentRepository) List(ctx context.Context) ([]domain.AssessmentRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.AssessmentRequest, len(r.items))
	copy(result, r.items)
	return result, nil
}
