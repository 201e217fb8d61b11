package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/lead-dashboard/internal/domain"
	"github.com/spec-kit/lead-dashboard/internal/events"
	"github.com/spec-kit/lead-dashboard/internal/repository"
	apperrors "github.com/spec-kit/lead-dashboard/pkg/util/errorutil"
)

// LeadService exposes the lead store operations.
type LeadService struct {
	leads      repository.LeadRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// LeadDependencies bundles collaborators for the lead service.
type LeadDependencies struct {
	LeadRepo   repository.LeadRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewLeadService constructs the service.
func NewLeadService(deps LeadDependencies) *LeadService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeadService{
		leads:      deps.LeadRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// List returns every lead in store order.
func (s *LeadService) List(ctx context.Context) ([]domain.Lead, error) {
	leads, err := s.leads.List(ctx)
	if err != nil {
		return nil, err
	}
	return leads, nil
}

// Update merges patch into the lead identified by id and returns the stored record.
func (s *LeadService) Update(ctx context.Context, id string, patch domain.LeadPatch) (domain.Lead, error) {
	if err := validatePatch(patch); err != nil {
		return domain.Lead{}, err
	}

	before, updated, err := s.leads.Update(ctx, id, patch)
	if err != nil {
		return domain.Lead{}, mapLeadError(err, id)
	}

	s.logger.Info("lead updated", zap.String("lead_id", updated.ID), zap.String("submitted", updated.Submitted))

	if s.dispatcher != nil {
		event := events.NewEvent(events.EventLeadUpdated, updated.ID, events.LeadUpdatedPayload{Before: before, After: updated})
		if err := s.dispatcher.Publish(ctx, event); err != nil {
			s.logger.Warn("lead event handlers failed", zap.String("lead_id", updated.ID), zap.Error(err))
		}
	}
	return updated, nil
}

func validatePatch(patch domain.LeadPatch) error {
	fields := apperrors.FieldErrors{}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		fields.Add("name", "Name is required")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		fields.Add("status", "Status must be one of Pending, Reached Out")
	}
	if patch.Country != nil && strings.TrimSpace(*patch.Country) == "" {
		fields.Add("country", "Country is required")
	}
	return fields.Err()
}

func mapLeadError(err error, id string) error {
	if errors.Is(err, repository.ErrLeadNotFound) {
		return apperrors.NewNotFound("lead", map[string]any{"id": id})
	}
	return err
}
