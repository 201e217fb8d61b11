package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/spec-kit/lead-dashboard/internal/domain"
	"github.com/spec-kit/lead-dashboard/internal/events"
	"github.com/spec-kit/lead-dashboard/internal/repository"
	apperrors "github.com/spec-kit/lead-dashboard/pkg/util/errorutil"
)

func newLeadService(t *testing.T, dispatcher events.Dispatcher) *LeadService {
	t.Helper()
	repo := repository.NewMemoryLeadRepository(repository.SeedLeads(), repository.MemoryLeadOptions{
		Now: func() time.Time { return time.Date(2026, time.March, 4, 9, 7, 0, 0, time.UTC) },
	})
	return NewLeadService(LeadDependencies{LeadRepo: repo, Dispatcher: dispatcher})
}

func TestLeadServiceStatusPatchLeavesOtherFields(t *testing.T) {
	svc := newLeadService(t, nil)
	status := domain.LeadStatusReachedOut
	updated, err := svc.Update(context.Background(), "001", domain.LeadPatch{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Jorge Ruiz" || updated.Country != "Mexico" {
		t.Fatalf("unexpected field change: %+v", updated)
	}
	if updated.Status != domain.LeadStatusReachedOut || updated.Submitted != "Mar 4, 2026, 9:07 AM" {
		t.Fatalf("unexpected update: %+v", updated)
	}
}

func TestLeadServiceUnknownIDIsNotFound(t *testing.T) {
	svc := newLeadService(t, nil)
	name := "Nobody"
	_, err := svc.Update(context.Background(), "404", domain.LeadPatch{Name: &name})
	de := apperrors.ToDomainError(err)
	if de.HTTPStatus != http.StatusNotFound || de.Code != "NOT_FOUND" {
		t.Fatalf("expected not found, got %+v", de)
	}
}

func TestLeadServiceRejectsInvalidStatus(t *testing.T) {
	svc := newLeadService(t, nil)
	status := domain.LeadStatus("Closed")
	empty := " "
	_, err := svc.Update(context.Background(), "001", domain.LeadPatch{Status: &status, Name: &empty})
	de := apperrors.ToDomainError(err)
	if de.Code != "VALIDATION_FAILED" {
		t.Fatalf("expected validation error, got %+v", de)
	}
	if _, ok := de.Details["status"]; !ok {
		t.Fatalf("missing status detail: %v", de.Details)
	}
	if _, ok := de.Details["name"]; !ok {
		t.Fatalf("missing name detail: %v", de.Details)
	}
}

func TestLeadServicePublishesUpdate(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	var got []events.Event
	dispatcher.Subscribe(events.EventLeadUpdated, func(_ context.Context, e events.Event) error {
		got = append(got, e)
		return nil
	})
	svc := newLeadService(t, dispatcher)

	country := "Canada"
	if _, err := svc.Update(context.Background(), "008", domain.LeadPatch{Country: &country}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(got) != 1 || got[0].SubjectID != "008" {
		t.Fatalf("unexpected events %+v", got)
	}
	payload, ok := got[0].Payload.(events.LeadUpdatedPayload)
	if !ok {
		t.Fatalf("unexpected payload type %T", got[0].Payload)
	}
	if payload.Before.Country != "France" || payload.After.Country != "Canada" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestLeadServiceList(t *testing.T) {
	svc := newLeadService(t, nil)
	leads, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(leads) != 8 {
		t.Fatalf("expected 8 leads, got %d", len(leads))
	}
}
