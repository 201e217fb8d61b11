package service

import (
	"context"
	"testing"

	"github.com/spec-kit/lead-dashboard/internal/countries"
	"github.com/spec-kit/lead-dashboard/internal/domain"
	"github.com/spec-kit/lead-dashboard/internal/events"
	"github.com/spec-kit/lead-dashboard/internal/repository"
	apperrors "github.com/spec-kit/lead-dashboard/pkg/util/errorutil"
)

func validAssessment() AssessmentInput {
	return AssessmentInput{
		FirstName:    "Mary",
		LastName:     "Lopez",
		Email:        "mary@example.com",
		Country:      "Brazil",
		LinkedIn:     "https://linkedin.com/in/mary",
		VisaInterest: []string{"O-1", "I don’t know", "O-1"},
		HelpText:     "Looking for an O-1 assessment",
	}
}

func TestSubmitAssessmentStoresAndPublishes(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	var published int
	dispatcher.Subscribe(events.EventAssessmentSubmitted, func(context.Context, events.Event) error {
		published++
		return nil
	})
	repo := repository.NewMemoryAssessmentRepository()
	svc := NewAssessmentService(AssessmentDependencies{AssessmentRepo: repo, Dispatcher: dispatcher})

	req, err := svc.Submit(context.Background(), validAssessment())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if req.ID == "" || req.SubmittedAt.IsZero() {
		t.Fatalf("id or timestamp missing: %+v", req)
	}
	if len(req.VisaInterest) != 2 || req.VisaInterest[1] != domain.VisaUnsure {
		t.Fatalf("unexpected visa interest %v", req.VisaInterest)
	}
	if published != 1 {
		t.Fatalf("expected one event, got %d", published)
	}
	stored, _ := svc.List(context.Background())
	if len(stored) != 1 || stored[0].ID != req.ID {
		t.Fatalf("unexpected stored submissions %+v", stored)
	}
}

func TestSubmitAssessmentFieldErrors(t *testing.T) {
	svc := NewAssessmentService(AssessmentDependencies{AssessmentRepo: repository.NewMemoryAssessmentRepository()})
	_, err := svc.Submit(context.Background(), AssessmentInput{
		Email:    "nope",
		LinkedIn: "linkedin",
		HelpText: "hi",
	})
	de := apperrors.ToDomainError(err)
	if de.Code != "VALIDATION_FAILED" {
		t.Fatalf("expected validation error, got %+v", de)
	}
	want := map[string]string{
		"firstName":    "First name is required",
		"lastName":     "Last name is required",
		"email":        "Invalid email address",
		"country":      "Country is required",
		"linkedIn":     "Invalid URL",
		"visaInterest": "Select at least one visa category",
		"helpText":     "Please provide more details",
	}
	for field, msg := range want {
		if de.Details[field] != msg {
			t.Fatalf("%s: expected %q, got %v", field, msg, de.Details[field])
		}
	}
}

func TestSubmitAssessmentUnknownVisa(t *testing.T) {
	svc := NewAssessmentService(AssessmentDependencies{AssessmentRepo: repository.NewMemoryAssessmentRepository()})
	input := validAssessment()
	input.VisaInterest = []string{"H-1B"}
	_, err := svc.Submit(context.Background(), input)
	de := apperrors.ToDomainError(err)
	if de.Details["visaInterest"] != "Unknown visa category: H-1B" {
		t.Fatalf("unexpected details %v", de.Details)
	}
}

func TestSubmitAssessmentRejectsCountryOutsideDirectory(t *testing.T) {
	repo := repository.NewMemoryAssessmentRepository()
	svc := NewAssessmentService(AssessmentDependencies{
		AssessmentRepo: repo,
		Directory:      countries.NewDirectory(countries.DirectoryOptions{Blacklist: []string{"BR"}}),
	})

	input := validAssessment()
	input.Country = "Atlantis"
	_, err := svc.Submit(context.Background(), input)
	de := apperrors.ToDomainError(err)
	if de.Code != "VALIDATION_FAILED" || de.Details["country"] != "Select a country from the list" {
		t.Fatalf("unexpected error %+v", de)
	}

	// Brazil is a real country but filtered out of this directory.
	input.Country = "Brazil"
	if _, err := svc.Submit(context.Background(), input); err == nil {
		t.Fatalf("expected blacklisted country to be rejected")
	}

	input.Country = " Mexico "
	req, err := svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if req.Country != "Mexico" {
		t.Fatalf("unexpected country %q", req.Country)
	}
	stored, _ := repo.List(context.Background())
	if len(stored) != 1 {
		t.Fatalf("expected only the valid submission stored, got %d", len(stored))
	}
}
