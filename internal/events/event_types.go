package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/lead-dashboard/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLeadUpdated         EventType = "lead_updated"
	EventAssessmentSubmitted EventType = "assessment_submitted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// NewEvent stamps a fresh id and timestamp.
func NewEvent(eventType EventType, subjectID string, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// LeadUpdatedPayload payload.
type LeadUpdatedPayload struct {
	Before domain.Lead `json:"before"`
	After  domain.Lead `json:"after"`
}

// ChangedFields lists the lead fields whose values differ between Before and After.
func (p LeadUpdatedPayload) ChangedFields() []string {
	var fields []string
	if p.Before.Name != p.After.Name {
		fields = append(fields, "name")
	}
	if p.Before.Status != p.After.Status {
		fields = append(fields, "status")
	}
	if p.Before.Country != p.After.Country {
		fields = append(fields, "country")
	}
	if p.Before.Submitted != p.After.Submitted {
		fields = append(fields, "submitted")
	}
	return fields
}

// AssessmentSubmittedPayload payload.
type AssessmentSubmittedPayload struct {
	Email        string                `json:"email"`
	Country      string                `json:"country"`
	VisaInterest []domain.VisaCategory `json:"visa_interest"`
	HasResume    bool                  `json:"has_resume"`
}
