package dto

import (
	"time"

	"github.com/spec-kit/lead-dashboard/internal/domain"
)

// AssessmentRequest is the intake form payload.
type AssessmentRequest struct {
	FirstName    string   `json:"firstName" form:"firstName"`
	LastName     string   `json:"lastName" form:"lastName"`
	Email        string   `json:"email" form:"email"`
	Country      string   `json:"country" form:"country"`
	LinkedIn     string   `json:"linkedIn" form:"linkedIn"`
	VisaInterest []string `json:"visaInterest" form:"visaInterest"`
	HelpText     string   `json:"helpText" form:"helpText"`
}

// ResumeSummary describes an attached resume without its content.
type ResumeSummary struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	SizeBytes   int64  `json:"sizeBytes"`
}

// AssessmentResponse is returned for stored submissions.
type AssessmentResponse struct {
	ID           string                `json:"id"`
	FirstName    string                `json:"firstName"`
	LastName     string                `json:"lastName"`
	Email        string                `json:"email"`
	Country      string                `json:"country"`
	LinkedIn     string                `json:"linkedIn"`
	VisaInterest []domain.VisaCategory `json:"visaInterest"`
	HelpText     string                `json:"helpText"`
	Resume       *ResumeSummary        `json:"resume,omitempty"`
	SubmittedAt  time.Time             `json:"submittedAt"`
}

// NewAssessmentResponse maps a stored submission.
func NewAssessmentResponse(req *domain.AssessmentRequest) AssessmentResponse {
	resp := AssessmentResponse{
		ID:           req.ID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Country:      req.Country,
		LinkedIn:     req.LinkedIn,
		VisaInterest: req.VisaInterest,
		HelpText:     req.HelpText,
		SubmittedAt:  req.SubmittedAt,
	}
	if req.Resume != nil {
		resp.Resume = &ResumeSummary{
			FileName:    req.Resume.FileName,
			ContentType: req.Resume.ContentType,
			SizeBytes:   req.Resume.SizeBytes,
		}
	}
	return resp
}
