package service

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/lead-dashboard/internal/countries"
	"github.com/spec-kit/lead-dashboard/internal/domain"
	"github.com/spec-kit/lead-dashboard/internal/events"
	"github.com/spec-kit/lead-dashboard/internal/repository"
	apperrors "github.com/spec-kit/lead-dashboard/pkg/util/errorutil"
)

const minHelpTextLength = 4

// AssessmentService handles public intake submissions.
type AssessmentService struct {
	assessments repository.AssessmentRepository
	directory   *countries.Directory
	dispatcher  events.Dispatcher
	logger      *zap.Logger
	now         func() time.Time
}

// AssessmentDependencies bundles collaborators for the intake service.
type AssessmentDependencies struct {
	AssessmentRepo repository.AssessmentRepository
	// Directory restricts Country to its entries when set.
	Directory  *countries.Directory
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// AssessmentInput is the raw form payload.
type AssessmentInput struct {
	FirstName    string
	LastName     string
	Email        string
	Country      string
	LinkedIn     string
	VisaInterest []string
	HelpText     string
	Resume       *domain.Resume
}

// NewAssessmentService constructs the service.
func NewAssessmentService(deps AssessmentDependencies) *AssessmentService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssessmentService{
		assessments: deps.AssessmentRepo,
		directory:   deps.Directory,
		dispatcher:  deps.Dispatcher,
		logger:      logger,
		now:         time.Now,
	}
}

// Submit validates and stores an assessment request.
func (s *AssessmentService) Submit(ctx context.Context, input AssessmentInput) (*domain.AssessmentRequest, error) {
	visas, err := validateAssessment(input, s.directory)
	if err != nil {
		return nil, err
	}

	req := &domain.AssessmentRequest{
		ID:           uuid.NewString(),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        strings.TrimSpace(input.Email),
		Country:      strings.TrimSpace(input.Country),
		LinkedIn:     strings.TrimSpace(input.LinkedIn),
		VisaInterest: visas,
		HelpText:     strings.TrimSpace(input.HelpText),
		Resume:       input.Resume,
		SubmittedAt:  s.now().UTC(),
	}
	if err := s.assessments.Create(ctx, req); err != nil {
		return nil, err
	}

	s.logger.Info("assessment submitted", zap.String("assessment_id", req.ID), zap.String("country", req.Country))

	if s.dispatcher != nil {
		event := events.NewEvent(events.EventAssessmentSubmitted, req.ID, events.AssessmentSubmittedPayload{
			Email:        req.Email,
			Country:      req.Country,
			VisaInterest: req.VisaInterest,
			HasResume:    req.Resume != nil,
		})
		if err := s.dispatcher.Publish(ctx, event); err != nil {
			s.logger.Warn("assessment event handlers failed", zap.String("assessment_id", req.ID), zap.Error(err))
		}
	}
	return req, nil
}

// List returns every stored submission.
func (s *AssessmentService) List(ctx context.Context) ([]domain.AssessmentRequest, error) {
	return s.assessments.List(ctx)
}

func validateAssessment(input AssessmentInput, directory *countries.Directory) ([]domain.VisaCategory, error) {
	fields := apperrors.FieldErrors{}
	if strings.TrimSpace(input.FirstName) == "" {
		fields.Add("firstName", "First name is required")
	}
	if strings.TrimSpace(input.LastName) == "" {
		fields.Add("lastName", "Last name is required")
	}
	if !validEmail(input.Email) {
		fields.Add("email", "Invalid email address")
	}
	switch country := strings.TrimSpace(input.Country); {
	case country == "":
		fields.Add("country", "Country is required")
	case directory != nil && !directory.Contains(country):
		fields.Add("country", "Select a country from the list")
	}
	if !validURL(input.LinkedIn) {
		fields.Add("linkedIn", "Invalid URL")
	}

	visas := make([]domain.VisaCategory, 0, len(input.VisaInterest))
	seen := make(map[domain.VisaCategory]struct{}, len(input.VisaInterest))
	for _, raw := range input.VisaInterest {
		visa := domain.VisaCategory(normalizeApostrophe(strings.TrimSpace(raw)))
		if !visa.Valid() {
			fields.Add("visaInterest", "Unknown visa category: "+raw)
			continue
		}
		if _, dup := seen[visa]; dup {
			continue
		}
		seen[visa] = struct{}{}
		visas = append(visas, visa)
	}
	if len(input.VisaInterest) == 0 {
		fields.Add("visaInterest", "Select at least one visa category")
	}

	if len(strings.TrimSpace(input.HelpText)) < minHelpTextLength {
		fields.Add("helpText", "Please provide more details")
	}

	if err := fields.Err(); err != nil {
		return nil, err
	}
	return visas, nil
}

func validURL(raw string) bool {
	u, err := url.ParseRequestURI(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// normalizeApostrophe maps the typographic apostrophe used by the form to ASCII.
func normalizeApostrophe(s string) string {
	return strings.ReplaceAll(s, "’", "'")
}
