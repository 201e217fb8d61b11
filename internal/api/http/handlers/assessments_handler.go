package handlers

import (
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/lead-dashboard/internal/api/dto"
	"github.com/spec-kit/lead-dashboard/internal/domain"
	"github.com/spec-kit/lead-dashboard/internal/service"
	apperrors "github.com/spec-kit/lead-dashboard/pkg/util/errorutil"
)

// MaxResumeBytes caps the uploaded resume size.
const MaxResumeBytes = 5 << 20

// AssessmentsHandler serves the public intake form.
type AssessmentsHandler struct {
	service *service.AssessmentService
}

// NewAssessmentsHandler constructs handler.
func NewAssessmentsHandler(assessmentService *service.AssessmentService) *AssessmentsHandler {
	return &AssessmentsHandler{service: assessmentService}
}

// Submit POST /api/assessments. Accepts JSON or a multipart form with an
// optional "resume" file.
func (h *AssessmentsHandler) Submit(c *fiber.Ctx) error {
	var req dto.AssessmentRequest
	var resume *domain.Resume

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return apperrors.NewValidationError("invalid multipart payload", nil)
		}
		req = formRequest(form)
		if files := form.File["resume"]; len(files) > 0 {
			resume, err = readResume(files[0])
			if err != nil {
				return err
			}
		}
	} else if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	created, err := h.service.Submit(c.UserContext(), service.AssessmentInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Country:      req.Country,
		LinkedIn:     req.LinkedIn,
		VisaInterest: req.VisaInterest,
		HelpText:     req.HelpText,
		Resume:       resume,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewAssessmentResponse(created)})
}

// List GET /api/assessments.
func (h *AssessmentsHandler) List(c *fiber.Ctx) error {
	items, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]dto.AssessmentResponse, 0, len(items))
	for i := range items {
		out = append(out, dto.NewAssessmentResponse(&items[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

func formRequest(form *multipart.Form) dto.AssessmentRequest {
	first := func(key string) string {
		if vals := form.Value[key]; len(vals) > 0 {
			return vals[0]
		}
		return ""
	}
	return dto.AssessmentRequest{
		FirstName:    first("firstName"),
		LastName:     first("lastName"),
		Email:        first("email"),
		Country:      first("country"),
		LinkedIn:     first("linkedIn"),
		VisaInterest: form.Value["visaInterest"],
		HelpText:     first("helpText"),
	}
}

func readResume(fh *multipart.FileHeader) (*domain.Resume, error) {
	if fh.Size > MaxResumeBytes {
		return nil, apperrors.NewValidationError("validation failed", map[string]any{"resume": "Resume must be 5MB or smaller"})
	}
	f, err := fh.Open()
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, MaxResumeBytes+1))
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if len(content) > MaxResumeBytes {
		return nil, apperrors.NewValidationError("validation failed", map[string]any{"resume": "Resume must be 5MB or smaller"})
	}
	return &domain.Resume{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		SizeBytes:   int64(len(content)),
		Content:     content,
	}, nil
}
