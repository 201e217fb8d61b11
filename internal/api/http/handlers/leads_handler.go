package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/spec-kit/lead-dashboard/internal/domain"
	"github.com/spec-kit/lead-dashboard/internal/service"
	apperrors "github.com/spec-kit/lead-dashboard/pkg/util/errorutil"
)

// LeadsHandler serves the lead collection.
type LeadsHandler struct {
	service *service.LeadService
}

// NewLeadsHandler constructs handler.
func NewLeadsHandler(leadService *service.LeadService) *LeadsHandler {
	return &LeadsHandler{service: leadService}
}

// List GET /api/leads.
func (h *LeadsHandler) List(c *fiber.Ctx) error {
	leads, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(leads)
}

// Patch PATCH /api/leads/:id. The body is any subset of lead fields; id is ignored.
func (h *LeadsHandler) Patch(c *fiber.Ctx) error {
	var patch domain.LeadPatch
	if body := c.Body(); len(body) > 0 {
		if err := c.App().Config().JSONDecoder(body, &patch); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
	}
	// Params aliases the request buffer, which fiber reuses after the handler returns.
	id := utils.CopyString(c.Params("id"))
	lead, err := h.service.Update(c.UserContext(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(lead)
}
