package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/lead-dashboard/internal/countries"
)

// CountriesHandler serves the country directory as select options.
type CountriesHandler struct {
	directory *countries.Directory
}

// NewCountriesHandler constructs handler.
func NewCountriesHandler(directory *countries.Directory) *CountriesHandler {
	return &CountriesHandler{directory: directory}
}

// List GET /api/countries.
func (h *CountriesHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.directory.Options())
}
