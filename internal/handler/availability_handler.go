package handler

import (
	"strings"

	"go-torteria-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AvailabilityHandler struct {
	availabilityService service.AvailabilityService
	catalogService      service.CatalogService
}

func NewAvailabilityHandler(a service.AvailabilityService, c service.CatalogService) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityService: a, catalogService: c}
}

// ResolveMany handles the catalog view's batch request.
// GET /api/v1/availability?ids=torta-1,torta-2,agua-1
func (h *AvailabilityHandler) ResolveMany(c *fiber.Ctx) error {
	idsParam := c.Query("ids")
	if idsParam == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Query parameter 'ids' is required"})
	}

	itemIDs := []string{}
	for _, id := range strings.Split(idsParam, ",") {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			itemIDs = append(itemIDs, trimmed)
		}
	}
	if len(itemIDs) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Query parameter 'ids' is required"})
	}

	return c.JSON(h.availabilityService.ResolveMany(itemIDs))
}

// ResolveOne handles a single item check.
// GET /api/v1/availability/:itemId
func (h *AvailabilityHandler) ResolveOne(c *fiber.Ctx) error {
	itemID := c.Params("itemId")
	return c.JSON(h.availabilityService.ResolveOne(itemID))
}

// ResolveCombo folds a combo's constituents into one verdict.
// GET /api/v1/combos/:slug/availability
func (h *AvailabilityHandler) ResolveCombo(c *fiber.Ctx) error {
	slug := c.Params("slug")

	combo, constituents, err := h.catalogService.GetComboConstituents(slug)
	if err != nil {
		status := 404
		if err == service.ErrNotACombo {
			status = 400
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(h.availabilityService.ResolveCombo(combo.Slug, constituents))
}
