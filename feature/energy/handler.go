package energy

import (
	"res-builder/core/logger"
	"res-builder/core/res"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// knownRegion reports whether the code is one of the resolvable region codes.
func knownRegion(code string) bool {
	for _, r := range res.Regions() {
		if r == code {
			return true
		}
	}
	return false
}

// Handler handles HTTP requests for the built energy system.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the energy routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/energy")
	group.Get("/regions", h.HandleGetRegions)
	group.Get("/regions/:region/technologies", h.HandleGetRegionTechnologies)
	group.Get("/technologies", h.HandleGetTechnologies)
	group.Get("/summary", h.HandleGetSummary)
}

// HandleGetRegions returns the region codes present in the built system.
func (h *Handler) HandleGetRegions(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	regions, err := h.service.Regions(c.Context())
	if err != nil {
		l.Error("Region listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"regions": regions})
}

// HandleGetTechnologies returns every built technology.
func (h *Handler) HandleGetTechnologies(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	techs, err := h.service.Technologies(c.Context())
	if err != nil {
		l.Error("Technology listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"technologies": techs})
}

// HandleGetRegionTechnologies returns the technologies of a single region.
func (h *Handler) HandleGetRegionTechnologies(c *fiber.Ctx) error {
	region := c.Params("region")
	l := logger.WithRayID(h.service.logger, c)

	// Unresolvable codes are rejected up front, without building the system.
	if !knownRegion(region) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown region: " + region,
		})
	}

	techs, found, err := h.service.RegionTechnologies(c.Context(), region)
	if err != nil {
		l.Error("Region technology listing failed",
			zap.String("region", region), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown region: " + region,
		})
	}

	return c.JSON(fiber.Map{"region": region, "technologies": techs})
}

// HandleGetSummary returns the whole-system overview.
func (h *Handler) HandleGetSummary(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	summary, err := h.service.Summary(c.Context())
	if err != nil {
		l.Error("Summary failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(summary)
}
