package handlers

import (
	"katalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// SeedHandler exposes the bulk-reseed endpoint.
type SeedHandler struct {
	seedService *services.SeedService
	logger      zerolog.Logger
}

// NewSeedHandler creates a new SeedHandler.
func NewSeedHandler(seedService *services.SeedService, logger zerolog.Logger) *SeedHandler {
	return &SeedHandler{
		seedService: seedService,
		logger:      logger,
	}
}

// RegisterRoutes registers the seed route with the Fiber app.
func (h *SeedHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/seed", h.HandleSeed)
}

// HandleSeed wipes the catalog and reloads the embedded seed data.
// Individual bad records are skipped, so the response reports counts
// rather than failing the whole batch.
func (h *SeedHandler) HandleSeed(c *fiber.Ctx) error {
	inserted, skipped, err := h.seedService.Run()
	if err != nil {
		h.logger.Error().Err(err).Msg("seed run failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not reseed catalog",
		})
	}
	return c.JSON(fiber.Map{
		"message":  "Seed executed",
		"inserted": inserted,
		"skipped":  skipped,
	})
}
