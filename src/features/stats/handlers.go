package stats

import (
	"log/slog"

	"github.com/contre95/tourstats/src/features/jobs"
	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for the stats feature.
type Handler struct {
	service    *Service
	jobService jobs.JobService
}

// NewHandler creates a new stats handler.
func NewHandler(service *Service, jobService jobs.JobService) *Handler {
	return &Handler{service: service, jobService: jobService}
}

// GetTours lists every tour with a persisted snapshot.
func (h *Handler) GetTours(c *fiber.Ctx) error {
	tours, err := h.service.ListTours(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list tours"})
	}
	if tours == nil {
		tours = []string{}
	}
	return c.JSON(fiber.Map{"tours": tours})
}

// GetTourStats returns the latest statistics snapshot for a tour.
func (h *Handler) GetTourStats(c *fiber.Ctx) error {
	tourName := c.Params("tour")
	stats, err := h.service.GetLatestStats(c.Context(), tourName)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load statistics"})
	}
	if stats == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no statistics for tour", "tour": tourName})
	}
	return c.JSON(stats)
}

// GenerateTourStats enqueues a generation job for a tour.
func (h *Handler) GenerateTourStats(c *fiber.Ctx) error {
	tourName := c.Params("tour")
	jobID, err := h.jobService.StartJob("stats_generate", "Generate statistics: "+tourName, map[string]any{
		"tour": tourName,
	})
	if err != nil {
		slog.Error("Failed to start generation job", "tour", tourName, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"job_id": jobID, "tour": tourName})
}
