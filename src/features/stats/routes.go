package stats

import (
	"github.com/contre95/tourstats/src/features/jobs"
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the stats routes with the Fiber app.
func RegisterRoutes(app *fiber.App, service *Service, jobService jobs.JobService) {
	handler := NewHandler(service, jobService)

	tours := app.Group("/api/tours")
	tours.Get("/", handler.GetTours)
	tours.Get("/:tour/stats", handler.GetTourStats)
	tours.Post("/:tour/stats/generate", handler.GenerateTourStats)
}
