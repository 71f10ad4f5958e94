package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/reporting-service/internal/observability"
	"github.com/spec-kit/reporting-service/internal/service"
)

// DashboardHandler serves aggregate counts and analytics views.
type DashboardHandler struct {
	service *service.StatsService
	metrics *observability.Metrics
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(statsService *service.StatsService, metrics *observability.Metrics) *DashboardHandler {
	return &DashboardHandler{service: statsService, metrics: metrics}
}

// Stats GET /api/dashboard/stats.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.DashboardStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// ReportsByFaculty GET /api/analytics/reports-by-faculty.
func (h *DashboardHandler) ReportsByFaculty(c *fiber.Ctx) error {
	counts, err := h.service.ReportsByFaculty(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(counts)
}

// Summary GET /api/analytics/summary.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.service.SummaryStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(summary)
}

// Metrics GET /api/metrics. In-process request counters, useful when
// no external scraper is attached.
func (h *DashboardHandler) Metrics(c *fiber.Ctx) error {
	requests, errors := h.metrics.Snapshot()
	return c.JSON(fiber.Map{
		"requests": requests,
		"errors":   errors,
	})
}
