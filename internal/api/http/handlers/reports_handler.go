package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/reporting-service/internal/api/dto"
	"github.com/spec-kit/reporting-service/internal/auth"
	"github.com/spec-kit/reporting-service/internal/domain"
	"github.com/spec-kit/reporting-service/internal/service"
	apperrors "github.com/spec-kit/reporting-service/pkg/util"
)

// ReportsHandler manages the three-tier reporting endpoints.
type ReportsHandler struct {
	service *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reportService *service.ReportService) *ReportsHandler {
	return &ReportsHandler{service: reportService}
}

func actorRole(c *fiber.Ctx) domain.Role {
	if identity, ok := auth.IdentityFromContext(c); ok {
		return identity.Role
	}
	return ""
}

// CreateLecturerReport POST /api/reports.
func (h *ReportsHandler) CreateLecturerReport(c *fiber.Ctx) error {
	var req dto.CreateLecturerReportRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	report, err := h.service.CreateLecturerReport(c.Context(), actorRole(c), service.LecturerReportInput{
		CourseID:                req.CourseID,
		LecturerName:            req.LecturerName,
		WeekOfReporting:         req.WeekOfReporting,
		DateOfLecture:           req.DateOfLecture,
		TopicTaught:             req.TopicTaught,
		LearningOutcomes:        req.LearningOutcomes,
		LecturerRecommendations: req.LecturerRecommendations,
		ActualPresent:           req.ActualPresent,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"id": report.ID})
}

// ListLecturerReports GET /api/reports.
func (h *ReportsHandler) ListLecturerReports(c *fiber.Ctx) error {
	reports, err := h.service.ListLecturerReports(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.LecturerReportResponse, 0, len(reports))
	for i := range reports {
		items = append(items, dto.FromLecturerReport(&reports[i]))
	}
	return c.JSON(items)
}

// GetLecturerReport GET /api/reports/:id.
func (h *ReportsHandler) GetLecturerReport(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return err
	}
	report, err := h.service.GetLecturerReport(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromLecturerReport(report))
}

// CreatePRLReport POST /api/prl_reports.
func (h *ReportsHandler) CreatePRLReport(c *fiber.Ctx) error {
	var req dto.CreatePRLReportRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	report, err := h.service.CreatePRLReport(c.Context(), actorRole(c), service.PRLReportInput{
		LecturerReportID: req.LecturerReportID,
		PRLName:          req.PRLName,
		Summary:          req.Summary,
		Recommendations:  req.Recommendations,
		Rating:           req.Rating,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"id":      report.ID,
		"message": "PRL report submitted successfully",
	})
}

// ListPRLReports GET /api/prl_reports.
func (h *ReportsHandler) ListPRLReports(c *fiber.Ctx) error {
	reports, err := h.service.ListPRLReports(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.PRLReportResponse, 0, len(reports))
	for i := range reports {
		items = append(items, dto.FromPRLReport(&reports[i]))
	}
	return c.JSON(items)
}

// GetPRLReport GET /api/prl_reports/:id.
func (h *ReportsHandler) GetPRLReport(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return err
	}
	report, err := h.service.GetPRLReport(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromPRLReport(report))
}

// CreatePLReport POST /api/pl_reports.
func (h *ReportsHandler) CreatePLReport(c *fiber.Ctx) error {
	var req dto.CreatePLReportRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	report, err := h.service.CreatePLReport(c.Context(), actorRole(c), service.PLReportInput{
		PRLReportID:    req.PRLReportID,
		PLName:         req.PLName,
		ProgramSummary: req.ProgramSummary,
		OverallAssess:  req.OverallAssess,
		Rating:         req.Rating,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"id":      report.ID,
		"message": "Program report finalized successfully",
	})
}

// ListPLReports GET /api/pl_reports.
func (h *ReportsHandler) ListPLReports(c *fiber.Ctx) error {
	reports, err := h.service.ListPLReports(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.PLReportResponse, 0, len(reports))
	for i := range reports {
		items = append(items, dto.FromPLReport(&reports[i]))
	}
	return c.JSON(items)
}
