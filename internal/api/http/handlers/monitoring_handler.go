package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/reporting-service/internal/api/dto"
	"github.com/spec-kit/reporting-service/internal/service"
	apperrors "github.com/spec-kit/reporting-service/pkg/util"
)

// MonitoringHandler manages monitoring endpoints across roles.
type MonitoringHandler struct {
	service *service.MonitoringService
}

// NewMonitoringHandler constructs handler.
func NewMonitoringHandler(monitoringService *service.MonitoringService) *MonitoringHandler {
	return &MonitoringHandler{service: monitoringService}
}

// CreateLecturerMonitoring POST /api/lecturer_monitoring.
func (h *MonitoringHandler) CreateLecturerMonitoring(c *fiber.Ctx) error {
	var req dto.CreateLecturerMonitoringRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	m, err := h.service.RecordLecturerMonitoring(c.Context(), actorRole(c), service.LecturerMonitoringInput{
		CourseID:                req.CourseID,
		MonitoringNotes:         req.MonitoringNotes,
		StudentPerformanceNotes: req.StudentPerformanceNotes,
		DisciplineIssues:        req.DisciplineIssues,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"id":      m.ID,
		"message": "Monitoring data saved successfully",
	})
}

// ListLecturerMonitoring GET /api/lecturer_monitoring.
func (h *MonitoringHandler) ListLecturerMonitoring(c *fiber.Ctx) error {
	records, err := h.service.ListLecturerMonitoring(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.LecturerMonitoringResponse, 0, len(records))
	for i := range records {
		items = append(items, dto.FromLecturerMonitoring(&records[i]))
	}
	return c.JSON(items)
}

// CreateStudentMonitoring POST /api/student_monitoring.
func (h *MonitoringHandler) CreateStudentMonitoring(c *fiber.Ctx) error {
	var req dto.CreateStudentMonitoringRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	m, err := h.service.RecordStudentMonitoring(c.Context(), actorRole(c), service.StudentMonitoringInput{
		StudentID:          req.StudentID,
		CourseID:           req.CourseID,
		AttendanceStatus:   req.AttendanceStatus,
		ParticipationNotes: req.ParticipationNotes,
		IssuesObserved:     req.IssuesObserved,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"id": m.ID})
}

// ListStudentMonitoring GET /api/student_monitoring.
func (h *MonitoringHandler) ListStudentMonitoring(c *fiber.Ctx) error {
	records, err := h.service.ListStudentMonitoring(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.StudentMonitoringResponse, 0, len(records))
	for i := range records {
		items = append(items, dto.FromStudentMonitoring(&records[i]))
	}
	return c.JSON(items)
}

// CreateProgramMonitoring POST /api/pl_monitoring.
func (h *MonitoringHandler) CreateProgramMonitoring(c *fiber.Ctx) error {
	var req dto.CreateProgramMonitoringRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	m, err := h.service.RecordProgramMonitoring(c.Context(), actorRole(c), service.ProgramMonitoringInput{
		ProgramQualityNotes:  req.ProgramQualityNotes,
		PRLPerformanceNotes:  req.PRLPerformanceNotes,
		OverallProgramHealth: req.OverallProgramHealth,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"id":      m.ID,
		"message": "Program monitoring data saved successfully",
	})
}

// CreateClassOversight POST /api/pl_classes.
func (h *MonitoringHandler) CreateClassOversight(c *fiber.Ctx) error {
	var req dto.CreateClassOversightRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	o, err := h.service.RecordClassOversight(c.Context(), actorRole(c), service.ClassOversightInput{
		PRLID:          req.PRLID,
		ClassDetails:   req.ClassDetails,
		OversightNotes: req.OversightNotes,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"id":      o.ID,
		"message": "Class oversight data saved successfully",
	})
}
