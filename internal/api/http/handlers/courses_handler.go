package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/reporting-service/internal/api/dto"
	"github.com/spec-kit/reporting-service/internal/service"
	apperrors "github.com/spec-kit/reporting-service/pkg/util"
)

// CoursesHandler manages course endpoints.
type CoursesHandler struct {
	service *service.CourseService
}

// NewCoursesHandler constructs handler.
func NewCoursesHandler(courseService *service.CourseService) *CoursesHandler {
	return &CoursesHandler{service: courseService}
}

// Create POST /api/courses.
func (h *CoursesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	course, err := h.service.CreateCourse(c.Context(), service.CourseCreateInput{
		FacultyName:     req.FacultyName,
		ClassName:       req.ClassName,
		CourseName:      req.CourseName,
		CourseCode:      req.CourseCode,
		Venue:           req.Venue,
		ScheduledTime:   req.ScheduledTime,
		TotalRegistered: req.TotalRegistered,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.FromCourse(course))
}

// List GET /api/courses.
func (h *CoursesHandler) List(c *fiber.Ctx) error {
	courses, err := h.service.ListCourses(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		items = append(items, dto.FromCourse(&courses[i]))
	}
	return c.JSON(items)
}

// Get GET /api/courses/:id.
func (h *CoursesHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return err
	}
	course, err := h.service.GetCourse(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromCourse(course))
}

// CreateProgramCourse POST /api/pl_courses.
func (h *CoursesHandler) CreateProgramCourse(c *fiber.Ctx) error {
	var req dto.CreateProgramCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	pc, err := h.service.CreateProgramCourse(c.Context(), service.ProgramCourseInput{
		ProgramName:    req.ProgramName,
		CourseCode:     req.CourseCode,
		CourseName:     req.CourseName,
		PRLResponsible: req.PRLResponsible,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"id":      pc.ID,
		"message": "Program courses updated successfully",
	})
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", nil)
	}
	return id, nil
}
