package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/reporting-service/internal/api/dto"
	"github.com/spec-kit/reporting-service/internal/service"
	apperrors "github.com/spec-kit/reporting-service/pkg/util"
)

// RatingsHandler manages rating endpoints across roles.
type RatingsHandler struct {
	service *service.RatingService
}

// NewRatingsHandler constructs handler.
func NewRatingsHandler(ratingService *service.RatingService) *RatingsHandler {
	return &RatingsHandler{service: ratingService}
}

// CreateLecturerRating POST /api/lecturer_rating.
func (h *RatingsHandler) CreateLecturerRating(c *fiber.Ctx) error {
	var req dto.CreateLecturerRatingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	rating, err := h.service.SubmitLecturerRating(c.Context(), actorRole(c), service.LecturerRatingInput{
		CourseID:              req.CourseID,
		StudentRating:         req.StudentRating,
		CourseStructureRating: req.CourseStructureRating,
		OverallRating:         req.OverallRating,
		Comments:              req.Comments,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"id":      rating.ID,
		"message": "Rating submitted successfully",
	})
}

// ListLecturerRatings GET /api/lecturer_rating.
func (h *RatingsHandler) ListLecturerRatings(c *fiber.Ctx) error {
	ratings, err := h.service.ListLecturerRatings(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.LecturerRatingResponse, 0, len(ratings))
	for i := range ratings {
		items = append(items, dto.FromLecturerRating(&ratings[i]))
	}
	return c.JSON(items)
}

// CreateStudentRating POST /api/student_ratings.
func (h *RatingsHandler) CreateStudentRating(c *fiber.Ctx) error {
	var req dto.CreateStudentRatingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	rating, err := h.service.SubmitStudentRating(c.Context(), actorRole(c), service.StudentRatingInput{
		StudentID:      req.StudentID,
		CourseID:       req.CourseID,
		LecturerRating: req.LecturerRating,
		CourseRating:   req.CourseRating,
		Comments:       req.Comments,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"id": rating.ID})
}

// ListStudentRatings GET /api/student_ratings.
func (h *RatingsHandler) ListStudentRatings(c *fiber.Ctx) error {
	ratings, err := h.service.ListStudentRatings(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.StudentRatingResponse, 0, len(ratings))
	for i := range ratings {
		items = append(items, dto.FromStudentRating(&ratings[i]))
	}
	return c.JSON(items)
}

// CreateProgramRating POST /api/pl_rating.
func (h *RatingsHandler) CreateProgramRating(c *fiber.Ctx) error {
	var req dto.CreateProgramRatingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	rating, err := h.service.SubmitProgramRating(c.Context(), actorRole(c), service.ProgramRatingInput{
		PRLID:                req.PRLID,
		ProgramRating:        req.ProgramRating,
		PRLPerformanceRating: req.PRLPerformanceRating,
		Comments:             req.Comments,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"id":      rating.ID,
		"message": "Rating submitted successfully",
	})
}
