package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/reporting-service/internal/domain"
	"github.com/spec-kit/reporting-service/internal/events"
	"github.com/spec-kit/reporting-service/internal/repository"
	apperrors "github.com/spec-kit/reporting-service/pkg/util"
)

// LecturerRatingInput carries a lecturer's course rating.
type LecturerRatingInput struct {
	CourseID              int64
	StudentRating         int
	CourseStructureRating int
	OverallRating         int
	Comments              string
}

// StudentRatingInput carries a student's rating of lecturer and course.
type StudentRatingInput struct {
	StudentID      int64
	CourseID       int64
	LecturerRating int
	CourseRating   int
	Comments       string
}

// ProgramRatingInput carries a program leader's rating of a PRL.
type ProgramRatingInput struct {
	PRLID                int64
	ProgramRating        int
	PRLPerformanceRating int
	Comments             string
}

// RatingService manages all rating submissions.
type RatingService struct {
	ratings    repository.RatingRepository
	dispatcher events.Dispatcher
}

// NewRatingService builds the service.
func NewRatingService(ratings repository.RatingRepository, dispatcher events.Dispatcher) *RatingService {
	return &RatingService{ratings: ratings, dispatcher: dispatcher}
}

// SubmitLecturerRating validates and stores a lecturer rating.
func (s *RatingService) SubmitLecturerRating(ctx context.Context, actor domain.Role, in LecturerRatingInput) (*domain.LecturerRating, error) {
	if in.CourseID <= 0 {
		return nil, apperrors.NewValidationError("course_id required", nil)
	}
	if err := validateRatings(in.StudentRating, in.CourseStructureRating, in.OverallRating); err != nil {
		return nil, err
	}

	rating := &domain.LecturerRating{
		CourseID:              in.CourseID,
		StudentRating:         in.StudentRating,
		CourseStructureRating: in.CourseStructureRating,
		OverallRating:         in.OverallRating,
		Comments:              in.Comments,
	}
	if err := s.ratings.CreateLecturerRating(ctx, rating); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishRating(ctx, actor, rating.ID, "lecturer_rating", rating.OverallRating)
	return rating, nil
}

// ListLecturerRatings lists lecturer ratings, newest first.
func (s *RatingService) ListLecturerRatings(ctx context.Context) ([]domain.LecturerRating, error) {
	ratings, err := s.ratings.ListLecturerRatings(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return ratings, nil
}

// SubmitStudentRating validates and stores a student rating.
func (s *RatingService) SubmitStudentRating(ctx context.Context, actor domain.Role, in StudentRatingInput) (*domain.StudentRating, error) {
	if in.StudentID <= 0 || in.CourseID <= 0 {
		return nil, apperrors.NewValidationError("student_id and course_id required", nil)
	}
	if err := validateRatings(in.LecturerRating, in.CourseRating); err != nil {
		return nil, err
	}

	rating := &domain.StudentRating{
		StudentID:      in.StudentID,
		CourseID:       in.CourseID,
		LecturerRating: in.LecturerRating,
		CourseRating:   in.CourseRating,
		Comments:       in.Comments,
	}
	if err := s.ratings.CreateStudentRating(ctx, rating); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishRating(ctx, actor, rating.ID, "student_rating", rating.CourseRating)
	return rating, nil
}

// ListStudentRatings lists student ratings, newest first.
func (s *RatingService) ListStudentRatings(ctx context.Context) ([]domain.StudentRating, error) {
	ratings, err := s.ratings.ListStudentRatings(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return ratings, nil
}

// SubmitProgramRating validates and stores a program rating.
func (s *RatingService) SubmitProgramRating(ctx context.Context, actor domain.Role, in ProgramRatingInput) (*domain.ProgramRating, error) {
	if in.PRLID <= 0 {
		return nil, apperrors.NewValidationError("prl_id required", nil)
	}
	if err := validateRatings(in.ProgramRating, in.PRLPerformanceRating); err != nil {
		return nil, err
	}

	rating := &domain.ProgramRating{
		PRLID:                in.PRLID,
		ProgramRating:        in.ProgramRating,
		PRLPerformanceRating: in.PRLPerformanceRating,
		Comments:             in.Comments,
	}
	if err := s.ratings.CreateProgramRating(ctx, rating); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishRating(ctx, actor, rating.ID, "pl_rating", rating.ProgramRating)
	return rating, nil
}

func (s *RatingService) publishRating(ctx context.Context, actor domain.Role, ratingID int64, kind string, overall int) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventRatingSubmitted,
		ActorRole: actor,
		Timestamp: time.Now(),
		Payload: events.RatingSubmittedPayload{
			RatingID: ratingID,
			Kind:     kind,
			Overall:  overall,
		},
	})
}

func validateRatings(values ...int) error {
	for _, v := range values {
		if v < 1 || v > 5 {
			return apperrors.NewValidationError("ratings must be between 1 and 5", nil)
		}
	}
	return nil
}
