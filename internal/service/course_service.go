package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/reporting-service/internal/domain"
	"github.com/spec-kit/reporting-service/internal/repository"
	apperrors "github.com/spec-kit/reporting-service/pkg/util"
)

// CourseCreateInput carries a new course payload.
type CourseCreateInput struct {
	FacultyName     string
	ClassName       string
	CourseName      string
	CourseCode      string
	Venue           string
	ScheduledTime   string
	TotalRegistered int
}

// ProgramCourseInput carries a program-leader course assignment.
type ProgramCourseInput struct {
	ProgramName    string
	CourseCode     string
	CourseName     string
	PRLResponsible string
}

// CourseService manages courses and program course assignments.
type CourseService struct {
	courses repository.CourseRepository
}

// NewCourseService builds the service.
func NewCourseService(courses repository.CourseRepository) *CourseService {
	return &CourseService{courses: courses}
}

// CreateCourse validates and stores a course.
func (s *CourseService) CreateCourse(ctx context.Context, in CourseCreateInput) (*domain.Course, error) {
	if in.FacultyName == "" || in.ClassName == "" || in.CourseName == "" || in.CourseCode == "" {
		return nil, apperrors.NewValidationError("faculty_name, class_name, course_name, course_code required", nil)
	}
	if in.TotalRegistered < 0 {
		return nil, apperrors.NewValidationError("total_registered cannot be negative", nil)
	}

	course := &domain.Course{
		FacultyName:     in.FacultyName,
		ClassName:       in.ClassName,
		CourseName:      in.CourseName,
		CourseCode:      in.CourseCode,
		Venue:           in.Venue,
		ScheduledTime:   in.ScheduledTime,
		TotalRegistered: in.TotalRegistered,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, apperrors.MapError(err)
	}
	return course, nil
}

// GetCourse fetches a course by id.
func (s *CourseService) GetCourse(ctx context.Context, id int64) (*domain.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("course", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return course, nil
}

// ListCourses returns all courses, newest first.
func (s *CourseService) ListCourses(ctx context.Context) ([]domain.Course, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return courses, nil
}

// CreateProgramCourse records a program course assignment.
func (s *CourseService) CreateProgramCourse(ctx context.Context, in ProgramCourseInput) (*domain.ProgramCourse, error) {
	if in.ProgramName == "" || in.CourseCode == "" || in.CourseName == "" {
		return nil, apperrors.NewValidationError("program_name, course_code, course_name required", nil)
	}

	pc := &domain.ProgramCourse{
		ProgramName:    in.ProgramName,
		CourseCode:     in.CourseCode,
		CourseName:     in.CourseName,
		PRLResponsible: in.PRLResponsible,
	}
	if err := s.courses.CreateProgramCourse(ctx, pc); err != nil {
		return nil, apperrors.MapError(err)
	}
	return pc, nil
}
