package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/reporting-service/internal/domain"
	"github.com/spec-kit/reporting-service/internal/events"
	"github.com/spec-kit/reporting-service/internal/repository"
	apperrors "github.com/spec-kit/reporting-service/pkg/util"
)

// LecturerReportInput carries a weekly lecture report.
type LecturerReportInput struct {
	CourseID                int64
	LecturerName            string
	WeekOfReporting         string
	DateOfLecture           string
	TopicTaught             string
	LearningOutcomes        string
	LecturerRecommendations string
	ActualPresent           int
}

// PRLReportInput carries a principal lecturer review.
type PRLReportInput struct {
	LecturerReportID int64
	PRLName          string
	Summary          string
	Recommendations  string
	Rating           *int
}

// PLReportInput carries a program leader assessment.
type PLReportInput struct {
	PRLReportID    int64
	PLName         string
	ProgramSummary string
	OverallAssess  string
	Rating         *int
}

// ReportService manages the reporting chain.
type ReportService struct {
	reports    repository.ReportRepository
	dispatcher events.Dispatcher
}

// NewReportService builds the service.
func NewReportService(reports repository.ReportRepository, dispatcher events.Dispatcher) *ReportService {
	return &ReportService{reports: reports, dispatcher: dispatcher}
}

// CreateLecturerReport validates and stores a lecturer report.
func (s *ReportService) CreateLecturerReport(ctx context.Context, actor domain.Role, in LecturerReportInput) (*domain.LecturerReport, error) {
	if in.CourseID <= 0 {
		return nil, apperrors.NewValidationError("course_id required", nil)
	}
	if in.LecturerName == "" || in.WeekOfReporting == "" || in.DateOfLecture == "" || in.TopicTaught == "" {
		return nil, apperrors.NewValidationError("lecturer_name, week_of_reporting, date_of_lecture, topic_taught required", nil)
	}
	if in.ActualPresent < 0 {
		return nil, apperrors.NewValidationError("actual_present cannot be negative", nil)
	}

	report := &domain.LecturerReport{
		CourseID:                in.CourseID,
		LecturerName:            in.LecturerName,
		WeekOfReporting:         in.WeekOfReporting,
		DateOfLecture:           in.DateOfLecture,
		TopicTaught:             in.TopicTaught,
		LearningOutcomes:        in.LearningOutcomes,
		LecturerRecommendations: in.LecturerRecommendations,
		ActualPresent:           in.ActualPresent,
	}
	if err := s.reports.CreateLecturerReport(ctx, report); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishSubmitted(ctx, actor, report.ID, "lecturer", report.CourseID)
	return report, nil
}

// GetLecturerReport fetches a report with its joined course fields.
func (s *ReportService) GetLecturerReport(ctx context.Context, id int64) (*domain.LecturerReport, error) {
	report, err := s.reports.GetLecturerReport(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("report", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return report, nil
}

// ListLecturerReports returns all lecturer reports, newest first.
func (s *ReportService) ListLecturerReports(ctx context.Context) ([]domain.LecturerReport, error) {
	reports, err := s.reports.ListLecturerReports(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return reports, nil
}

// CreatePRLReport validates and stores a PRL review.
func (s *ReportService) CreatePRLReport(ctx context.Context, actor domain.Role, in PRLReportInput) (*domain.PRLReport, error) {
	if in.LecturerReportID <= 0 {
		return nil, apperrors.NewValidationError("lecturer_report_id required", nil)
	}
	if in.PRLName == "" {
		return nil, apperrors.NewValidationError("prl_name required", nil)
	}
	if err := validateOptionalRating(in.Rating); err != nil {
		return nil, err
	}

	report := &domain.PRLReport{
		LecturerReportID: in.LecturerReportID,
		PRLName:          in.PRLName,
		Summary:          in.Summary,
		Recommendations:  in.Recommendations,
		Rating:           in.Rating,
	}
	if err := s.reports.CreatePRLReport(ctx, report); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishSubmitted(ctx, actor, report.ID, "prl", 0)
	return report, nil
}

// GetPRLReport fetches a PRL review by id.
func (s *ReportService) GetPRLReport(ctx context.Context, id int64) (*domain.PRLReport, error) {
	report, err := s.reports.GetPRLReport(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("PRL report", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return report, nil
}

// ListPRLReports returns all PRL reviews, newest first.
func (s *ReportService) ListPRLReports(ctx context.Context) ([]domain.PRLReport, error) {
	reports, err := s.reports.ListPRLReports(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return reports, nil
}

// CreatePLReport validates and stores a program leader assessment.
func (s *ReportService) CreatePLReport(ctx context.Context, actor domain.Role, in PLReportInput) (*domain.PLReport, error) {
	if in.PRLReportID <= 0 {
		return nil, apperrors.NewValidationError("prl_report_id required", nil)
	}
	if in.PLName == "" {
		return nil, apperrors.NewValidationError("pl_name required", nil)
	}
	if err := validateOptionalRating(in.Rating); err != nil {
		return nil, err
	}

	report := &domain.PLReport{
		PRLReportID:    in.PRLReportID,
		PLName:         in.PLName,
		ProgramSummary: in.ProgramSummary,
		OverallAssess:  in.OverallAssess,
		Rating:         in.Rating,
	}
	if err := s.reports.CreatePLReport(ctx, report); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishSubmitted(ctx, actor, report.ID, "pl", 0)
	return report, nil
}

// ListPLReports returns all program leader assessments, newest first.
func (s *ReportService) ListPLReports(ctx context.Context) ([]domain.PLReport, error) {
	reports, err := s.reports.ListPLReports(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return reports, nil
}

func (s *ReportService) publishSubmitted(ctx context.Context, actor domain.Role, reportID int64, tier string, courseID int64) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventReportSubmitted,
		ActorRole: actor,
		Timestamp: time.Now(),
		Payload: events.ReportSubmittedPayload{
			ReportID: reportID,
			Tier:     tier,
			CourseID: courseID,
		},
	})
}

func validateOptionalRating(rating *int) error {
	if rating != nil && (*rating < 1 || *rating > 5) {
		return apperrors.NewValidationError("rating must be between 1 and 5", nil)
	}
	return nil
}
