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

// LecturerMonitoringInput carries lecturer classroom observations.
type LecturerMonitoringInput struct {
	CourseID                int64
	MonitoringNotes         string
	StudentPerformanceNotes string
	DisciplineIssues        string
}

// StudentMonitoringInput carries a student attendance record.
type StudentMonitoringInput struct {
	StudentID          int64
	CourseID           int64
	AttendanceStatus   string
	ParticipationNotes string
	IssuesObserved     string
}

// ProgramMonitoringInput carries program leader quality notes.
type ProgramMonitoringInput struct {
	ProgramQualityNotes  string
	PRLPerformanceNotes  string
	OverallProgramHealth string
}

// ClassOversightInput carries program leader class oversight notes.
type ClassOversightInput struct {
	PRLID          int64
	ClassDetails   string
	OversightNotes string
}

// MonitoringService manages monitoring records for every role.
type MonitoringService struct {
	monitoring repository.MonitoringRepository
	dispatcher events.Dispatcher
}

// NewMonitoringService builds the service.
func NewMonitoringService(monitoring repository.MonitoringRepository, dispatcher events.Dispatcher) *MonitoringService {
	return &MonitoringService{monitoring: monitoring, dispatcher: dispatcher}
}

// RecordLecturerMonitoring stores lecturer observations for a course.
func (s *MonitoringService) RecordLecturerMonitoring(ctx context.Context, actor domain.Role, in LecturerMonitoringInput) (*domain.LecturerMonitoring, error) {
	if in.CourseID <= 0 {
		return nil, apperrors.NewValidationError("course_id required", nil)
	}

	m := &domain.LecturerMonitoring{
		CourseID:                in.CourseID,
		MonitoringNotes:         in.MonitoringNotes,
		StudentPerformanceNotes: in.StudentPerformanceNotes,
		DisciplineIssues:        in.DisciplineIssues,
	}
	if err := s.monitoring.CreateLecturerMonitoring(ctx, m); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishFeedback(ctx, actor, m.ID, "lecturer_monitoring")
	return m, nil
}

// ListLecturerMonitoring lists lecturer observations, newest first.
func (s *MonitoringService) ListLecturerMonitoring(ctx context.Context) ([]domain.LecturerMonitoring, error) {
	records, err := s.monitoring.ListLecturerMonitoring(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return records, nil
}

// RecordStudentMonitoring stores a student attendance record.
func (s *MonitoringService) RecordStudentMonitoring(ctx context.Context, actor domain.Role, in StudentMonitoringInput) (*domain.StudentMonitoring, error) {
	if in.StudentID <= 0 || in.CourseID <= 0 {
		return nil, apperrors.NewValidationError("student_id and course_id required", nil)
	}

	m := &domain.StudentMonitoring{
		StudentID:          in.StudentID,
		CourseID:           in.CourseID,
		AttendanceStatus:   in.AttendanceStatus,
		ParticipationNotes: in.ParticipationNotes,
		IssuesObserved:     in.IssuesObserved,
	}
	if err := s.monitoring.CreateStudentMonitoring(ctx, m); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishFeedback(ctx, actor, m.ID, "student_monitoring")
	return m, nil
}

// ListStudentMonitoring lists student attendance records, newest first.
func (s *MonitoringService) ListStudentMonitoring(ctx context.Context) ([]domain.StudentMonitoring, error) {
	records, err := s.monitoring.ListStudentMonitoring(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return records, nil
}

// RecordProgramMonitoring stores program leader quality notes.
func (s *MonitoringService) RecordProgramMonitoring(ctx context.Context, actor domain.Role, in ProgramMonitoringInput) (*domain.ProgramMonitoring, error) {
	m := &domain.ProgramMonitoring{
		ProgramQualityNotes:  in.ProgramQualityNotes,
		PRLPerformanceNotes:  in.PRLPerformanceNotes,
		OverallProgramHealth: in.OverallProgramHealth,
	}
	if err := s.monitoring.CreateProgramMonitoring(ctx, m); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishFeedback(ctx, actor, m.ID, "pl_monitoring")
	return m, nil
}

// RecordClassOversight stores program leader oversight notes.
func (s *MonitoringService) RecordClassOversight(ctx context.Context, actor domain.Role, in ClassOversightInput) (*domain.ClassOversight, error) {
	if in.PRLID <= 0 {
		return nil, apperrors.NewValidationError("prl_id required", nil)
	}

	o := &domain.ClassOversight{
		PRLID:          in.PRLID,
		ClassDetails:   in.ClassDetails,
		OversightNotes: in.OversightNotes,
	}
	if err := s.monitoring.CreateClassOversight(ctx, o); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishFeedback(ctx, actor, o.ID, "pl_classes")
	return o, nil
}

func (s *MonitoringService) publishFeedback(ctx context.Context, actor domain.Role, recordID int64, kind string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventFeedbackRecorded,
		ActorRole: actor,
		Timestamp: time.Now(),
		Payload: events.FeedbackRecordedPayload{
			RecordID: recordID,
			Kind:     kind,
		},
	})
}
