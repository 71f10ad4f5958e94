package dto

import (
	"time"

	"github.com/spec-kit/reporting-service/internal/domain"
)

// CreateLecturerMonitoringRequest payload for lecturer observations.
type CreateLecturerMonitoringRequest struct {
	CourseID                int64  `json:"course_id"`
	MonitoringNotes         string `json:"monitoring_notes"`
	StudentPerformanceNotes string `json:"student_performance_notes"`
	DisciplineIssues        string `json:"discipline_issues"`
}

// LecturerMonitoringResponse is a lecturer observation with joined fields.
type LecturerMonitoringResponse struct {
	ID                      int64     `json:"id"`
	CourseID                int64     `json:"course_id"`
	MonitoringNotes         string    `json:"monitoring_notes"`
	StudentPerformanceNotes string    `json:"student_performance_notes"`
	DisciplineIssues        string    `json:"discipline_issues"`
	CreatedAt               time.Time `json:"created_at"`
	CourseName              *string   `json:"course_name"`
	CourseCode              *string   `json:"course_code"`
}

// CreateStudentMonitoringRequest payload for student attendance records.
type CreateStudentMonitoringRequest struct {
	StudentID          int64  `json:"student_id"`
	CourseID           int64  `json:"course_id"`
	AttendanceStatus   string `json:"attendance_status"`
	ParticipationNotes string `json:"participation_notes"`
	IssuesObserved     string `json:"issues_observed"`
}

// StudentMonitoringResponse is a student attendance record with joined fields.
type StudentMonitoringResponse struct {
	ID                 int64     `json:"id"`
	StudentID          int64     `json:"student_id"`
	CourseID           int64     `json:"course_id"`
	AttendanceStatus   string    `json:"attendance_status"`
	ParticipationNotes string    `json:"participation_notes"`
	IssuesObserved     string    `json:"issues_observed"`
	CreatedAt          time.Time `json:"created_at"`
	StudentName        *string   `json:"student_name"`
	CourseName         *string   `json:"course_name"`
}

// CreateProgramMonitoringRequest payload for program quality notes.
type CreateProgramMonitoringRequest struct {
	ProgramQualityNotes  string `json:"program_quality_notes"`
	PRLPerformanceNotes  string `json:"prl_performance_notes"`
	OverallProgramHealth string `json:"overall_program_health"`
}

// CreateClassOversightRequest payload for class oversight notes.
type CreateClassOversightRequest struct {
	PRLID          int64  `json:"prl_id"`
	ClassDetails   string `json:"class_details"`
	OversightNotes string `json:"oversight_notes"`
}

// FromLecturerMonitoring maps a lecturer observation to its response view.
func FromLecturerMonitoring(m *domain.LecturerMonitoring) LecturerMonitoringResponse {
	return LecturerMonitoringResponse{
		ID:                      m.ID,
		CourseID:                m.CourseID,
		MonitoringNotes:         m.MonitoringNotes,
		StudentPerformanceNotes: m.StudentPerformanceNotes,
		DisciplineIssues:        m.DisciplineIssues,
		CreatedAt:               m.CreatedAt,
		CourseName:              m.CourseName,
		CourseCode:              m.CourseCode,
	}
}

// FromStudentMonitoring maps a student attendance record to its response view.
func FromStudentMonitoring(m *domain.StudentMonitoring) StudentMonitoringResponse {
	return StudentMonitoringResponse{
		ID:                 m.ID,
		StudentID:          m.StudentID,
		CourseID:           m.CourseID,
		AttendanceStatus:   m.AttendanceStatus,
		ParticipationNotes: m.ParticipationNotes,
		IssuesObserved:     m.IssuesObserved,
		CreatedAt:          m.CreatedAt,
		StudentName:        m.StudentName,
		CourseName:         m.CourseName,
	}
}
