package domain

import "time"

// LecturerMonitoring captures a lecturer's classroom observations for a course.
type LecturerMonitoring struct {
	ID                      int64
	CourseID                int64
	MonitoringNotes         string
	StudentPerformanceNotes string
	DisciplineIssues        string
	CreatedAt               time.Time

	CourseName *string
	CourseCode *string
}

// StudentMonitoring is a student's attendance and participation record.
type StudentMonitoring struct {
	ID                 int64
	StudentID          int64
	CourseID           int64
	AttendanceStatus   string
	ParticipationNotes string
	IssuesObserved     string
	CreatedAt          time.Time

	StudentName *string
	CourseName  *string
}

// ProgramMonitoring holds a program leader's quality notes across the program.
type ProgramMonitoring struct {
	ID                   int64
	ProgramQualityNotes  string
	PRLPerformanceNotes  string
	OverallProgramHealth string
	CreatedAt            time.Time
}

// ClassOversight records a program leader's oversight of a PRL's classes.
type ClassOversight struct {
	ID             int64
	PRLID          int64
	ClassDetails   string
	OversightNotes string
	CreatedAt      time.Time
}
