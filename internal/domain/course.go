package domain

import "time"

// Course models a taught course within a faculty class.
type Course struct {
	ID              int64
	FacultyName     string
	ClassName       string
	CourseName      string
	CourseCode      string
	Venue           string
	ScheduledTime   string
	TotalRegistered int
	CreatedAt       time.Time
}

// ProgramCourse is a program-leader level course assignment linking a course
// to the principal lecturer responsible for it.
type ProgramCourse struct {
	ID             int64
	ProgramName    string
	CourseCode     string
	CourseName     string
	PRLResponsible string
	CreatedAt      time.Time
}
