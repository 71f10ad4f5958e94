package dto

import (
	"time"

	"github.com/spec-kit/reporting-service/internal/domain"
)

// CreateCourseRequest payload for new courses.
type CreateCourseRequest struct {
	FacultyName     string `json:"faculty_name"`
	ClassName       string `json:"class_name"`
	CourseName      string `json:"course_name"`
	CourseCode      string `json:"course_code"`
	Venue           string `json:"venue"`
	ScheduledTime   string `json:"scheduled_time"`
	TotalRegistered int    `json:"total_registered"`
}

// CourseResponse is the public view of a course.
type CourseResponse struct {
	ID              int64     `json:"id"`
	FacultyName     string    `json:"faculty_name"`
	ClassName       string    `json:"class_name"`
	CourseName      string    `json:"course_name"`
	CourseCode      string    `json:"course_code"`
	Venue           string    `json:"venue"`
	ScheduledTime   string    `json:"scheduled_time"`
	TotalRegistered int       `json:"total_registered"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateProgramCourseRequest payload for program course assignments.
type CreateProgramCourseRequest struct {
	ProgramName    string `json:"program_name"`
	CourseCode     string `json:"course_code"`
	CourseName     string `json:"course_name"`
	PRLResponsible string `json:"prl_responsible"`
}

// FromCourse maps a domain course to its public view.
func FromCourse(course *domain.Course) CourseResponse {
	return CourseResponse{
		ID:              course.ID,
		FacultyName:     course.FacultyName,
		ClassName:       course.ClassName,
		CourseName:      course.CourseName,
		CourseCode:      course.CourseCode,
		Venue:           course.Venue,
		ScheduledTime:   course.ScheduledTime,
		TotalRegistered: course.TotalRegistered,
		CreatedAt:       course.CreatedAt,
	}
}
