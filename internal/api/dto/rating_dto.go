package dto

import (
	"time"

	"github.com/spec-kit/reporting-service/internal/domain"
)

// CreateLecturerRatingRequest payload for lecturer course ratings.
type CreateLecturerRatingRequest struct {
	CourseID              int64  `json:"course_id"`
	StudentRating         int    `json:"student_rating"`
	CourseStructureRating int    `json:"course_structure_rating"`
	OverallRating         int    `json:"overall_rating"`
	Comments              string `json:"comments"`
}

// LecturerRatingResponse is a lecturer rating with joined fields.
type LecturerRatingResponse struct {
	ID                    int64     `json:"id"`
	CourseID              int64     `json:"course_id"`
	StudentRating         int       `json:"student_rating"`
	CourseStructureRating int       `json:"course_structure_rating"`
	OverallRating         int       `json:"overall_rating"`
	Comments              string    `json:"comments"`
	CreatedAt             time.Time `json:"created_at"`
	CourseName            *string   `json:"course_name"`
	CourseCode            *string   `json:"course_code"`
}

// CreateStudentRatingRequest payload for student ratings.
type CreateStudentRatingRequest struct {
	StudentID      int64  `json:"student_id"`
	CourseID       int64  `json:"course_id"`
	LecturerRating int    `json:"lecturer_rating"`
	CourseRating   int    `json:"course_rating"`
	Comments       string `json:"comments"`
}

// StudentRatingResponse is a student rating with joined fields.
type StudentRatingResponse struct {
	ID             int64     `json:"id"`
	StudentID      int64     `json:"student_id"`
	CourseID       int64     `json:"course_id"`
	LecturerRating int       `json:"lecturer_rating"`
	CourseRating   int       `json:"course_rating"`
	Comments       string    `json:"comments"`
	CreatedAt      time.Time `json:"created_at"`
	StudentName    *string   `json:"student_name"`
	CourseName     *string   `json:"course_name"`
}

// CreateProgramRatingRequest payload for program leader ratings of a PRL.
type CreateProgramRatingRequest struct {
	PRLID                int64  `json:"prl_id"`
	ProgramRating        int    `json:"program_rating"`
	PRLPerformanceRating int    `json:"prl_performance_rating"`
	Comments             string `json:"comments"`
}

// FromLecturerRating maps a lecturer rating to its response view.
func FromLecturerRating(r *domain.LecturerRating) LecturerRatingResponse {
	return LecturerRatingResponse{
		ID:                    r.ID,
		CourseID:              r.CourseID,
		StudentRating:         r.StudentRating,
		CourseStructureRating: r.CourseStructureRating,
		OverallRating:         r.OverallRating,
		Comments:              r.Comments,
		CreatedAt:             r.CreatedAt,
		CourseName:            r.CourseName,
		CourseCode:            r.CourseCode,
	}
}

// FromStudentRating maps a student rating to its response view.
func FromStudentRating(r *domain.StudentRating) StudentRatingResponse {
	return StudentRatingResponse{
		ID:             r.ID,
		StudentID:      r.StudentID,
		CourseID:       r.CourseID,
		LecturerRating: r.LecturerRating,
		CourseRating:   r.CourseRating,
		Comments:       r.Comments,
		CreatedAt:      r.CreatedAt,
		StudentName:    r.StudentName,
		CourseName:     r.CourseName,
	}
}
