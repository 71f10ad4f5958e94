package dto

import (
	"time"

	"github.com/spec-kit/reporting-service/internal/domain"
)

// CreateLecturerReportRequest payload for lecturer reports.
type CreateLecturerReportRequest struct {
	CourseID                int64  `json:"course_id"`
	LecturerName            string `json:"lecturer_name"`
	WeekOfReporting         string `json:"week_of_reporting"`
	DateOfLecture           string `json:"date_of_lecture"`
	TopicTaught             string `json:"topic_taught"`
	LearningOutcomes        string `json:"learning_outcomes"`
	LecturerRecommendations string `json:"lecturer_recommendations"`
	ActualPresent           int    `json:"actual_present"`
}

// LecturerReportResponse is a lecturer report with joined course fields.
type LecturerReportResponse struct {
	ID                      int64     `json:"id"`
	CourseID                int64     `json:"course_id"`
	LecturerName            string    `json:"lecturer_name"`
	WeekOfReporting         string    `json:"week_of_reporting"`
	DateOfLecture           string    `json:"date_of_lecture"`
	TopicTaught             string    `json:"topic_taught"`
	LearningOutcomes        string    `json:"learning_outcomes"`
	LecturerRecommendations string    `json:"lecturer_recommendations"`
	ActualPresent           int       `json:"actual_present"`
	CreatedAt               time.Time `json:"created_at"`
	CourseName              *string   `json:"course_name"`
	CourseCode              *string   `json:"course_code"`
	FacultyName             *string   `json:"faculty_name"`
	ClassName               *string   `json:"class_name"`
}

// CreatePRLReportRequest payload for PRL reviews.
type CreatePRLReportRequest struct {
	LecturerReportID int64  `json:"lecturer_report_id"`
	PRLName          string `json:"prl_name"`
	Summary          string `json:"summary"`
	Recommendations  string `json:"recommendations"`
	Rating           *int   `json:"rating"`
}

// PRLReportResponse is a PRL review with joined fields.
type PRLReportResponse struct {
	ID               int64     `json:"id"`
	LecturerReportID int64     `json:"lecturer_report_id"`
	PRLName          string    `json:"prl_name"`
	Summary          string    `json:"summary"`
	Recommendations  string    `json:"recommendations"`
	Rating           *int      `json:"rating"`
	CreatedAt        time.Time `json:"created_at"`
	LecturerName     *string   `json:"lecturer_name"`
	WeekOfReporting  *string   `json:"week_of_reporting"`
	CourseName       *string   `json:"course_name"`
}

// CreatePLReportRequest payload for program leader assessments.
type CreatePLReportRequest struct {
	PRLReportID    int64  `json:"prl_report_id"`
	PLName         string `json:"pl_name"`
	ProgramSummary string `json:"program_summary"`
	OverallAssess  string `json:"overall_assessment"`
	Rating         *int   `json:"rating"`
}

// PLReportResponse is a program leader assessment with joined fields.
type PLReportResponse struct {
	ID             int64     `json:"id"`
	PRLReportID    int64     `json:"prl_report_id"`
	PLName         string    `json:"pl_name"`
	ProgramSummary string    `json:"program_summary"`
	OverallAssess  string    `json:"overall_assessment"`
	Rating         *int      `json:"rating"`
	CreatedAt      time.Time `json:"created_at"`
	PRLName        *string   `json:"prl_name"`
	LecturerName   *string   `json:"lecturer_name"`
	CourseName     *string   `json:"course_name"`
}

// FromLecturerReport maps a domain report to its response view.
func FromLecturerReport(r *domain.LecturerReport) LecturerReportResponse {
	return LecturerReportResponse{
		ID:                      r.ID,
		CourseID:                r.CourseID,
		LecturerName:            r.LecturerName,
		WeekOfReporting:         r.WeekOfReporting,
		DateOfLecture:           r.DateOfLecture,
		TopicTaught:             r.TopicTaught,
		LearningOutcomes:        r.LearningOutcomes,
		LecturerRecommendations: r.LecturerRecommendations,
		ActualPresent:           r.ActualPresent,
		CreatedAt:               r.CreatedAt,
		CourseName:              r.CourseName,
		CourseCode:              r.CourseCode,
		FacultyName:             r.FacultyName,
		ClassName:               r.ClassName,
	}
}

// FromPRLReport maps a PRL review to its response view.
func FromPRLReport(r *domain.PRLReport) PRLReportResponse {
	return PRLReportResponse{
		ID:               r.ID,
		LecturerReportID: r.LecturerReportID,
		PRLName:          r.PRLName,
		Summary:          r.Summary,
		Recommendations:  r.Recommendations,
		Rating:           r.Rating,
		CreatedAt:        r.CreatedAt,
		LecturerName:     r.LecturerName,
		WeekOfReporting:  r.WeekOfReporting,
		CourseName:       r.CourseName,
	}
}

// FromPLReport maps a program leader assessment to its response view.
func FromPLReport(r *domain.PLReport) PLReportResponse {
	return PLReportResponse{
		ID:             r.ID,
		PRLReportID:    r.PRLReportID,
		PLName:         r.PLName,
		ProgramSummary: r.ProgramSummary,
		OverallAssess:  r.OverallAssess,
		Rating:         r.Rating,
		CreatedAt:      r.CreatedAt,
		PRLName:        r.PRLName,
		LecturerName:   r.LecturerName,
		CourseName:     r.CourseName,
	}
}
