package domain

import "time"

// LecturerReport is a weekly lecture report filed by a lecturer.
type LecturerReport struct {
	ID                      int64
	CourseID                int64
	LecturerName            string
	WeekOfReporting         string
	DateOfLecture           string
	TopicTaught             string
	LearningOutcomes        string
	LecturerRecommendations string
	ActualPresent           int
	CreatedAt               time.Time

	// Joined course fields, populated by list/get queries.
	CourseName  *string
	CourseCode  *string
	FacultyName *string
	ClassName   *string
}

// PRLReport is a principal lecturer's review of a lecturer report.
type PRLReport struct {
	ID               int64
	LecturerReportID int64
	PRLName          string
	Summary          string
	Recommendations  string
	Rating           *int
	CreatedAt        time.Time

	// Joined fields from the underlying lecturer report and its course.
	LecturerName            *string
	WeekOfReporting         *string
	DateOfLecture           *string
	TopicTaught             *string
	LearningOutcomes        *string
	LecturerRecommendations *string
	ActualPresent           *int
	CourseName              *string
	CourseCode              *string
	FacultyName             *string
	ClassName               *string
}

// PLReport is the program leader's final assessment over a PRL report.
type PLReport struct {
	ID             int64
	PRLReportID    int64
	PLName         string
	ProgramSummary string
	OverallAssess  string
	Rating         *int
	CreatedAt      time.Time

	// Joined fields.
	PRLName      *string
	LecturerName *string
	CourseName   *string
}
