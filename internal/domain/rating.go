package domain

import "time"

// LecturerRating is a lecturer's rating of a course they teach.
type LecturerRating struct {
	ID                    int64
	CourseID              int64
	StudentRating         int
	CourseStructureRating int
	OverallRating         int
	Comments              string
	CreatedAt             time.Time

	CourseName *string
	CourseCode *string
}

// StudentRating is a student's rating of a lecturer and course.
type StudentRating struct {
	ID             int64
	StudentID      int64
	CourseID       int64
	LecturerRating int
	CourseRating   int
	Comments       string
	CreatedAt      time.Time

	StudentName *string
	CourseName  *string
}

// ProgramRating is the program leader's rating of a principal lecturer.
type ProgramRating struct {
	ID                   int64
	PRLID                int64
	ProgramRating        int
	PRLPerformanceRating int
	Comments             string
	CreatedAt            time.Time
}
