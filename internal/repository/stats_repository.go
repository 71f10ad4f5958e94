package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DashboardStats aggregates record counts shown on the landing dashboard.
type DashboardStats struct {
	Courses    int64 `json:"courses"`
	Reports    int64 `json:"reports"`
	PRLReports int64 `json:"prl_reports"`
	Users      int64 `json:"users"`
}

// SummaryStats extends the dashboard counters with the figures used by the
// summary export sheet.
type SummaryStats struct {
	Courses                  int64
	LecturerReports          int64
	PRLReports               int64
	PLReports                int64
	StudentMonitoringRecords int64
	StudentRatings           int64
	AvgPRLRating             float64
	AvgPLRating              float64
	AvgStudentLecturerRating float64
	AvgStudentCourseRating   float64
}

// FacultyReportCount is one row of the reports-by-faculty breakdown.
type FacultyReportCount struct {
	FacultyName string `json:"faculty_name"`
	ReportCount int64  `json:"report_count"`
}

// StatsRepository runs the aggregate queries behind dashboards and exports.
type StatsRepository interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	SummaryStats(ctx context.Context) (*SummaryStats, error)
	ReportsByFaculty(ctx context.Context) ([]FacultyReportCount, error)
}

type statsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository returns a Postgres-backed implementation.
func NewStatsRepository(pool *pgxpool.Pool) StatsRepository {
	return &statsRepository{pool: pool}
}

func (r *statsRepository) count(ctx context.Context, table string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n)
	return n, err
}

func (r *statsRepository) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error
	if stats.Courses, err = r.count(ctx, "courses"); err != nil {
		return nil, err
	}
	if stats.Reports, err = r.count(ctx, "reports"); err != nil {
		return nil, err
	}
	if stats.PRLReports, err = r.count(ctx, "prl_reports"); err != nil {
		return nil, err
	}
	if stats.Users, err = r.count(ctx, "users"); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *statsRepository) SummaryStats(ctx context.Context) (*SummaryStats, error) {
	stats := &SummaryStats{}
	var err error
	if stats.Courses, err = r.count(ctx, "courses"); err != nil {
		return nil, err
	}
	if stats.LecturerReports, err = r.count(ctx, "reports"); err != nil {
		return nil, err
	}
	if stats.PRLReports, err = r.count(ctx, "prl_reports"); err != nil {
		return nil, err
	}
	if stats.PLReports, err = r.count(ctx, "pl_reports"); err != nil {
		return nil, err
	}
	if stats.StudentMonitoringRecords, err = r.count(ctx, "student_monitoring"); err != nil {
		return nil, err
	}
	if stats.StudentRatings, err = r.count(ctx, "student_ratings"); err != nil {
		return nil, err
	}

	const avgQuery = `
        SELECT COALESCE((SELECT AVG(rating) FROM prl_reports WHERE rating IS NOT NULL), 0),
               COALESCE((SELECT AVG(rating) FROM pl_reports WHERE rating IS NOT NULL), 0),
               COALESCE((SELECT AVG(lecturer_rating) FROM student_ratings), 0),
               COALESCE((SELECT AVG(course_rating) FROM student_ratings), 0)`
	if err := r.pool.QueryRow(ctx, avgQuery).Scan(
		&stats.AvgPRLRating,
		&stats.AvgPLRating,
		&stats.AvgStudentLecturerRating,
		&stats.AvgStudentCourseRating,
	); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *statsRepository) ReportsByFaculty(ctx context.Context) ([]FacultyReportCount, error) {
	const query = `
        SELECT c.faculty_name, COUNT(r.id) AS report_count
        FROM courses c
        LEFT JOIN reports r ON c.id = r.course_id
        GROUP BY c.faculty_name
        ORDER BY report_count DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []FacultyReportCount
	for rows.Next() {
		var fc FacultyReportCount
		if err := rows.Scan(&fc.FacultyName, &fc.ReportCount); err != nil {
			return nil, err
		}
		counts = append(counts, fc)
	}
	return counts, rows.Err()
}
