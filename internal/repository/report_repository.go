package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/reporting-service/internal/domain"
)

// ReportRepository defines persistence access for the three report tiers:
// lecturer reports, PRL reviews over them, and PL assessments over those.
type ReportRepository interface {
	CreateLecturerReport(ctx context.Context, report *domain.LecturerReport) error
	GetLecturerReport(ctx context.Context, id int64) (*domain.LecturerReport, error)
	ListLecturerReports(ctx context.Context) ([]domain.LecturerReport, error)

	CreatePRLReport(ctx context.Context, report *domain.PRLReport) error
	GetPRLReport(ctx context.Context, id int64) (*domain.PRLReport, error)
	ListPRLReports(ctx context.Context) ([]domain.PRLReport, error)

	CreatePLReport(ctx context.Context, report *domain.PLReport) error
	ListPLReports(ctx context.Context) ([]domain.PLReport, error)
}

type reportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository returns a Postgres-backed implementation.
func NewReportRepository(pool *pgxpool.Pool) ReportRepository {
	return &reportRepository{pool: pool}
}

func (r *reportRepository) CreateLecturerReport(ctx context.Context, report *domain.LecturerReport) error {
	const query = `
        INSERT INTO reports (course_id, lecturer_name, week_of_reporting, date_of_lecture, topic_taught, learning_outcomes, lecturer_recommendations, actual_present)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		report.CourseID,
		report.LecturerName,
		report.WeekOfReporting,
		report.DateOfLecture,
		report.TopicTaught,
		report.LearningOutcomes,
		report.LecturerRecommendations,
		report.ActualPresent,
	).Scan(&report.ID, &report.CreatedAt)
}

const lecturerReportSelect = `
    SELECT r.id, r.course_id, r.lecturer_name, r.week_of_reporting, r.date_of_lecture,
           r.topic_taught, r.learning_outcomes, r.lecturer_recommendations, r.actual_present, r.created_at,
           c.course_name, c.course_code, c.faculty_name, c.class_name
    FROM reports r
    LEFT JOIN courses c ON r.course_id = c.id`

func scanLecturerReport(row interface{ Scan(...any) error }) (*domain.LecturerReport, error) {
	var report domain.LecturerReport
	if err := row.Scan(
		&report.ID,
		&report.CourseID,
		&report.LecturerName,
		&report.WeekOfReporting,
		&report.DateOfLecture,
		&report.TopicTaught,
		&report.LearningOutcomes,
		&report.LecturerRecommendations,
		&report.ActualPresent,
		&report.CreatedAt,
		&report.CourseName,
		&report.CourseCode,
		&report.FacultyName,
		&report.ClassName,
	); err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) GetLecturerReport(ctx context.Context, id int64) (*domain.LecturerReport, error) {
	const query = lecturerReportSelect + ` WHERE r.id = $1`
	return scanLecturerReport(r.pool.QueryRow(ctx, query, id))
}

func (r *reportRepository) ListLecturerReports(ctx context.Context) ([]domain.LecturerReport, error) {
	const query = lecturerReportSelect + ` ORDER BY r.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []domain.LecturerReport
	for rows.Next() {
		report, err := scanLecturerReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}
	return reports, rows.Err()
}

func (r *reportRepository) CreatePRLReport(ctx context.Context, report *domain.PRLReport) error {
	const query = `
        INSERT INTO prl_reports (lecturer_report_id, prl_name, summary, recommendations, rating)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		report.LecturerReportID,
		report.PRLName,
		report.Summary,
		report.Recommendations,
		report.Rating,
	).Scan(&report.ID, &report.CreatedAt)
}

const prlReportSelect = `
    SELECT pr.id, pr.lecturer_report_id, pr.prl_name, pr.summary, pr.recommendations, pr.rating, pr.created_at,
           r.lecturer_name, r.week_of_reporting, r.date_of_lecture, r.topic_taught, r.learning_outcomes,
           r.lecturer_recommendations, r.actual_present,
           c.course_name, c.course_code, c.faculty_name, c.class_name
    FROM prl_reports pr
    LEFT JOIN reports r ON pr.lecturer_report_id = r.id
    LEFT JOIN courses c ON r.course_id = c.id`

func scanPRLReport(row interface{ Scan(...any) error }) (*domain.PRLReport, error) {
	var report domain.PRLReport
	if err := row.Scan(
		&report.ID,
		&report.LecturerReportID,
		&report.PRLName,
		&report.Summary,
		&report.Recommendations,
		&report.Rating,
		&report.CreatedAt,
		&report.LecturerName,
		&report.WeekOfReporting,
		&report.DateOfLecture,
		&report.TopicTaught,
		&report.LearningOutcomes,
		&report.LecturerRecommendations,
		&report.ActualPresent,
		&report.CourseName,
		&report.CourseCode,
		&report.FacultyName,
		&report.ClassName,
	); err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) GetPRLReport(ctx context.Context, id int64) (*domain.PRLReport, error) {
	const query = prlReportSelect + ` WHERE pr.id = $1`
	return scanPRLReport(r.pool.QueryRow(ctx, query, id))
}

func (r *reportRepository) ListPRLReports(ctx context.Context) ([]domain.PRLReport, error) {
	const query = prlReportSelect + ` ORDER BY pr.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []domain.PRLReport
	for rows.Next() {
		report, err := scanPRLReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}
	return reports, rows.Err()
}

func (r *reportRepository) CreatePLReport(ctx context.Context, report *domain.PLReport) error {
	const query = `
        INSERT INTO pl_reports (prl_report_id, pl_name, program_summary, overall_assessment, rating)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		report.PRLReportID,
		report.PLName,
		report.ProgramSummary,
		report.OverallAssess,
		report.Rating,
	).Scan(&report.ID, &report.CreatedAt)
}

func (r *reportRepository) ListPLReports(ctx context.Context) ([]domain.PLReport, error) {
	const query = `
        SELECT pl.id, pl.prl_report_id, pl.pl_name, pl.program_summary, pl.overall_assessment, pl.rating, pl.created_at,
               pr.prl_name, r.lecturer_name, c.course_name
        FROM pl_reports pl
        LEFT JOIN prl_reports pr ON pl.prl_report_id = pr.id
        LEFT JOIN reports r ON pr.lecturer_report_id = r.id
        LEFT JOIN courses c ON r.course_id = c.id
        ORDER BY pl.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []domain.PLReport
	for rows.Next() {
		var report domain.PLReport
		if err := rows.Scan(
			&report.ID,
			&report.PRLReportID,
			&report.PLName,
			&report.ProgramSummary,
			&report.OverallAssess,
			&report.Rating,
			&report.CreatedAt,
			&report.PRLName,
			&report.LecturerName,
			&report.CourseName,
		); err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}
