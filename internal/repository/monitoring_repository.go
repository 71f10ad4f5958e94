package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/reporting-service/internal/domain"
)

// MonitoringRepository defines persistence access for monitoring records.
type MonitoringRepository interface {
	CreateLecturerMonitoring(ctx context.Context, m *domain.LecturerMonitoring) error
	ListLecturerMonitoring(ctx context.Context) ([]domain.LecturerMonitoring, error)

	CreateStudentMonitoring(ctx context.Context, m *domain.StudentMonitoring) error
	ListStudentMonitoring(ctx context.Context) ([]domain.StudentMonitoring, error)

	CreateProgramMonitoring(ctx context.Context, m *domain.ProgramMonitoring) error
	CreateClassOversight(ctx context.Context, o *domain.ClassOversight) error
}

type monitoringRepository struct {
	pool *pgxpool.Pool
}

// NewMonitoringRepository returns a Postgres-backed implementation.
func NewMonitoringRepository(pool *pgxpool.Pool) MonitoringRepository {
	return &monitoringRepository{pool: pool}
}

func (r *monitoringRepository) CreateLecturerMonitoring(ctx context.Context, m *domain.LecturerMonitoring) error {
	const query = `
        INSERT INTO lecturer_monitoring (course_id, monitoring_notes, student_performance_notes, discipline_issues)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		m.CourseID,
		m.MonitoringNotes,
		m.StudentPerformanceNotes,
		m.DisciplineIssues,
	).Scan(&m.ID, &m.CreatedAt)
}

func (r *monitoringRepository) ListLecturerMonitoring(ctx context.Context) ([]domain.LecturerMonitoring, error) {
	const query = `
        SELECT lm.id, lm.course_id, lm.monitoring_notes, lm.student_performance_notes, lm.discipline_issues, lm.created_at,
               c.course_name, c.course_code
        FROM lecturer_monitoring lm
        LEFT JOIN courses c ON lm.course_id = c.id
        ORDER BY lm.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.LecturerMonitoring
	for rows.Next() {
		var m domain.LecturerMonitoring
		if err := rows.Scan(
			&m.ID,
			&m.CourseID,
			&m.MonitoringNotes,
			&m.StudentPerformanceNotes,
			&m.DisciplineIssues,
			&m.CreatedAt,
			&m.CourseName,
			&m.CourseCode,
		); err != nil {
			return nil, err
		}
		records = append(records, m)
	}
	return records, rows.Err()
}

func (r *monitoringRepository) CreateStudentMonitoring(ctx context.Context, m *domain.StudentMonitoring) error {
	const query = `
        INSERT INTO student_monitoring (student_id, course_id, attendance_status, participation_notes, issues_observed)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		m.StudentID,
		m.CourseID,
		m.AttendanceStatus,
		m.ParticipationNotes,
		m.IssuesObserved,
	).Scan(&m.ID, &m.CreatedAt)
}

func (r *monitoringRepository) ListStudentMonitoring(ctx context.Context) ([]domain.StudentMonitoring, error) {
	const query = `
        SELECT sm.id, sm.student_id, sm.course_id, sm.attendance_status, sm.participation_notes, sm.issues_observed, sm.created_at,
               u.name, c.course_name
        FROM student_monitoring sm
        LEFT JOIN users u ON sm.student_id = u.id
        LEFT JOIN courses c ON sm.course_id = c.id
        ORDER BY sm.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.StudentMonitoring
	for rows.Next() {
		var m domain.StudentMonitoring
		if err := rows.Scan(
			&m.ID,
			&m.StudentID,
			&m.CourseID,
			&m.AttendanceStatus,
			&m.ParticipationNotes,
			&m.IssuesObserved,
			&m.CreatedAt,
			&m.StudentName,
			&m.CourseName,
		); err != nil {
			return nil, err
		}
		records = append(records, m)
	}
	return records, rows.Err()
}

func (r *monitoringRepository) CreateProgramMonitoring(ctx context.Context, m *domain.ProgramMonitoring) error {
	const query = `
        INSERT INTO pl_monitoring (program_quality_notes, prl_performance_notes, overall_program_health)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		m.ProgramQualityNotes,
		m.PRLPerformanceNotes,
		m.OverallProgramHealth,
	).Scan(&m.ID, &m.CreatedAt)
}

func (r *monitoringRepository) CreateClassOversight(ctx context.Context, o *domain.ClassOversight) error {
	const query = `
        INSERT INTO pl_classes (prl_id, class_details, oversight_notes)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		o.PRLID,
		o.ClassDetails,
		o.OversightNotes,
	).Scan(&o.ID, &o.CreatedAt)
}
