package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/reporting-service/internal/domain"
)

// CourseRepository defines persistence access for courses.
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) error
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
	List(ctx context.Context) ([]domain.Course, error)
	CreateProgramCourse(ctx context.Context, pc *domain.ProgramCourse) error
}

type courseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository returns a Postgres-backed implementation.
func NewCourseRepository(pool *pgxpool.Pool) CourseRepository {
	return &courseRepository{pool: pool}
}

func (r *courseRepository) Create(ctx context.Context, course *domain.Course) error {
	const query = `
        INSERT INTO courses (faculty_name, class_name, course_name, course_code, venue, scheduled_time, total_registered)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		course.FacultyName,
		course.ClassName,
		course.CourseName,
		course.CourseCode,
		course.Venue,
		course.ScheduledTime,
		course.TotalRegistered,
	).Scan(&course.ID, &course.CreatedAt)
}

func (r *courseRepository) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	const query = `
        SELECT id, faculty_name, class_name, course_name, course_code, venue, scheduled_time, total_registered, created_at
        FROM courses WHERE id=$1`

	var course domain.Course
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.FacultyName,
		&course.ClassName,
		&course.CourseName,
		&course.CourseCode,
		&course.Venue,
		&course.ScheduledTime,
		&course.TotalRegistered,
		&course.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) List(ctx context.Context) ([]domain.Course, error) {
	const query = `
        SELECT id, faculty_name, class_name, course_name, course_code, venue, scheduled_time, total_registered, created_at
        FROM courses ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var course domain.Course
		if err := rows.Scan(
			&course.ID,
			&course.FacultyName,
			&course.ClassName,
			&course.CourseName,
			&course.CourseCode,
			&course.Venue,
			&course.ScheduledTime,
			&course.TotalRegistered,
			&course.CreatedAt,
		); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

func (r *courseRepository) CreateProgramCourse(ctx context.Context, pc *domain.ProgramCourse) error {
	const query = `
        INSERT INTO pl_courses (program_name, course_code, course_name, prl_responsible)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		pc.ProgramName,
		pc.CourseCode,
		pc.CourseName,
		pc.PRLResponsible,
	).Scan(&pc.ID, &pc.CreatedAt)
}
