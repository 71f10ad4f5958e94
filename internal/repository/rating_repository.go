package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/reporting-service/internal/domain"
)

// RatingRepository defines persistence access for ratings.
type RatingRepository interface {
	CreateLecturerRating(ctx context.Context, rating *domain.LecturerRating) error
	ListLecturerRatings(ctx context.Context) ([]domain.LecturerRating, error)

	CreateStudentRating(ctx context.Context, rating *domain.StudentRating) error
	ListStudentRatings(ctx context.Context) ([]domain.StudentRating, error)

	CreateProgramRating(ctx context.Context, rating *domain.ProgramRating) error
}

type ratingRepository struct {
	pool *pgxpool.Pool
}

// NewRatingRepository returns a Postgres-backed implementation.
func NewRatingRepository(pool *pgxpool.Pool) RatingRepository {
	return &ratingRepository{pool: pool}
}

func (r *ratingRepository) CreateLecturerRating(ctx context.Context, rating *domain.LecturerRating) error {
	const query = `
        INSERT INTO lecturer_rating (course_id, student_rating, course_structure_rating, overall_rating, comments)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		rating.CourseID,
		rating.StudentRating,
		rating.CourseStructureRating,
		rating.OverallRating,
		rating.Comments,
	).Scan(&rating.ID, &rating.CreatedAt)
}

func (r *ratingRepository) ListLecturerRatings(ctx context.Context) ([]domain.LecturerRating, error) {
	const query = `
        SELECT lr.id, lr.course_id, lr.student_rating, lr.course_structure_rating, lr.overall_rating, lr.comments, lr.created_at,
               c.course_name, c.course_code
        FROM lecturer_rating lr
        LEFT JOIN courses c ON lr.course_id = c.id
        ORDER BY lr.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []domain.LecturerRating
	for rows.Next() {
		var rating domain.LecturerRating
		if err := rows.Scan(
			&rating.ID,
			&rating.CourseID,
			&rating.StudentRating,
			&rating.CourseStructureRating,
			&rating.OverallRating,
			&rating.Comments,
			&rating.CreatedAt,
			&rating.CourseName,
			&rating.CourseCode,
		); err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	return ratings, rows.Err()
}

func (r *ratingRepository) CreateStudentRating(ctx context.Context, rating *domain.StudentRating) error {
	const query = `
        INSERT INTO student_ratings (student_id, course_id, lecturer_rating, course_rating, comments)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		rating.StudentID,
		rating.CourseID,
		rating.LecturerRating,
		rating.CourseRating,
		rating.Comments,
	).Scan(&rating.ID, &rating.CreatedAt)
}

func (r *ratingRepository) ListStudentRatings(ctx context.Context) ([]domain.StudentRating, error) {
	const query = `
        SELECT sr.id, sr.student_id, sr.course_id, sr.lecturer_rating, sr.course_rating, sr.comments, sr.created_at,
               u.name, c.course_name
        FROM student_ratings sr
        LEFT JOIN users u ON sr.student_id = u.id
        LEFT JOIN courses c ON sr.course_id = c.id
        ORDER BY sr.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []domain.StudentRating
	for rows.Next() {
		var rating domain.StudentRating
		if err := rows.Scan(
			&rating.ID,
			&rating.StudentID,
			&rating.CourseID,
			&rating.LecturerRating,
			&rating.CourseRating,
			&rating.Comments,
			&rating.CreatedAt,
			&rating.StudentName,
			&rating.CourseName,
		); err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	return ratings, rows.Err()
}

func (r *ratingRepository) CreateProgramRating(ctx context.Context, rating *domain.ProgramRating) error {
	const query = `
        INSERT INTO pl_rating (prl_id, program_rating, prl_performance_rating, comments)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		rating.PRLID,
		rating.ProgramRating,
		rating.PRLPerformanceRating,
		rating.Comments,
	).Scan(&rating.ID, &rating.CreatedAt)
}
