package course

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"tutorhub/internal/apperror"
	"tutorhub/internal/metrics"

	"github.com/uptrace/bun"
)

const notFoundMessage = "Course id not found"

type Repository interface {
	Create(ctx context.Context, course *Course) (*Course, error)
	GetAllForTutor(ctx context.Context, tutorID int) ([]Course, error)
	Get(ctx context.Context, tutorID, courseID int) (*Course, error)
	Update(ctx context.Context, tutorID, courseID int, update UpdateCourse) (*Course, error)
	Delete(ctx context.Context, tutorID, courseID int) (int64, error)
}

type repository struct {
	db      *bun.DB
	metrics *metrics.Metrics
}

func NewRepository(db *bun.DB, m *metrics.Metrics) Repository {
	return &repository{
		db:      db,
		metrics: m,
	}
}

func (r *repository) Create(ctx context.Context, course *Course) (*Course, error) {
	start := time.Now()
	course.ID = 0
	course.PostedTime = time.Time{}
	_, err := r.db.NewInsert().Model(course).Returning("*").Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "insert", "courses", time.Since(start), err)

	if err != nil {
		return nil, apperror.Database(err)
	}
	return course, nil
}

func (r *repository) GetAllForTutor(ctx context.Context, tutorID int) ([]Course, error) {
	start := time.Now()
	courses := make([]Course, 0)
	err := r.db.NewSelect().
		Model(&courses).
		Where("tutor_id = ?", tutorID).
		Order("course_id ASC").
		Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "courses", time.Since(start), err)

	if err != nil {
		return nil, apperror.Database(err)
	}
	return courses, nil
}

func (r *repository) Get(ctx context.Context, tutorID, courseID int) (*Course, error) {
	start := time.Now()
	course := new(Course)
	err := r.db.NewSelect().
		Model(course).
		Where("tutor_id = ?", tutorID).
		Where("course_id = ?", courseID).
		Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "courses", time.Since(start), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound(notFoundMessage)
		}
		return nil, apperror.Database(err)
	}
	return course, nil
}

// Update locks the current row, merges update onto it and writes the result
// back in the same transaction. A missing row is NotFound; an UPDATE that
// returns nothing surfaces as a database error.
func (r *repository) Update(ctx context.Context, tutorID, courseID int, update UpdateCourse) (*Course, error) {
	start := time.Now()
	var updated *Course

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		current := new(Course)
		err := tx.NewSelect().
			Model(current).
			Where("tutor_id = ?", tutorID).
			Where("course_id = ?", courseID).
			For("UPDATE").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperror.NotFound(notFoundMessage)
			}
			return apperror.Database(err)
		}

		merged := update.Merge(*current)
		_, err = tx.NewUpdate().
			Model(merged).
			Column(updatableColumns...).
			Where("tutor_id = ?", tutorID).
			Where("course_id = ?", courseID).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return apperror.Database(err)
		}

		updated = merged
		return nil
	})

	r.metrics.Database.RecordQuery(ctx, "update", "courses", time.Since(start), err)

	if err != nil {
		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperror.Database(err)
	}
	return updated, nil
}

func (r *repository) Delete(ctx context.Context, tutorID, courseID int) (int64, error) {
	start := time.Now()
	result, err := r.db.NewDelete().
		Model((*Course)(nil)).
		Where("tutor_id = ?", tutorID).
		Where("course_id = ?", courseID).
		Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "delete", "courses", time.Since(start), err)

	if err != nil {
		return 0, apperror.Database(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, apperror.Database(err)
	}
	return rowsAffected, nil
}
