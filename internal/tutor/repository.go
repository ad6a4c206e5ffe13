package tutor

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"tutorhub/internal/apperror"
	"tutorhub/internal/metrics"

	"github.com/uptrace/bun"
)

const notFoundMessage = "Tutor id not found"

type Repository interface {
	Create(ctx context.Context, tutor *Tutor) (*Tutor, error)
	GetAll(ctx context.Context) ([]Tutor, error)
	GetByID(ctx context.Context, id int) (*Tutor, error)
	Update(ctx context.Context, id int, update UpdateTutor) (*Tutor, error)
	Delete(ctx context.Context, id int) (int64, error)
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

func (r *repository) Create(ctx context.Context, tutor *Tutor) (*Tutor, error) {
	start := time.Now()
	tutor.ID = 0
	_, err := r.db.NewInsert().Model(tutor).Returning("*").Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "insert", "tutors", time.Since(start), err)

	if err != nil {
		return nil, apperror.Database(err)
	}
	return tutor, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Tutor, error) {
	start := time.Now()
	tutors := make([]Tutor, 0)
	err := r.db.NewSelect().Model(&tutors).Order("tutor_id ASC").Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "tutors", time.Since(start), err)

	if err != nil {
		return nil, apperror.Database(err)
	}
	return tutors, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Tutor, error) {
	start := time.Now()
	tutor := new(Tutor)
	err := r.db.NewSelect().Model(tutor).Where("tutor_id = ?", id).Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "tutors", time.Since(start), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound(notFoundMessage)
		}
		return nil, apperror.Database(err)
	}
	return tutor, nil
}

// Update locks the current row, merges update onto it and writes the result
// back in the same transaction.
func (r *repository) Update(ctx context.Context, id int, update UpdateTutor) (*Tutor, error) {
	start := time.Now()
	var updated *Tutor

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		current := new(Tutor)
		err := tx.NewSelect().Model(current).Where("tutor_id = ?", id).For("UPDATE").Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperror.NotFound(notFoundMessage)
			}
			return apperror.Database(err)
		}

		merged := update.Merge(*current)
		_, err = tx.NewUpdate().
			Model(merged).
			Column("tutor_name", "tutor_pic_url", "tutor_profile").
			Where("tutor_id = ?", id).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return apperror.Database(err)
		}

		updated = merged
		return nil
	})

	r.metrics.Database.RecordQuery(ctx, "update", "tutors", time.Since(start), err)

	if err != nil {
		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperror.Database(err)
	}
	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id int) (int64, error) {
	start := time.Now()
	result, err := r.db.NewDelete().
		Model((*Tutor)(nil)).
		Where("tutor_id = ?", id).
		Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "delete", "tutors", time.Since(start), err)

	if err != nil {
		return 0, apperror.Database(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, apperror.Database(err)
	}
	return rowsAffected, nil
}
