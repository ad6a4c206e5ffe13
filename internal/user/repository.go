package user

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"tutorhub/internal/apperror"
	"tutorhub/internal/metrics"

	"github.com/uptrace/bun"
)

// User holds sign-in credentials for a tutor. Password is an argon2id PHC
// string, never plain text.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	Username string `bun:"username,pk"`
	TutorID  *int   `bun:"tutor_id"`
	Password string `bun:"user_password,notnull"`
}

type Repository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, user *User) error
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

func (r *repository) GetByUsername(ctx context.Context, username string) (*User, error) {
	start := time.Now()
	user := new(User)
	err := r.db.NewSelect().
		Model(user).
		Where("username = ?", username).
		Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "users", time.Since(start), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Database(err)
	}
	return user, nil
}

func (r *repository) Create(ctx context.Context, user *User) error {
	start := time.Now()
	_, err := r.db.NewInsert().Model(user).Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "insert", "users", time.Since(start), err)

	if err != nil {
		return apperror.Database(err)
	}
	return nil
}
