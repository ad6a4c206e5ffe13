package db_test

import (
	"context"
	"errors"
	"testing"

	"tutorhub/internal/course"
	"tutorhub/internal/db"
	"tutorhub/internal/tutor"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

func TestRunMigrations(t *testing.T) {
	t.Run("CreatesEveryTable", func(t *testing.T) {
		sqlDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer sqlDB.Close()

		bunDB := bun.NewDB(sqlDB, pgdialect.New())

		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS "tutors"`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS "courses"`).WillReturnResult(sqlmock.NewResult(0, 0))

		err = db.RunMigrations(context.Background(), bunDB, (*tutor.Tutor)(nil), (*course.Course)(nil))
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("StopsOnFirstFailure", func(t *testing.T) {
		sqlDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer sqlDB.Close()

		bunDB := bun.NewDB(sqlDB, pgdialect.New())

		mock.ExpectExec(".*").WillReturnError(errors.New("permission denied"))

		err = db.RunMigrations(context.Background(), bunDB, (*tutor.Tutor)(nil), (*course.Course)(nil))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "permission denied")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
