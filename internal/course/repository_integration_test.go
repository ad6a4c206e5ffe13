package course_test

import (
	"context"
	"errors"
	"testing"

	"tutorhub/internal/apperror"
	"tutorhub/internal/course"
	"tutorhub/internal/metrics"
	"tutorhub/testing/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseRepository_Postgres(t *testing.T) {
	pg := testdb.SetupSharedPostgres(t)
	defer pg.Cleanup(t)

	pg.RunMigrations(t, (*course.Course)(nil))

	repo := course.NewRepository(pg.DB, metrics.NewMock())
	ctx := context.Background()

	t.Run("CreateSetsIDAndPostedTime", func(t *testing.T) {
		testdb.CleanupTables(t, pg.DB, "courses")

		created, err := repo.Create(ctx, &course.Course{TutorID: 1, Name: "Go", Price: intPtr(50)})
		require.NoError(t, err)

		assert.Equal(t, 1, created.ID)
		assert.False(t, created.PostedTime.IsZero())
		assert.Nil(t, created.Description)

		fetched, err := repo.Get(ctx, 1, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Name, fetched.Name)
		assert.Equal(t, 50, *fetched.Price)
	})

	t.Run("GetWrongTutorIsNotFound", func(t *testing.T) {
		testdb.CleanupTables(t, pg.DB, "courses")

		created, err := repo.Create(ctx, &course.Course{TutorID: 1, Name: "Go"})
		require.NoError(t, err)

		_, err = repo.Get(ctx, 2, created.ID)
		assert.True(t, errors.Is(err, apperror.ErrNotFound))
	})

	t.Run("ListIsOrderedAndScopedToTutor", func(t *testing.T) {
		testdb.CleanupTables(t, pg.DB, "courses")

		for _, c := range []course.Course{
			{TutorID: 1, Name: "A"},
			{TutorID: 2, Name: "B"},
			{TutorID: 1, Name: "C"},
		} {
			c := c
			_, err := repo.Create(ctx, &c)
			require.NoError(t, err)
		}

		courses, err := repo.GetAllForTutor(ctx, 1)
		require.NoError(t, err)
		require.Len(t, courses, 2)
		assert.Equal(t, "A", courses[0].Name)
		assert.Equal(t, "C", courses[1].Name)

		none, err := repo.GetAllForTutor(ctx, 99)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("UpdateNameOnlyKeepsOtherColumns", func(t *testing.T) {
		testdb.CleanupTables(t, pg.DB, "courses")

		created, err := repo.Create(ctx, &course.Course{
			TutorID:     1,
			Name:        "Before",
			Description: strPtr("Desc"),
			Format:      strPtr("Online"),
			Price:       intPtr(200),
		})
		require.NoError(t, err)

		updated, err := repo.Update(ctx, 1, created.ID, course.UpdateCourse{Name: strPtr("After")})
		require.NoError(t, err)

		assert.Equal(t, "After", updated.Name)
		assert.Equal(t, "Desc", *updated.Description)
		assert.Equal(t, "Online", *updated.Format)
		assert.Equal(t, 200, *updated.Price)
		assert.Equal(t, "", *updated.Level)
		assert.True(t, created.PostedTime.Equal(updated.PostedTime))

		stored, err := repo.Get(ctx, 1, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "After", stored.Name)
		require.NotNil(t, stored.Level)
		assert.Equal(t, "", *stored.Level)
	})

	t.Run("UpdateMissingIsNotFound", func(t *testing.T) {
		testdb.CleanupTables(t, pg.DB, "courses")

		_, err := repo.Update(ctx, 1, 123, course.UpdateCourse{Name: strPtr("x")})

		assert.True(t, errors.Is(err, apperror.ErrNotFound))
		assert.Equal(t, "Course id not found", apperror.PublicMessage(err))
	})

	t.Run("DeleteTwice", func(t *testing.T) {
		testdb.CleanupTables(t, pg.DB, "courses")

		created, err := repo.Create(ctx, &course.Course{TutorID: 1, Name: "Temp"})
		require.NoError(t, err)

		n, err := repo.Delete(ctx, 1, created.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = repo.Delete(ctx, 1, created.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})
}
