package tutor_test

import (
	"context"
	"errors"
	"testing"

	"tutorhub/internal/apperror"
	"tutorhub/internal/metrics"
	"tutorhub/internal/tutor"
	"tutorhub/testing/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTutorRepository_Postgres(t *testing.T) {
	pg := testdb.SetupSharedPostgres(t)
	defer pg.Cleanup(t)

	pg.RunMigrations(t, (*tutor.Tutor)(nil))

	repo := tutor.NewRepository(pg.DB, metrics.NewMock())
	ctx := context.Background()

	t.Run("CreateAndGet", func(t *testing.T) {
		testdb.CleanupTables(t, pg.DB, "tutors")

		created, err := repo.Create(ctx, &tutor.Tutor{Name: "Ada", PicURL: "http://pic", Profile: "Maths"})
		require.NoError(t, err)
		assert.Equal(t, 1, created.ID)

		fetched, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, *created, *fetched)
	})

	t.Run("GetMissing", func(t *testing.T) {
		testdb.CleanupTables(t, pg.DB, "tutors")

		_, err := repo.GetByID(ctx, 99999)

		assert.True(t, errors.Is(err, apperror.ErrNotFound))
		assert.Equal(t, "Tutor id not found", apperror.PublicMessage(err))
	})

	t.Run("UpdateMerges", func(t *testing.T) {
		testdb.CleanupTables(t, pg.DB, "tutors")

		created, err := repo.Create(ctx, &tutor.Tutor{Name: "Ada", PicURL: "http://pic", Profile: "Maths"})
		require.NoError(t, err)

		profile := "Poetical science"
		updated, err := repo.Update(ctx, created.ID, tutor.UpdateTutor{Profile: &profile})
		require.NoError(t, err)
		assert.Equal(t, tutor.Tutor{ID: created.ID, Name: "Ada", PicURL: "http://pic", Profile: profile}, *updated)
	})

	t.Run("ListOrderedAndDelete", func(t *testing.T) {
		testdb.CleanupTables(t, pg.DB, "tutors")

		for _, name := range []string{"One", "Two"} {
			_, err := repo.Create(ctx, &tutor.Tutor{Name: name, PicURL: "p", Profile: "x"})
			require.NoError(t, err)
		}

		tutors, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, tutors, 2)
		assert.Equal(t, "One", tutors[0].Name)

		n, err := repo.Delete(ctx, tutors[0].ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = repo.Delete(ctx, tutors[0].ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})
}
