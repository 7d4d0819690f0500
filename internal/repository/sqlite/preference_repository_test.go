package sqlite

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/domain"
)

func TestPreferenceRepository(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewPreferenceRepository(db)
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, domain.PrefRating, "4"))

		pref, err := repo.Get(ctx, domain.PrefRating)
		require.NoError(t, err)
		assert.Equal(t, "4", pref.Value)
		assert.False(t, pref.UpdatedAt.IsZero())
	})

	t.Run("set replaces", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, domain.PrefRating, "5"))

		pref, err := repo.Get(ctx, domain.PrefRating)
		require.NoError(t, err)
		assert.Equal(t, "5", pref.Value)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := repo.Get(ctx, "nothing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("invalid key", func(t *testing.T) {
		err := repo.Set(ctx, "", "x")
		assert.ErrorIs(t, err, domain.ErrValidation)

		err = repo.Set(ctx, strings.Repeat("k", 101), "x")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("list and delete", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, domain.PrefBookmarks, `["a1"]`))

		prefs, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, prefs, 2)
		assert.Equal(t, domain.PrefBookmarks, prefs[0].Key)

		require.NoError(t, repo.Delete(ctx, domain.PrefBookmarks))
		_, err = repo.Get(ctx, domain.PrefBookmarks)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
