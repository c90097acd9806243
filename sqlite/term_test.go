package sqlite_test

import (
	"context"
	"testing"

	"github.com/jmoralesv/educrawl"
	"github.com/jmoralesv/educrawl/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermService_CreateTerm(t *testing.T) {
	t.Parallel()

	t.Run("creates term with synonyms", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTermService(db)
		ctx := context.Background()

		term := &educrawl.Term{
			Term:     "IA",
			Synonyms: []string{"inteligencia artificial", "machine learning"},
		}

		err := svc.CreateTerm(ctx, term)
		require.NoError(t, err)

		assert.NotZero(t, term.ID)
		assert.Equal(t, "ia", term.Term, "terms are stored lowercased")

		synonyms, err := svc.FindSynonyms(ctx, "ia")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"inteligencia artificial", "machine learning"}, synonyms)
	})

	t.Run("duplicate term conflicts case-insensitively", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTermService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateTerm(ctx, &educrawl.Term{Term: "ia"}))

		err := svc.CreateTerm(ctx, &educrawl.Term{Term: "IA"})
		require.Error(t, err)
		assert.Equal(t, educrawl.ECONFLICT, educrawl.ErrorCode(err))
	})

	t.Run("returns error for empty term", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTermService(db)

		err := svc.CreateTerm(context.Background(), &educrawl.Term{})
		require.Error(t, err)
		assert.Equal(t, educrawl.EINVALID, educrawl.ErrorCode(err))
	})

	t.Run("blank synonyms are dropped", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTermService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateTerm(ctx, &educrawl.Term{
			Term:     "web",
			Synonyms: []string{"  ", "desarrollo web"},
		}))

		synonyms, err := svc.FindSynonyms(ctx, "web")
		require.NoError(t, err)
		assert.Equal(t, []string{"desarrollo web"}, synonyms)
	})
}

func TestTermService_FindSynonyms(t *testing.T) {
	t.Parallel()

	t.Run("matches term case-insensitively", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTermService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateTerm(ctx, &educrawl.Term{
			Term:     "ia",
			Synonyms: []string{"inteligencia artificial"},
		}))

		synonyms, err := svc.FindSynonyms(ctx, "  IA ")
		require.NoError(t, err)
		assert.Equal(t, []string{"inteligencia artificial"}, synonyms)
	})

	t.Run("unknown term yields empty result", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTermService(db)

		synonyms, err := svc.FindSynonyms(context.Background(), "desconocido")
		require.NoError(t, err)
		assert.Empty(t, synonyms)
	})

	t.Run("blank term yields empty result", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTermService(db)

		synonyms, err := svc.FindSynonyms(context.Background(), "   ")
		require.NoError(t, err)
		assert.Empty(t, synonyms)
	})
}
