package sqlite_test

import (
	"context"
	"testing"

	"github.com/jmoralesv/educrawl"
	"github.com/jmoralesv/educrawl/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGroup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		term     string
		synonyms []string
		want     string
	}{
		{
			name: "term only",
			term: "python",
			want: "(python)",
		},
		{
			name:     "multi-word synonym is quoted",
			term:     "ia",
			synonyms: []string{"inteligencia artificial"},
			want:     `(ia OR "inteligencia artificial")`,
		},
		{
			name:     "synonyms sorted after the term",
			term:     "web",
			synonyms: []string{"javascript", "frontend"},
			want:     "(web OR frontend OR javascript)",
		},
		{
			name:     "duplicates and blanks removed",
			term:     "Python",
			synonyms: []string{"python", "  ", "PYTHON", "programación"},
			want:     "(python OR programación)",
		},
		{
			name: "multi-word term is quoted",
			term: "ciencia de datos",
			want: `("ciencia de datos")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sqlite.BuildGroup(tt.term, tt.synonyms))
		})
	}
}

func TestSearchService_SearchCourses(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) (*sqlite.SearchService, context.Context) {
		t.Helper()
		db := setupTestDB(t)
		courses := sqlite.NewCourseService(db)
		terms := sqlite.NewTermService(db)
		ctx := context.Background()

		seed := []*educrawl.Course{
			{
				URL:         "https://example.com/curso-ia",
				Title:       "Curso de Inteligencia Artificial",
				Description: "Modelos de aprendizaje automático aplicados.",
			},
			{
				URL:         "https://example.com/curso-python",
				Title:       "Curso de Python",
				Description: "Programación en Python desde cero.",
			},
			{
				URL:         "https://example.com/curso-foto",
				Title:       "Curso de Fotografía",
				Description: "Composición e iluminación.",
			},
		}
		for _, course := range seed {
			require.NoError(t, courses.UpsertCourse(ctx, course))
		}

		require.NoError(t, terms.CreateTerm(ctx, &educrawl.Term{
			Term:     "ia",
			Synonyms: []string{"inteligencia artificial"},
		}))

		return sqlite.NewSearchService(db, terms), ctx
	}

	t.Run("direct term match", func(t *testing.T) {
		t.Parallel()
		svc, ctx := setup(t)

		results, err := svc.SearchCourses(ctx, []string{"python"}, 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Curso de Python", results[0].Title)
		assert.Equal(t, "https://example.com/curso-python", results[0].URL)
	})

	t.Run("synonym expansion finds courses the raw term misses", func(t *testing.T) {
		t.Parallel()
		svc, ctx := setup(t)

		// "ia" itself appears nowhere in the corpus; only its synonym does.
		results, err := svc.SearchCourses(ctx, []string{"ia"}, 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Curso de Inteligencia Artificial", results[0].Title)
	})

	t.Run("multiple interests are unioned", func(t *testing.T) {
		t.Parallel()
		svc, ctx := setup(t)

		results, err := svc.SearchCourses(ctx, []string{"python", "fotografía"}, 10)
		require.NoError(t, err)
		require.Len(t, results, 2)

		titles := []string{results[0].Title, results[1].Title}
		assert.ElementsMatch(t, []string{"Curso de Python", "Curso de Fotografía"}, titles)
	})

	t.Run("blank interests contribute nothing", func(t *testing.T) {
		t.Parallel()
		svc, ctx := setup(t)

		results, err := svc.SearchCourses(ctx, []string{"  ", ""}, 10)
		require.NoError(t, err)
		assert.Nil(t, results)
	})

	t.Run("no interests yields no results", func(t *testing.T) {
		t.Parallel()
		svc, ctx := setup(t)

		results, err := svc.SearchCourses(ctx, nil, 10)
		require.NoError(t, err)
		assert.Nil(t, results)
	})

	t.Run("limit caps results", func(t *testing.T) {
		t.Parallel()
		svc, ctx := setup(t)

		results, err := svc.SearchCourses(ctx, []string{"curso"}, 2)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("index follows course updates", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		courses := sqlite.NewCourseService(db)
		terms := sqlite.NewTermService(db)
		svc := sqlite.NewSearchService(db, terms)
		ctx := context.Background()

		course := &educrawl.Course{
			URL:         "https://example.com/curso",
			Title:       "Curso de Robótica",
			Description: "Sensores y actuadores.",
		}
		require.NoError(t, courses.UpsertCourse(ctx, course))

		course.Description = "Electrónica aplicada."
		require.NoError(t, courses.UpsertCourse(ctx, course))

		results, err := svc.SearchCourses(ctx, []string{"sensores"}, 10)
		require.NoError(t, err)
		assert.Empty(t, results, "stale content should leave the index")

		results, err = svc.SearchCourses(ctx, []string{"electrónica"}, 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Curso de Robótica", results[0].Title)
	})
}
