package goquery_test

import (
	"testing"

	educgoquery "github.com/jmoralesv/educrawl/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogHTML = `
<html><body>
<ul class="ais-Hits-list">
  <li class="item-programa ais-Hits-item">
    <div class="card">
      <div class="card-type">Curso</div>
      <div class="card-body">
        <a href="/curso-python"><b class="card-title">Curso de
          Python</b></a>
      </div>
    </div>
  </li>
  <li class="item-programa ais-Hits-item">
    <div class="card">
      <div class="card-type">Diplomado</div>
      <div class="card-body">
        <a href="/diplomado-gerencia"><b class="card-title">Diplomado en Gerencia</b></a>
      </div>
    </div>
  </li>
  <li class="item-programa ais-Hits-item">
    <div class="card">
      <div class="card-type">Curso</div>
      <a href="/curso-excel">enlace externo al body</a>
      <div class="card-body">
        <b class="card-title">Curso de Excel</b>
      </div>
    </div>
  </li>
  <li class="item-programa ais-Hits-item">
    <div class="card">
      <div class="card-type">Curso</div>
      <div class="card-body">
        <b class="card-title">Curso sin enlace</b>
      </div>
    </div>
  </li>
  <li class="otro-item">
    <div class="card-type">Curso</div>
    <div class="card-body"><a href="/no-es-tarjeta"><b class="card-title">No listado</b></a></div>
  </li>
</ul>
</body></html>`

func TestCardExtractor_ExtractCards(t *testing.T) {
	t.Parallel()

	extractor := educgoquery.NewCardExtractor()
	cards, err := extractor.ExtractCards(catalogHTML)
	require.NoError(t, err)
	require.Len(t, cards, 4)

	t.Run("preserves document order", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Curso de Python", cards[0].Title)
		assert.Equal(t, "Diplomado en Gerencia", cards[1].Title)
		assert.Equal(t, "Curso de Excel", cards[2].Title)
		assert.Equal(t, "Curso sin enlace", cards[3].Title)
	})

	t.Run("collapses whitespace in titles", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Curso de Python", cards[0].Title)
	})

	t.Run("reads type label and href", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Curso", cards[0].TypeLabel)
		assert.Equal(t, "/curso-python", cards[0].Href)
		assert.Equal(t, "Diplomado", cards[1].TypeLabel)
	})

	t.Run("falls back to any anchor in the card", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "/curso-excel", cards[2].Href)
	})

	t.Run("card with no anchor has empty href", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", cards[3].Href)
	})

	t.Run("course classification", func(t *testing.T) {
		t.Parallel()
		assert.True(t, cards[0].IsCourse())
		assert.False(t, cards[1].IsCourse())
		assert.True(t, cards[2].IsCourse())
	})
}

func TestCardExtractor_ExtractCards_NoCards(t *testing.T) {
	t.Parallel()

	extractor := educgoquery.NewCardExtractor()
	cards, err := extractor.ExtractCards("<html><body><p>sin resultados</p></body></html>")
	require.NoError(t, err)
	assert.Empty(t, cards)
}
