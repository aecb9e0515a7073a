package cultural

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordIndex_First(t *testing.T) {
	idx := newKeywordIndex([]keywordGroup{
		{label: "first", terms: []string{"sampa", "paulista"}},
		{label: "second", terms: []string{"carioca"}},
	})

	t.Run("group priority beats text position", func(t *testing.T) {
		label, ok := idx.first("um carioca e um paulista")
		require.True(t, ok)
		assert.Equal(t, "first", label)
	})

	t.Run("single group", func(t *testing.T) {
		label, ok := idx.first("sou carioca")
		require.True(t, ok)
		assert.Equal(t, "second", label)
	})

	t.Run("no hit", func(t *testing.T) {
		_, ok := idx.first("sou mineiro")
		assert.False(t, ok)
		_, ok = idx.first("")
		assert.False(t, ok)
	})
}

func TestKeywordIndex_SharedTerms(t *testing.T) {
	idx := newKeywordIndex([]keywordGroup{
		{label: "a", terms: []string{"pix"}},
		{label: "b", terms: []string{"boleto", "pix", ""}},
	})

	hits := idx.hits("pix ou boleto, tanto faz, pix")
	require.Len(t, hits, 3)
	assert.Equal(t, keywordHit{term: "pix", order: 0, group: 0, label: "a"}, hits[0])
	assert.Equal(t, "b", hits[1].label)
	assert.Equal(t, "pix", hits[1].term)
	assert.Equal(t, "boleto", hits[2].term)

	assert.Equal(t, 2, idx.distinctTerms("pix ou boleto, tanto faz, pix"))
}

func TestKeywordIndex_Empty(t *testing.T) {
	idx := newKeywordIndex(nil)
	assert.Nil(t, idx.hits("qualquer coisa"))
	assert.Equal(t, 0, idx.distinctTerms("qualquer coisa"))
}

func TestSlangIndex_CountsDistinctTerms(t *testing.T) {
	assert.Equal(t, 4, slangIndex.distinctTerms("a galera vai rachar a grana")) // racha is inside rachar
	assert.Equal(t, 0, slangIndex.distinctTerms("jantar de negocios"))
}
