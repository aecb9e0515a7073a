package regional

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessor_Detect(t *testing.T) {
	p := NewProcessor()

	t.Run("declared region is scanned first and boosted", func(t *testing.T) {
		got := p.Detect("Uai, a galera vai rachar o trem", MinasGerais)
		require.Len(t, got, 3)

		assert.Equal(t, "uai", got[0].OriginalTerm)
		assert.Equal(t, MinasGerais, got[0].Region)
		assert.InDelta(t, 1.0, got[0].Confidence, 1e-9) // base + declared + common

		assert.Equal(t, "trem", got[1].OriginalTerm)
		assert.Equal(t, "coisa", got[1].StandardTerm)
		assert.InDelta(t, 0.9, got[1].Confidence, 1e-9)

		assert.Equal(t, "galera", got[2].OriginalTerm)
		assert.Equal(t, MinasGerais, got[2].Region)
		assert.InDelta(t, 0.9, got[2].Confidence, 1e-9) // common boost cancelled by widespread penalty
	})

	t.Run("undeclared region scans in canonical order", func(t *testing.T) {
		got := p.Detect("Uai, a galera vai rachar o trem", "")
		require.Len(t, got, 3)

		assert.Equal(t, "galera", got[0].OriginalTerm)
		assert.Equal(t, SaoPaulo, got[0].Region)
		assert.InDelta(t, 0.7, got[0].Confidence, 1e-9)

		assert.Equal(t, "uai", got[1].OriginalTerm)
		assert.InDelta(t, 0.8, got[1].Confidence, 1e-9)

		assert.Equal(t, "trem", got[2].OriginalTerm)
		assert.InDelta(t, 0.7, got[2].Confidence, 1e-9)
	})

	t.Run("accents are ignored", func(t *testing.T) {
		got := p.Detect("Égua, maninho!", Norte)
		require.Len(t, got, 2)
		assert.Equal(t, "egua", got[0].OriginalTerm)
		assert.Equal(t, "maninho", got[1].OriginalTerm)
	})

	t.Run("outros declared scans every region without boost", func(t *testing.T) {
		got := p.Detect("que parada maneira, mermão", Outros)
		require.NotEmpty(t, got)
		for _, v := range got {
			assert.Equal(t, RioDeJaneiro, v.Region)
			assert.InDelta(t, 0.7, v.Confidence, 1e-9)
		}
	})

	t.Run("no slang", func(t *testing.T) {
		assert.Empty(t, p.Detect("Rodízio de pizza. R$ 120,00 para 4 pessoas.", ""))
		assert.Nil(t, p.Detect("", SaoPaulo))
	})
}

func TestProcessor_Standardize(t *testing.T) {
	p := NewProcessor()

	tests := []struct {
		name     string
		input    string
		region   Region
		expected string
	}{
		{
			name:     "longest term wins over its prefix",
			input:    "Uai, a galera vai rachar o trem bão",
			region:   MinasGerais,
			expected: "nossa, a grupo vai rachar o coisa boa",
		},
		{
			name:     "word boundaries keep guria apart from guri",
			input:    "A guria e o guri",
			region:   RioGrandeDoSul,
			expected: "a menina e o menino",
		},
		{
			name:     "text without slang is only normalized",
			input:    "Cada um paga IGUAL",
			region:   "",
			expected: "cada um paga igual",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.Standardize(tt.input, tt.region))
		})
	}
}

func TestParseRegion(t *testing.T) {
	tests := []struct {
		input    string
		expected Region
		ok       bool
	}{
		{"", "", true},
		{"sao_paulo", SaoPaulo, true},
		{"SP", SaoPaulo, true},
		{"Rio de Janeiro", RioDeJaneiro, true},
		{"rs", RioGrandeDoSul, true},
		{"outros", Outros, true},
		{"atlantida", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseRegion(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDictionary_ReturnsCopy(t *testing.T) {
	entries := Dictionary(SaoPaulo)
	require.NotEmpty(t, entries)
	entries[0].Term = "changed"

	assert.Equal(t, "mano", Dictionary(SaoPaulo)[0].Term)
	assert.Equal(t, 5, termRegionCount["galera"])
}
