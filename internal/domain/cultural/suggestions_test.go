package cultural

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/rachaai/internal/domain/regional"
)

func TestAnalyzer_Suggestions(t *testing.T) {
	a := NewAnalyzer()

	t.Run("known scenario gets its tip", func(t *testing.T) {
		ctx := a.Analyze("Rodízio de pizza", "")
		got := a.Suggestions(ctx, "rodizio de pizza")

		assert.Contains(t, got, scenarioTips[ScenarioRodizio])
	})

	t.Run("misspelled scenario keyword", func(t *testing.T) {
		ctx := a.Analyze("Fizemos um churasco ontem", "")
		assert.Equal(t, ScenarioOutros, ctx.Scenario)

		got := a.Suggestions(ctx, "fizemos um churasco ontem")
		assert.Contains(t, got, `Você quis dizer "churrasco"?`)
	})

	t.Run("declared region is mentioned", func(t *testing.T) {
		ctx := a.Analyze("Pão de queijo", regional.MinasGerais)
		got := a.Suggestions(ctx, "pao de queijo")
		assert.Contains(t, got, "Expressões regionais de Minas Gerais foram consideradas na interpretação.")
	})
}

func TestClosestKeyword(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{"one edit", "um churasco", "churrasco", true},
		{"two edits on a long word", "festa de aniversaro", "aniversario", true},
		{"short words are ignored", "um bolo", "", false},
		{"exact keywords are not suggestions", "churrasco", "", false},
		{"nothing close", "comprei um livro", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := closestKeyword(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}
