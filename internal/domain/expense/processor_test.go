package expense

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/rachaai/internal/domain/cultural"
	"github.com/FACorreiaa/rachaai/internal/domain/regional"
	"github.com/FACorreiaa/rachaai/pkg/money"
)

func newTestProcessor() *Processor {
	return NewProcessor(cultural.NewAnalyzer(), regional.NewProcessor())
}

// Test the five canonical sentences together
func TestProcessor_Process_Corpus(t *testing.T) {
	p := newTestProcessor()

	tests := []struct {
		text     string
		scenario cultural.Scenario
		method   SplittingMethod
		total    string
	}{
		{"Rodízio de pizza. R$ 120,00 para 4 pessoas. Cada um paga igual.", cultural.ScenarioRodizio, MethodEqual, "120"},
		{"Happy hour com os amigos do trabalho. Gastamos R$ 200,00 em chopp e petiscos. Cada um paga o que consumiu.", cultural.ScenarioHappyHour, MethodByConsumption, "200"},
		{"Churrasco no sábado com a família. R$ 350,00 de carne e cerveja. Dividir por família.", cultural.ScenarioChurrasco, MethodByFamily, "350"},
		{"Vaquinha para o presente da Maria. Meta de R$ 500,00.", cultural.ScenarioVaquinha, MethodVaquinha, "500"},
		{"Aniversário do João no restaurante. Eu pago tudo, R$ 280,00.", cultural.ScenarioAniversario, MethodHostPays, "280"},
	}

	for _, tt := range tests {
		t.Run(string(tt.scenario), func(t *testing.T) {
			got := p.Process(tt.text, "")
			assert.Equal(t, tt.scenario, got.CulturalContext.Scenario)
			assert.Equal(t, tt.method, got.SplittingMethod)
			assert.True(t, dec(tt.total).Equal(got.TotalAmount), "want %s got %s", tt.total, got.TotalAmount)
			assert.Equal(t, tt.text, got.OriginalText)
			assert.GreaterOrEqual(t, got.Confidence, 0.0)
			assert.LessOrEqual(t, got.Confidence, 1.0)
		})
	}
}

func TestProcessor_Process_Properties(t *testing.T) {
	p := newTestProcessor()

	t.Run("comma decimal", func(t *testing.T) {
		got := p.Process("Pizza R$ 99,90", "")
		require.Len(t, got.Amounts, 1)
		assert.Equal(t, "99.9", got.Amounts[0].Value.String())
	})

	t.Run("complex beats host pays", func(t *testing.T) {
		got := p.Process("Aniversário da galera. Eu pago agora, depois acertamos. Cada um paga diferente.", "")
		assert.Equal(t, cultural.ScenarioAniversario, got.CulturalContext.Scenario)
		assert.Equal(t, MethodComplex, got.SplittingMethod)
	})

	t.Run("individuals are exclusive", func(t *testing.T) {
		got := p.Process("Eu, você e ele vamos dividir a conta.", "")
		require.Len(t, got.Participants, 3)
		for _, pt := range got.Participants {
			assert.Equal(t, ParticipantPerson, pt.Type)
		}
	})

	t.Run("empty and blank text keep every default", func(t *testing.T) {
		for _, text := range []string{"", "   ", "\t\n"} {
			got := p.Process(text, "")
			assert.Equal(t, text, got.OriginalText)
			assert.Empty(t, got.NormalizedText)
			assert.Empty(t, got.Participants)
			assert.NotNil(t, got.Amounts)
			assert.Empty(t, got.Amounts)
			assert.True(t, got.TotalAmount.IsZero())
			assert.Equal(t, MethodEqual, got.SplittingMethod)
			assert.Equal(t, cultural.ScenarioOutros, got.CulturalContext.Scenario)
			assert.Equal(t, regional.Outros, got.CulturalContext.Region)
			assert.NotNil(t, got.RegionalVariations)
			assert.Empty(t, got.RegionalVariations)
			assert.GreaterOrEqual(t, got.Confidence, 0.0)
			assert.LessOrEqual(t, got.Confidence, 1.0)
			assert.Contains(t, got.Suggestions, "Não identifiquei o valor. Quanto foi o total?")
		}
	})

	t.Run("scenario default method", func(t *testing.T) {
		got := p.Process("Rodízio de pizza. Cada um paga uma rodada.", "")
		assert.Equal(t, cultural.ScenarioRodizio, got.CulturalContext.Scenario)
		assert.Equal(t, MethodEqual, got.SplittingMethod)
		assert.Empty(t, got.Amounts)
		assert.True(t, got.TotalAmount.IsZero())
		assert.Contains(t, got.Suggestions, "Não identifiquei o valor. Quanto foi o total?")
	})
}

func TestProcessor_Process_Suggestions(t *testing.T) {
	p := newTestProcessor()

	got := p.Process("Rodízio de pizza. R$ 120,00 para 4 pessoas. Cada um paga igual.", "")
	assert.Contains(t, got.Suggestions, "Cada pessoa paga R$30,00 (R$120,00 ÷ 4).")
	assert.Contains(t, got.Suggestions, methodConfirmations[MethodEqual])

	got = p.Process("Rodízio, R$ 100,00 para 3 pessoas, divide igual", "")
	assert.Contains(t, got.Suggestions, "Cada pessoa paga entre R$33,33 e R$33,34 (R$100,00 ÷ 3).")

	got = p.Process("Jantar R$ 200 com 10% de desconto", "")
	assert.Contains(t, got.Suggestions, "Com desconto de 10%, o total fica R$180,00.")
}

func TestProcessor_Process_Regional(t *testing.T) {
	p := newTestProcessor()

	got := p.Process("Uai, a galera vai rachar o trem do churrasco, R$ 90", regional.MinasGerais)
	assert.Equal(t, regional.MinasGerais, got.CulturalContext.Region)
	assert.NotEmpty(t, got.RegionalVariations)

	got = p.Process("Comprei um livro", "")
	assert.NotNil(t, got.RegionalVariations)
	assert.Empty(t, got.RegionalVariations)
}

func TestProcessor_Process_Deterministic(t *testing.T) {
	p := newTestProcessor()
	text := "Happy hour com os amigos do trabalho. Gastamos R$ 200,00 em chopp e petiscos."

	first := p.Process(text, regional.SaoPaulo)
	second := p.Process(text, regional.SaoPaulo)
	first.ProcessingTimeMs, second.ProcessingTimeMs = 0, 0

	assert.Equal(t, first, second)
}

// One Processor serves many goroutines; each result must match the one
// computed sequentially.
func TestProcessor_Concurrent(t *testing.T) {
	p := newTestProcessor()
	analyzer := cultural.NewAnalyzer()

	texts := []string{
		"Rodízio de pizza. R$ 120,00 para 4 pessoas. Cada um paga igual.",
		"Happy hour com os amigos do trabalho. Gastamos R$ 200,00 em chopp e petiscos. Cada um paga o que consumiu.",
		"Churrasco no sábado com a família. R$ 350,00 de carne e cerveja. Dividir por família.",
		"Vaquinha para o presente da Maria. Meta de R$ 500,00.",
		"Uai, a galera vai rachar o trem do churrasco, R$ 90",
		"Aniversário da galera. Eu pago agora, depois acertamos. Cada um paga diferente.",
	}

	wantProcess := make([]ExpenseInterpretation, len(texts))
	wantAnalyze := make([]cultural.CulturalContext, len(texts))
	for i, text := range texts {
		wantProcess[i] = p.Process(text, "")
		wantProcess[i].ProcessingTimeMs = 0
		wantAnalyze[i] = analyzer.Analyze(text, "")
	}

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 50; n++ {
				i := (g + n) % len(texts)

				got := p.Process(texts[i], "")
				got.ProcessingTimeMs = 0
				assert.Equal(t, wantProcess[i], got)
				assert.Equal(t, wantAnalyze[i], analyzer.Analyze(texts[i], ""))
			}
		}()
	}
	wg.Wait()
}

// Any input yields a complete interpretation; generated expenses are read back
// with the amount and head count they were written with.
func TestProcessor_Process_Generated(t *testing.T) {
	p := newTestProcessor()
	gen := money.NewTestDataGeneratorWithSeed(42)

	for i := 0; i < 50; i++ {
		got := p.Process(gen.Noise(), "")
		assert.NotEmpty(t, got.SplittingMethod)
		assert.NotEmpty(t, got.CulturalContext.Scenario)
		assert.NotNil(t, got.Amounts)
		assert.GreaterOrEqual(t, got.Confidence, 0.0)
		assert.LessOrEqual(t, got.Confidence, 1.0)
	}

	for i := 0; i < 50; i++ {
		expense := gen.SharedExpense()
		got := p.Process(expense.Text, "")
		assert.True(t, expense.Amount.ToDecimal().Equal(got.TotalAmount), "%q: got %s", expense.Text, got.TotalAmount)
		assert.Equal(t, expense.People, got.HeadCount(), expense.Text)
	}
}

func TestInterpretationConfidence(t *testing.T) {
	tests := []struct {
		name         string
		culture      float64
		participants []Participant
		amounts      []Amount
		variations   []regional.Variation
		expected     float64
	}{
		{"nothing found", 0.5, nil, nil, nil, 0.432},
		{"weak culture raised to start", 0.3, []Participant{{Confidence: 0.8}}, []Amount{{Confidence: 0.9}}, nil, 0.8},
		{"clamped at one", 0.9, []Participant{{Confidence: 0.85}}, []Amount{{Confidence: 0.95}}, []regional.Variation{{}}, 1.0},
		{"variation bonus", 0.7, []Participant{{Confidence: 0.5}}, nil, []regional.Variation{{}}, 0.63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := interpretationConfidence(tt.culture, tt.participants, tt.amounts, tt.variations)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func BenchmarkProcessor_Process(b *testing.B) {
	p := newTestProcessor()
	text := "Churrasco no sábado com a família. R$ 350,00 de carne e cerveja. Dividir por família."

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Process(text, "")
	}
}
