package cultural

import (
	"fmt"
	"math"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/FACorreiaa/rachaai/internal/domain/regional"
	"github.com/FACorreiaa/rachaai/pkg/textnorm"
)

var scenarioTips = map[Scenario]string{
	ScenarioRodizio:     "Rodízio costuma ser dividido igualmente; confira se a taxa de serviço de 10% já está incluída.",
	ScenarioHappyHour:   "No happy hour é comum cada um pagar o que consumiu; anote as rodadas de cada pessoa.",
	ScenarioChurrasco:   "Em churrasco a divisão por família é comum; combine antes quem leva carne e bebida.",
	ScenarioAniversario: "O aniversariante normalmente não paga; considere dividir a parte dele entre os convidados.",
	ScenarioViagem:      "Em viagens, separe hospedagem, transporte e comida para acertar as contas no final.",
	ScenarioVaquinha:    "Defina uma meta e um prazo para a vaquinha e compartilhe a chave PIX com o grupo.",
	ScenarioRestaurante: "Verifique se a gorjeta de 10% entra na divisão antes de fechar a conta.",
	ScenarioUber:        "Corridas costumam ser divididas igualmente entre quem estava no carro.",
}

var paymentTips = map[PaymentMethod]string{
	PaymentPix:      "Pagamento via PIX: envie a chave PIX para o grupo acertar na hora.",
	PaymentBoleto:   "Boleto: combine quem paga e repasse o comprovante ao grupo.",
	PaymentCartao:   "Pagamento no cartão: quem passou o cartão recebe a parte dos outros via PIX.",
	PaymentDinheiro: "Pagamento em dinheiro: anote quem já pagou para não perder o controle.",
}

// Suggestions returns advisory tips for a context. normalized is the message
// the context was read from; when no scenario was found it is searched for a
// misspelled scenario keyword.
func (a *Analyzer) Suggestions(ctx CulturalContext, normalized string) []string {
	var out []string

	if tip, ok := scenarioTips[ctx.Scenario]; ok {
		out = append(out, tip)
	} else {
		if guess, ok := closestKeyword(normalized); ok {
			out = append(out, fmt.Sprintf("Você quis dizer %q?", guess))
		}
		out = append(out, "Conte o tipo de gasto (rodízio, churrasco, happy hour...) para uma divisão mais precisa.")
	}

	if tip, ok := paymentTips[ctx.PaymentMethodHint]; ok {
		out = append(out, tip)
	}

	if name, ok := regionNames[ctx.Region]; ok {
		out = append(out, fmt.Sprintf("Expressões regionais de %s foram consideradas na interpretação.", name))
	}

	return out
}

var regionNames = map[regional.Region]string{
	regional.SaoPaulo:       "São Paulo",
	regional.RioDeJaneiro:   "Rio de Janeiro",
	regional.MinasGerais:    "Minas Gerais",
	regional.RioGrandeDoSul: "Rio Grande do Sul",
	regional.Bahia:          "Bahia",
	regional.Nordeste:       "Nordeste",
	regional.Norte:          "Norte",
	regional.CentroOeste:    "Centro-Oeste",
}

// fuzzyCandidates are the single-word pattern keywords long enough for a
// typo match to be meaningful.
var fuzzyCandidates = buildFuzzyCandidates()

func buildFuzzyCandidates() []string {
	var out []string
	seen := make(map[string]bool)
	for _, p := range patternDB {
		for _, kw := range p.Keywords {
			if len(kw) < 5 || strings.Contains(kw, " ") || seen[kw] {
				continue
			}
			seen[kw] = true
			out = append(out, kw)
		}
	}
	return out
}

// closestKeyword finds the pattern keyword nearest to a word of the message
// by Levenshtein distance. Words of 5 to 7 letters allow one edit, longer
// words two. Ties keep the pattern database order.
func closestKeyword(normalized string) (string, bool) {
	best, bestDistance := "", math.MaxInt
	for _, word := range textnorm.Tokens(normalized) {
		if len(word) < 5 {
			continue
		}
		maxDistance := 1
		if len(word) >= 8 {
			maxDistance = 2
		}
		for _, candidate := range fuzzyCandidates {
			d := fuzzy.LevenshteinDistance(word, candidate)
			if d == 0 || d > maxDistance {
				continue
			}
			if d < bestDistance {
				best, bestDistance = candidate, d
			}
		}
	}
	return best, best != ""
}
