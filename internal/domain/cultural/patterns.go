package cultural

import (
	"sort"

	"github.com/FACorreiaa/rachaai/internal/domain/regional"
	"github.com/FACorreiaa/rachaai/pkg/textnorm"
)

// Pattern is one entry of the cultural pattern database. Keywords are stored
// normalized. Scenarios and Dynamics are ranked, best candidate first.
type Pattern struct {
	Name             string
	Keywords         []string
	Scenarios        []Scenario
	Dynamics         []SocialDynamics
	RegionalVariants map[regional.Region][]string
	BaseConfidence   float64
}

// Evidence is a pattern that matched a message.
type Evidence struct {
	Pattern    *Pattern
	Matched    int
	Confidence float64
}

// patternDB is the ordered pattern database. Declaration order breaks ties
// between patterns of equal confidence.
var patternDB = []Pattern{
	{
		Name:      "rodizio",
		Keywords:  []string{"rodizio", "pizza", "sushi", "churrascaria", "rodada", "espeto corrido", "a vontade"},
		Scenarios: []Scenario{ScenarioRodizio, ScenarioRestaurante},
		Dynamics:  []SocialDynamics{DynamicsIgual},
		RegionalVariants: map[regional.Region][]string{
			regional.RioGrandeDoSul: {"espeto corrido"},
			regional.SaoPaulo:       {"rodizio de pizza"},
		},
		BaseConfidence: 0.9,
	},
	{
		Name:      "happy_hour",
		Keywords:  []string{"happy hour", "chopp", "chope", "cerveja", "breja", "bar", "petisco", "drinks", "gelada"},
		Scenarios: []Scenario{ScenarioHappyHour},
		Dynamics:  []SocialDynamics{DynamicsPorConsumo, DynamicsIgual},
		RegionalVariants: map[regional.Region][]string{
			regional.SaoPaulo:     {"breja"},
			regional.RioDeJaneiro: {"chope", "boteco"},
		},
		BaseConfidence: 0.85,
	},
	{
		Name:      "churrasco",
		Keywords:  []string{"churrasco", "carne", "carvao", "picanha", "linguica", "costela"},
		Scenarios: []Scenario{ScenarioChurrasco},
		Dynamics:  []SocialDynamics{DynamicsPorFamilia, DynamicsIgual},
		RegionalVariants: map[regional.Region][]string{
			regional.RioGrandeDoSul: {"costela", "chimarrao"},
		},
		BaseConfidence: 0.9,
	},
	{
		Name:           "aniversario",
		Keywords:       []string{"aniversario", "niver", "bolo", "parabens", "festa", "presente", "aniversariante"},
		Scenarios:      []Scenario{ScenarioAniversario},
		Dynamics:       []SocialDynamics{DynamicsAnfitriaoPaga, DynamicsVaquinha},
		BaseConfidence: 0.85,
	},
	{
		Name:      "viagem",
		Keywords:  []string{"viagem", "hotel", "pousada", "passagem", "gasolina", "pedagio", "airbnb", "praia", "hospedagem"},
		Scenarios: []Scenario{ScenarioViagem},
		Dynamics:  []SocialDynamics{DynamicsIgual, DynamicsComplexo},
		RegionalVariants: map[regional.Region][]string{
			regional.Nordeste: {"praia"},
			regional.Bahia:    {"praia"},
		},
		BaseConfidence: 0.8,
	},
	{
		Name:           "vaquinha",
		Keywords:       []string{"vaquinha", "vakinha", "contribuicao", "arrecadar", "juntar dinheiro", "cada um contribui", "caixinha"},
		Scenarios:      []Scenario{ScenarioVaquinha},
		Dynamics:       []SocialDynamics{DynamicsVaquinha},
		BaseConfidence: 0.9,
	},
	{
		Name:           "restaurante",
		Keywords:       []string{"restaurante", "jantar", "almoco", "garcom", "conta", "gorjeta", "taxa de servico", "10%"},
		Scenarios:      []Scenario{ScenarioRestaurante},
		Dynamics:       []SocialDynamics{DynamicsIgual, DynamicsPorConsumo},
		BaseConfidence: 0.8,
	},
	{
		Name:           "uber",
		Keywords:       []string{"uber", "taxi", "corrida", "carona", "99pop"},
		Scenarios:      []Scenario{ScenarioUber},
		Dynamics:       []SocialDynamics{DynamicsIgual},
		BaseConfidence: 0.85,
	},
}

// Patterns returns the pattern database in declaration order.
func Patterns() []Pattern {
	out := make([]Pattern, len(patternDB))
	copy(out, patternDB)
	return out
}

// detectPatterns scores every pattern against normalized text and returns
// the ones with at least one keyword hit, strongest first.
func detectPatterns(normalized string) []Evidence {
	var evidence []Evidence
	for i := range patternDB {
		p := &patternDB[i]
		matched := textnorm.CountMatches(normalized, p.Keywords)
		if matched == 0 {
			continue
		}
		evidence = append(evidence, Evidence{
			Pattern:    p,
			Matched:    matched,
			Confidence: p.BaseConfidence * float64(matched) / float64(len(p.Keywords)),
		})
	}

	sort.SliceStable(evidence, func(i, j int) bool {
		return evidence[i].Confidence > evidence[j].Confidence
	})
	return evidence
}
