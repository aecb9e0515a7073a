// Package cultural labels a Brazilian expense message with the social
// convention behind it: scenario, region, formality, time of day, group type,
// payment hint and how the group usually splits the bill.
package cultural

import "github.com/FACorreiaa/rachaai/internal/domain/regional"

// Scenario is the kind of social event an expense belongs to.
type Scenario string

const (
	ScenarioRodizio     Scenario = "rodizio"
	ScenarioHappyHour   Scenario = "happy_hour"
	ScenarioChurrasco   Scenario = "churrasco"
	ScenarioAniversario Scenario = "aniversario"
	ScenarioViagem      Scenario = "viagem"
	ScenarioVaquinha    Scenario = "vaquinha"
	ScenarioRestaurante Scenario = "restaurante"
	ScenarioUber        Scenario = "uber"
	ScenarioOutros      Scenario = "outros"
)

// GroupType describes who is splitting.
type GroupType string

const (
	GroupAmigos     GroupType = "amigos"
	GroupFamilia    GroupType = "familia"
	GroupTrabalho   GroupType = "trabalho"
	GroupFaculdade  GroupType = "faculdade"
	GroupCasal      GroupType = "casal"
	GroupGrupoMisto GroupType = "grupo_misto"
)

// TimeOfDay buckets.
type TimeOfDay string

const (
	TimeManha     TimeOfDay = "manha"
	TimeAlmoco    TimeOfDay = "almoco"
	TimeTarde     TimeOfDay = "tarde"
	TimeNoite     TimeOfDay = "noite"
	TimeMadrugada TimeOfDay = "madrugada"
)

// FormalityLevel of the message register.
type FormalityLevel string

const (
	FormalityProfissional  FormalityLevel = "profissional"
	FormalityFormal        FormalityLevel = "formal"
	FormalityInformal      FormalityLevel = "informal"
	FormalityMuitoInformal FormalityLevel = "muito_informal"
)

// PaymentMethod is a hint of how the money will move.
type PaymentMethod string

const (
	PaymentPix      PaymentMethod = "pix"
	PaymentBoleto   PaymentMethod = "boleto"
	PaymentCartao   PaymentMethod = "cartao"
	PaymentDinheiro PaymentMethod = "dinheiro"
	PaymentVaquinha PaymentMethod = "vaquinha"
	PaymentRodizio  PaymentMethod = "rodizio"
)

// SocialDynamics is the customary way a group shares a cost.
type SocialDynamics string

const (
	DynamicsIgual         SocialDynamics = "igual"
	DynamicsPorConsumo    SocialDynamics = "por_consumo"
	DynamicsAnfitriaoPaga SocialDynamics = "anfitriao_paga"
	DynamicsPorFamilia    SocialDynamics = "por_familia"
	DynamicsComplexo      SocialDynamics = "complexo"
	DynamicsVaquinha      SocialDynamics = "vaquinha"
	DynamicsRotativo      SocialDynamics = "rotativo"
)

// CulturalContext is the analyzer's reading of a message. Every field always
// holds a value; fields nothing matched keep their defaults.
type CulturalContext struct {
	Scenario          Scenario        `json:"scenario"`
	GroupType         GroupType       `json:"group_type"`
	Region            regional.Region `json:"region"`
	TimeOfDay         TimeOfDay       `json:"time_of_day"`
	FormalityLevel    FormalityLevel  `json:"formality_level"`
	PaymentMethodHint PaymentMethod   `json:"payment_method_hint"`
	SocialDynamics    SocialDynamics  `json:"social_dynamics"`
	Confidence        float64         `json:"confidence"`
}

// DefaultContext returns a context holding only defaults.
func DefaultContext() CulturalContext {
	return CulturalContext{
		Scenario:          ScenarioOutros,
		GroupType:         GroupGrupoMisto,
		Region:            regional.Outros,
		TimeOfDay:         TimeNoite,
		FormalityLevel:    FormalityInformal,
		PaymentMethodHint: PaymentPix,
		SocialDynamics:    DynamicsIgual,
	}
}
