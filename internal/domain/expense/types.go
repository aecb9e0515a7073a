// Package expense interprets a free-form Portuguese description of a shared
// expense: who splits, how much, and by which method.
package expense

import (
	"github.com/shopspring/decimal"

	"github.com/FACorreiaa/rachaai/internal/domain/cultural"
	"github.com/FACorreiaa/rachaai/internal/domain/regional"
)

// SplittingMethod is how the total is divided between participants.
type SplittingMethod string

const (
	MethodEqual         SplittingMethod = "equal"
	MethodByConsumption SplittingMethod = "by_consumption"
	MethodHostPays      SplittingMethod = "host_pays"
	MethodComplex       SplittingMethod = "complex"
	MethodByFamily      SplittingMethod = "by_family"
	MethodVaquinha      SplittingMethod = "vaquinha"
)

// ParticipantType classifies a participant entry.
type ParticipantType string

const (
	ParticipantPerson ParticipantType = "person"
	ParticipantGroup  ParticipantType = "group"
	ParticipantFamily ParticipantType = "family"
	ParticipantCouple ParticipantType = "couple"
)

// AmountType classifies a monetary value found in a message.
type AmountType string

const (
	AmountTotal     AmountType = "total"
	AmountPerPerson AmountType = "per_person"
	AmountPerGroup  AmountType = "per_group"
	AmountDiscount  AmountType = "discount"
	AmountTax       AmountType = "tax"
	AmountTip       AmountType = "tip"
)

// Participant is someone, or some group, taking part in the expense.
type Participant struct {
	Name       string          `json:"name"`
	Type       ParticipantType `json:"type"`
	Count      int             `json:"count"`
	Confidence float64         `json:"confidence"`
	Context    string          `json:"context"`
}

// Amount is a monetary value read from the message. A negative Value is a
// discount percentage.
type Amount struct {
	Value       decimal.Decimal `json:"value"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	Type        AmountType      `json:"type"`
	Confidence  float64         `json:"confidence"`
}

// ExpenseInterpretation is the full reading of one message.
type ExpenseInterpretation struct {
	OriginalText       string                   `json:"original_text"`
	NormalizedText     string                   `json:"normalized_text"`
	Participants       []Participant            `json:"participants"`
	Amounts            []Amount                 `json:"amounts"`
	TotalAmount        decimal.Decimal          `json:"total_amount"`
	SplittingMethod    SplittingMethod          `json:"splitting_method"`
	CulturalContext    cultural.CulturalContext `json:"cultural_context"`
	Confidence         float64                  `json:"confidence"`
	Suggestions        []string                 `json:"suggestions"`
	RegionalVariations []regional.Variation     `json:"regional_variations"`
	ProcessingTimeMs   int64                    `json:"processing_time_ms"`
}

// HeadCount is the number of people the message states explicitly: the
// largest numeric group ("4 pessoas"), otherwise the number of individuals
// when only individuals were named. Groups of unknown size yield 0.
func (e *ExpenseInterpretation) HeadCount() int {
	numeric := 0
	for _, p := range e.Participants {
		if p.Context == contextNumeric && p.Count > numeric {
			numeric = p.Count
		}
	}
	if numeric > 0 {
		return numeric
	}

	for _, p := range e.Participants {
		if p.Type != ParticipantPerson {
			return 0
		}
	}
	return len(e.Participants)
}
