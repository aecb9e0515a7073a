package expense

import (
	"math"
	"time"

	"github.com/FACorreiaa/rachaai/internal/domain/cultural"
	"github.com/FACorreiaa/rachaai/internal/domain/regional"
	"github.com/FACorreiaa/rachaai/pkg/textnorm"
)

const (
	minStartConfidence   = 0.6
	noParticipantsFactor = 0.9
	noAmountsFactor      = 0.8
	variationBonus       = 0.15
	strongCultureBonus   = 0.1
	strongCultureLevel   = 0.8
)

// Processor turns a message into an ExpenseInterpretation. It is stateless
// apart from its collaborators, which are stateless too, so one Processor can
// serve concurrent calls.
type Processor struct {
	analyzer *cultural.Analyzer
	regional *regional.Processor
}

// NewProcessor creates an expense processor.
func NewProcessor(analyzer *cultural.Analyzer, regionalProcessor *regional.Processor) *Processor {
	return &Processor{
		analyzer: analyzer,
		regional: regionalProcessor,
	}
}

// Process interprets text. It never fails: whatever it cannot find keeps a
// default value and lowers the confidence score.
func (p *Processor) Process(text string, region regional.Region) ExpenseInterpretation {
	start := time.Now()

	normalized := textnorm.Normalize(text)
	culture := p.analyzer.Analyze(normalized, region)
	participants := extractParticipants(normalized)
	amounts := extractAmounts(normalized)
	method := decideMethod(normalized, culture.Scenario)
	variations := p.regional.Detect(normalized, region)
	if variations == nil {
		variations = []regional.Variation{}
	}

	result := ExpenseInterpretation{
		OriginalText:       text,
		NormalizedText:     normalized,
		Participants:       participants,
		Amounts:            amounts,
		TotalAmount:        totalAmount(amounts),
		SplittingMethod:    method,
		CulturalContext:    culture,
		RegionalVariations: variations,
	}
	result.Confidence = interpretationConfidence(culture.Confidence, participants, amounts, variations)
	result.Suggestions = p.suggestions(&result)
	result.ProcessingTimeMs = time.Since(start).Milliseconds()

	return result
}

func interpretationConfidence(cultureConfidence float64, participants []Participant, amounts []Amount, variations []regional.Variation) float64 {
	confidence := math.Max(cultureConfidence, minStartConfidence)

	if len(participants) > 0 {
		sum := 0.0
		for _, pt := range participants {
			sum += pt.Confidence
		}
		confidence = (confidence + sum/float64(len(participants))) / 2
	} else {
		confidence *= noParticipantsFactor
	}

	if len(amounts) > 0 {
		sum := 0.0
		for _, a := range amounts {
			sum += a.Confidence
		}
		confidence = (confidence + sum/float64(len(amounts))) / 2
	} else {
		confidence *= noAmountsFactor
	}

	if len(variations) > 0 {
		confidence += variationBonus
	}
	if cultureConfidence > strongCultureLevel {
		confidence += strongCultureBonus
	}

	return math.Max(0, math.Min(1, confidence))
}
