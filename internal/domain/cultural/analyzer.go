package cultural

import (
	"math"

	"github.com/FACorreiaa/rachaai/internal/domain/regional"
	"github.com/FACorreiaa/rachaai/pkg/textnorm"
)

const (
	confidenceBase          = 0.7
	patternWeight           = 0.4
	slangWeight             = 0.15
	slangCap                = 0.3
	formalityBonus          = 0.15
	regionBonus             = 0.15
	strongPatternBonus      = 0.1
	strongPatternConfidence = 0.8
)

// Analyzer reads the cultural context of a message. It holds no state; all
// tables are built once at package init and only read afterwards.
type Analyzer struct{}

// NewAnalyzer creates a cultural context analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze labels text with its cultural context. It never fails: anything it
// cannot infer keeps its default and lowers nothing but its own contribution
// to the confidence score.
func (a *Analyzer) Analyze(text string, declared regional.Region) CulturalContext {
	normalized := textnorm.Normalize(text)
	ctx := DefaultContext()

	evidence := detectPatterns(normalized)
	slang := slangIndex.distinctTerms(normalized)

	ctx.Region = detectRegion(normalized, declared)
	ctx.FormalityLevel = detectFormality(normalized, ctx.Region)
	ctx.TimeOfDay = detectTimeOfDay(normalized)
	ctx.GroupType = detectGroupType(normalized)
	ctx.Scenario = detectScenario(normalized, evidence)
	ctx.PaymentMethodHint = detectPaymentHint(normalized)
	ctx.SocialDynamics = detectDynamics(normalized, evidence)
	ctx.Confidence = contextConfidence(evidence, slang, ctx)

	return ctx
}

// Evidence exposes the ranked pattern evidence for text.
func (a *Analyzer) Evidence(text string) []Evidence {
	return detectPatterns(textnorm.Normalize(text))
}

func detectRegion(normalized string, declared regional.Region) regional.Region {
	if declared.IsDeclared() {
		return declared
	}
	if label, ok := regionIndex.first(normalized); ok {
		return regional.Region(label)
	}
	return regional.Outros
}

func detectFormality(normalized string, region regional.Region) FormalityLevel {
	score := 0.0
	for _, h := range formalityIndex.hits(normalized) {
		switch h.label {
		case formalGroup:
			score += formalWeight
		case informalGroup:
			score += informalWeight
		case veryInformalGroup:
			score += veryInformalWeight
		}
	}

	// A known region only contributes its own markers; an unknown one lets
	// every region's markers count.
	regions := regional.Regions
	if _, ok := regionalFormalityIndex[region]; ok {
		regions = []regional.Region{region}
	}
	for _, r := range regions {
		for _, h := range regionalFormalityIndex[r].hits(normalized) {
			if h.label == formalGroup {
				score += regionalMarkerWeight
			} else {
				score -= regionalMarkerWeight
			}
		}
	}

	switch {
	case score >= profissionalThreshold:
		return FormalityProfissional
	case score >= formalThreshold:
		return FormalityFormal
	case score >= informalThreshold:
		return FormalityInformal
	default:
		return FormalityMuitoInformal
	}
}

func detectTimeOfDay(normalized string) TimeOfDay {
	if label, ok := timeIndex.first(normalized); ok {
		return TimeOfDay(label)
	}
	return TimeNoite
}

func detectGroupType(normalized string) GroupType {
	if label, ok := groupIndex.first(normalized); ok {
		return GroupType(label)
	}
	return GroupGrupoMisto
}

func detectScenario(normalized string, evidence []Evidence) Scenario {
	if len(evidence) > 0 && len(evidence[0].Pattern.Scenarios) > 0 {
		return evidence[0].Pattern.Scenarios[0]
	}
	if label, ok := scenarioFallbackIndex.first(normalized); ok {
		return Scenario(label)
	}
	return ScenarioOutros
}

func detectPaymentHint(normalized string) PaymentMethod {
	if label, ok := paymentIndex.first(normalized); ok {
		return PaymentMethod(label)
	}
	return PaymentPix
}

func detectDynamics(normalized string, evidence []Evidence) SocialDynamics {
	if len(evidence) > 0 && len(evidence[0].Pattern.Dynamics) > 0 {
		return evidence[0].Pattern.Dynamics[0]
	}
	if label, ok := dynamicsIndex.first(normalized); ok {
		return SocialDynamics(label)
	}
	return DynamicsIgual
}

func contextConfidence(evidence []Evidence, slang int, ctx CulturalContext) float64 {
	confidence := confidenceBase

	top := 0.0
	if len(evidence) > 0 {
		top = evidence[0].Confidence
		confidence += top * patternWeight
	}

	confidence += math.Min(float64(slang)*slangWeight, slangCap)

	if ctx.FormalityLevel == FormalityFormal || ctx.FormalityLevel == FormalityInformal {
		confidence += formalityBonus
	}
	if ctx.Region != regional.Outros {
		confidence += regionBonus
	}
	if top > strongPatternConfidence {
		confidence += strongPatternBonus
	}

	return math.Max(0, math.Min(1, confidence))
}
