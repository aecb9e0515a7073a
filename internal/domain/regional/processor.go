package regional

import (
	"regexp"
	"sort"
	"strings"

	"github.com/FACorreiaa/rachaai/pkg/textnorm"
)

const (
	baseConfidence    = 0.7
	declaredBoost     = 0.2
	commonBoost       = 0.1
	widespreadPenalty = 0.1
	widespreadRegions = 3
)

// Variation is a regional term found in a message.
type Variation struct {
	Region       Region  `json:"region"`
	OriginalTerm string  `json:"original_term"`
	StandardTerm string  `json:"standard_term"`
	Confidence   float64 `json:"confidence"`
	Context      string  `json:"context"`
}

// Processor scans messages against the regional dictionaries.
// It holds no state and is safe for concurrent use.
type Processor struct{}

// NewProcessor creates a regional variation processor.
func NewProcessor() *Processor {
	return &Processor{}
}

// Detect returns the regional terms found in text. A declared region's
// dictionary is scanned first, then the remaining regions in canonical order.
// Results are de-duplicated by (original, standard) pair, first seen wins.
func (p *Processor) Detect(text string, declared Region) []Variation {
	normalized := textnorm.Normalize(text)
	if normalized == "" {
		return nil
	}

	type pair struct{ original, standard string }
	seen := make(map[pair]bool)
	var variations []Variation

	for _, region := range scanOrder(declared) {
		for _, entry := range dictionaries[region] {
			if !strings.Contains(normalized, entry.Term) {
				continue
			}
			key := pair{entry.Term, entry.Standard}
			if seen[key] {
				continue
			}
			seen[key] = true

			variations = append(variations, Variation{
				Region:       region,
				OriginalTerm: entry.Term,
				StandardTerm: entry.Standard,
				Confidence:   termConfidence(entry.Term, region, declared),
				Context:      entry.Gloss,
			})
		}
	}

	return variations
}

// Standardize rewrites every detected regional term into its standard form.
// Replacement happens in one pass over the normalized text, longest terms
// first, so a rewritten word is never rewritten again.
func (p *Processor) Standardize(text string, declared Region) string {
	normalized := textnorm.Normalize(text)
	variations := p.Detect(normalized, declared)
	if len(variations) == 0 {
		return normalized
	}

	replacements := make(map[string]string, len(variations))
	terms := make([]string, 0, len(variations))
	for _, v := range variations {
		if _, ok := replacements[v.OriginalTerm]; ok {
			continue
		}
		replacements[v.OriginalTerm] = v.StandardTerm
		terms = append(terms, v.OriginalTerm)
	}

	sort.SliceStable(terms, func(i, j int) bool {
		return len(terms[i]) > len(terms[j])
	})

	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = regexp.QuoteMeta(t)
	}
	re := regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)

	return re.ReplaceAllStringFunc(normalized, func(match string) string {
		return replacements[match]
	})
}

// scanOrder puts the declared region first and keeps the rest canonical.
func scanOrder(declared Region) []Region {
	if _, ok := dictionaries[declared]; !ok {
		return Regions
	}

	order := make([]Region, 0, len(Regions))
	order = append(order, declared)
	for _, r := range Regions {
		if r != declared {
			order = append(order, r)
		}
	}
	return order
}

func termConfidence(term string, matched, declared Region) float64 {
	confidence := baseConfidence
	if declared.IsDeclared() && matched == declared {
		confidence += declaredBoost
	}
	if commonTerms[term] {
		confidence += commonBoost
	}
	if termRegionCount[term] > widespreadRegions {
		confidence -= widespreadPenalty
	}
	return clamp(confidence)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
