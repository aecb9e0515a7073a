package expense

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/FACorreiaa/rachaai/pkg/money"
	"github.com/FACorreiaa/rachaai/pkg/textnorm"
)

var (
	minAmount = decimal.Zero
	maxAmount = decimal.NewFromInt(10000)
	hundred   = decimal.NewFromInt(100)
)

// currencyPattern is one step of the amount cascade.
type currencyPattern struct {
	re         *regexp.Regexp
	confidence float64
}

// currencyPatterns run in order. A span taken by an earlier pattern is never
// read again, so "r$ 99,90" yields 99.90 and not also 99.
var currencyPatterns = []currencyPattern{
	{regexp.MustCompile(`r\$\s*(\d{1,3}(?:\.\d{3})+,\d{1,2})\b`), 0.95},
	{regexp.MustCompile(`r\$\s*(\d{1,3}(?:\.\d{3})+)\b`), 0.95},
	{regexp.MustCompile(`r\$\s*(\d+,\d{1,2})\b`), 0.95},
	{regexp.MustCompile(`r\$\s*(\d+\.\d{1,2})\b`), 0.9},
	{regexp.MustCompile(`r\$\s*(\d+)`), 0.9},
	{regexp.MustCompile(`\b(\d{1,3}(?:\.\d{3})+(?:,\d{1,2})?)\s*reais\b`), 0.9},
	{regexp.MustCompile(`\b(\d+(?:[.,]\d{1,2})?)\s*reais\b`), 0.9},
}

var discountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`desconto\s+de\s+(\d+(?:[.,]\d{1,2})?)\s*%`),
	regexp.MustCompile(`(\d+(?:[.,]\d{1,2})?)\s*%\s*de\s+desconto`),
}

var thousandsRegex = regexp.MustCompile(`^\d{1,3}(?:\.\d{3})+$`)

// looseNumberRegex is the last-resort pass, used only when nothing else matched.
var looseNumberRegex = regexp.MustCompile(`\b\d+(?:[.,]\d+)*\b`)

// looseSkipRegex rejects numbers that are head counts, percentages or clock times.
var looseSkipRegex = regexp.MustCompile(`^\s*(?:%|:\d|(?:h|hs|hrs|horas?)\b|(?:` + peopleNounPattern + `)\b)`)

var amountWords = map[string]int{
	"um": 1, "dois": 2, "tres": 3, "quatro": 4, "cinco": 5, "seis": 6, "sete": 7,
	"oito": 8, "nove": 9, "dez": 10, "onze": 11, "doze": 12, "treze": 13,
	"quatorze": 14, "catorze": 14, "quinze": 15, "dezesseis": 16, "dezessete": 17,
	"dezoito": 18, "dezenove": 19, "vinte": 20, "trinta": 30, "quarenta": 40,
	"cinquenta": 50, "sessenta": 60, "setenta": 70, "oitenta": 80, "noventa": 90,
	"cem": 100, "cento": 100, "duzentos": 200, "trezentos": 300, "quatrocentos": 400,
	"quinhentos": 500, "seiscentos": 600, "setecentos": 700, "oitocentos": 800,
	"novecentos": 900, "mil": 1000,
}

var amountWordsRegex = func() *regexp.Regexp {
	word := `(?:` + joinKeys(amountWords) + `)`
	return regexp.MustCompile(`\b(` + word + `(?:\s+(?:e\s+)?` + word + `)*)\s+(?:reais|real)\b`)
}()

// amountMatch is an amount together with where it sits in the text.
type amountMatch struct {
	Amount
	start, end int
}

// extractAmounts reads every plausible BRL value from normalized text.
// The result is de-duplicated by value and sorted from highest to lowest.
func extractAmounts(normalized string) []Amount {
	var matches []amountMatch
	var taken [][2]int

	overlaps := func(start, end int) bool {
		for _, span := range taken {
			if start < span[1] && end > span[0] {
				return true
			}
		}
		return false
	}

	for _, p := range currencyPatterns {
		for _, loc := range p.re.FindAllStringSubmatchIndex(normalized, -1) {
			if overlaps(loc[0], loc[1]) {
				continue
			}
			taken = append(taken, [2]int{loc[0], loc[1]})
			if continuesNumber(normalized, loc[3]) {
				continue
			}

			value, ok := parseBRL(normalized[loc[2]:loc[3]])
			if !ok || !plausible(value) {
				continue
			}
			matches = append(matches, amountMatch{
				Amount: Amount{
					Value:       value,
					Currency:    money.BRL,
					Description: normalized[loc[0]:loc[1]],
					Confidence:  p.confidence,
				},
				start: loc[0],
				end:   loc[1],
			})
		}
	}

	for _, re := range discountPatterns {
		for _, loc := range re.FindAllStringSubmatchIndex(normalized, -1) {
			if overlaps(loc[0], loc[1]) {
				continue
			}
			taken = append(taken, [2]int{loc[0], loc[1]})

			pct, ok := parseBRL(normalized[loc[2]:loc[3]])
			if !ok || !pct.IsPositive() || pct.GreaterThan(hundred) {
				continue
			}
			matches = append(matches, amountMatch{
				Amount: Amount{
					Value:       pct.Neg(),
					Currency:    money.BRL,
					Description: normalized[loc[0]:loc[1]],
					Type:        AmountDiscount,
					Confidence:  0.85,
				},
				start: loc[0],
				end:   loc[1],
			})
		}
	}

	for _, loc := range amountWordsRegex.FindAllStringSubmatchIndex(normalized, -1) {
		if overlaps(loc[0], loc[1]) {
			continue
		}
		taken = append(taken, [2]int{loc[0], loc[1]})

		value := decimal.NewFromInt(int64(wordsToNumber(normalized[loc[2]:loc[3]])))
		if !plausible(value) {
			continue
		}
		matches = append(matches, amountMatch{
			Amount: Amount{
				Value:       value,
				Currency:    money.BRL,
				Description: normalized[loc[0]:loc[1]],
				Confidence:  0.75,
			},
			start: loc[0],
			end:   loc[1],
		})
	}

	// The loose pass only runs when no currency expression was seen at all,
	// not when one was seen and rejected as implausible.
	if len(taken) == 0 {
		matches = looseAmounts(normalized)
	}

	for i := range matches {
		if matches[i].Type == "" {
			matches[i].Type = amountType(normalized, matches[i].start, matches[i].end)
		}
	}

	return dedupeAmounts(matches)
}

// continuesNumber reports whether a separator and more digits follow end,
// as in "r$ 1234,567". Such a number is malformed and is not read at all.
func continuesNumber(normalized string, end int) bool {
	return end+1 < len(normalized) &&
		(normalized[end] == ',' || normalized[end] == '.') &&
		normalized[end+1] >= '0' && normalized[end+1] <= '9'
}

// looseAmounts accepts any bare number that is not a head count, percentage
// or clock time.
func looseAmounts(normalized string) []amountMatch {
	var out []amountMatch
	for _, loc := range looseNumberRegex.FindAllStringIndex(normalized, -1) {
		if looseSkipRegex.MatchString(normalized[loc[1]:]) {
			continue
		}
		if loc[0] > 0 && normalized[loc[0]-1] == ':' {
			continue
		}
		value, ok := parseBRL(normalized[loc[0]:loc[1]])
		if !ok || !plausible(value) {
			continue
		}
		out = append(out, amountMatch{
			Amount: Amount{
				Value:       value,
				Currency:    money.BRL,
				Description: normalized[loc[0]:loc[1]],
				Confidence:  0.6,
			},
			start: loc[0],
			end:   loc[1],
		})
	}
	return out
}

// amountType infers what a value means from the words around it.
func amountType(normalized string, start, end int) AmountType {
	before := normalized[max(0, start-15):start]
	after := normalized[end:min(len(normalized), end+12)]
	around := before + " " + after

	switch {
	case strings.Contains(before, "cada"),
		textnorm.ContainsAny(after, []string{"por pessoa", "por cabeca", "pra cada", "para cada", "cada um"}):
		return AmountPerPerson
	case textnorm.ContainsAny(around, []string{"gorjeta", "taxa de servico"}):
		return AmountTip
	case strings.Contains(around, "imposto"):
		return AmountTax
	case textnorm.ContainsAny(after, []string{"por familia", "por casal", "cada familia"}):
		return AmountPerGroup
	default:
		return AmountTotal
	}
}

// parseBRL reads a Brazilian-formatted number: dots group thousands and a
// comma separates decimals. A lone dot with one or two digits is a decimal.
func parseBRL(s string) (decimal.Decimal, bool) {
	switch {
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case thousandsRegex.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// wordsToNumber evaluates Portuguese number words: "cento e vinte" is 120,
// "dois mil e quinhentos" is 2500.
func wordsToNumber(phrase string) int {
	total, current := 0, 0
	for _, w := range strings.Fields(phrase) {
		if w == "e" {
			continue
		}
		if w == "mil" {
			if current == 0 {
				current = 1
			}
			total += current * 1000
			current = 0
			continue
		}
		current += amountWords[w]
	}
	return total + current
}

func plausible(v decimal.Decimal) bool {
	return v.GreaterThan(minAmount) && v.LessThan(maxAmount)
}

// dedupeAmounts keeps one amount per value, the most confident one, ordered
// by value descending.
func dedupeAmounts(matches []amountMatch) []Amount {
	best := make(map[string]int)
	var out []Amount
	for _, m := range matches {
		key := m.Value.String()
		if i, ok := best[key]; ok {
			if m.Confidence > out[i].Confidence {
				out[i] = m.Amount
			}
			continue
		}
		best[key] = len(out)
		out = append(out, m.Amount)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value.GreaterThan(out[j].Value)
	})
	if out == nil {
		out = []Amount{}
	}
	return out
}

// totalAmount sums the total-typed amounts; without any it falls back to the
// highest non-discount value, and to zero when there is none.
func totalAmount(amounts []Amount) decimal.Decimal {
	sum := decimal.Zero
	found := false
	for _, a := range amounts {
		if a.Type == AmountTotal {
			sum = sum.Add(a.Value)
			found = true
		}
	}
	if found {
		return sum
	}

	for _, a := range amounts {
		if a.Type != AmountDiscount {
			return a.Value
		}
	}
	return decimal.Zero
}
