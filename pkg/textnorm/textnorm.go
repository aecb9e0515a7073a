// Package textnorm normalizes free-form Portuguese text for keyword matching.
// Every classifier in the engine matches against the output of Normalize.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented runes and drops the combining marks,
// so "Rodízio" and "rodizio" compare equal. A chained transformer carries
// buffers between calls, so every call gets its own.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Normalize lowercases text, removes diacritics and collapses whitespace.
// It is total and idempotent: Normalize(Normalize(s)) == Normalize(s),
// and safe for concurrent use.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lowered := strings.ToLower(text)
	stripped, _, err := transform.String(stripMarks(), lowered)
	if err != nil {
		// transform only fails on invalid UTF-8 boundaries; fall back to the lowered form
		stripped = lowered
	}

	return strings.Join(strings.Fields(stripped), " ")
}

// Tokens splits text into lowercase letter/digit words.
// Punctuation and symbols act as separators.
func Tokens(text string) []string {
	return strings.FieldsFunc(Normalize(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Padded joins tokens with single spaces and surrounds the result with spaces.
// It is the haystack format expected by ContainsPhrase.
func Padded(tokens []string) string {
	return " " + strings.Join(tokens, " ") + " "
}

// ContainsPhrase reports whether phrase occurs in padded as whole words.
// padded must come from Padded; phrase must already be normalized.
func ContainsPhrase(padded, phrase string) bool {
	if phrase == "" {
		return false
	}
	return strings.Contains(padded, " "+phrase+" ")
}

// ContainsAny reports whether any term is a substring of text.
// Terms are compared as-is; callers pass normalized text and terms.
func ContainsAny(text string, terms []string) bool {
	for _, term := range terms {
		if term != "" && strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// CountMatches returns how many distinct terms occur in text as substrings.
func CountMatches(text string, terms []string) int {
	count := 0
	for _, term := range terms {
		if term != "" && strings.Contains(text, term) {
			count++
		}
	}
	return count
}
