package cultural

import (
	"sort"

	"github.com/cloudflare/ahocorasick"
)

// keywordGroup is a labelled set of normalized terms. Groups are declared in
// priority order.
type keywordGroup struct {
	label string
	terms []string
}

// keywordHit is one term found in a message together with the group it
// belongs to.
type keywordHit struct {
	term  string
	order int // position of the term in the index dictionary
	group int
	label string
}

// keywordIndex matches every term of an ordered group table in a single pass
// using the Aho-Corasick algorithm. The index is immutable after construction,
// and lookups go through MatchThreadSafe, so one index can serve concurrent
// requests.
type keywordIndex struct {
	matcher *ahocorasick.Matcher
	terms   []string // unique terms, same order as the matcher dictionary
	groups  [][]int  // group indexes per term; a term may belong to several groups
	labels  []string
}

// newKeywordIndex builds the matcher. A term repeated across groups is stored
// once and keeps every group it was declared in.
func newKeywordIndex(table []keywordGroup) *keywordIndex {
	idx := &keywordIndex{labels: make([]string, len(table))}

	termToIndex := make(map[string]int)
	for g, group := range table {
		idx.labels[g] = group.label
		for _, term := range group.terms {
			if term == "" {
				continue
			}
			if i, exists := termToIndex[term]; exists {
				idx.groups[i] = append(idx.groups[i], g)
				continue
			}
			termToIndex[term] = len(idx.terms)
			idx.terms = append(idx.terms, term)
			idx.groups = append(idx.groups, []int{g})
		}
	}

	if len(idx.terms) > 0 {
		idx.matcher = ahocorasick.NewStringMatcher(idx.terms)
	}
	return idx
}

// hits returns every term found in normalized text, ordered by group
// priority and then by term declaration order.
func (k *keywordIndex) hits(normalized string) []keywordHit {
	if k.matcher == nil || normalized == "" {
		return nil
	}

	matches := k.matcher.MatchThreadSafe([]byte(normalized))
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[int]bool, len(matches))
	var out []keywordHit
	for _, i := range matches {
		if i < 0 || i >= len(k.terms) || seen[i] {
			continue
		}
		seen[i] = true
		for _, g := range k.groups[i] {
			out = append(out, keywordHit{term: k.terms[i], order: i, group: g, label: k.labels[g]})
		}
	}

	sort.SliceStable(out, func(a, b int) bool {
		if out[a].group != out[b].group {
			return out[a].group < out[b].group
		}
		return out[a].order < out[b].order
	})
	return out
}

// first returns the label of the highest-priority group with any hit.
func (k *keywordIndex) first(normalized string) (string, bool) {
	hits := k.hits(normalized)
	if len(hits) == 0 {
		return "", false
	}
	return hits[0].label, true
}

// distinctTerms counts the different terms found in normalized text.
func (k *keywordIndex) distinctTerms(normalized string) int {
	seen := make(map[string]bool)
	for _, h := range k.hits(normalized) {
		seen[h.term] = true
	}
	return len(seen)
}
