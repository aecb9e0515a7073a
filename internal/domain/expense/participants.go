package expense

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/FACorreiaa/rachaai/pkg/textnorm"
)

// Participant context tags record which detector produced an entry.
const (
	contextPronoun      = "pronoun"
	contextGroupPronoun = "group_pronoun"
	contextGroupNoun    = "group_noun"
	contextNumeric      = "numeric"
	contextFallback     = "fallback"
)

const (
	maxIndividuals = 3
	minGroupSize   = 1
	maxGroupSize   = 20
)

type participantTerm struct {
	term     string
	name     string
	kind     ParticipantType
	strength float64
}

var individualPronouns = []participantTerm{
	{"eu", "Eu", ParticipantPerson, 0.9},
	{"voce", "Você", ParticipantPerson, 0.9},
	{"vc", "Você", ParticipantPerson, 0.85},
	{"tu", "Você", ParticipantPerson, 0.85},
	{"ele", "Ele", ParticipantPerson, 0.85},
	{"ela", "Ela", ParticipantPerson, 0.85},
}

var groupPronouns = []participantTerm{
	{"nos", "Nós", ParticipantGroup, 0.8},
	{"a gente", "A gente", ParticipantGroup, 0.8},
	{"voces", "Vocês", ParticipantGroup, 0.8},
	{"eles", "Eles", ParticipantGroup, 0.75},
	{"elas", "Elas", ParticipantGroup, 0.75},
}

var groupNouns = []participantTerm{
	{"galera", "Galera", ParticipantGroup, 0.75},
	{"turma", "Turma", ParticipantGroup, 0.75},
	{"pessoal", "Pessoal", ParticipantGroup, 0.7},
	{"amigos", "Amigos", ParticipantGroup, 0.75},
	{"amigas", "Amigas", ParticipantGroup, 0.75},
	{"colegas", "Colegas", ParticipantGroup, 0.75},
	{"rapaziada", "Rapaziada", ParticipantGroup, 0.75},
	{"familia", "Família", ParticipantFamily, 0.8},
	{"parentes", "Família", ParticipantFamily, 0.75},
	{"casal", "Casal", ParticipantCouple, 0.8},
	{"namorados", "Casal", ParticipantCouple, 0.75},
}

// peopleNouns follow a head count: "4 pessoas", "cinco amigos".
var peopleNouns = []string{
	"pessoas", "pessoa", "amigos", "amigas", "amigo", "amiga", "convidados",
	"colegas", "adultos", "criancas", "familias", "casais",
}

var numberWords = map[string]int{
	"um": 1, "uma": 1, "dois": 2, "duas": 2, "tres": 3, "quatro": 4, "cinco": 5,
	"seis": 6, "sete": 7, "oito": 8, "nove": 9, "dez": 10, "onze": 11, "doze": 12,
	"treze": 13, "quatorze": 14, "catorze": 14, "quinze": 15, "dezesseis": 16,
	"dezessete": 17, "dezoito": 18, "dezenove": 19, "vinte": 20,
}

var (
	peopleNounPattern = strings.Join(peopleNouns, "|")
	numericGroupRegex = regexp.MustCompile(`\b(\d+)\s+(` + peopleNounPattern + `)\b`)
	wordGroupRegex    = regexp.MustCompile(`\b(` + joinKeys(numberWords) + `)\s+(` + peopleNounPattern + `)\b`)
)

// fallbackVerbs imply a shared expense even when nobody is named.
var fallbackVerbs = []string{"dividir", "rachar", "racha", "pagar", "paga", "conta", "acertar"}

// extractParticipants runs the participant detectors in order. Three or more
// individuals end the search: the message is about named people, not groups.
func extractParticipants(normalized string) []Participant {
	padded := textnorm.Padded(textnorm.Tokens(normalized))
	var found []Participant

	for _, p := range individualPronouns {
		if textnorm.ContainsPhrase(padded, p.term) {
			found = append(found, p.participant(1, contextPronoun))
		}
	}
	found = dedupeParticipants(found)
	if len(found) >= maxIndividuals {
		return found
	}

	for _, p := range groupPronouns {
		if textnorm.ContainsPhrase(padded, p.term) {
			found = append(found, p.participant(1, contextGroupPronoun))
		}
	}
	for _, p := range groupNouns {
		if textnorm.ContainsPhrase(padded, p.term) {
			found = append(found, p.participant(1, contextGroupNoun))
		}
	}

	found = append(found, numericGroups(normalized)...)

	if len(found) == 0 && textnorm.ContainsAny(normalized, fallbackVerbs) {
		found = append(found, Participant{
			Name:       "Grupo",
			Type:       ParticipantGroup,
			Count:      1,
			Confidence: 0.5,
			Context:    contextFallback,
		})
	}

	return dedupeParticipants(found)
}

func (p participantTerm) participant(count int, context string) Participant {
	return Participant{
		Name:       p.name,
		Type:       p.kind,
		Count:      count,
		Confidence: p.strength,
		Context:    context,
	}
}

// numericGroups reads head counts written with digits or number words.
// Counts outside 1..20 are treated as mis-parses and dropped.
func numericGroups(normalized string) []Participant {
	var out []Participant

	add := func(count int, noun string) {
		if count < minGroupSize || count > maxGroupSize {
			return
		}
		kind := ParticipantGroup
		switch noun {
		case "familias":
			kind = ParticipantFamily
		case "casais":
			kind = ParticipantCouple
		}
		out = append(out, Participant{
			Name:       fmt.Sprintf("%d %s", count, noun),
			Type:       kind,
			Count:      count,
			Confidence: 0.85,
			Context:    contextNumeric,
		})
	}

	for _, m := range numericGroupRegex.FindAllStringSubmatch(normalized, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		add(n, m[2])
	}
	for _, m := range wordGroupRegex.FindAllStringSubmatch(normalized, -1) {
		add(numberWords[m[1]], m[2])
	}

	return out
}

// dedupeParticipants keeps the first entry of each name, compared
// case-insensitively.
func dedupeParticipants(in []Participant) []Participant {
	seen := make(map[string]bool, len(in))
	out := make([]Participant, 0, len(in))
	for _, p := range in {
		key := strings.ToLower(p.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}

// joinKeys builds a regexp alternation of map keys, longest first.
func joinKeys(m map[string]int) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return strings.Join(keys, "|")
}
