// Package regional detects Brazilian regional slang in expense messages and
// rewrites it into standard Portuguese vocabulary.
package regional

import "github.com/FACorreiaa/rachaai/pkg/textnorm"

// Region is a Brazilian region code. The zero value means "not declared".
type Region string

const (
	SaoPaulo       Region = "sao_paulo"
	RioDeJaneiro   Region = "rio_de_janeiro"
	MinasGerais    Region = "minas_gerais"
	RioGrandeDoSul Region = "rio_grande_do_sul"
	Bahia          Region = "bahia"
	Nordeste       Region = "nordeste"
	Norte          Region = "norte"
	CentroOeste    Region = "centro_oeste"
	Outros         Region = "outros"
)

// Regions lists every concrete region in canonical scan order.
var Regions = []Region{
	SaoPaulo,
	RioDeJaneiro,
	MinasGerais,
	RioGrandeDoSul,
	Bahia,
	Nordeste,
	Norte,
	CentroOeste,
}

// aliases maps loose caller input (UF codes, spelled-out names) to a Region.
var aliases = map[string]Region{
	"sp":                SaoPaulo,
	"sao paulo":         SaoPaulo,
	"rj":                RioDeJaneiro,
	"rio de janeiro":    RioDeJaneiro,
	"mg":                MinasGerais,
	"minas gerais":      MinasGerais,
	"rs":                RioGrandeDoSul,
	"rio grande do sul": RioGrandeDoSul,
	"ba":                Bahia,
	"ne":                Nordeste,
	"n":                 Norte,
	"co":                CentroOeste,
	"centro oeste":      CentroOeste,
	"centro-oeste":      CentroOeste,
}

// ParseRegion resolves a caller-supplied region code. Empty input yields the
// undeclared zero Region and ok=true; unknown codes yield ok=false.
func ParseRegion(s string) (Region, bool) {
	key := textnorm.Normalize(s)
	if key == "" {
		return "", true
	}

	if key == string(Outros) {
		return Outros, true
	}
	for _, r := range Regions {
		if key == string(r) {
			return r, true
		}
	}
	if r, ok := aliases[key]; ok {
		return r, true
	}
	return "", false
}

// IsDeclared reports whether r carries an explicit region.
func (r Region) IsDeclared() bool {
	return r != ""
}

func (r Region) String() string {
	if r == "" {
		return "undeclared"
	}
	return string(r)
}
