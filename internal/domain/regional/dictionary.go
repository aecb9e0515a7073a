package regional

// Entry is one slang term of a regional dictionary.
// Terms and standard forms are stored normalized (lowercase, no accents).
type Entry struct {
	Term     string
	Standard string
	Gloss    string
}

// dictionaries holds the per-region slang tables. Order inside a region is
// the detection order.
var dictionaries = map[Region][]Entry{
	SaoPaulo: {
		{"mano", "amigo", "tratamento entre amigos"},
		{"truta", "amigo", "amigo de confianca"},
		{"role", "passeio", "saida com amigos"},
		{"balada", "festa", "festa noturna"},
		{"breja", "cerveja", "cerveja"},
		{"busao", "onibus", "transporte publico"},
		{"da hora", "legal", "algo muito bom"},
		{"galera", "grupo", "grupo de pessoas"},
	},
	RioDeJaneiro: {
		{"mermao", "amigo", "meu irmao, tratamento carioca"},
		{"maneiro", "legal", "algo bacana"},
		{"caraca", "nossa", "expressao de surpresa"},
		{"vacilao", "pessoa sem nocao", "quem deixa a desejar"},
		{"parada", "coisa", "coisa ou situacao"},
		{"galera", "grupo", "grupo de pessoas"},
	},
	MinasGerais: {
		{"uai", "nossa", "interjeicao mineira"},
		{"trem bao", "coisa boa", "algo muito bom"},
		{"trem", "coisa", "qualquer objeto ou situacao"},
		{"quitanda", "lanche", "quitutes de padaria"},
		{"galera", "grupo", "grupo de pessoas"},
	},
	RioGrandeDoSul: {
		{"tche", "amigo", "vocativo gaucho"},
		{"guria", "menina", "menina ou moca"},
		{"guri", "menino", "menino ou rapaz"},
		{"bergamota", "tangerina", "fruta"},
		{"cacetinho", "pao frances", "pao de sal"},
		{"tri legal", "muito legal", "intensificador gaucho"},
		{"galera", "grupo", "grupo de pessoas"},
	},
	Bahia: {
		{"painho", "pai", "forma carinhosa de pai"},
		{"mainha", "mae", "forma carinhosa de mae"},
		{"barril", "complicado", "situacao dificil"},
		{"zuada", "barulho", "barulho ou bagunca"},
		{"oxe", "nossa", "interjeicao de espanto"},
	},
	Nordeste: {
		{"oxente", "nossa", "interjeicao nordestina"},
		{"arretado", "muito bom", "excelente ou bravo"},
		{"visse", "entendeu", "confirmacao no fim da frase"},
		{"cabra da peste", "pessoa corajosa", "pessoa valente"},
		{"oxe", "nossa", "interjeicao de espanto"},
		{"galera", "grupo", "grupo de pessoas"},
	},
	Norte: {
		{"egua", "nossa", "interjeicao paraense"},
		{"maninho", "amigo", "tratamento entre amigos"},
		{"pavulagem", "exibicao", "quem se exibe"},
		{"merendar", "lanchar", "fazer um lanche"},
	},
	CentroOeste: {
		{"uai", "nossa", "interjeicao do interior"},
		{"trem", "coisa", "qualquer objeto ou situacao"},
		{"chegado", "amigo proximo", "pessoa de confianca"},
		{"pequi", "fruto do cerrado", "ingrediente tipico"},
	},
}

// commonTerms are slang terms understood nationwide; they get a small boost
// because users reach for them deliberately.
var commonTerms = map[string]bool{
	"galera": true,
	"mano":   true,
	"uai":    true,
	"tche":   true,
	"oxente": true,
}

// termRegionCount counts in how many regional dictionaries each term appears.
var termRegionCount = buildTermRegionCount()

func buildTermRegionCount() map[string]int {
	counts := make(map[string]int)
	for _, entries := range dictionaries {
		for _, e := range entries {
			counts[e.Term]++
		}
	}
	return counts
}

// Dictionary returns a copy of the slang entries for a region.
func Dictionary(r Region) []Entry {
	entries := dictionaries[r]
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
