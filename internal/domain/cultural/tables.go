package cultural

import "github.com/FACorreiaa/rachaai/internal/domain/regional"

// All terms below are normalized: lowercase, no accents.

var slangIndex = newKeywordIndex([]keywordGroup{
	{label: "money", terms: []string{"grana", "bufunfa", "dindin", "conto", "pila", "merreca", "trocado"}},
	{label: "group", terms: []string{"galera", "turma", "rapaziada", "pessoal", "parca"}},
	{label: "payment", terms: []string{"racha", "bancar", "fazer um pix", "manda um pix"}},
	{label: "split", terms: []string{"dividir", "rachar", "meio a meio", "cada um"}},
})

// regionIndex maps self-identifying terms to regions, in canonical region order.
var regionIndex = newKeywordIndex([]keywordGroup{
	{label: string(regional.SaoPaulo), terms: []string{"paulista", "paulistano", "sampa", "sao paulo"}},
	{label: string(regional.RioDeJaneiro), terms: []string{"carioca", "rio de janeiro", "fluminense"}},
	{label: string(regional.MinasGerais), terms: []string{"mineiro", "mineira", "minas gerais", "belo horizonte"}},
	{label: string(regional.RioGrandeDoSul), terms: []string{"gaucho", "gaucha", "porto alegre", "tche"}},
	{label: string(regional.Bahia), terms: []string{"baiano", "baiana", "salvador", "bahia"}},
	{label: string(regional.Nordeste), terms: []string{"nordestino", "recife", "fortaleza", "pernambucano", "cearense"}},
	{label: string(regional.Norte), terms: []string{"manaus", "belem", "amazonas", "paraense", "nortista"}},
	{label: string(regional.CentroOeste), terms: []string{"brasilia", "goiania", "goiano", "candango", "cuiaba"}},
})

const (
	formalWeight          = 1.0
	informalWeight        = -0.3
	veryInformalWeight    = -2.0
	regionalMarkerWeight  = 0.5
	profissionalThreshold = 3.0
	formalThreshold       = 1.0
	informalThreshold     = -1.5
)

const (
	formalGroup       = "formal"
	informalGroup     = "informal"
	veryInformalGroup = "very_informal"
)

var formalityIndex = newKeywordIndex([]keywordGroup{
	{label: formalGroup, terms: []string{
		"senhor", "senhora", "prezado", "cordialmente", "gentileza", "por favor",
		"solicito", "reembolso", "nota fiscal", "empresa", "reuniao", "cliente", "corporativo",
	}},
	{label: informalGroup, terms: []string{
		"valeu", "vlw", "blz", "beleza", "vamo", "bora", "tipo assim", "pra gente", "show de bola", "massa",
	}},
	{label: veryInformalGroup, terms: []string{"mano", "brother", "parca", "parceiro", "truta", "migo", "cumpadi"}},
})

// regionMarkers are region-specific register markers worth half a formality
// point each, up for formal and down for informal.
type regionMarkers struct {
	formal   []string
	informal []string
}

var regionalFormality = map[regional.Region]regionMarkers{
	regional.SaoPaulo:       {formal: []string{"prezados"}, informal: []string{"da hora", "truta"}},
	regional.RioDeJaneiro:   {formal: []string{"com licenca"}, informal: []string{"mermao", "caraca", "maneiro"}},
	regional.MinasGerais:    {formal: []string{"o senhor", "a senhora"}, informal: []string{"uai", "trem bao", "so que"}},
	regional.RioGrandeDoSul: {formal: []string{"o senhor", "a senhora"}, informal: []string{"tche", "tri legal", "bah tche"}},
	regional.Bahia:          {informal: []string{"oxe", "painho", "mainha", "barril"}},
	regional.Nordeste:       {formal: []string{"vossa senhoria"}, informal: []string{"oxente", "visse", "arretado"}},
	regional.Norte:          {informal: []string{"egua", "maninho"}},
	regional.CentroOeste:    {informal: []string{"uai", "chegado"}},
}

// regionalFormalityIndex builds one index per region with the formal markers
// in group 0 and the informal ones in group 1.
var regionalFormalityIndex = buildRegionalFormalityIndex()

func buildRegionalFormalityIndex() map[regional.Region]*keywordIndex {
	out := make(map[regional.Region]*keywordIndex, len(regionalFormality))
	for r, m := range regionalFormality {
		out[r] = newKeywordIndex([]keywordGroup{
			{label: formalGroup, terms: m.formal},
			{label: informalGroup, terms: m.informal},
		})
	}
	return out
}

var timeIndex = newKeywordIndex([]keywordGroup{
	{label: string(TimeManha), terms: []string{"manha", "cafe da manha", "brunch"}},
	{label: string(TimeAlmoco), terms: []string{"almoco", "meio dia"}},
	{label: string(TimeTarde), terms: []string{"tarde", "lanche da tarde"}},
	{label: string(TimeNoite), terms: []string{"noite", "jantar", "janta", "balada", "happy hour"}},
	{label: string(TimeMadrugada), terms: []string{"madrugada", "after"}},
})

var groupIndex = newKeywordIndex([]keywordGroup{
	{label: string(GroupFamilia), terms: []string{"familia", "pai", "mae", "tio", "tia", "primo", "prima", "parentes", "sogra"}},
	{label: string(GroupTrabalho), terms: []string{"trabalho", "escritorio", "colegas", "firma", "empresa", "chefe", "equipe"}},
	{label: string(GroupFaculdade), terms: []string{"faculdade", "facul", "republica", "universidade", "calouro", "veterano"}},
	{label: string(GroupCasal), terms: []string{"namorada", "namorado", "esposa", "marido", "casal", "mozao"}},
	{label: string(GroupAmigos), terms: []string{"amigos", "amigas", "galera", "turma", "rapaziada", "brothers"}},
})

// scenarioFallbackIndex is consulted only when no pattern matched. It carries
// synonyms the pattern database does not list.
var scenarioFallbackIndex = newKeywordIndex([]keywordGroup{
	{label: string(ScenarioRodizio), terms: []string{"buffet livre", "all you can eat", "temakeria"}},
	{label: string(ScenarioHappyHour), terms: []string{"boteco", "barzinho", "saideira", "cervejaria"}},
	{label: string(ScenarioChurrasco), terms: []string{"churras", "assado", "grelha"}},
	{label: string(ScenarioAniversario), terms: []string{"aniver", "bday", "comemoracao"}},
	{label: string(ScenarioViagem), terms: []string{"viajar", "trip", "ferias", "excursao"}},
	{label: string(ScenarioVaquinha), terms: []string{"rateio", "arrecadacao", "bolao"}},
	{label: string(ScenarioRestaurante), terms: []string{"lanchonete", "pizzaria", "padaria", "refeicao"}},
	{label: string(ScenarioUber), terms: []string{"transporte", "aplicativo de carro", "motorista"}},
})

var paymentIndex = newKeywordIndex([]keywordGroup{
	{label: string(PaymentPix), terms: []string{"pix", "chave pix", "transferencia"}},
	{label: string(PaymentBoleto), terms: []string{"boleto"}},
	{label: string(PaymentCartao), terms: []string{"cartao", "credito", "debito", "maquininha"}},
	{label: string(PaymentDinheiro), terms: []string{"dinheiro", "especie", "cash"}},
	{label: string(PaymentVaquinha), terms: []string{"vaquinha", "vakinha"}},
	{label: string(PaymentRodizio), terms: []string{"rodizio", "rodada"}},
})

// dynamicsIndex checks complexo and por_consumo before every other dynamic.
var dynamicsIndex = newKeywordIndex([]keywordGroup{
	{label: string(DynamicsComplexo), terms: []string{"diferente", "proporcional", "depende", "valores diferentes", "alguns pagam"}},
	{label: string(DynamicsPorConsumo), terms: []string{
		"o que consumiu", "o que consumir", "o que comeu", "o que bebeu",
		"por consumo", "cada um paga o seu", "cada um paga o que",
	}},
	{label: string(DynamicsAnfitriaoPaga), terms: []string{"eu pago", "eu banco", "por minha conta", "eu convido"}},
	{label: string(DynamicsVaquinha), terms: []string{"vaquinha", "vakinha", "caixinha"}},
	{label: string(DynamicsPorFamilia), terms: []string{"por familia", "cada familia", "por casal"}},
	{label: string(DynamicsRotativo), terms: []string{"revezar", "reveza", "cada vez um", "na proxima paga"}},
	{label: string(DynamicsIgual), terms: []string{"igual", "meio a meio", "partes iguais"}},
})
