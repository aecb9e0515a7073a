package expense

import (
	"strings"

	"github.com/FACorreiaa/rachaai/internal/domain/cultural"
	"github.com/FACorreiaa/rachaai/pkg/textnorm"
)

type methodRule struct {
	method  SplittingMethod
	phrases []string
}

// methodRules are checked in priority order; the first rule with a phrase in
// the message decides the method.
var methodRules = []methodRule{
	{MethodVaquinha, []string{"vaquinha", "vakinha", "cada um contribui", "caixinha"}},
	{MethodHostPays, []string{"eu pago", "eu banco", "por minha conta", "eu convido", "pago tudo", "deixa comigo"}},
	{MethodComplex, []string{"diferente", "paga diferente", "valores diferentes", "proporcional", "depende de", "alguns pagam", "uns pagam"}},
	{MethodByConsumption, []string{
		"o que consumiu", "o que consumir", "o que comeu", "o que bebeu",
		"por consumo", "cada um paga o seu", "cada um paga o que",
	}},
	{MethodByFamily, []string{"por familia", "cada familia", "por casal", "por nucleo"}},
	{MethodEqual, []string{"igual", "igualmente", "meio a meio", "partes iguais"}},
}

// hostPaysVeto cancels host_pays: "eu pago agora, cada um paga depois" is
// not a treat.
const hostPaysVeto = "cada um paga"

var scenarioMethods = map[cultural.Scenario]SplittingMethod{
	cultural.ScenarioRodizio:     MethodEqual,
	cultural.ScenarioHappyHour:   MethodByConsumption,
	cultural.ScenarioAniversario: MethodHostPays,
	cultural.ScenarioVaquinha:    MethodVaquinha,
	cultural.ScenarioChurrasco:   MethodByFamily,
}

// decideMethod picks the splitting method from explicit phrases first and
// from the scenario's custom second.
func decideMethod(normalized string, scenario cultural.Scenario) SplittingMethod {
	for _, rule := range methodRules {
		if rule.method == MethodHostPays && strings.Contains(normalized, hostPaysVeto) {
			continue
		}
		if textnorm.ContainsAny(normalized, rule.phrases) {
			return rule.method
		}
	}

	if method, ok := scenarioMethods[scenario]; ok {
		return method
	}
	return MethodEqual
}
