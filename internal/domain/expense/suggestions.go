package expense

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/FACorreiaa/rachaai/internal/domain/cultural"
	"github.com/FACorreiaa/rachaai/pkg/money"
)

var methodConfirmations = map[SplittingMethod]string{
	MethodEqual:         "Confirma a divisão igual entre todos?",
	MethodByConsumption: "Confirma que cada um paga o que consumiu? Anote o consumo de cada pessoa.",
	MethodHostPays:      "Confirma que uma pessoa paga a conta inteira?",
	MethodComplex:       "Os valores são diferentes por pessoa; informe quanto cabe a cada um.",
	MethodByFamily:      "Confirma a divisão por família? Informe quantas famílias participam.",
	MethodVaquinha:      "Confirma a vaquinha? Cada um contribui com o valor que puder.",
}

var serviceFee = decimal.NewFromInt(10)

// suggestions assembles advisory prompts. They are presentation only and
// never feed back into the interpretation.
func (p *Processor) suggestions(e *ExpenseInterpretation) []string {
	out := p.analyzer.Suggestions(e.CulturalContext, e.NormalizedText)

	if len(e.Participants) == 0 {
		out = append(out, "Não identifiquei quem participa. Quantas pessoas vão dividir?")
	}
	if len(e.Amounts) == 0 {
		out = append(out, "Não identifiquei o valor. Quanto foi o total?")
	}

	if msg, ok := methodConfirmations[e.SplittingMethod]; ok {
		out = append(out, msg)
	}

	if !e.TotalAmount.IsPositive() {
		return out
	}
	total := money.NewFromDecimal(e.TotalAmount, money.BRL)

	if e.SplittingMethod == MethodEqual {
		if share, ok := perPersonShare(total, e.HeadCount()); ok {
			out = append(out, share)
		}
	}

	for _, a := range e.Amounts {
		if a.Type == AmountDiscount {
			discounted := total.Discount(a.Value.Neg())
			out = append(out, fmt.Sprintf("Com desconto de %s%%, o total fica %s.", a.Value.Neg().String(), discounted.Display()))
			break
		}
	}

	if e.CulturalContext.Scenario == cultural.ScenarioRestaurante && !hasAmountType(e.Amounts, AmountTip) {
		withFee := total.AddPercentage(serviceFee)
		out = append(out, fmt.Sprintf("Com a taxa de serviço de 10%%, o total fica %s.", withFee.Display()))
	}

	return out
}

// perPersonShare splits total between people with go-money so the shares
// always add back up to the total, remainder cents going to the first shares.
func perPersonShare(total *money.Money, people int) (string, bool) {
	if people < 2 {
		return "", false
	}
	parts, err := total.Split(people)
	if err != nil || len(parts) == 0 {
		return "", false
	}

	first, last := parts[0], parts[len(parts)-1]
	if first.Amount() == last.Amount() {
		return fmt.Sprintf("Cada pessoa paga %s (%s ÷ %d).", first.Display(), total.Display(), people), true
	}
	return fmt.Sprintf("Cada pessoa paga entre %s e %s (%s ÷ %d).", last.Display(), first.Display(), total.Display(), people), true
}

func hasAmountType(amounts []Amount, t AmountType) bool {
	for _, a := range amounts {
		if a.Type == t {
			return true
		}
	}
	return false
}
