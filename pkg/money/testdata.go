package money

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
)

// TestDataGenerator generates realistic shared-expense test data using gofakeit.
type TestDataGenerator struct {
	faker *gofakeit.Faker
}

// NewTestDataGenerator creates a new test data generator with a random seed.
func NewTestDataGenerator() *TestDataGenerator {
	return &TestDataGenerator{
		faker: gofakeit.New(0), // Random seed
	}
}

// NewTestDataGeneratorWithSeed creates a generator with a specific seed for reproducibility.
func NewTestDataGeneratorWithSeed(seed int64) *TestDataGenerator {
	return &TestDataGenerator{
		faker: gofakeit.New(seed),
	}
}

// ============================================================================
// Money Generation
// ============================================================================

// RandomAmount generates a random Money value within a cent range.
func (g *TestDataGenerator) RandomAmount(currency string, minCents, maxCents int64) *Money {
	if minCents > maxCents {
		minCents, maxCents = maxCents, minCents
	}
	cents := g.faker.Int64() % (maxCents - minCents + 1)
	if cents < 0 {
		cents = -cents
	}
	return New(minCents+cents, currency)
}

// Bill generates a typical group bill (R$20 to R$2.000).
func (g *TestDataGenerator) Bill() *Money {
	return g.RandomAmount(BRL, 2000, 200000)
}

// ============================================================================
// Shared Expense Messages
// ============================================================================

// SharedExpense is a generated message together with the facts it states.
type SharedExpense struct {
	Text   string
	Amount *Money
	People int
}

var expenseTemplates = []string{
	"Rodízio de pizza com a galera. %s para %d pessoas. Cada um paga igual.",
	"Jantar no restaurante, deu %s para %d pessoas.",
	"Uber até a praia, %s para %d pessoas, divide igual.",
	"Conta do bar: %s para %d amigos.",
}

// SharedExpense generates a Portuguese expense message with a BRL amount
// written the way users type it ("R$1.234,56") and a head count of 2 to 12.
func (g *TestDataGenerator) SharedExpense() SharedExpense {
	amount := g.Bill()
	people := g.faker.Number(2, 12)
	template := expenseTemplates[g.faker.Number(0, len(expenseTemplates)-1)]

	return SharedExpense{
		Text:   fmt.Sprintf(template, amount.Display(), people),
		Amount: amount,
		People: people,
	}
}

// Noise generates free text with no expense content at all.
func (g *TestDataGenerator) Noise() string {
	return g.faker.Sentence(g.faker.Number(1, 20))
}
