package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Basic Money Operations Tests
// ============================================================================

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  int64
	}{
		{"positive cents", 1234, 1234},
		{"zero", 0, 0},
		{"negative cents", -5000, -5000},
		{"large amount", 999999999, 999999999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.cents, BRL)
			assert.Equal(t, tt.want, m.Amount())
			assert.Equal(t, BRL, m.Currency())
		})
	}
}

func TestNewFromDecimal(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency string
		want     int64
	}{
		{"precise decimal", "99.90", BRL, 9990},
		{"many decimals", "99.999", BRL, 10000}, // Rounds up
		{"whole number", "500", BRL, 50000},
		{"negative", "-25.50", BRL, -2550},
		{"unknown currency falls back to BRL", "10", "XXX", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)
			m := NewFromDecimal(d, tt.currency)
			assert.Equal(t, tt.want, m.Amount())
			assert.Equal(t, BRL, m.Currency())
		})
	}
}

func TestZero(t *testing.T) {
	m := Zero(BRL)
	assert.True(t, m.IsZero())
	assert.False(t, m.IsPositive())
	assert.Equal(t, int64(0), m.Amount())
}

func TestAdd(t *testing.T) {
	a := New(12000, BRL)
	b := New(9990, BRL)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, int64(21990), sum.Amount())

	_, err = a.Add(New(100, "USD"))
	assert.Error(t, err, "currencies must match")

	var nilMoney *Money
	got, err := nilMoney.Add(b)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

// ============================================================================
// Split Tests
// ============================================================================

func TestSplit(t *testing.T) {
	// R$100 split 3 ways
	m := New(10000, BRL)
	parts, err := m.Split(3)

	require.NoError(t, err)
	require.Len(t, parts, 3)

	total := int64(0)
	for _, p := range parts {
		total += p.Amount()
	}
	assert.Equal(t, int64(10000), total)

	// Distribution: 3334 + 3333 + 3333 = 10000
	assert.Equal(t, int64(3334), parts[0].Amount())
	assert.Equal(t, int64(3333), parts[1].Amount())
	assert.Equal(t, int64(3333), parts[2].Amount())

	_, err = m.Split(0)
	assert.Error(t, err)

	var nilMoney *Money
	_, err = nilMoney.Split(2)
	assert.Error(t, err)
}

// ============================================================================
// Percentage Tests
// ============================================================================

func TestPercentage(t *testing.T) {
	m := New(28000, BRL)

	assert.Equal(t, int64(2800), m.Percentage(decimal.NewFromInt(10)).Amount())
	assert.Equal(t, int64(30800), m.AddPercentage(decimal.NewFromInt(10)).Amount())
	assert.Equal(t, int64(22400), m.Discount(decimal.NewFromInt(20)).Amount())
}

// ============================================================================
// Formatting Tests
// ============================================================================

func TestDisplay(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{12000, "R$120,00"},
		{9990, "R$99,90"},
		{123456, "R$1.234,56"},
		{0, "R$0,00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.cents, BRL).Display())
		})
	}

	var nilMoney *Money
	assert.Equal(t, "R$0,00", nilMoney.Display())
}

func TestStringAndDecimal(t *testing.T) {
	m := New(3000, BRL)
	assert.Equal(t, "30.00", m.String())
	assert.True(t, decimal.NewFromInt(30).Equal(m.ToDecimal()))

	var nilMoney *Money
	assert.Equal(t, "0.00", nilMoney.String())
	assert.True(t, nilMoney.ToDecimal().IsZero())
}

// ============================================================================
// Test Data Generator Tests
// ============================================================================

func TestTestDataGenerator(t *testing.T) {
	gen := NewTestDataGeneratorWithSeed(42)

	t.Run("bill stays in range", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			bill := gen.Bill()
			assert.GreaterOrEqual(t, bill.Amount(), int64(2000))
			assert.LessOrEqual(t, bill.Amount(), int64(200000))
		}
	})

	t.Run("shared expense states its facts", func(t *testing.T) {
		exp := gen.SharedExpense()
		assert.Contains(t, exp.Text, exp.Amount.Display())
		assert.GreaterOrEqual(t, exp.People, 2)
		assert.LessOrEqual(t, exp.People, 12)
	})

	t.Run("same seed same data", func(t *testing.T) {
		a := NewTestDataGeneratorWithSeed(7).SharedExpense()
		b := NewTestDataGeneratorWithSeed(7).SharedExpense()
		assert.Equal(t, a.Text, b.Text)
	})
}

// ============================================================================
// Benchmarks
// ============================================================================

func BenchmarkSplit(b *testing.B) {
	m := New(12000, BRL)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Split(4)
	}
}

func BenchmarkDisplay(b *testing.B) {
	m := New(123456, BRL)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Display()
	}
}
