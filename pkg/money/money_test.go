package money_test

import (
	"testing"

	dec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eximdesk/eximdesk-api/pkg/money"
)

func TestFromFloat(t *testing.T) {
	d := money.FromFloat(100.555)
	// Rounds to 2 decimal places
	assert.True(t, d.Equal(dec.NewFromFloat(100.56)))
}

func TestFromString(t *testing.T) {
	d, err := money.FromString("123456.78")
	require.NoError(t, err)
	assert.True(t, d.Equal(dec.RequireFromString("123456.78")))

	_, err = money.FromString("not-a-number")
	require.Error(t, err)
}

func TestMul(t *testing.T) {
	a := dec.NewFromInt(100)
	b := dec.NewFromFloat(0.15)
	result := money.Mul(a, b)
	assert.True(t, result.Equal(dec.NewFromInt(15)))
}

func TestSum(t *testing.T) {
	values := []dec.Decimal{
		dec.NewFromFloat(10.25),
		dec.NewFromFloat(5.50),
		dec.NewFromFloat(0.25),
	}
	assert.True(t, money.Sum(values).Equal(dec.NewFromInt(16)))
}

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name         string
		quantity     float64
		unitPrice    float64
		exchangeRate float64
		expected     float64
	}{
		{"example scenario", 10, 5.00, 83.00, 4150.00},
		{"fractional quantity", 2.5, 4.00, 80.00, 800.00},
		{"zero rate", 10, 5.00, 0, 0},
		{"rounding", 3, 0.333, 10, 9.99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := money.LineTotal(tt.quantity, tt.unitPrice, tt.exchangeRate)
			assert.InDelta(t, tt.expected, got, 0.001)
		})
	}
}

func TestInvoiceTotal(t *testing.T) {
	got := money.InvoiceTotal([]float64{4150.00, 850.50}, 120.00, 30.25, 0)
	assert.InDelta(t, 5150.75, got, 0.001)
}
