package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Rp12.000.000", "12000000", true},
		{"Rp 1.500.000,00", "150000000", true},
		{"250000", "250000", true},
		{"Rp", "0", false},
		{"", "0", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, ok := ParseCurrency(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, d.String())
		})
	}

	assert.Equal(t, "12000000", CurrencyParam("Rp12.000.000"))
	assert.Empty(t, CurrencyParam("gratis"))
}

func TestFormatIDR(t *testing.T) {
	assert.Equal(t, "Rp12.000.000", FormatIDR(decimal.NewFromInt(12000000)))
	assert.Equal(t, "Rp999", FormatIDR(decimal.NewFromInt(999)))
	assert.Equal(t, "Rp1.000", FormatIDR(decimal.NewFromInt(1000)))
	assert.Equal(t, "Rp0", FormatIDR(decimal.Zero))
	assert.Equal(t, "-Rp25.000", FormatIDR(decimal.NewFromInt(-25000)))
	assert.Equal(t, "Rp1.501", FormatIDR(decimal.RequireFromString("1500.5")))

	assert.Empty(t, FormatNullIDR(decimal.NullDecimal{}))
	assert.Equal(t, "Rp5.000", FormatNullIDR(decimal.NewNullDecimal(decimal.NewFromInt(5000))))
}
