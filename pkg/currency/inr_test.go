package currency

import (
	"math"
	"testing"
)

func TestUSDToINR(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		rate   float64
		want   float64
	}{
		{name: "hundred at default rate", amount: 100, rate: 83, want: 8300},
		{name: "zero", amount: 0, rate: 83, want: 0},
		{name: "nan", amount: math.NaN(), rate: 83, want: 0},
		{name: "positive infinity", amount: math.Inf(1), rate: 83, want: 0},
		{name: "negative infinity", amount: math.Inf(-1), rate: 83, want: 0},
		{name: "zero rate falls back to default", amount: 10, rate: 0, want: 830},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := USDToINR(tt.amount, tt.rate); got != tt.want {
				t.Fatalf("USDToINR(%v, %v) = %v, want %v", tt.amount, tt.rate, got, tt.want)
			}
		})
	}
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "grouped thousands", amount: 8300, want: "₹8,300"},
		{name: "indian lakh grouping", amount: 100000, want: "₹1,00,000"},
		{name: "fraction kept to two digits", amount: 1234.5, want: "₹1,234.5"},
		{name: "nan formatted as zero", amount: math.NaN(), want: "₹0"},
		{name: "infinity formatted as zero", amount: math.Inf(1), want: "₹0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatINR(tt.amount); got != tt.want {
				t.Fatalf("FormatINR(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}
