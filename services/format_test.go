package services

import (
	"math"
	"testing"
)

func TestFormatEURDec_Values(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		decimals int
		expect   string
	}{
		{"zero", 0, 2, "0,00"},
		{"small integer", 5, 2, "5,00"},
		{"with decimals", 42.5, 2, "42,50"},
		{"hundreds", 999.99, 2, "999,99"},
		{"thousands", 1234.56, 2, "1.234,56"},
		{"ten thousands", 12345, 2, "12.345,00"},
		{"hundred thousands", 123456.78, 2, "123.456,78"},
		{"millions", 1234567.89, 2, "1.234.567,89"},
		{"negative", -2500.5, 2, "-2.500,50"},
		{"exact thousands boundary", 1000, 2, "1.000,00"},
		{"rounding up", 1107.499, 2, "1.107,50"},
		{"list price example", 1329, 2, "1.329,00"},
		{"half discount example", 1107.5, 2, "1.107,50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatEURDec(tt.input, tt.decimals)
			if got != tt.expect {
				t.Errorf("FormatEURDec(%v, %d) = %q, want %q", tt.input, tt.decimals, got, tt.expect)
			}
		})
	}
}

func TestFormatEUR_WholeAmounts(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero", 0, "0"},
		{"hundreds", 815, "815"},
		{"thousands", 1329, "1.329"},
		{"rounds to whole", 2467.6, "2.468"},
		{"millions", 1500000, "1.500.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatEUR(tt.input)
			if got != tt.expect {
				t.Errorf("FormatEUR(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatEURDec_NaNRendersEmpty(t *testing.T) {
	if got := FormatEURDec(math.NaN(), 2); got != "" {
		t.Errorf("FormatEURDec(NaN, 2) = %q, want empty string", got)
	}
	if got := FormatEUR(math.NaN()); got != "" {
		t.Errorf("FormatEUR(NaN) = %q, want empty string", got)
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"single digit", "5", "5"},
		{"three digits", "999", "999"},
		{"four digits", "1234", "1.234"},
		{"six digits", "123456", "123.456"},
		{"seven digits", "1234567", "1.234.567"},
		{"ten digits", "1234567890", "1.234.567.890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := groupThousands(tt.input)
			if got != tt.expect {
				t.Errorf("groupThousands(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}
