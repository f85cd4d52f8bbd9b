package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsWholeCents(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"100", true},
		{"10.55", true},
		{"1.500", true},
		{"-0.01", true},
		{"0.004", false},
		{"0.005", false},
		{"12.345", false},
	}
	for _, tt := range tests {
		if got := IsWholeCents(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("IsWholeCents(%s) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
