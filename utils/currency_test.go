package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		symbol   string
		expected string
	}{
		{"zero", 0, "$", "$0"},
		{"under a thousand", 500, "$", "$500"},
		{"thousands", 3500, "$", "$3.500"},
		{"millions", 1250000, "$", "$1.250.000"},
		{"with cents", 3500.5, "$", "$3.500,50"},
		{"cents rounded", 1999.999, "$", "$2.000"},
		{"negative", -3500, "$", "-$3.500"},
		{"other symbol", 3500, "COP ", "COP 3.500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatMoney(tt.amount, tt.symbol))
		})
	}
}
