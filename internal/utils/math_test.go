package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "already two decimals", input: 3.14, expected: 3.14},
		{name: "rounds half up", input: 2.005, expected: 2.0}, // 2.005 is stored below the half
		{name: "rounds up", input: 7.126, expected: 7.13},
		{name: "rounds down", input: 7.124, expected: 7.12},
		{name: "negative value", input: -1.556, expected: -1.56},
		{name: "zero", input: 0, expected: 0},
		{name: "repeating fraction", input: 100.0 / 3.0, expected: 33.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Round2(tt.input))
		})
	}
}
