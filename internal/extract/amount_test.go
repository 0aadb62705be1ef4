package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "european thousands with decimal comma", input: "1.000,50", want: 1000.50},
		{name: "us thousands with decimal dot", input: "1,234.56", want: 1234.56},
		{name: "space separated thousands", input: "10 000", want: 10000},
		{name: "dot separated millions", input: "1.000.000", want: 1000000},
		{name: "decimal comma with two digits", input: "12,5", want: 12.5},
		{name: "comma thousands with three digits", input: "12,500", want: 12500},
		{name: "plain integer", input: "500000", want: 500000},
		{name: "plain decimal", input: "99.99", want: 99.99},
		{name: "nbsp separated thousands", input: "10 000", want: 10000},
		{name: "mixed separators", input: "1 234 567,89", want: 1234567.89},
		{name: "single digit", input: "7", want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseAmount_NoAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "whitespace only", input: "   "},
		{name: "no leading digit", input: ".50"},
		{name: "leading comma", input: ",500"},
		{name: "letters", input: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAmount(tt.input)
			assert.ErrorIs(t, err, ErrNoAmount)
		})
	}
}
