package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenderlens/tenderlens/internal/model"
)

func mention(code model.CurrencyCode, amount float64, pos int) model.CurrencyMention {
	return model.CurrencyMention{Code: code, Amount: amount, Position: pos}
}

func TestDeduplicate(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name    string
		in      []model.CurrencyMention
		wantPos []int
	}{
		{
			name: "identical amounts close together collapse",
			in: []model.CurrencyMention{
				mention(model.CurrencyRUB, 500000, 10),
				mention(model.CurrencyRUB, 500000, 30),
			},
			wantPos: []int{10},
		},
		{
			name: "amounts within one percent collapse",
			in: []model.CurrencyMention{
				mention(model.CurrencyUSD, 1000, 10),
				mention(model.CurrencyUSD, 1005, 40),
			},
			wantPos: []int{10},
		},
		{
			name: "different currencies survive",
			in: []model.CurrencyMention{
				mention(model.CurrencyUSD, 1000, 10),
				mention(model.CurrencyEUR, 1000, 30),
			},
			wantPos: []int{10, 30},
		},
		{
			name: "far apart positions survive",
			in: []model.CurrencyMention{
				mention(model.CurrencyRUB, 500000, 10),
				mention(model.CurrencyRUB, 500000, 100),
			},
			wantPos: []int{10, 100},
		},
		{
			name: "clearly different amounts survive",
			in: []model.CurrencyMention{
				mention(model.CurrencyRUB, 100000, 10),
				mention(model.CurrencyRUB, 200000, 30),
			},
			wantPos: []int{10, 30},
		},
		{
			name:    "empty input",
			in:      nil,
			wantPos: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Deduplicate(tt.in, cfg.DedupeAmountTolerance, cfg.DedupeMaxGap)

			require.Len(t, got, len(tt.wantPos))
			for i, pos := range tt.wantPos {
				assert.Equal(t, pos, got[i].Position)
			}
		})
	}
}

func TestDeduplicate_Idempotent(t *testing.T) {
	cfg := DefaultConfig()
	in := []model.CurrencyMention{
		mention(model.CurrencyRUB, 500000, 10),
		mention(model.CurrencyRUB, 500100, 30),
		mention(model.CurrencyUSD, 1200, 90),
		mention(model.CurrencyRUB, 300000, 200),
	}

	once := Deduplicate(in, cfg.DedupeAmountTolerance, cfg.DedupeMaxGap)
	twice := Deduplicate(once, cfg.DedupeAmountTolerance, cfg.DedupeMaxGap)

	assert.Equal(t, once, twice)
}

func TestDeduplicate_KeepsFirstOccurrence(t *testing.T) {
	cfg := DefaultConfig()
	in := []model.CurrencyMention{
		{Code: model.CurrencyRUB, Amount: 500000, Position: 10, OriginalText: "500000 руб"},
		{Code: model.CurrencyRUB, Amount: 500000, Position: 25, OriginalText: "500 000 рублей"},
	}

	got := Deduplicate(in, cfg.DedupeAmountTolerance, cfg.DedupeMaxGap)

	require.Len(t, got, 1)
	assert.Equal(t, "500000 руб", got[0].OriginalText)
}
