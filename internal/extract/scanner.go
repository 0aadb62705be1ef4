package extract

import (
	"sort"

	"github.com/tenderlens/tenderlens/internal/currency"
	"github.com/tenderlens/tenderlens/internal/model"
)

// scanMentions runs every currency pattern over the text and collects all
// positive-amount matches. Patterns run in registry order; once a match is
// accepted, a +-claimWindow byte span around its start is claimed so a
// later currency cannot re-claim the same text. Claims apply only across
// patterns: matches of one pattern never overlap, and two nearby amounts
// of the same currency are both real mentions.
func scanMentions(text string, reg *currency.Registry, claimWindow int) []model.CurrencyMention {
	var mentions []model.CurrencyMention
	var claimed []int

	for _, p := range reg.Patterns() {
		var accepted []int
		for _, m := range p.Matches(text) {
			amount, err := ParseAmount(m.Number)
			if err != nil || amount <= 0 {
				continue
			}
			if isClaimed(claimed, m.Start, claimWindow) {
				continue
			}
			accepted = append(accepted, m.Start)

			mentions = append(mentions, model.CurrencyMention{
				Code:         p.Code,
				Symbol:       p.Symbol,
				Name:         p.Name,
				Amount:       amount,
				OriginalText: m.Text,
				Position:     m.Start,
			})
		}
		claimed = append(claimed, accepted...)
	}

	sort.SliceStable(mentions, func(i, j int) bool {
		return mentions[i].Position < mentions[j].Position
	})

	return mentions
}

func isClaimed(claimed []int, pos, window int) bool {
	for _, c := range claimed {
		if absInt(pos-c) <= window {
			return true
		}
	}
	return false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
