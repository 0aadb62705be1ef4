package extract

import (
	"strings"

	"github.com/tenderlens/tenderlens/internal/model"
)

// budgetKeywords signal the document's stated total cost. Order matters:
// earlier entries are more explicit and are tried first.
var budgetKeywords = []string{
	"итого",
	"общая стоимость",
	"итоговая стоимость",
	"общая сумма",
	"итоговая сумма",
	"всего к оплате",
	"стоимость проекта",
	"бюджет проекта",
	"всего",
	"grand total",
	"total cost",
	"total amount",
	"total price",
	"project budget",
	"total",
}

// identifyBudget selects the mention that most likely states the total
// project cost. The first budget keyword with a mention inside the window
// wins; with no such keyword the globally largest amount is the fallback.
// The returned pointer aliases an element of mentions.
func identifyBudget(text string, mentions []model.CurrencyMention, window int) *model.CurrencyMention {
	if len(mentions) == 0 {
		return nil
	}

	lower := strings.ToLower(text)
	for _, kw := range budgetKeywords {
		pos := strings.Index(lower, kw)
		if pos < 0 {
			continue
		}
		if m := nearestMention(mentions, pos, window); m != nil {
			return m
		}
	}

	largest := 0
	for i := range mentions {
		if mentions[i].Amount > mentions[largest].Amount {
			largest = i
		}
	}
	return &mentions[largest]
}

// nearestMention returns the mention closest to pos within the window, or
// nil. Mentions at or after pos are preferred over earlier ones: in
// proposal phrasing the amount follows its label ("Итого: 500000 руб"),
// so a preceding amount is only picked up when nothing follows the
// keyword inside the window.
func nearestMention(mentions []model.CurrencyMention, pos, window int) *model.CurrencyMention {
	if m := nearestInDirection(mentions, pos, window, true); m != nil {
		return m
	}
	return nearestInDirection(mentions, pos, window, false)
}

func nearestInDirection(mentions []model.CurrencyMention, pos, window int, forward bool) *model.CurrencyMention {
	var best *model.CurrencyMention
	bestDist := window + 1

	for i := range mentions {
		if forward != (mentions[i].Position >= pos) {
			continue
		}
		d := absInt(mentions[i].Position - pos)
		if d <= window && d < bestDist {
			best = &mentions[i]
			bestDist = d
		}
	}

	return best
}
