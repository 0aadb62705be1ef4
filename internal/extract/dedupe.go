package extract

import (
	"math"

	"github.com/tenderlens/tenderlens/internal/model"
)

// Deduplicate collapses mentions that are effectively the same occurrence,
// typically produced by overlapping pattern alternation. Two mentions are
// duplicates when they share a currency code, their amounts differ by less
// than the tolerance fraction of the larger one, and their positions are
// fewer than maxGap bytes apart. The first mention in position order wins.
//
// The operation is idempotent: applying it to its own output is a no-op.
func Deduplicate(mentions []model.CurrencyMention, tolerance float64, maxGap int) []model.CurrencyMention {
	kept := make([]model.CurrencyMention, 0, len(mentions))

	for _, m := range mentions {
		dup := false
		for _, k := range kept {
			if isDuplicate(k, m, tolerance, maxGap) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, m)
		}
	}

	return kept
}

func isDuplicate(a, b model.CurrencyMention, tolerance float64, maxGap int) bool {
	if a.Code != b.Code {
		return false
	}
	if absInt(a.Position-b.Position) >= maxGap {
		return false
	}

	larger := math.Max(a.Amount, b.Amount)
	return math.Abs(a.Amount-b.Amount) < tolerance*larger
}
