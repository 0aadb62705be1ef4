package currency

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/tenderlens/tenderlens/internal/model"
)

// Statistics summarizes the mention list of one extraction. All fields are
// pure functions of the input; with zero mentions every numeric field is
// zero and the optional fields are empty.
type Statistics struct {
	Distribution     map[model.CurrencyCode]int `json:"distribution"`
	Largest          *model.CurrencyMention     `json:"largest,omitempty"`
	PrimaryCurrency  model.CurrencyCode         `json:"primary_currency,omitempty"`
	TotalUSD         float64                    `json:"total_usd"`
	MeanAmount       float64                    `json:"mean_amount"`
	MedianAmount     float64                    `json:"median_amount"`
	TotalMentions    int                        `json:"total_mentions"`
	UniqueCurrencies int                        `json:"unique_currencies"`
	MultiCurrency    bool                       `json:"multi_currency"`
}

// ComputeStatistics aggregates a deduplicated mention list. The mean and
// median are over raw amounts; only TotalUSD is rate-normalized.
func ComputeStatistics(mentions []model.CurrencyMention) Statistics {
	stats := Statistics{
		Distribution:  make(map[model.CurrencyCode]int),
		TotalMentions: len(mentions),
	}
	if len(mentions) == 0 {
		return stats
	}

	amounts := make([]float64, 0, len(mentions))
	largest := 0
	for i, m := range mentions {
		stats.Distribution[m.Code]++
		stats.TotalUSD += ToUSD(m)
		amounts = append(amounts, m.Amount)
		if m.Amount > mentions[largest].Amount {
			largest = i
		}
	}
	stats.Largest = &mentions[largest]
	stats.UniqueCurrencies = len(stats.Distribution)
	stats.MultiCurrency = stats.UniqueCurrencies > 1
	stats.PrimaryCurrency = primaryCurrency(mentions, stats.Distribution)

	stats.MeanAmount = stat.Mean(amounts, nil)
	sort.Float64s(amounts)
	stats.MedianAmount = median(amounts)

	return stats
}

// median of a sorted, non-empty slice: the middle element, or the mean of
// the two middle elements for even length.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// primaryCurrency picks the most frequent code; ties go to the code whose
// first mention appears earliest in the text.
func primaryCurrency(mentions []model.CurrencyMention, dist map[model.CurrencyCode]int) model.CurrencyCode {
	var primary model.CurrencyCode
	best := 0
	for _, m := range mentions { // position order makes ties deterministic
		if n := dist[m.Code]; n > best {
			best = n
			primary = m.Code
		}
	}
	return primary
}
