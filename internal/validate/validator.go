// Package validate scores how trustworthy an extraction result is and
// collects diagnostic issues and suggestions for the document owner.
package validate

import (
	"fmt"

	"github.com/tenderlens/tenderlens/internal/currency"
	"github.com/tenderlens/tenderlens/internal/model"
)

// Plausibility bounds for a single amount; values outside them usually
// indicate a parsing artifact rather than a real price.
const (
	maxPlausibleAmount = 1e9
	minPlausibleAmount = 0.01
)

// budgetOverrunTolerance is how far the sum of non-budget mentions may
// exceed the stated budget (in the USD reference unit) before the result
// is flagged inconsistent.
const budgetOverrunTolerance = 1.25

// Evaluate produces the confidence verdict for an assembled extraction.
// Each finding independently lowers confidence; the score is clamped to
// [0, 100].
func Evaluate(f *model.ExtractedFinancials) model.ValidationResult {
	result := model.ValidationResult{
		Confidence:  100,
		Issues:      []string{},
		Suggestions: []string{},
	}

	if len(f.Currencies) == 0 {
		result.Confidence -= 30
		result.Issues = append(result.Issues, "no currency amounts found in the document")
		result.Suggestions = append(result.Suggestions, "verify that the document contains financial data")
	}

	if n := countImplausible(f.Currencies); n > 0 {
		result.Confidence -= 10
		result.Issues = append(result.Issues, fmt.Sprintf("%d amount(s) outside the plausible range", n))
		result.Suggestions = append(result.Suggestions, "verify parsing of unusually large or small amounts")
	}

	if f.TotalBudget != nil {
		budgetUSD := currency.ToUSD(*f.TotalBudget)
		othersUSD := 0.0
		for _, m := range f.Currencies {
			if m.Position == f.TotalBudget.Position {
				continue
			}
			othersUSD += currency.ToUSD(m)
		}
		if othersUSD > budgetUSD*budgetOverrunTolerance {
			result.Confidence -= 15
			result.Issues = append(result.Issues, "stated budget is smaller than the sum of itemized costs")
		}
	}

	if len(f.CostBreakdown.Categories) == 0 {
		result.Confidence -= 5
		result.Suggestions = append(result.Suggestions, "no cost categories matched; review the cost breakdown keywords")
	}

	if result.Confidence < 0 {
		result.Confidence = 0
	}
	if result.Confidence > 100 {
		result.Confidence = 100
	}

	// A result with no mentions at all carries nothing to act on, so it is
	// never considered valid regardless of the score.
	result.IsValid = result.Confidence >= 60 &&
		len(result.Issues) < 3 &&
		len(f.Currencies) > 0

	return result
}

func countImplausible(mentions []model.CurrencyMention) int {
	n := 0
	for _, m := range mentions {
		if m.Amount > maxPlausibleAmount || m.Amount < minPlausibleAmount {
			n++
		}
	}
	return n
}
