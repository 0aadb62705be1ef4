package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenderlens/tenderlens/internal/model"
)

func mention(code model.CurrencyCode, amount float64, pos int) model.CurrencyMention {
	return model.CurrencyMention{Code: code, Amount: amount, Position: pos}
}

func wellFormed() *model.ExtractedFinancials {
	f := &model.ExtractedFinancials{
		Currencies: []model.CurrencyMention{
			mention(model.CurrencyRUB, 300000, 10),
			mention(model.CurrencyRUB, 80000, 60),
			mention(model.CurrencyRUB, 420000, 120),
		},
	}
	f.TotalBudget = &f.Currencies[2]
	f.CostBreakdown.Categories = map[model.CostCategory]model.CurrencyMention{
		model.CategoryDevelopment: f.Currencies[0],
		model.CategoryTesting:     f.Currencies[1],
	}
	return f
}

func TestEvaluate_WellFormed(t *testing.T) {
	result := Evaluate(wellFormed())

	assert.Equal(t, 100, result.Confidence)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Issues)
	assert.Empty(t, result.Suggestions)
}

func TestEvaluate_EmptyExtraction(t *testing.T) {
	result := Evaluate(&model.ExtractedFinancials{})

	// No currencies and no categories: 100 - 30 - 5.
	assert.Equal(t, 65, result.Confidence)
	assert.False(t, result.IsValid)
	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0], "no currency amounts")
	assert.NotEmpty(t, result.Suggestions)
}

func TestEvaluate_ImplausibleAmounts(t *testing.T) {
	f := wellFormed()
	f.Currencies = append(f.Currencies,
		mention(model.CurrencyUSD, 5e9, 200),
		mention(model.CurrencyUSD, 0.001, 250),
	)
	// Drop the budget so the oversized amount exercises only the
	// plausibility check, not the overrun comparison.
	f.TotalBudget = nil

	result := Evaluate(f)

	assert.Equal(t, 90, result.Confidence)
	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0], "2 amount(s)")
	assert.True(t, result.IsValid)
}

func TestEvaluate_BudgetOverrun(t *testing.T) {
	f := &model.ExtractedFinancials{
		Currencies: []model.CurrencyMention{
			mention(model.CurrencyUSD, 9000, 10),
			mention(model.CurrencyUSD, 8000, 60),
			mention(model.CurrencyUSD, 10000, 120),
		},
	}
	f.TotalBudget = &f.Currencies[2]
	f.CostBreakdown.Categories = map[model.CostCategory]model.CurrencyMention{
		model.CategoryDevelopment: f.Currencies[0],
	}

	result := Evaluate(f)

	// 17000 > 10000 * 1.25.
	assert.Equal(t, 85, result.Confidence)
	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0], "budget")
	assert.True(t, result.IsValid)
}

func TestEvaluate_BudgetWithinTolerance(t *testing.T) {
	f := &model.ExtractedFinancials{
		Currencies: []model.CurrencyMention{
			mention(model.CurrencyUSD, 6000, 10),
			mention(model.CurrencyUSD, 5000, 60),
			mention(model.CurrencyUSD, 10000, 120),
		},
	}
	f.TotalBudget = &f.Currencies[2]
	f.CostBreakdown.Categories = map[model.CostCategory]model.CurrencyMention{
		model.CategoryDevelopment: f.Currencies[0],
	}

	result := Evaluate(f)

	// 11000 <= 10000 * 1.25; no overrun finding.
	assert.Equal(t, 100, result.Confidence)
	assert.Empty(t, result.Issues)
}

func TestEvaluate_NoCategories(t *testing.T) {
	f := wellFormed()
	f.CostBreakdown.Categories = nil

	result := Evaluate(f)

	assert.Equal(t, 95, result.Confidence)
	assert.Empty(t, result.Issues)
	require.Len(t, result.Suggestions, 1)
	assert.Contains(t, result.Suggestions[0], "categories")
	assert.True(t, result.IsValid)
}

func TestEvaluate_AccumulatedFindings(t *testing.T) {
	f := &model.ExtractedFinancials{
		Currencies: []model.CurrencyMention{
			mention(model.CurrencyUSD, 5e9, 10),
			mention(model.CurrencyUSD, 8000, 60),
			mention(model.CurrencyUSD, 100, 120),
		},
	}
	f.TotalBudget = &f.Currencies[2]

	result := Evaluate(f)

	// Implausible amount (-10), budget overrun (-15), no categories (-5).
	assert.Equal(t, 70, result.Confidence)
	assert.Len(t, result.Issues, 2)
	assert.True(t, result.IsValid)
}

func TestEvaluate_ConfidenceClampedAtZero(t *testing.T) {
	// Not reachable through Evaluate's own arithmetic today, but the clamp
	// guarantees the contract even if deductions grow.
	result := Evaluate(&model.ExtractedFinancials{})
	assert.GreaterOrEqual(t, result.Confidence, 0)
	assert.LessOrEqual(t, result.Confidence, 100)
}
