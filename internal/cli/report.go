package cli

import (
	"fmt"
	"strings"

	"github.com/tenderlens/tenderlens/internal/currency"
	"github.com/tenderlens/tenderlens/internal/model"
)

// RenderReport formats an extraction result and its validation verdict as
// a styled terminal report.
func RenderReport(source string, f *model.ExtractedFinancials, v model.ValidationResult) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Financial summary: " + source))
	b.WriteString("\n")

	if f.TotalBudget != nil {
		b.WriteString(BoldStyle.Render("Total budget: "))
		b.WriteString(formatMention(*f.TotalBudget))
		b.WriteString("\n")
	} else {
		b.WriteString(SubtleStyle.Render("Total budget: not identified"))
		b.WriteString("\n")
	}

	b.WriteString(renderMentions(f.Currencies))
	b.WriteString(renderBreakdown(f.CostBreakdown))
	b.WriteString(renderExcerpts("Payment terms", f.PaymentTerms))
	b.WriteString(renderExcerpts("Financial notes", f.FinancialNotes))
	b.WriteString(renderStatistics(f.Currencies))
	b.WriteString(RenderVerdict(v))

	return b.String()
}

func renderMentions(mentions []model.CurrencyMention) string {
	if len(mentions) == 0 {
		return SubtleStyle.Render("No currency amounts found.") + "\n"
	}

	var b strings.Builder
	b.WriteString(BoldStyle.Render(fmt.Sprintf("Amounts (%d):", len(mentions))))
	b.WriteString("\n")
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-10s %16s %8s  %s", "Currency", "Amount", "Offset", "Matched text")))
	b.WriteString("\n")
	for _, m := range mentions {
		row := fmt.Sprintf("%-10s %16.2f %8d  %s", m.Code, m.Amount, m.Position, m.OriginalText)
		b.WriteString(TableCellStyle.Render(row))
		b.WriteString("\n")
	}
	return b.String()
}

func renderBreakdown(bd model.CostBreakdown) string {
	if len(bd.Categories) == 0 && len(bd.Other) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(BoldStyle.Render("Cost breakdown:"))
	b.WriteString("\n")
	for _, cat := range model.CategoryOrder {
		m, ok := bd.Categories[cat]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("  %-20s %s\n", cat, formatMention(m)))
	}
	for _, m := range bd.Other {
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("  %-20s %s", "other", formatMention(m))))
		b.WriteString("\n")
	}
	return b.String()
}

func renderExcerpts(title string, excerpts []string) string {
	if len(excerpts) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(BoldStyle.Render(title + ":"))
	b.WriteString("\n")
	for _, e := range excerpts {
		b.WriteString("  • " + e + "\n")
	}
	return b.String()
}

func renderStatistics(mentions []model.CurrencyMention) string {
	stats := currency.ComputeStatistics(mentions)
	if stats.TotalMentions == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(BoldStyle.Render("Statistics:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  primary currency: %s, unique currencies: %d\n",
		stats.PrimaryCurrency, stats.UniqueCurrencies))
	b.WriteString(fmt.Sprintf("  total value: $%.2f (reference rate), mean: %.2f, median: %.2f\n",
		stats.TotalUSD, stats.MeanAmount, stats.MedianAmount))
	if stats.Largest != nil {
		b.WriteString(fmt.Sprintf("  largest amount: %s\n", formatMention(*stats.Largest)))
	}
	return b.String()
}

// RenderVerdict formats just the validation outcome.
func RenderVerdict(v model.ValidationResult) string {
	var b strings.Builder

	verdict := SuccessStyle.Render(fmt.Sprintf("VALID (confidence %d/100)", v.Confidence))
	if !v.IsValid {
		verdict = ErrorStyle.Render(fmt.Sprintf("NOT VALID (confidence %d/100)", v.Confidence))
	}
	b.WriteString(BoldStyle.Render("Verdict: "))
	b.WriteString(verdict)
	b.WriteString("\n")

	for _, issue := range v.Issues {
		b.WriteString(WarningStyle.Render("  ! " + issue))
		b.WriteString("\n")
	}
	for _, s := range v.Suggestions {
		b.WriteString(SubtleStyle.Render("  > " + s))
		b.WriteString("\n")
	}

	return b.String()
}

func formatMention(m model.CurrencyMention) string {
	return fmt.Sprintf("%.2f %s (%s)", m.Amount, m.Code, m.Symbol)
}
