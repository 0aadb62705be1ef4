package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractExcerpts_PaymentTerms(t *testing.T) {
	cfg := DefaultConfig()
	text := "Предоплата составляет 50% от суммы договора. Остальная оплата после сдачи работ."

	terms := extractExcerpts(text, paymentTermPatterns,
		cfg.MinTermLen, cfg.MaxTermLen, cfg.TermsSimilarityCutoff, cfg.MaxPaymentTerms)

	require.NotEmpty(t, terms)
	assert.Contains(t, terms[0], "Предоплата")
}

func TestExtractExcerpts_FuzzyDedup(t *testing.T) {
	cfg := DefaultConfig()
	// Same sentence twice, differing only in internal whitespace; the
	// second occurrence must be suppressed as a near-duplicate.
	text := "Оплата производится в течение 30 дней.\n" +
		"Оплата  производится  в  течение  30 дней."

	terms := extractExcerpts(text, paymentTermPatterns,
		cfg.MinTermLen, cfg.MaxTermLen, cfg.TermsSimilarityCutoff, cfg.MaxPaymentTerms)

	assert.Len(t, terms, 1)
}

func TestExtractExcerpts_LengthBounds(t *testing.T) {
	cfg := DefaultConfig()

	// Too short to be a useful excerpt.
	short := "Оплата 5%."
	terms := extractExcerpts(short, paymentTermPatterns,
		cfg.MinTermLen, cfg.MaxTermLen, cfg.TermsSimilarityCutoff, cfg.MaxPaymentTerms)
	assert.Empty(t, terms)

	// Far beyond the upper bound.
	long := "Оплата " + strings.Repeat("очень ", 60) + "долгая"
	terms = extractExcerpts(long, paymentTermPatterns,
		cfg.MinTermLen, cfg.MaxTermLen, cfg.TermsSimilarityCutoff, cfg.MaxPaymentTerms)
	assert.Empty(t, terms)
}

func TestExtractExcerpts_CollapsesWhitespace(t *testing.T) {
	cfg := DefaultConfig()
	text := "Оплата   производится \t в течение   десяти рабочих дней."

	terms := extractExcerpts(text, paymentTermPatterns,
		cfg.MinTermLen, cfg.MaxTermLen, cfg.TermsSimilarityCutoff, cfg.MaxPaymentTerms)

	require.Len(t, terms, 1)
	assert.NotContains(t, terms[0], "  ")
}

func TestExtractExcerpts_FinancialNotes(t *testing.T) {
	cfg := DefaultConfig()
	text := "Цены указаны без учета НДС и могут быть изменены. Дополнительные работы оплачиваются отдельно."

	notes := extractExcerpts(text, financialNotePatterns,
		cfg.MinNoteLen, cfg.MaxNoteLen, cfg.NotesSimilarityCutoff, cfg.MaxFinancialNotes)

	require.NotEmpty(t, notes)
	assert.Contains(t, notes[0], "НДС")
}

func TestExtractExcerpts_Cap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 30; i++ {
		// Distinct enough sentences to survive similarity suppression.
		b.WriteString(strings.Repeat(string(rune('a'+i)), 8))
		b.WriteString(" milestone payment due on stage ")
		b.WriteString(strings.Repeat(string(rune('A'+i)), i+1))
		b.WriteString(".\n")
	}

	cfg := DefaultConfig()
	terms := extractExcerpts(b.String(), paymentTermPatterns,
		cfg.MinTermLen, cfg.MaxTermLen, cfg.TermsSimilarityCutoff, cfg.MaxPaymentTerms)

	assert.LessOrEqual(t, len(terms), cfg.MaxPaymentTerms)
}
