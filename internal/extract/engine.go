// Package extract implements the financial data extraction engine: a
// single-pass, stateless pipeline that turns raw multilingual proposal
// text into a structured financial summary.
package extract

import (
	"errors"
	"unicode/utf8"

	"github.com/tenderlens/tenderlens/internal/currency"
	"github.com/tenderlens/tenderlens/internal/model"
)

// ErrInvalidInput reports input that is not valid text. It is the only
// hard failure mode; malformed or absent financial content never errors.
var ErrInvalidInput = errors.New("input is not valid UTF-8 text")

// Engine runs the extraction pipeline. It holds only immutable
// configuration and compiled patterns, so one Engine is safe for
// concurrent use across goroutines.
type Engine struct {
	registry *currency.Registry
	cfg      Config
}

// NewEngine creates an engine around a compiled pattern registry.
func NewEngine(registry *currency.Registry, cfg Config) *Engine {
	return &Engine{registry: registry, cfg: cfg}
}

// New returns an engine with the default pattern table and thresholds.
func New() *Engine {
	return NewEngine(currency.NewRegistry(), DefaultConfig())
}

// Extract scans text and assembles the structured financial summary.
// Text with no recognizable financial content yields an all-empty result,
// not an error.
func (e *Engine) Extract(text string) (*model.ExtractedFinancials, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidInput
	}

	raw := scanMentions(text, e.registry, e.cfg.ClaimWindow)
	deduped := Deduplicate(raw, e.cfg.DedupeAmountTolerance, e.cfg.DedupeMaxGap)

	result := &model.ExtractedFinancials{Currencies: deduped}

	// The budget pointer aliases an element of result.Currencies, never a
	// synthesized value.
	result.TotalBudget = identifyBudget(text, result.Currencies, e.cfg.BudgetWindow)
	result.CostBreakdown = categorize(text, result.Currencies, e.cfg.CategoryWindow)
	result.PaymentTerms = extractExcerpts(text, paymentTermPatterns,
		e.cfg.MinTermLen, e.cfg.MaxTermLen, e.cfg.TermsSimilarityCutoff, e.cfg.MaxPaymentTerms)
	result.FinancialNotes = extractExcerpts(text, financialNotePatterns,
		e.cfg.MinNoteLen, e.cfg.MaxNoteLen, e.cfg.NotesSimilarityCutoff, e.cfg.MaxFinancialNotes)

	return result, nil
}

// Config returns the engine's thresholds.
func (e *Engine) Config() Config {
	return e.cfg
}
