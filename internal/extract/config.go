package extract

// Config collects the tunable thresholds of the extraction pipeline.
// The defaults are empirically chosen values carried over from production
// use; they are exposed here (and through the config file) instead of
// being buried as literals.
//
// TODO: calibrate these against a labeled proposal corpus once one exists.
type Config struct {
	// ClaimWindow is the +-N byte window around an accepted match that
	// later currency patterns may not re-claim.
	ClaimWindow int
	// DedupeAmountTolerance is the relative amount difference (fraction
	// of the larger amount) under which two mentions are duplicates.
	DedupeAmountTolerance float64
	// DedupeMaxGap is the maximum position distance between duplicates.
	DedupeMaxGap int
	// BudgetWindow is how far a mention may sit from a budget keyword.
	BudgetWindow int
	// CategoryWindow is how far a mention may sit from a category keyword.
	CategoryWindow int
	// TermsSimilarityCutoff rejects a payment-term candidate whose
	// similarity to an accepted excerpt exceeds it.
	TermsSimilarityCutoff float64
	// NotesSimilarityCutoff is the analogous cutoff for financial notes.
	NotesSimilarityCutoff float64
	// MaxPaymentTerms and MaxFinancialNotes cap the excerpt lists.
	MaxPaymentTerms   int
	MaxFinancialNotes int
	// Excerpt length bounds, in runes.
	MinTermLen int
	MaxTermLen int
	MinNoteLen int
	MaxNoteLen int
}

// DefaultConfig returns the production thresholds.
func DefaultConfig() Config {
	return Config{
		ClaimWindow:           10,
		DedupeAmountTolerance: 0.01,
		DedupeMaxGap:          50,
		BudgetWindow:          200,
		CategoryWindow:        150,
		TermsSimilarityCutoff: 0.7,
		NotesSimilarityCutoff: 0.6,
		MaxPaymentTerms:       10,
		MaxFinancialNotes:     15,
		MinTermLen:            15,
		MaxTermLen:            200,
		MinNoteLen:            20,
		MaxNoteLen:            300,
	}
}
