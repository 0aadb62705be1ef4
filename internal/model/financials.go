// Package model defines the core domain models used throughout the application.
package model

// CurrencyCode identifies one of the currencies the scanner recognizes.
type CurrencyCode string

// Recognized currency codes.
const (
	CurrencyUSD CurrencyCode = "USD"
	CurrencyEUR CurrencyCode = "EUR"
	CurrencyRUB CurrencyCode = "RUB"
	CurrencyKGS CurrencyCode = "KGS"
	CurrencyKZT CurrencyCode = "KZT"
	CurrencyUZS CurrencyCode = "UZS"
	CurrencyTJS CurrencyCode = "TJS"
	CurrencyUAH CurrencyCode = "UAH"
)

// CurrencyMention is one recognized currency+amount occurrence at a
// specific position in the source text.
type CurrencyMention struct {
	Code         CurrencyCode `json:"code"`
	Symbol       string       `json:"symbol"`
	Name         string       `json:"name"`
	OriginalText string       `json:"original_text"`
	Amount       float64      `json:"amount"`
	Position     int          `json:"position"`
}

// CostCategory is a semantic bucket in the cost breakdown.
type CostCategory string

// Named cost categories. Mentions that match a category keyword but lose
// the proximity comparison land in the separate Other bucket.
const (
	CategoryDevelopment       CostCategory = "development"
	CategoryInfrastructure    CostCategory = "infrastructure"
	CategorySupport           CostCategory = "support"
	CategoryTesting           CostCategory = "testing"
	CategoryDeployment        CostCategory = "deployment"
	CategoryProjectManagement CostCategory = "project_management"
	CategoryDesign            CostCategory = "design"
	CategoryDocumentation     CostCategory = "documentation"
)

// CategoryOrder is the fixed evaluation order for the categorizer.
var CategoryOrder = []CostCategory{
	CategoryDevelopment,
	CategoryInfrastructure,
	CategorySupport,
	CategoryTesting,
	CategoryDeployment,
	CategoryProjectManagement,
	CategoryDesign,
	CategoryDocumentation,
}

// CostBreakdown maps each named category to at most one mention. Other
// collects mentions that matched a category keyword but lost a
// better-match comparison.
type CostBreakdown struct {
	Categories map[CostCategory]CurrencyMention `json:"categories,omitempty"`
	Other      []CurrencyMention                `json:"other,omitempty"`
}

// ExtractedFinancials is the engine's complete output for one document.
//
// TotalBudget, when non-nil, points at an element of Currencies; it is
// never a synthesized value. Currencies is sorted by Position ascending
// and contains no near-duplicates.
type ExtractedFinancials struct {
	TotalBudget    *CurrencyMention  `json:"total_budget,omitempty"`
	CostBreakdown  CostBreakdown     `json:"cost_breakdown"`
	Currencies     []CurrencyMention `json:"currencies"`
	PaymentTerms   []string          `json:"payment_terms"`
	FinancialNotes []string          `json:"financial_notes"`
}

// ValidationResult is the validator's verdict on an extraction.
type ValidationResult struct {
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
	Confidence  int      `json:"confidence"`
	IsValid     bool     `json:"is_valid"`
}
