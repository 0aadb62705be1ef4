package currency

import "github.com/tenderlens/tenderlens/internal/model"

// usdRates is the fixed reference table used to express amounts in a
// common unit for comparison. These are snapshot rates, not live quotes;
// exchange-rate lookups are deliberately out of scope.
var usdRates = map[model.CurrencyCode]float64{
	model.CurrencyUSD: 1.0,
	model.CurrencyEUR: 1.08,
	model.CurrencyRUB: 0.011,
	model.CurrencyKGS: 0.0115,
	model.CurrencyKZT: 0.0021,
	model.CurrencyUZS: 0.000079,
	model.CurrencyTJS: 0.092,
	model.CurrencyUAH: 0.024,
}

// Rate returns the USD reference rate for a currency code, or 0 for an
// unknown code.
func Rate(code model.CurrencyCode) float64 {
	return usdRates[code]
}

// ToUSD converts a mention's amount into the USD reference unit.
func ToUSD(m model.CurrencyMention) float64 {
	return m.Amount * usdRates[m.Code]
}
