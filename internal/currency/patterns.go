// Package currency holds the static currency recognition patterns and the
// fixed reference-rate table. The pattern set is data, not control flow:
// one record per currency, compiled once at startup.
package currency

import (
	"regexp"
	"strings"

	"github.com/tenderlens/tenderlens/internal/model"
)

// numberPat matches a digit run with optional space/comma/dot separators.
// Separator disambiguation happens later in the amount parser.
const numberPat = `[0-9](?:[0-9\s.,\x{00A0}]*[0-9])?`

// Pattern is the recognition record for one currency: display strings plus
// the combined amount+marker regular expression.
type Pattern struct {
	re     *regexp.Regexp
	Code   model.CurrencyCode
	Symbol string
	Name   string
}

// Match is one occurrence of a pattern in the source text.
type Match struct {
	Text   string // full matched substring, trimmed
	Number string // numeric portion of the match
	Start  int    // byte offset of the match start
}

// Matches returns all non-overlapping occurrences of the pattern in text,
// in position order.
func (p *Pattern) Matches(text string) []Match {
	idx := p.re.FindAllStringSubmatchIndex(text, -1)
	if idx == nil {
		return nil
	}

	matches := make([]Match, 0, len(idx))
	for _, m := range idx {
		// The pattern has one capture group per alternation branch;
		// exactly one of them participates in any given match.
		number := ""
		for g := 1; g < len(m)/2; g++ {
			if m[2*g] >= 0 {
				number = text[m[2*g]:m[2*g+1]]
				break
			}
		}
		matches = append(matches, Match{
			Start:  m[0],
			Text:   strings.TrimSpace(text[m[0]:m[1]]),
			Number: number,
		})
	}

	return matches
}

// spec holds the marker sets a Pattern is compiled from.
type spec struct {
	code   model.CurrencyCode
	symbol string
	name   string
	prefix string // markers that precede the amount ($100), regex fragment
	suffix string // markers that follow the amount (100 руб), regex fragment
}

// Declaration order is the scan order: the first applicable currency wins
// a contested span. TJS precedes KGS so "сомони" is not claimed as "сом".
var specs = []spec{
	{
		code:   model.CurrencyUSD,
		symbol: "$",
		name:   "Доллар США",
		prefix: `\$`,
		suffix: `USD|доллар(?:ов|а)?|долл\.?|dollars?`,
	},
	{
		code:   model.CurrencyEUR,
		symbol: "€",
		name:   "Евро",
		prefix: `€`,
		suffix: `€|EUR|евро|euros?`,
	},
	{
		code:   model.CurrencyRUB,
		symbol: "₽",
		name:   "Российский рубль",
		suffix: `₽|RUB|руб(?:лей|ля|ль)?\.?|rubles?`,
	},
	{
		code:   model.CurrencyTJS,
		symbol: "смн",
		name:   "Таджикский сомони",
		suffix: `TJS|сомони|somoni`,
	},
	{
		code:   model.CurrencyKGS,
		symbol: "сом",
		name:   "Кыргызский сом",
		suffix: `KGS|сом(?:ов|а)?|soms?`,
	},
	{
		code:   model.CurrencyKZT,
		symbol: "₸",
		name:   "Казахстанский тенге",
		suffix: `₸|KZT|тенге|tenge`,
	},
	{
		code:   model.CurrencyUZS,
		symbol: "сум",
		name:   "Узбекский сум",
		suffix: `UZS|сум(?:ов|а)?|сўм|so'm`,
	},
	{
		code:   model.CurrencyUAH,
		symbol: "₴",
		name:   "Украинская гривна",
		suffix: `₴|UAH|грн\.?|гривн(?:а|ы|и)?|гривен(?:ь)?|hryvnia`,
	},
}

// Registry is the immutable set of compiled currency patterns. Build it
// once and share it; it is safe for concurrent use.
type Registry struct {
	patterns []Pattern
}

// NewRegistry compiles the static pattern table.
func NewRegistry() *Registry {
	patterns := make([]Pattern, 0, len(specs))
	for _, s := range specs {
		var branches []string
		if s.prefix != "" {
			branches = append(branches, `(?:`+s.prefix+`)\s*(`+numberPat+`)`)
		}
		if s.suffix != "" {
			branches = append(branches, `(`+numberPat+`)\s*(?:`+s.suffix+`)`)
		}

		patterns = append(patterns, Pattern{
			Code:   s.code,
			Symbol: s.symbol,
			Name:   s.name,
			re:     regexp.MustCompile(`(?i)(?:` + strings.Join(branches, `|`) + `)`),
		})
	}

	return &Registry{patterns: patterns}
}

// Patterns returns the compiled patterns in scan order.
func (r *Registry) Patterns() []Pattern {
	return r.patterns
}
