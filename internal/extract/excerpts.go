package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tenderlens/tenderlens/internal/textmatch"
)

// Excerpt pattern families. Each pattern grabs the sentence fragment
// around a signal word without crossing sentence punctuation or newlines.
var (
	paymentTermPatterns = compileAll(
		`[^.!?\n]*(?:оплат\p{L}*|платеж\p{L}*|платёж\p{L}*|предоплат\p{L}*|аванс\p{L}*|рассрочк\p{L}*|взнос\p{L}*)[^.!?\n]*`,
		`[^.!?\n]*(?:payment|instal?lment|prepayment|advance|deposit)[^.!?\n]*`,
	)

	financialNotePatterns = compileAll(
		`[^.!?\n]*(?:ндс|налог\p{L}*|скидк\p{L}*|не включ\p{L}*|включая|дополнительн\p{L}*|гаранти\p{L}*|валют\p{L}*|курс\p{L}*)[^.!?\n]*`,
		`[^.!?\n]*(?:vat|tax|discount|warranty|surcharge|exclud\p{L}*|includ\p{L}*|additional cost\p{L}*)[^.!?\n]*`,
	)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+p))
	}
	return compiled
}

// extractExcerpts collects trimmed, whitespace-collapsed matches of the
// pattern family, drops candidates outside the rune-length bounds, and
// suppresses near-duplicates via normalized edit-distance similarity. The
// result preserves discovery order and is capped at limit entries.
func extractExcerpts(text string, patterns []*regexp.Regexp, minLen, maxLen int, cutoff float64, limit int) []string {
	out := []string{} // non-nil so an empty result serializes as []

	for _, re := range patterns {
		for _, raw := range re.FindAllString(text, -1) {
			excerpt := whitespaceRe.ReplaceAllString(strings.TrimSpace(raw), " ")

			n := utf8.RuneCountInString(excerpt)
			if n < minLen || n > maxLen {
				continue
			}
			if similarToAny(out, excerpt, cutoff) {
				continue
			}
			out = append(out, excerpt)
		}
	}

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func similarToAny(accepted []string, candidate string, cutoff float64) bool {
	for _, a := range accepted {
		if textmatch.Similarity(a, candidate) > cutoff {
			return true
		}
	}
	return false
}
