package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tenderlens/tenderlens/internal/model"
)

// categoryKeywords maps each named cost category to the words that signal
// it. Keywords are matched whole-word and case-insensitively; Russian
// entries carry the common case forms explicitly since stemming is out of
// scope.
var categoryKeywords = map[model.CostCategory][]string{
	model.CategoryDevelopment: {
		"разработка", "разработки", "разработку", "программирование",
		"кодирование", "development", "coding",
	},
	model.CategoryInfrastructure: {
		"инфраструктура", "инфраструктуры", "сервер", "серверы", "хостинг",
		"облако", "infrastructure", "hosting", "cloud",
	},
	model.CategorySupport: {
		"поддержка", "поддержки", "сопровождение", "support", "maintenance",
	},
	model.CategoryTesting: {
		"тестирование", "тестирования", "отладка", "testing", "qa",
	},
	model.CategoryDeployment: {
		"внедрение", "развертывание", "развёртывание", "запуск",
		"deployment", "rollout",
	},
	model.CategoryProjectManagement: {
		"управление проектом", "менеджмент", "project management",
		"management",
	},
	model.CategoryDesign: {
		"дизайн", "дизайна", "проектирование интерфейса", "design", "ui",
		"ux",
	},
	model.CategoryDocumentation: {
		"документация", "документации", "documentation", "docs",
	},
}

type assignment struct {
	mention  model.CurrencyMention
	distance int
}

// categorize assigns mentions to cost categories by keyword proximity.
// Each category keeps its best candidate (smallest keyword distance,
// larger amount on ties); a mention belongs to at most one named category.
// Mentions that matched a keyword but hold no category land in Other.
func categorize(text string, mentions []model.CurrencyMention, window int) model.CostBreakdown {
	lower := strings.ToLower(text)

	assigned := make(map[model.CostCategory]assignment)
	owner := make(map[int]model.CostCategory) // mention position -> category
	byPosition := make(map[int]model.CurrencyMention, len(mentions))
	var matchedOrder []int // positions of keyword-matched mentions, discovery order

	for _, m := range mentions {
		byPosition[m.Position] = m
	}

	for _, cat := range model.CategoryOrder {
		for _, kw := range categoryKeywords[cat] {
			for _, occ := range wordIndices(lower, kw) {
				m := nearestMention(mentions, occ, window)
				if m == nil {
					continue
				}
				if !contains(matchedOrder, m.Position) {
					matchedOrder = append(matchedOrder, m.Position)
				}

				// A mention claimed by an earlier category stays there.
				if oc, taken := owner[m.Position]; taken && oc != cat {
					continue
				}

				d := absInt(m.Position - occ)
				if cur, ok := assigned[cat]; ok {
					if !better(d, m.Amount, cur) {
						continue
					}
					delete(owner, cur.mention.Position)
				}
				assigned[cat] = assignment{mention: *m, distance: d}
				owner[m.Position] = cat
			}
		}
	}

	var breakdown model.CostBreakdown
	if len(assigned) > 0 {
		breakdown.Categories = make(map[model.CostCategory]model.CurrencyMention, len(assigned))
		for cat, a := range assigned {
			breakdown.Categories[cat] = a.mention
		}
	}
	for _, pos := range matchedOrder {
		if _, held := owner[pos]; !held {
			breakdown.Other = append(breakdown.Other, byPosition[pos])
		}
	}

	return breakdown
}

// better reports whether a candidate at distance d with the given amount
// beats the current assignment.
func better(d int, amount float64, cur assignment) bool {
	if d != cur.distance {
		return d < cur.distance
	}
	return amount > cur.mention.Amount
}

// wordIndices returns the byte offsets of whole-word occurrences of word
// in text. ASCII \b is useless for Cyrillic, so boundaries are checked on
// decoded runes instead.
func wordIndices(text, word string) []int {
	var out []int
	for start := 0; start < len(text); {
		i := strings.Index(text[start:], word)
		if i < 0 {
			break
		}
		pos := start + i
		if isWordBoundary(text, pos, len(word)) {
			out = append(out, pos)
		}
		start = pos + len(word)
	}
	return out
}

func isWordBoundary(text string, pos, length int) bool {
	if pos > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:pos])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if pos+length < len(text) {
		r, _ := utf8.DecodeRuneInString(text[pos+length:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func contains(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
