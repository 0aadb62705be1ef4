// Package textmatch provides pure string-similarity functions used for
// near-duplicate suppression of extracted excerpts.
package textmatch

// Levenshtein returns the edit distance between a and b, computed over
// runes so multibyte (Cyrillic) input is measured per character.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Two-row DP; prev[j] is the distance between ra[:i] and rb[:j].
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// Similarity returns a normalized similarity ratio in [0, 1]:
// (len(longer) - Levenshtein(longer, shorter)) / len(longer).
// Two empty strings are fully similar.
func Similarity(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))

	longer := la
	if lb > longer {
		longer = lb
	}
	if longer == 0 {
		return 1.0
	}

	return float64(longer-Levenshtein(a, b)) / float64(longer)
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
