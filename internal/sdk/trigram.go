package sdk

import (
	"strings"
	"unicode"

	"github.com/adrg/strutil"
)

// trigrams returns the set of padded 3-grams of s. Matching is case
// insensitive and only letters and digits count; each word is padded with two
// leading spaces and one trailing space, so short words and word starts match.
func trigrams(s string) map[string]struct{} {
	set := make(map[string]struct{})
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		for _, g := range strutil.Ngrams("  "+w+" ", 3) {
			set[g] = struct{}{}
		}
	}
	return set
}

// Similarity scores a and b between 0 and 1 as shared trigrams over the union
// of both trigram sets. Strings without any letters or digits have no
// trigrams; they score 1 against an identical string and 0 otherwise.
func Similarity(a, b string) float64 {
	ta, tb := trigrams(a), trigrams(b)
	if len(ta) == 0 && len(tb) == 0 {
		if a != "" && a == b {
			return 1
		}
		return 0
	}

	shared := 0
	for g := range ta {
		if _, ok := tb[g]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(ta)+len(tb)-shared)
}
