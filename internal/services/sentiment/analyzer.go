package sentiment

import (
	"math"
	"strings"
	"unicode"
)

// normalization constant for the compound score; keeps short texts from
// saturating at the extremes
const compoundAlpha = 15.0

// Analyzer scores a text's polarity from a valence lexicon. The generic
// lexicon is always seeded; the domain override remaps financial terms whose
// everyday valence is wrong for market headlines ("high", "dip", "crashes").
type Analyzer struct {
	lexicon map[string]float64
}

// NewAnalyzer builds an analyzer with the base lexicon plus the required
// domain override applied on top.
func NewAnalyzer(override map[string]float64) *Analyzer {
	lex := make(map[string]float64, len(baseLexicon)+len(override))
	for w, v := range baseLexicon {
		lex[w] = v
	}
	for w, v := range override {
		lex[strings.ToLower(w)] = v
	}
	return &Analyzer{lexicon: lex}
}

// Compound returns a single polarity scalar in [-1, 1]. Zero means neutral
// or no recognized words.
func (a *Analyzer) Compound(text string) float64 {
	var sum float64
	negate := false
	for _, word := range tokenize(text) {
		if isNegation(word) {
			negate = true
			continue
		}
		v, ok := a.lexicon[word]
		if !ok {
			continue
		}
		if negate {
			v = -v
			negate = false
		}
		sum += v
	}
	if sum == 0 {
		return 0
	}
	c := sum / math.Sqrt(sum*sum+compoundAlpha)
	if c > 1 {
		return 1
	}
	if c < -1 {
		return -1
	}
	return c
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})
}

func isNegation(word string) bool {
	switch word {
	case "not", "no", "never", "isn't", "wasn't", "won't", "doesn't", "don't", "didn't":
		return true
	}
	return false
}
