// Package textnorm prepares free-text product descriptions for
// rule-based classification: casefolding, diacritic stripping,
// Portuguese stopword removal and snowball stemming.
package textnorm

import (
	"strings"
	"unicode"

	"github.com/blevesearch/snowballstem"
	"github.com/blevesearch/snowballstem/portuguese"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NFD decompose, drop combining marks, recompose: "ó" -> "o".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases the text and strips diacritical marks.
func Fold(s string) string {
	s = strings.ToLower(s)
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}

// Stem reduces a single token to its Portuguese snowball stem.
func Stem(token string) string {
	env := snowballstem.NewEnv(token)
	portuguese.Stem(env)
	return env.Current()
}

// IsStopword reports whether the token is in the Portuguese stopword set.
func IsStopword(token string) bool {
	_, ok := stopSet[token]
	return ok
}

// Process runs the full normalization pipeline: fold, tokenize on
// whitespace, drop stopwords, stem each remaining token and rejoin
// with single spaces. It returns both the stemmed text and the folded
// (unstemmed) text; classification rules need the two views.
// ok is false for empty/blank input, which propagates as "missing"
// instead of failing.
func Process(text string) (stemmed, folded string, ok bool) {
	if strings.TrimSpace(text) == "" {
		return "", "", false
	}
	folded = Fold(text)
	tokens := strings.Fields(folded)
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if IsStopword(tok) {
			continue
		}
		kept = append(kept, Stem(tok))
	}
	return strings.Join(kept, " "), folded, true
}
