// Package classify assigns fuel categories to product text. Interstate
// note exports carry free-text descriptions; SCANC ledger extracts carry
// short controlled product codes. Each gets its own classifier.
package classify

import (
	"strings"

	"icms-recon/internal/textnorm"
)

// Category is a fuel product category. String values are the labels
// used by the downstream report and embedded in composite keys, so
// they must stay byte-stable.
type Category string

const (
	Gasoline Category = "gasolina"
	Diesel   Category = "diesel"
	Other    Category = "outros"
)

// Stems computed with the same stemmer the normalizer applies, so
// containment checks against stemmed text stay consistent.
var (
	gasolineStem = textnorm.Stem("gasolina")
	dieselStem   = textnorm.Stem("diesel")
)

var (
	biodieselForms = []string{"biodiesel", "bio diesel", "bio-diesel"}
	dieselGrades   = []string{"s500", "s-500", "s10", "s-10"}
)

type rule struct {
	name     string
	category Category
	match    func(stemmed, folded string) bool
}

// Evaluated in order, first match wins. The grade rule runs after the
// diesel rule on purpose: "Diesel S10 Biodiesel" is blocked by the
// biodiesel exclusion but still names a diesel grade.
var descriptionRules = []rule{
	{
		name:     "gasoline",
		category: Gasoline,
		match: func(stemmed, folded string) bool {
			return strings.Contains(stemmed, gasolineStem) || strings.Contains(folded, "avgas")
		},
	},
	{
		name:     "diesel",
		category: Diesel,
		match: func(stemmed, folded string) bool {
			if !strings.Contains(stemmed, dieselStem) {
				return false
			}
			for _, b := range biodieselForms {
				if strings.Contains(folded, b) {
					return false
				}
			}
			return true
		},
	},
	{
		name:     "diesel-grade",
		category: Diesel,
		match: func(_, folded string) bool {
			for _, g := range dieselGrades {
				if strings.Contains(folded, g) {
					return true
				}
			}
			return false
		},
	},
}

// FromDescription classifies a free-text product description.
// Missing/blank text classifies as Other.
func FromDescription(text string) Category {
	stemmed, folded, ok := textnorm.Process(text)
	if !ok {
		return Other
	}
	for _, r := range descriptionRules {
		if r.match(stemmed, folded) {
			return r.category
		}
	}
	return Other
}

var codeTable = map[string]Category{
	"DSL": Diesel,
	"S10": Diesel,
	"GSV": Gasoline,
	"GSL": Gasoline,
	"GSP": Gasoline,
}

// FromCode classifies a SCANC short product code.
func FromCode(code string) Category {
	if c, ok := codeTable[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return c
	}
	return Other
}
