package service

import (
	"strconv"
	"strings"

	"icms-recon/internal/classify"
)

// keySep never occurs in a CNPJ, a note number or a category label,
// so joined keys cannot collide across field boundaries.
const keySep = "_"

// CompositeKey derives the join key (cnpj, note number, category).
// The note number goes through integer coercion so "0100", "100 " and
// 100 produce the same key on both sources. A missing CNPJ or an
// uncoercible note number yields "" — an unjoinable key that can never
// match, which is the safe default for a compliance check.
func CompositeKey(cnpj, note string, category classify.Category) string {
	cnpj = strings.TrimSpace(cnpj)
	n, ok := canonicalNote(note)
	if cnpj == "" || !ok {
		return ""
	}
	return cnpj + keySep + n + keySep + string(category)
}

func canonicalNote(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return "", false
	}
	return strconv.FormatInt(v, 10), true
}
