package service

import (
	"strings"

	"icms-recon/internal/classify"
	"icms-recon/internal/reconcile/model"
)

// PrepareNotes readies the interstate-notes export for the join:
// excludes the configured current month, normalizes the commercial
// unit, classifies the free-text description and drops "outros" rows
// (noise in this export), then derives the composite key.
func PrepareNotes(rows []model.NoteRow, p model.Params) []model.NoteRow {
	out := make([]model.NoteRow, 0, len(rows))
	for _, r := range rows {
		if p.CurrentMonth != "" && r.Period == p.CurrentMonth {
			continue
		}
		r.Unit = strings.ToUpper(strings.TrimSpace(r.Unit))
		r.Category = classify.FromDescription(r.Description)
		if r.Category == classify.Other {
			continue
		}
		r.Key = CompositeKey(r.CNPJ, r.NoteNumber, r.Category)
		out = append(out, r)
	}
	return out
}

// PrepareLedger readies the SCANC extract: excludes the current month,
// classifies by product code and derives the composite key. "outros"
// rows are retained here; they form the base the threshold and
// anti-join run over.
func PrepareLedger(rows []model.LedgerRow, p model.Params) []model.LedgerRow {
	out := make([]model.LedgerRow, 0, len(rows))
	for _, r := range rows {
		if p.CurrentMonth != "" && r.Period == p.CurrentMonth {
			continue
		}
		r.Category = classify.FromCode(r.Product)
		r.Key = CompositeKey(r.CNPJ, r.NoteNumber, r.Category)
		out = append(out, r)
	}
	return out
}
