package service

import (
	"icms-recon/internal/reconcile/model"
)

// Reconcile anti-joins the ledger against the notes on the composite
// key: a ledger row survives iff no note shares its key. Rows with an
// unjoinable ("") key always survive the join. The materiality filter
// then keeps quantities strictly above p.MinQty; a NaN quantity never
// exceeds the threshold. Inputs are not mutated.
func Reconcile(notes []model.NoteRow, ledger []model.LedgerRow, p model.Params) []model.LedgerRow {
	declared := make(map[string]struct{}, len(notes))
	for _, n := range notes {
		if n.Key != "" {
			declared[n.Key] = struct{}{}
		}
	}

	out := make([]model.LedgerRow, 0)
	for _, r := range ledger {
		if r.Key != "" {
			if _, ok := declared[r.Key]; ok {
				continue
			}
		}
		if !(float64(r.Quantity) > p.MinQty) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Filter narrows reconciled rows by company name and/or period.
// An empty selection leaves that dimension unfiltered.
func Filter(rows []model.LedgerRow, companies, months []string) []model.LedgerRow {
	if len(companies) == 0 && len(months) == 0 {
		return rows
	}
	wantCompany := toSet(companies)
	wantMonth := toSet(months)

	out := make([]model.LedgerRow, 0, len(rows))
	for _, r := range rows {
		if len(wantCompany) > 0 {
			if _, ok := wantCompany[r.Company]; !ok {
				continue
			}
		}
		if len(wantMonth) > 0 {
			if _, ok := wantMonth[r.Period]; !ok {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

func toSet(vals []string) map[string]struct{} {
	m := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		m[v] = struct{}{}
	}
	return m
}
