package service

import (
	"github.com/shopspring/decimal"

	"icms-recon/internal/reconcile/model"
)

// Summarize computes the report KPIs over the reconciled rows: total
// ICMS to remit, total quantity, and ICMS/quantity broken down by
// classified product and by month. NaN values are excluded from sums
// but the rows still count.
func Summarize(rows []model.LedgerRow) model.Summary {
	s := model.Summary{
		Rows:          len(rows),
		TotalICMS:     decimal.Zero,
		ICMSByProduct: make(map[string]decimal.Decimal),
		ICMSByMonth:   make(map[string]decimal.Decimal),
		QtyByProduct:  make(map[string]float64),
	}
	for _, r := range rows {
		if !r.ICMSToRemit.IsNaN() {
			d := decimal.NewFromFloat(float64(r.ICMSToRemit))
			s.TotalICMS = s.TotalICMS.Add(d)
			s.ICMSByProduct[string(r.Category)] = s.ICMSByProduct[string(r.Category)].Add(d)
			s.ICMSByMonth[r.Period] = s.ICMSByMonth[r.Period].Add(d)
		}
		if !r.QuantityB.IsNaN() {
			s.TotalQuantity += float64(r.QuantityB)
			s.QtyByProduct[string(r.Category)] += float64(r.QuantityB)
		}
	}
	return s
}
