package model

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"

	"icms-recon/internal/classify"
)

// Number is a float64 whose NaN state marks a value that failed
// locale parsing. It serializes as JSON null instead of breaking the
// encoder, and NaN rows are skipped by numeric aggregation.
type Number float64

// NaN is the explicit missing-value marker.
func NaN() Number { return Number(math.NaN()) }

func (n Number) IsNaN() bool { return math.IsNaN(float64(n)) }

func (n Number) MarshalJSON() ([]byte, error) {
	if n.IsNaN() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(n))
}

// NoteRow is one line of the interstate fuel-notes export (source A).
type NoteRow struct {
	CNPJ        string // remitter tax id
	NoteNumber  string // NFe number, numeric text
	Description string // free-text product description
	Unit        string // commercial unit
	Quantity    Number // commercial quantity
	Period      string // issuance year-month, e.g. "202507"
	AccessKey   string // NFe access key
	Category    classify.Category
	Key         string
}

// LedgerRow is one line of the SCANC ledger extract (source B).
type LedgerRow struct {
	CNPJ        string            `json:"cnpjh"`
	NoteNumber  string            `json:"numnf"`
	Product     string            `json:"produto"`
	Quantity    Number            `json:"qtd"`
	QuantityB   Number            `json:"qtdb"`
	CFOP        Number            `json:"cfop"`
	Company     string            `json:"razsocial"`
	Period      string            `json:"mesano"`
	ICMSToRemit Number            `json:"vlricmsrep"`
	Category    classify.Category `json:"categoria"`
	Key         string            `json:"chave"`
}

// Params configures one reconciliation run.
type Params struct {
	// CurrentMonth is the structurally incomplete period excluded from
	// both sources before key derivation.
	CurrentMonth string `json:"currentMonth"`
	// MinQty is the materiality threshold; only ledger rows with
	// quantity strictly above it are reported.
	MinQty float64 `json:"minQty"`
	// Companies/Months narrow the reported rows (empty = no filter).
	Companies []string `json:"companies,omitempty"`
	Months    []string `json:"months,omitempty"`
}

// Summary carries the report KPIs over the reconciled rows. Money
// totals are decimal so repeated float addition cannot drift them.
type Summary struct {
	Rows          int                        `json:"rows"`
	TotalICMS     decimal.Decimal            `json:"totalIcms"`
	TotalQuantity float64                    `json:"totalQuantity"`
	ICMSByProduct map[string]decimal.Decimal `json:"icmsByProduct"`
	ICMSByMonth   map[string]decimal.Decimal `json:"icmsByMonth"`
	QtyByProduct  map[string]float64         `json:"qtyByProduct"`
}

// Result is the full response of a run: discrepancy rows plus KPIs,
// echoing the parameters that were applied.
type Result struct {
	Rows    []LedgerRow `json:"rows"`
	Summary Summary     `json:"summary"`
	Params  Params      `json:"params"`
}
