package handler

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"icms-recon/internal/reconcile/model"
	"icms-recon/internal/textnorm"
	"icms-recon/internal/utils"
)

var nonAlnum = regexp.MustCompile(`[^\p{L}\p{N}]+`)

const minContainsLen = 5

// normHeaderKey folds a column header for tolerant matching:
// lowercase, accents stripped, punctuation collapsed to single spaces.
// NFe exports arrive with headers like "Descrição Produto" and
// "Número NFe (D)" whose accents and punctuation vary by tool.
func normHeaderKey(s string) string {
	s = textnorm.Fold(strings.TrimSpace(s))
	s = nonAlnum.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// resolveKey finds the actual map key for a wanted column name.
// Alternatives are supported via "|" (e.g. "numnf|numero nf").
// Matching is exact first, then normalized-exact, then containment.
// Containment only applies to names of minContainsLen or more runes:
// the short SCANC codes ("qtd", "cfop", "qtdb") are too close to each
// other to join on a substring hit.
func resolveKey(rec map[string]string, want string) string {
	want = strings.TrimSpace(want)
	if want == "" {
		return ""
	}
	alts := strings.Split(want, "|")
	for i := range alts {
		alts[i] = strings.TrimSpace(alts[i])
	}

	for _, a := range alts {
		if _, ok := rec[a]; ok {
			return a
		}
	}

	var nWant []string
	for _, a := range alts {
		nWant = append(nWant, normHeaderKey(a))
	}

	bestKey := ""
	bestScore := 0
	for k := range rec {
		nk := normHeaderKey(k)
		for _, n := range nWant {
			if nk == n {
				return k
			}
		}
		score := 0
		for _, n := range nWant {
			if len(n) < minContainsLen {
				continue
			}
			if strings.Contains(nk, n) || strings.Contains(n, nk) {
				if len(n) > score {
					score = len(n)
				}
			}
		}
		if score > bestScore {
			bestScore, bestKey = score, k
		}
	}
	return bestKey
}

type colSpec struct {
	name     string // canonical label, used in error messages
	want     string // resolveKey spec
	required bool
}

// resolveColumns maps every spec to a real header of the upload,
// failing fast when a required column is absent (the pipeline cannot
// run without its minimum schema).
func resolveColumns(sample map[string]string, specs []colSpec, source string) (map[string]string, error) {
	out := make(map[string]string, len(specs))
	for _, sp := range specs {
		k := resolveKey(sample, sp.want)
		if k == "" && sp.required {
			return nil, fmt.Errorf("%s: missing required column %q", source, sp.name)
		}
		out[sp.name] = k
	}
	return out, nil
}

// Interstate-notes export (source A) layout.
var noteSpecs = []colSpec{
	{"CNPJ - Remetente", "CNPJ - Remetente|cnpj remetente", true},
	{"Número NFe (D)", "Número NFe (D)|numero nfe", true},
	{"Descrição Produto", "Descrição Produto|descricao produto", true},
	{"Quantidade Comercial", "Quantidade Comercial|quantidade comercial", true},
	{"Ano/Mês Emissão", "Ano/Mês Emissão|ano mes emissao", true},
	{"Unidade Comercialização Produto", "Unidade Comercialização Produto|unidade comercializacao", false},
	{"Cód Chave Acesso NFe (D)", "Cód Chave Acesso NFe (D)|chave acesso", false},
}

// SCANC ledger extract (source B) layout.
var ledgerSpecs = []colSpec{
	{"cnpjh", "cnpjh", true},
	{"numnf", "numnf", true},
	{"produto", "produto", true},
	{"qtd", "qtd", true},
	{"mesano", "mesano", true},
	{"qtdb", "qtdb", false},
	{"cfop", "cfop", false},
	{"razsocial", "razsocial", false},
	{"vlricmsrep", "vlricmsrep", false},
}

func buildNotes(maps []map[string]string) ([]model.NoteRow, error) {
	if len(maps) == 0 {
		return nil, nil
	}
	cols, err := resolveColumns(maps[0], noteSpecs, "fileA")
	if err != nil {
		return nil, err
	}
	rows := make([]model.NoteRow, 0, len(maps))
	for _, rec := range maps {
		rows = append(rows, model.NoteRow{
			CNPJ:        strings.TrimSpace(rec[cols["CNPJ - Remetente"]]),
			NoteNumber:  strings.TrimSpace(rec[cols["Número NFe (D)"]]),
			Description: rec[cols["Descrição Produto"]],
			Unit:        rec[cols["Unidade Comercialização Produto"]],
			Quantity:    toNumber(rec[cols["Quantidade Comercial"]]),
			Period:      strings.TrimSpace(rec[cols["Ano/Mês Emissão"]]),
			AccessKey:   strings.TrimSpace(rec[cols["Cód Chave Acesso NFe (D)"]]),
		})
	}
	return rows, nil
}

func buildLedger(maps []map[string]string) ([]model.LedgerRow, error) {
	if len(maps) == 0 {
		return nil, nil
	}
	cols, err := resolveColumns(maps[0], ledgerSpecs, "fileB")
	if err != nil {
		return nil, err
	}
	rows := make([]model.LedgerRow, 0, len(maps))
	for _, rec := range maps {
		rows = append(rows, model.LedgerRow{
			CNPJ:        strings.TrimSpace(rec[cols["cnpjh"]]),
			NoteNumber:  strings.TrimSpace(rec[cols["numnf"]]),
			Product:     strings.TrimSpace(rec[cols["produto"]]),
			Quantity:    toNumber(rec[cols["qtd"]]),
			QuantityB:   toNumber(rec[cols["qtdb"]]),
			CFOP:        toNumber(rec[cols["cfop"]]),
			Company:     strings.TrimSpace(rec[cols["razsocial"]]),
			Period:      strings.TrimSpace(rec[cols["mesano"]]),
			ICMSToRemit: toNumber(rec[cols["vlricmsrep"]]),
		})
	}
	return rows, nil
}

// toNumber degrades parse failures to the NaN marker instead of
// dropping the row.
func toNumber(s string) model.Number {
	if f, ok := utils.ParseFloatBR(s); ok {
		return model.Number(f)
	}
	return model.NaN()
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func toFloat(s string, def float64) float64 {
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

// splitList parses a comma-separated multi-select form value.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
