package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormHeaderKey(t *testing.T) {
	assert.Equal(t, "descricao produto", normHeaderKey("Descrição Produto"))
	assert.Equal(t, "numero nfe d", normHeaderKey("Número NFe (D)"))
	assert.Equal(t, "ano mes emissao", normHeaderKey(" Ano/Mês Emissão "))
}

func TestResolveKeyVariants(t *testing.T) {
	rec := map[string]string{
		"Descrição Produto": "x",
		"NUMERO NFE (D)":    "y",
		"qtd":               "z",
	}
	assert.Equal(t, "Descrição Produto", resolveKey(rec, "Descrição Produto"))
	// accent-free spelling resolves to the accented header
	assert.Equal(t, "Descrição Produto", resolveKey(rec, "descricao produto"))
	assert.Equal(t, "NUMERO NFE (D)", resolveKey(rec, "Número NFe (D)|numero nfe"))
	assert.Equal(t, "qtd", resolveKey(rec, "qtd"))
	assert.Empty(t, resolveKey(rec, ""))
}

func TestResolveKeyShortCodesNeverMatchBySubstring(t *testing.T) {
	// "qtd" absent must not fall back to "qtdb" (or the reverse):
	// short codes resolve exactly or not at all
	assert.Empty(t, resolveKey(map[string]string{"qtdb": "x"}, "qtd"))
	assert.Empty(t, resolveKey(map[string]string{"qtd": "x"}, "qtdb"))
	assert.Empty(t, resolveKey(map[string]string{"cfops": "x"}, "cfop"))
}

func TestBuildLedgerMissingQtdColumn(t *testing.T) {
	maps := []map[string]string{
		{
			"cnpjh":   "123",
			"numnf":   "7",
			"produto": "DSL",
			"qtdb":    "5000", // must not stand in for qtd
			"mesano":  "202506",
		},
	}
	_, err := buildLedger(maps)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"qtd"`)
	assert.Contains(t, err.Error(), "fileB")
}

func TestBuildNotes(t *testing.T) {
	maps := []map[string]string{
		{
			"CNPJ - Remetente":     "123",
			"Numero NFe (D)":       "42",
			"Descricao Produto":    "Gasolina Comum",
			"Quantidade Comercial": "1.500,5",
			"Ano/Mes Emissao":      "202507",
		},
	}
	rows, err := buildNotes(maps)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "123", rows[0].CNPJ)
	assert.Equal(t, "42", rows[0].NoteNumber)
	assert.InDelta(t, 1500.5, float64(rows[0].Quantity), 1e-9)
	assert.Equal(t, "202507", rows[0].Period)
}

func TestBuildNotesMissingColumn(t *testing.T) {
	maps := []map[string]string{
		{
			"CNPJ - Remetente": "123",
			"Numero NFe (D)":   "42",
			// no description, no quantity, no period
		},
	}
	_, err := buildNotes(maps)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Descrição Produto")
	assert.Contains(t, err.Error(), "fileA")
}

func TestBuildLedgerDegradesBadNumbers(t *testing.T) {
	maps := []map[string]string{
		{
			"cnpjh":      "123",
			"numnf":      "7",
			"produto":    "DSL",
			"qtd":        "not-a-number",
			"mesano":     "202506",
			"cfop":       "6.152,00",
			"vlricmsrep": "10,50",
		},
	}
	rows, err := buildLedger(maps)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Quantity.IsNaN())
	assert.InDelta(t, 6152, float64(rows[0].CFOP), 1e-9)
	assert.InDelta(t, 10.5, float64(rows[0].ICMSToRemit), 1e-9)
}
