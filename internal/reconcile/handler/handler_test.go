package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"icms-recon/internal/config"
	"icms-recon/internal/reconcile/model"
)

const notesCSV = `CNPJ - Remetente,Numero NFe (D),Descricao Produto,Unidade Comercializacao Produto,Quantidade Comercial,Ano/Mes Emissao,Cod Chave Acesso NFe (D)
111,1,Oleo Diesel B S500,LT,"5000,00",202507,KEY1
222,2,Gasolina Comum,LT,"3000,00",202507,KEY2
`

const ledgerCSV = `cnpjh,numnf,produto,qtd,qtdb,cfop,razsocial,mesano,vlricmsrep
111,1,DSL,5000,5000,"6.152,00",ACME,202507,"100,00"
333,3,GSV,4000,4000,"6.152,00",BETA,202507,"200,00"
444,4,DSL,500,500,"6.152,00",GAMA,202507,"5,00"
`

func postFiles(t *testing.T, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fa, err := mw.CreateFormFile("fileA", "notas.csv")
	require.NoError(t, err)
	_, err = fa.Write([]byte(notesCSV))
	require.NoError(t, err)

	fb, err := mw.CreateFormFile("fileB", "scanc.csv")
	require.NoError(t, err)
	_, err = fb.Write([]byte(ledgerCSV))
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/reconcile", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	cfg := config.Config{MaxUploadMB: 16, CurrentMonth: "202508", MinQty: 1000}
	Reconcile(cfg, zerolog.Nop())(rec, req)
	return rec
}

func TestReconcileEndpoint(t *testing.T) {
	rec := postFiles(t, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res model.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	// 111/1/diesel is declared in the notes; 444/4 is below threshold;
	// only 333/3 must surface
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "333", res.Rows[0].CNPJ)
	assert.Equal(t, "333_3_gasolina", res.Rows[0].Key)
	assert.Equal(t, 1, res.Summary.Rows)
	assert.Equal(t, "200", res.Summary.TotalICMS.String())
}

func TestReconcileEndpointFilters(t *testing.T) {
	rec := postFiles(t, map[string]string{"companies": "ACME"})
	require.Equal(t, http.StatusOK, rec.Code)

	var res model.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Empty(t, res.Rows) // the only discrepancy belongs to BETA
}

func TestReconcileEndpointMissingFile(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("min_qty", "1000"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/reconcile", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	cfg := config.Config{MaxUploadMB: 16}
	Reconcile(cfg, zerolog.Nop())(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "fileA")
}
