package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"icms-recon/internal/config"
	"icms-recon/internal/fileio"
	"icms-recon/internal/reconcile/model"
	recSvc "icms-recon/internal/reconcile/service"
)

// Reconcile handles POST /reconcile: fileA is the interstate
// fuel-notes export, fileB the SCANC ledger extract. Optional form
// values current_month, min_qty, companies and months override the
// configured defaults per run.
func Reconcile(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		log := logger
		if rid := r.Header.Get("X-Request-ID"); rid != "" {
			log = logger.With().Str("req_id", rid).Logger()
		}

		defer r.Body.Close()
		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			httpError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
			return
		}

		fileA, headerA, err := r.FormFile("fileA")
		if err != nil {
			httpError(w, http.StatusBadRequest, "missing fileA: "+err.Error())
			return
		}
		defer fileA.Close()

		fileB, headerB, err := r.FormFile("fileB")
		if err != nil {
			httpError(w, http.StatusBadRequest, "missing fileB: "+err.Error())
			return
		}
		defer fileB.Close()

		mapsA, err := fileio.ReadAnyMaps(fileA, headerA.Filename, atoi(r.FormValue("a_header_row"), 1))
		if err != nil {
			httpError(w, http.StatusBadRequest, "failed to read fileA: "+err.Error())
			return
		}
		mapsB, err := fileio.ReadAnyMaps(fileB, headerB.Filename, atoi(r.FormValue("b_header_row"), 1))
		if err != nil {
			httpError(w, http.StatusBadRequest, "failed to read fileB: "+err.Error())
			return
		}

		notes, err := buildNotes(mapsA)
		if err != nil {
			httpError(w, http.StatusBadRequest, err.Error())
			return
		}
		ledger, err := buildLedger(mapsB)
		if err != nil {
			httpError(w, http.StatusBadRequest, err.Error())
			return
		}

		params := model.Params{
			CurrentMonth: formOr(r.FormValue("current_month"), cfg.CurrentMonth),
			MinQty:       toFloat(r.FormValue("min_qty"), cfg.MinQty),
			Companies:    splitList(r.FormValue("companies")),
			Months:       splitList(r.FormValue("months")),
		}
		// "anotodo" selects every period
		for _, m := range params.Months {
			if m == "anotodo" {
				params.Months = nil
				break
			}
		}

		preparedA := recSvc.PrepareNotes(notes, params)
		preparedB := recSvc.PrepareLedger(ledger, params)
		rows := recSvc.Reconcile(preparedA, preparedB, params)
		rows = recSvc.Filter(rows, params.Companies, params.Months)

		res := model.Result{
			Rows:    rows,
			Summary: recSvc.Summarize(rows),
			Params:  params,
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			log.Error().Err(err).Msg("write json")
			return
		}

		log.Info().
			Int("notes_in", len(notes)).
			Int("notes_prepared", len(preparedA)).
			Int("ledger_in", len(ledger)).
			Int("ledger_prepared", len(preparedB)).
			Int("discrepancies", len(rows)).
			Str("current_month", params.CurrentMonth).
			Float64("min_qty", params.MinQty).
			Dur("elapsed", time.Since(start)).
			Msg("reconcile done")
	}
}

func formOr(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func httpError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
