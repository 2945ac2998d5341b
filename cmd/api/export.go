package main

import (
	"net/http"
	"strconv"

	"github.com/farxc/contract_consumption/internal/ledger"
	"github.com/farxc/contract_consumption/internal/report"
)

const exportFilename = "resultados_pagos_filtrados.xlsx"

// @Summary		Export filtered payments
// @Description	Serialize the currently displayed view to a downloadable Excel workbook.
// @Tags			Payments
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param			totals	query	bool	false	"Append a totals row to the export"
// @Success		200		{file}	binary	"Workbook with one Resultados sheet"
// @Failure		500		{object}	response.ErrorResponse	"Failed to build the export"
// @Router			/payments/export [get]
func (app *application) handleExportPayments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sel := filterSelectionFromQuery(r)

	snap, err := app.cache.Get(ctx)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to load datasets: "+err.Error())
		return
	}

	filtered := ledger.Filter(snap.Payments, sel)
	view := report.BuildView(filtered, report.ViewOptions{
		IncludeTotals: r.URL.Query().Get("totals") == "true",
		Receipts:      app.receipts,
	})

	data, err := report.ExportXLSX(view)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to build export: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", report.ExportMIMEType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		app.logger.Error("Export", "Failed to stream workbook: error=%v", err)
	}
}
