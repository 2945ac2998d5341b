package main

import (
	"net/http"

	"github.com/farxc/contract_consumption/internal/ledger"
	"github.com/farxc/contract_consumption/internal/report"
	"github.com/farxc/contract_consumption/internal/response"
	"github.com/go-chi/chi/v5"
)

type GetConsumptionResponse = response.APIResponse[report.ConsumptionView]

// @Summary		Get contract consumption
// @Description	Contracted, disbursed and pending amounts for one contract.
// @Tags			Contracts
// @Produce		json
// @Param			contractID	path		string					true	"Contract number"
// @Success		200			{object}	GetConsumptionResponse	"Consumption figures"
// @Failure		500			{object}	response.ErrorResponse	"Failed to load datasets"
// @Router			/contracts/{contractID}/consumption [get]
func (app *application) handleGetContractConsumption(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	contractID := chi.URLParam(r, "contractID")

	snap, err := app.cache.Get(ctx)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to load datasets: "+err.Error())
		return
	}

	summary := ledger.Consumption(snap, contractID)

	resp := &GetConsumptionResponse{
		Success: true,
		Data:    report.FormatConsumption(contractID, summary),
		Message: "Successfully computed contract consumption",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
