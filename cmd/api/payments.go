package main

import (
	"net/http"

	"github.com/farxc/contract_consumption/internal/dataset"
	"github.com/farxc/contract_consumption/internal/ledger"
	"github.com/farxc/contract_consumption/internal/report"
	"github.com/farxc/contract_consumption/internal/response"
)

type SearchPaymentsResult struct {
	View        report.View            `json:"view"`
	Consumption report.ConsumptionView `json:"consumption"`
}

type FilterOptions struct {
	Beneficiaries []string `json:"beneficiaries"`
	Contracts     []string `json:"contracts"`
}

type SearchPaymentsResponse = response.APIResponse[SearchPaymentsResult]
type GetFilterOptionsResponse = response.APIResponse[FilterOptions]

func filterSelectionFromQuery(r *http.Request) ledger.FilterSelection {
	q := r.URL.Query()
	return ledger.FilterSelection{
		Beneficiary:   q.Get("beneficiary"),
		CLC:           q.Get("clc"),
		PaymentDate:   q.Get("payment_date"),
		Amount:        q.Get("amount"),
		Contract:      q.Get("contract"),
		RequestLetter: q.Get("request_letter"),
		Invoice:       q.Get("invoice"),
	}
}

// @Summary		Search payments
// @Description	Filter payment records by substring predicates and compute the consumption of the selected contract.
// @Tags			Payments
// @Produce		json
// @Param			beneficiary		query		string	false	"Beneficiary substring filter"
// @Param			clc				query		string	false	"Authorization code (CLC) substring filter"
// @Param			payment_date	query		string	false	"Payment date substring filter"
// @Param			amount			query		string	false	"Amount substring filter"
// @Param			contract		query		string	false	"Contract number filter and selection"
// @Param			request_letter	query		string	false	"Request letter substring filter"
// @Param			invoice			query		string	false	"Invoice substring filter"
// @Param			totals			query		bool	false	"Append a totals row to the view"
// @Success		200				{object}	SearchPaymentsResponse	"Filtered view with consumption panel"
// @Failure		500				{object}	response.ErrorResponse	"Failed to load datasets"
// @Router			/payments [get]
func (app *application) handleSearchPayments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sel := filterSelectionFromQuery(r)

	snap, err := app.cache.Get(ctx)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to load datasets: "+err.Error())
		return
	}

	filtered := ledger.Filter(snap.Payments, sel)
	contractID := ledger.SelectContract(filtered, sel.Contract)
	summary := ledger.Consumption(snap, contractID)

	view := report.BuildView(filtered, report.ViewOptions{
		IncludeTotals: r.URL.Query().Get("totals") == "true",
		Receipts:      app.receipts,
	})

	resp := &SearchPaymentsResponse{
		Success: true,
		Data: SearchPaymentsResult{
			View:        view,
			Consumption: report.FormatConsumption(contractID, summary),
		},
		Message: "Successfully filtered payments",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

// @Summary		Get filter options
// @Description	Distinct beneficiary and contract values for the dashboard dropdowns.
// @Tags			Payments
// @Produce		json
// @Success		200	{object}	GetFilterOptionsResponse	"Dropdown values"
// @Failure		500	{object}	response.ErrorResponse		"Failed to load datasets"
// @Router			/payments/filters [get]
func (app *application) handleGetFilterOptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snap, err := app.cache.Get(ctx)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to load datasets: "+err.Error())
		return
	}

	resp := &GetFilterOptionsResponse{
		Success: true,
		Data: FilterOptions{
			Beneficiaries: ledger.DistinctValues(snap.Payments, dataset.ColBeneficiary),
			Contracts:     ledger.DistinctValues(snap.Payments, dataset.ColContract),
		},
		Message: "Successfully retrieved filter options",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
