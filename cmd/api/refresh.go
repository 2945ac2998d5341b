package main

import (
	"net/http"

	"github.com/farxc/contract_consumption/internal/response"
)

type RefreshResponse = response.APIResponse[struct{}]

// @Summary		Refresh datasets
// @Description	Invalidate the memoized snapshot; the next read reloads from the configured source.
// @Tags			Datasets
// @Produce		json
// @Success		202	{object}	RefreshResponse	"Snapshot invalidated"
// @Router			/refresh [post]
func (app *application) handleRefreshDatasets(w http.ResponseWriter, r *http.Request) {
	app.cache.Invalidate()

	resp := &RefreshResponse{
		Success: true,
		Message: "Datasets will be reloaded on the next request",
	}

	if err := writeJSON(w, http.StatusAccepted, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
