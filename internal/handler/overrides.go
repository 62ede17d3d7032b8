package handler

import (
	"net/http"

	"github.com/osse101/TemplateOverrides_Go/internal/override"
)

// ResultsReporter exposes the results of the startup override passes.
type ResultsReporter interface {
	Results() []override.Result
}

// OverridesResponse summarizes every pass of the run.
type OverridesResponse struct {
	Passes  []override.Result `json:"passes"`
	Applied int               `json:"applied"`
	Missed  int               `json:"missed"`
}

// HandleGetOverrides returns the pass results recorded at startup.
func HandleGetOverrides(report ResultsReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := OverridesResponse{Passes: report.Results()}
		if resp.Passes == nil {
			resp.Passes = []override.Result{}
		}
		for _, p := range resp.Passes {
			resp.Applied += p.Applied
			resp.Missed += p.Missed
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: resp})
	}
}
