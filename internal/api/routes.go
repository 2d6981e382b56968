package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/acoustiq/nccriteria/internal/api/handlers"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API) {
	classifyHandler := handlers.NewClassifyHandler()

	huma.Register(api, huma.Operation{
		OperationID: "classifySpectrum",
		Method:      http.MethodPost,
		Path:        "/api/classifications",
		Summary:     "Classify a spectrum",
		Description: "Classifies a measured octave-band spectrum against the Beranek NC curves",
		Tags:        []string{"Classification"},
	}, classifyHandler.Classify)

	huma.Register(api, huma.Operation{
		OperationID: "getReferenceTable",
		Method:      http.MethodGet,
		Path:        "/api/table",
		Summary:     "Get the reference table",
		Description: "Returns the Beranek NC reference table: band frequencies and per-curve thresholds",
		Tags:        []string{"Classification"},
	}, classifyHandler.GetTable)
}
