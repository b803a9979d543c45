package api

import (
	"net/http"

	"github.com/shaiso/kamermoties/internal/telemetry"
)

var listFactionsErrors = errorMessages{
	Upstream:  "Kon geen fracties ophalen",
	Unhandled: "Er is een fout opgetreden bij het ophalen van fracties",
}

// ListFactions возвращает активные фракции.
// GET /fracties
func (h *Handler) ListFactions(w http.ResponseWriter, r *http.Request) {
	logger := telemetry.FromContext(r.Context())

	factions, err := h.service.ListFactions(r.Context())
	if HandleServiceError(w, logger, err, listFactionsErrors) {
		return
	}

	Success(w, FactionsResponse{Factions: factions})
}
