package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shaiso/kamermoties/internal/service"
	"github.com/shaiso/kamermoties/internal/telemetry"
)

var (
	listMotionsErrors = errorMessages{
		Upstream:  "Kon geen data ophalen van de API",
		Unhandled: "Er is een fout opgetreden bij het ophalen van moties",
	}
	motionVotesErrors = errorMessages{
		Upstream:  "Kon geen stemmingen ophalen van de API",
		NotFound:  "Motie niet gevonden",
		Unhandled: "Er is een fout opgetreden bij het ophalen van stemmingen",
	}
	filterMotionsErrors = errorMessages{
		Upstream:  "Kon geen data ophalen",
		Unhandled: "Er is een fout opgetreden bij het filteren van moties",
	}
)

// ListMotions возвращает страницу моций без голосов.
// GET /moties?page=&limit=
func (h *Handler) ListMotions(w http.ResponseWriter, r *http.Request) {
	logger := telemetry.FromContext(r.Context())

	page := queryInt(r, "page", service.DefaultPage)
	limit := queryInt(r, "limit", service.DefaultLimit)

	result, err := h.service.ListMotions(r.Context(), page, limit)
	if HandleServiceError(w, logger, err, listMotionsErrors) {
		return
	}

	Success(w, MotionsResponse{
		Motions: result.Motions,
		Page:    result.Page,
		Limit:   result.Limit,
		Total:   len(result.Motions),
	})
}

// GetMotionVotes возвращает голоса фракций по motie.
// GET /moties/{id}/stemmingen
func (h *Handler) GetMotionVotes(w http.ResponseWriter, r *http.Request) {
	logger := telemetry.FromContext(r.Context())

	result, err := h.service.MotionVotes(r.Context(), r.PathValue("id"))
	if HandleServiceError(w, logger, err, motionVotesErrors) {
		return
	}

	Success(w, MotionVotesResponse{
		MotionID:    result.MotionID,
		MotionTitle: result.Title,
		Votes:       result.Votes,
	})
}

// FilterMotions отбирает моции по голосам фракций.
// POST /moties/filter
func (h *Handler) FilterMotions(w http.ResponseWriter, r *http.Request) {
	logger := telemetry.FromContext(r.Context())

	var req FilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "Ongeldige filteraanvraag")
		return
	}
	criteria := req.ToDomain()

	motions, err := h.service.FilterMotions(r.Context(), criteria)
	if HandleServiceError(w, logger, err, filterMotionsErrors) {
		return
	}

	Success(w, FilterResponse{
		Motions: motions,
		Filter:  criteria,
		Total:   len(motions),
	})
}

// queryInt читает целый query-параметр. Пустое или нечисловое значение даёт def.
func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
