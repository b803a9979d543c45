package api

import (
	"net/http"
)

// RoutePrefixes — маршруты доступны в корне и под /api (base path фронтенда).
var RoutePrefixes = []string{"", "/api"}

// RegisterRoutes регистрирует все маршруты API.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Middleware chain
	chain := Chain(
		Recovery(h.logger),
		Logging(h.logger),
	)

	for _, prefix := range RoutePrefixes {
		// Moties
		mux.Handle("GET "+prefix+"/moties", chain(http.HandlerFunc(h.ListMotions)))
		mux.Handle("GET "+prefix+"/moties/{id}/stemmingen", chain(http.HandlerFunc(h.GetMotionVotes)))
		mux.Handle("POST "+prefix+"/moties/filter", chain(http.HandlerFunc(h.FilterMotions)))

		// Fracties
		mux.Handle("GET "+prefix+"/fracties", chain(http.HandlerFunc(h.ListFactions)))
	}
}
