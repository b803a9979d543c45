package api

import "github.com/shaiso/kamermoties/internal/domain"

// --- Responses ---

// MotionsResponse — ответ GET /moties.
type MotionsResponse struct {
	Motions []domain.Motion `json:"moties"`
	Page    int             `json:"page"`
	Limit   int             `json:"limit"`
	Total   int             `json:"total"`
}

// MotionVotesResponse — ответ GET /moties/{id}/stemmingen.
type MotionVotesResponse struct {
	MotionID    string             `json:"motie_id"`
	MotionTitle *string            `json:"motie_titel"`
	Votes       []domain.PartyVote `json:"stemmingen"`
}

// FactionsResponse — ответ GET /fracties.
type FactionsResponse struct {
	Factions []domain.Faction `json:"fracties"`
}

// FilterResponse — ответ POST /moties/filter.
type FilterResponse struct {
	Motions []domain.FilteredMotion `json:"moties"`
	Filter  domain.FilterRequest    `json:"filter"`
	Total   int                     `json:"total"`
}

// --- Requests ---

// FilterRequest — тело POST /moties/filter.
type FilterRequest struct {
	For     []string `json:"voor_partijen"`
	Against []string `json:"tegen_partijen"`
}

// ToDomain преобразует запрос в domain.FilterRequest. Отсутствующие списки — пустые.
func (r FilterRequest) ToDomain() domain.FilterRequest {
	req := domain.FilterRequest{For: r.For, Against: r.Against}
	if req.For == nil {
		req.For = []string{}
	}
	if req.Against == nil {
		req.Against = []string{}
	}
	return req
}
