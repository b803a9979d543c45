package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/shaiso/kamermoties/internal/domain"
	"github.com/shaiso/kamermoties/internal/filter"
	"github.com/shaiso/kamermoties/internal/odata"
	"github.com/shaiso/kamermoties/internal/shaper"
)

// Сущности OData.
const (
	entityCase    = "Zaak"
	entityFaction = "Fractie"
)

// Параметры запросов к upstream.
const (
	motionFilter   = "Verwijderd eq false and Soort eq '" + domain.CaseKindMotion + "'"
	motionOrderBy  = "GestartOp desc"
	actorsExpand   = "ZaakActor($expand=Persoon,Fractie)"
	votesExpand    = "Besluit($expand=Stemming($expand=Fractie,Persoon))"
	filterExpand   = "ZaakActor($expand=Persoon,Fractie),Besluit($expand=Stemming($expand=Fractie))"
	factionFilter  = "Verwijderd eq false and DatumInactief eq null"
	factionOrderBy = "NaamNL"
)

// Пагинация.
const (
	DefaultPage  = 1
	DefaultLimit = 50

	// MaxLimit — максимальный $top upstream API.
	MaxLimit = 250

	// FilterTop — сколько последних моций просматривает фильтр. Одна страница.
	FilterTop = 100
)

// Fetcher выполняет запрос к OData API.
type Fetcher interface {
	Fetch(ctx context.Context, entity string, q odata.Query) (*odata.Response, error)
}

// Service — сценарии API.
type Service struct {
	fetcher Fetcher
	logger  *slog.Logger
}

// New создаёт новый Service.
func New(fetcher Fetcher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{fetcher: fetcher, logger: logger}
}

// MotionPage — страница моций.
type MotionPage struct {
	Motions []domain.Motion
	Page    int
	Limit   int
}

// ListMotions возвращает страницу моций, новые первыми, без голосов.
func (s *Service) ListMotions(ctx context.Context, page, limit int) (*MotionPage, error) {
	page, limit = NormalizePage(page, limit)

	resp, err := s.fetch(ctx, entityCase, odata.Query{
		Filter:  motionFilter,
		OrderBy: motionOrderBy,
		Top:     limit,
		Skip:    (page - 1) * limit,
		Expand:  actorsExpand,
	})
	if err != nil {
		return nil, err
	}

	records := resp.Records()
	motions := make([]domain.Motion, 0, len(records))
	for _, rec := range records {
		motions = append(motions, shaper.ShapeMotion(rec))
	}

	return &MotionPage{Motions: motions, Page: page, Limit: limit}, nil
}

// MotionVotes — голоса фракций по одной motie.
type MotionVotes struct {
	MotionID string
	Title    *string
	Votes    []domain.PartyVote
}

// MotionVotes возвращает голоса фракций по motie с указанным GUID.
//
// Невалидный GUID не может существовать в upstream и сразу даёт ErrNotFound.
func (s *Service) MotionVotes(ctx context.Context, id string) (*MotionVotes, error) {
	guid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid motion id %q", ErrNotFound, id)
	}

	resp, err := s.fetch(ctx, entityCase, odata.Query{
		Filter: fmt.Sprintf("Id eq guid'%s'", guid.String()),
		Expand: votesExpand,
	})
	if err != nil {
		return nil, err
	}

	records := resp.Records()
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: motion %s", ErrNotFound, id)
	}

	motion := records[0]
	return &MotionVotes{
		MotionID: id,
		Title:    motion.String("Titel"),
		Votes:    shaper.PartyVotes(motion).List(),
	}, nil
}

// ListFactions возвращает активные фракции по алфавиту.
func (s *Service) ListFactions(ctx context.Context) ([]domain.Faction, error) {
	resp, err := s.fetch(ctx, entityFaction, odata.Query{
		Filter:  factionFilter,
		OrderBy: factionOrderBy,
	})
	if err != nil {
		return nil, err
	}

	records := resp.Records()
	factions := make([]domain.Faction, 0, len(records))
	for _, rec := range records {
		factions = append(factions, shaper.ShapeFaction(rec))
	}
	return factions, nil
}

// FilterMotions возвращает моции из последних FilterTop, прошедшие filter.Matches.
//
// К каждой motie прикладывается полная карта голосов фракций.
func (s *Service) FilterMotions(ctx context.Context, req domain.FilterRequest) ([]domain.FilteredMotion, error) {
	resp, err := s.fetch(ctx, entityCase, odata.Query{
		Filter:  motionFilter,
		OrderBy: motionOrderBy,
		Top:     FilterTop,
		Expand:  filterExpand,
	})
	if err != nil {
		return nil, err
	}

	out := []domain.FilteredMotion{}
	for _, rec := range resp.Records() {
		votes := shaper.PartyVotes(rec)
		if !filter.Matches(votes, req.For, req.Against) {
			continue
		}
		out = append(out, domain.FilteredMotion{
			Motion: shaper.ShapeMotion(rec),
			Votes:  votes.ByParty,
		})
	}

	s.logger.DebugContext(ctx, "motions filtered",
		"voor", req.For,
		"tegen", req.Against,
		"matched", len(out),
	)
	return out, nil
}

// fetch вызывает upstream и приводит ошибку к ErrUpstreamUnavailable.
func (s *Service) fetch(ctx context.Context, entity string, q odata.Query) (*odata.Response, error) {
	resp, err := s.fetcher.Fetch(ctx, entity, q)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	return resp, nil
}

// NormalizePage приводит page и limit к допустимым значениям.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}
