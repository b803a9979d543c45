package api

import (
	"context"
	"log/slog"

	"github.com/shaiso/kamermoties/internal/domain"
	"github.com/shaiso/kamermoties/internal/service"
)

// MotionService — сценарии, которые обслуживает API.
type MotionService interface {
	ListMotions(ctx context.Context, page, limit int) (*service.MotionPage, error)
	MotionVotes(ctx context.Context, id string) (*service.MotionVotes, error)
	ListFactions(ctx context.Context) ([]domain.Faction, error)
	FilterMotions(ctx context.Context, req domain.FilterRequest) ([]domain.FilteredMotion, error)
}

// Handler — главный обработчик API с зависимостями.
type Handler struct {
	service MotionService
	logger  *slog.Logger
}

// Config — конфигурация для создания Handler.
type Config struct {
	Service MotionService
	Logger  *slog.Logger
}

// NewHandler создаёт новый Handler.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		service: cfg.Service,
		logger:  logger,
	}
}
