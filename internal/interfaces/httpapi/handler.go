package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/mailajoket/stats-api/internal/usecase"
)

// ReloadFunc drops the cached workbook and loads it again.
type ReloadFunc func(ctx context.Context) error

type Handler struct {
	matchService    *usecase.MatchService
	metricsService  *usecase.MetricsService
	playerService   *usecase.PlayerService
	rosterService   *usecase.RosterService
	standingService *usecase.StandingService
	catalogService  *usecase.CatalogService
	reload          ReloadFunc
	logger          *slog.Logger
	validator       *validator.Validate
}

func NewHandler(
	matchService *usecase.MatchService,
	metricsService *usecase.MetricsService,
	playerService *usecase.PlayerService,
	rosterService *usecase.RosterService,
	standingService *usecase.StandingService,
	catalogService *usecase.CatalogService,
	reload ReloadFunc,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		matchService:    matchService,
		metricsService:  metricsService,
		playerService:   playerService,
		rosterService:   rosterService,
		standingService: standingService,
		catalogService:  catalogService,
		reload:          reload,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
