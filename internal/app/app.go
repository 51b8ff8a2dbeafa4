package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mailajoket/stats-api/internal/config"
	"github.com/mailajoket/stats-api/internal/interfaces/httpapi"
	"github.com/mailajoket/stats-api/internal/platform/logging"
	"github.com/mailajoket/stats-api/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, error) {
	appLogger := logging.NewJSON(cfg.LogLevel).With("component", "workbook")
	provider := newWorkbookProvider(cfg.WorkbookPath, appLogger)

	// Parse the workbook before accepting traffic so a broken file
	// fails at startup instead of on the first request.
	if _, err := provider.Store(context.Background()); err != nil {
		return nil, fmt.Errorf("load workbook %s: %w", cfg.WorkbookPath, err)
	}

	matchSvc := usecase.NewMatchService(provider, cfg.SelectedTeamName)
	metricsSvc := usecase.NewMetricsService(provider, cfg.SelectedTeamName, cfg.FormWindow)
	playerSvc := usecase.NewPlayerService(provider)
	rosterSvc := usecase.NewRosterService(provider, cfg.SelectedTeamName)
	standingSvc := usecase.NewStandingService(provider, cfg.SelectedTeamName)
	catalogSvc := usecase.NewCatalogService(provider, cfg.SelectedTeamName)

	handler := httpapi.NewHandler(
		matchSvc,
		metricsSvc,
		playerSvc,
		rosterSvc,
		standingSvc,
		catalogSvc,
		provider.Reload,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalReloadToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
