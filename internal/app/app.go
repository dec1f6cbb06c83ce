package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/club-tracker/internal/config"
	"github.com/riskibarqy/club-tracker/internal/domain/valuation"
	"github.com/riskibarqy/club-tracker/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/club-tracker/internal/infrastructure/storage"
	"github.com/riskibarqy/club-tracker/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/club-tracker/internal/platform/id"
	"github.com/riskibarqy/club-tracker/internal/platform/logging"
	"github.com/riskibarqy/club-tracker/internal/platform/sessionstore"
	"github.com/riskibarqy/club-tracker/internal/usecase"
)

// NewHTTPServer wires the full application: archive restore (or seed),
// repositories, services and the HTTP router.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	archive := storage.NewArchive(cfg.DataFile)

	loadCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	snap, restored, err := archive.Load(loadCtx)
	if err != nil {
		return nil, fmt.Errorf("load archive: %w", err)
	}

	if !restored && cfg.SeedEnabled {
		snap.Players = memory.SeedPlayers()
		logger.Info("no archive found, seeding fallback roster", "players", len(snap.Players))
	} else if restored {
		logger.Info("archive restored",
			"path", cfg.DataFile,
			"players", len(snap.Players),
			"matches", len(snap.Matches),
			"news", len(snap.News),
		)
	}

	playerRepo := memory.NewPlayerRepository(snap.Players)
	matchRepo := memory.NewMatchRepository(snap.Matches)
	newsRepo := memory.NewNewsRepository(snap.News)
	writer := usecase.NewStateWriter(playerRepo, matchRepo, newsRepo, archive)

	generator := idgen.NewRandomGenerator()
	sessions := sessionstore.New(cfg.SessionTTL)

	authSvc := usecase.NewAuthService(cfg.AdminPIN, sessions, generator, logger)
	playerSvc := usecase.NewPlayerService(playerRepo, valuation.DefaultLadder(), writer, generator, logger)
	matchSvc := usecase.NewMatchService(matchRepo, playerRepo, writer, generator, logger)
	newsSvc := usecase.NewNewsService(newsRepo, writer, generator, logger)
	auditSvc := usecase.NewAuditService(matchRepo, playerRepo, cfg.AuditMaxWorkers, logger)

	handler := httpapi.NewHandler(authSvc, playerSvc, matchSvc, newsSvc, auditSvc, logger)
	router := httpapi.NewRouter(handler, authSvc, logger, cfg.CORSAllowedOrigins)

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
