package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-board/internal/config"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/host"
	"github.com/rocketscienceinc/tictactoe-board/internal/repository"
	"github.com/rocketscienceinc/tictactoe-board/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-board/internal/surface"
	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-board/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	theme, err := conf.Theme.RenderTheme()
	if err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}

	gameManager, closeStorage, err := newGameManager(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	if gameManager.Restore(ctx) {
		log.Info("Resumed saved game", "session", conf.SessionID)
	}

	players := entity.NewPlayers(conf.Players.One, conf.Players.Two)
	boardSurface := surface.New(logger, gameManager, players, theme)
	boardSurface.OnRender(func(plan surface.RenderPlan) {
		log.Debug("board redrawn", "status", plan.Status, "terminal", plan.Terminal)
	})

	log.Info("Opening board window", "title", conf.Window.Title, "players", players)

	window := host.New(ctx, logger, boardSurface)
	if err = window.Run(conf.Window.Title, conf.Window.Width, conf.Window.Height); err != nil {
		return fmt.Errorf("board window error: %w", err)
	}

	log.Info("Board window closed, shutting down")

	return nil
}

// newGameManager wires the engine to Redis when it is configured. The returned
// func releases the storage connection.
func newGameManager(ctx context.Context, logger *slog.Logger, conf *config.Config) (*usecase.GameManager, func(), error) {
	log := logger.With("component", "app")
	engine := tictactoe.NewEngine()

	redisAddr := conf.Redis.GetRedisAddr()
	if redisAddr == "" {
		log.Info("Redis is not configured, games will not be resumed")
		return usecase.NewGameManager(logger, engine, nil, conf.SessionID), func() {}, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	snapshotRepo := repository.NewSnapshotRepository(redisStorage)

	return usecase.NewGameManager(logger, engine, snapshotRepo, conf.SessionID), closeStorage, nil
}
