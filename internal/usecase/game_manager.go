package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/repository"
)

type gameEngine interface {
	ApplyMove(row, col int) (entity.GameState, error)
	Reset() entity.GameState
	CurrentState() entity.GameState
	Load(state entity.GameState) error
}

type snapshotRepo interface {
	CreateOrUpdate(ctx context.Context, id string, state entity.GameState) error
	GetByID(ctx context.Context, id string) (entity.GameState, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager runs the local game and keeps its latest state in the snapshot
// store so an interrupted game can be resumed. Storage problems are logged and
// never change the outcome of a move.
type GameManager struct {
	logger    *slog.Logger
	engine    gameEngine
	snapshots snapshotRepo
	sessionID string
}

// NewGameManager - snapshots may be nil, in which case nothing is stored.
func NewGameManager(logger *slog.Logger, engine gameEngine, snapshots snapshotRepo, sessionID string) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		engine:    engine,
		snapshots: snapshots,
		sessionID: sessionID,
	}
}

func (that *GameManager) ApplyMove(ctx context.Context, row, col int) (entity.GameState, error) {
	log := that.logger.With("method", "ApplyMove")

	state, err := that.engine.ApplyMove(row, col)
	if err != nil {
		return state, err
	}

	if state.IsTerminal() {
		log.Info("game decided", "result", state.Result.Kind, "winner", state.Result.Winner, "line", state.Result.Line.String())
	}

	that.saveSnapshot(ctx, state)

	return state, nil
}

func (that *GameManager) Reset(ctx context.Context) entity.GameState {
	log := that.logger.With("method", "Reset")

	state := that.engine.Reset()
	that.deleteSnapshot(ctx)

	log.Info("game reset")

	return state
}

func (that *GameManager) CurrentState() entity.GameState {
	return that.engine.CurrentState()
}

// Restore loads the saved game, if any. It reports whether a game was resumed.
func (that *GameManager) Restore(ctx context.Context) bool {
	log := that.logger.With("method", "Restore")

	if that.snapshots == nil {
		return false
	}

	state, err := that.snapshots.GetByID(ctx, that.sessionID)
	if errors.Is(err, repository.ErrSnapshotNotFound) {
		log.Info("no saved game found", "session", that.sessionID)
		return false
	}

	if err != nil {
		log.Error("failed to get saved game", "session", that.sessionID, "error", err)
		return false
	}

	if err = that.engine.Load(state); err != nil {
		log.Error("saved game is invalid, discarding", "session", that.sessionID, "error", err)
		that.deleteSnapshot(ctx)

		return false
	}

	log.Info("saved game resumed", "session", that.sessionID, "moves", state.MoveCount)

	return true
}

func (that *GameManager) saveSnapshot(ctx context.Context, state entity.GameState) {
	if that.snapshots == nil {
		return
	}

	if err := that.snapshots.CreateOrUpdate(ctx, that.sessionID, state); err != nil {
		that.logger.Error("failed to save game", "session", that.sessionID, "error", err)
	}
}

func (that *GameManager) deleteSnapshot(ctx context.Context) {
	if that.snapshots == nil {
		return
	}

	if err := that.snapshots.DeleteByID(ctx, that.sessionID); err != nil {
		that.logger.Error("failed to delete saved game", "session", that.sessionID, "error", err)
	}
}
