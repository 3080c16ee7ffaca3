package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/repository"
	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
)

const sessionID = "local"

var errRedisDown = errors.New("redis down")

type mockSnapshotRepo struct {
	mock.Mock
}

func (that *mockSnapshotRepo) CreateOrUpdate(ctx context.Context, id string, state entity.GameState) error {
	args := that.Called(ctx, id, state)
	return args.Error(0)
}

func (that *mockSnapshotRepo) GetByID(ctx context.Context, id string) (entity.GameState, error) {
	args := that.Called(ctx, id)
	return args.Get(0).(entity.GameState), args.Error(1)
}

func (that *mockSnapshotRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestGameManager_ApplyMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Saves the state after an accepted move", func(t *testing.T) {
		// Given: a manager with a snapshot store
		repo := &mockSnapshotRepo{}
		manager := NewGameManager(newTestLogger(), tictactoe.NewEngine(), repo, sessionID)

		repo.On("CreateOrUpdate", mock.Anything, sessionID, mock.AnythingOfType("entity.GameState")).
			Return(nil).
			Once()

		// When: player one moves
		state, err := manager.ApplyMove(ctx, 0, 0)

		// Then: the move is accepted and the new state is saved
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerOneMark, state.Board[0][0])
		repo.AssertCalled(t, "CreateOrUpdate", mock.Anything, sessionID, state)
		repo.AssertExpectations(t)
	})

	t.Run("Does not save rejected moves", func(t *testing.T) {
		// Given: a manager with a snapshot store
		repo := &mockSnapshotRepo{}
		manager := NewGameManager(newTestLogger(), tictactoe.NewEngine(), repo, sessionID)

		// When: a move outside the board is applied
		_, err := manager.ApplyMove(ctx, 5, 0)

		// Then: the move is rejected and the store is never called
		require.ErrorIs(t, err, apperror.ErrOutOfBounds)
		repo.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Storage failure does not reject the move", func(t *testing.T) {
		// Given: a store that always fails
		repo := &mockSnapshotRepo{}
		manager := NewGameManager(newTestLogger(), tictactoe.NewEngine(), repo, sessionID)

		repo.On("CreateOrUpdate", mock.Anything, sessionID, mock.Anything).Return(errRedisDown)

		// When: player one moves
		state, err := manager.ApplyMove(ctx, 1, 1)

		// Then: the move is still accepted
		require.NoError(t, err)
		assert.Equal(t, 1, state.MoveCount)
		assert.Equal(t, state, manager.CurrentState())
	})

	t.Run("Works without a store", func(t *testing.T) {
		// Given: a manager without persistence
		manager := NewGameManager(newTestLogger(), tictactoe.NewEngine(), nil, sessionID)

		// When: moves and a reset are applied
		_, err := manager.ApplyMove(ctx, 0, 0)
		require.NoError(t, err)
		state := manager.Reset(ctx)

		// Then: the manager behaves like the bare engine
		assert.Equal(t, entity.NewGameState(), state)
		assert.False(t, manager.Restore(ctx))
	})
}

func TestGameManager_Reset(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes the saved game", func(t *testing.T) {
		// Given: a manager with one move played
		repo := &mockSnapshotRepo{}
		manager := NewGameManager(newTestLogger(), tictactoe.NewEngine(), repo, sessionID)

		repo.On("CreateOrUpdate", mock.Anything, sessionID, mock.Anything).Return(nil)
		repo.On("DeleteByID", mock.Anything, sessionID).Return(nil).Once()

		_, err := manager.ApplyMove(ctx, 2, 2)
		require.NoError(t, err)

		// When: the game is reset
		state := manager.Reset(ctx)

		// Then: the state is initial and the snapshot is deleted
		assert.Equal(t, entity.NewGameState(), state)
		repo.AssertExpectations(t)
	})

	t.Run("Delete failure still resets", func(t *testing.T) {
		// Given: a store that cannot delete
		repo := &mockSnapshotRepo{}
		manager := NewGameManager(newTestLogger(), tictactoe.NewEngine(), repo, sessionID)

		repo.On("DeleteByID", mock.Anything, sessionID).Return(errRedisDown)

		// When: the game is reset
		state := manager.Reset(ctx)

		// Then: the game is reset anyway
		assert.Equal(t, entity.NewGameState(), state)
	})
}

func TestGameManager_Restore(t *testing.T) {
	ctx := context.Background()

	t.Run("Resumes a saved game", func(t *testing.T) {
		// Given: a saved game where player two is to move
		source := tictactoe.NewEngine()
		saved, err := source.ApplyMove(1, 1)
		require.NoError(t, err)

		repo := &mockSnapshotRepo{}
		repo.On("GetByID", mock.Anything, sessionID).Return(saved, nil).Once()

		manager := NewGameManager(newTestLogger(), tictactoe.NewEngine(), repo, sessionID)

		// When: restoring
		resumed := manager.Restore(ctx)

		// Then: the saved state becomes current
		require.True(t, resumed)
		assert.Equal(t, saved, manager.CurrentState())
	})

	t.Run("Missing snapshot starts a new game", func(t *testing.T) {
		// Given: nothing saved
		repo := &mockSnapshotRepo{}
		repo.On("GetByID", mock.Anything, sessionID).Return(entity.GameState{}, repository.ErrSnapshotNotFound).Once()

		manager := NewGameManager(newTestLogger(), tictactoe.NewEngine(), repo, sessionID)

		// When: restoring
		resumed := manager.Restore(ctx)

		// Then: the game starts fresh and nothing is deleted
		assert.False(t, resumed)
		assert.Equal(t, entity.NewGameState(), manager.CurrentState())
		repo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})

	t.Run("Storage error starts a new game", func(t *testing.T) {
		// Given: a store that fails
		repo := &mockSnapshotRepo{}
		repo.On("GetByID", mock.Anything, sessionID).Return(entity.GameState{}, errRedisDown).Once()

		manager := NewGameManager(newTestLogger(), tictactoe.NewEngine(), repo, sessionID)

		// When: restoring
		resumed := manager.Restore(ctx)

		// Then: the game starts fresh
		assert.False(t, resumed)
		assert.Equal(t, entity.NewGameState(), manager.CurrentState())
	})

	t.Run("Invalid snapshot is discarded", func(t *testing.T) {
		// Given: a saved state where player two moved first
		invalid := entity.GameState{
			Board:         entity.Board{{entity.PlayerTwoMark}},
			CurrentPlayer: entity.PlayerOne,
			MoveCount:     1,
			Result:        entity.InProgressResult(),
		}

		repo := &mockSnapshotRepo{}
		repo.On("GetByID", mock.Anything, sessionID).Return(invalid, nil).Once()
		repo.On("DeleteByID", mock.Anything, sessionID).Return(nil).Once()

		manager := NewGameManager(newTestLogger(), tictactoe.NewEngine(), repo, sessionID)

		// When: restoring
		resumed := manager.Restore(ctx)

		// Then: the snapshot is deleted and the game starts fresh
		assert.False(t, resumed)
		assert.Equal(t, entity.NewGameState(), manager.CurrentState())
		repo.AssertExpectations(t)
	})
}
