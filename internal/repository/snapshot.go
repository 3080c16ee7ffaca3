package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

const snapshotKeyPrefix = "board:"

// SnapshotRepository keeps the latest state of a game, one key per session.
type SnapshotRepository interface {
	CreateOrUpdate(ctx context.Context, id string, state entity.GameState) error
	GetByID(ctx context.Context, id string) (entity.GameState, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbSnapshot struct {
	client *redis.Client
}

func NewSnapshotRepository(client *redis.Client) SnapshotRepository {
	return &dbSnapshot{
		client: client,
	}
}

func (that *dbSnapshot) CreateOrUpdate(ctx context.Context, id string, state entity.GameState) error {
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("could not marshal snapshot: %w", err)
	}

	if err = that.client.Set(ctx, snapshotKeyPrefix+id, stateJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set snapshot: %w", err)
	}

	return nil
}

func (that *dbSnapshot) GetByID(ctx context.Context, id string) (entity.GameState, error) {
	response, err := that.client.Get(ctx, snapshotKeyPrefix+id).Result()

	if errors.Is(err, redis.Nil) {
		return entity.GameState{}, ErrSnapshotNotFound
	}

	if err != nil {
		return entity.GameState{}, fmt.Errorf("failed to get snapshot by id: %w", err)
	}

	var state entity.GameState
	if err = json.Unmarshal([]byte(response), &state); err != nil {
		return entity.GameState{}, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return state, nil
}

// DeleteByID - deleting a missing snapshot is not an error.
func (that *dbSnapshot) DeleteByID(ctx context.Context, id string) error {
	if err := that.client.Del(ctx, snapshotKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete snapshot by id: %w", err)
	}

	return nil
}
