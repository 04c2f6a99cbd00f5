package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStorage implements the Storage interface using Redis.
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
}

// Ensure RedisStorage implements Storage interface
var _ Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a new Redis storage instance from a
// redis:// URL.
func NewRedisStorage(redisURL string, logger *slog.Logger) (*RedisStorage, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	return &RedisStorage{
		client: redis.NewClient(opts),
		logger: logger,
	}, nil
}

func (r *RedisStorage) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStorage) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

func saveKey(id uuid.UUID) string {
	return "save:" + id.String()
}

func (r *RedisStorage) SaveGame(ctx context.Context, id uuid.UUID, save *SavedGame) error {
	if save == nil {
		return fmt.Errorf("save cannot be nil")
	}
	save.UpdatedAt = time.Now()

	data, err := json.Marshal(save)
	if err != nil {
		r.logger.Error("Failed to marshal save", "uuid", id, "error", err)
		return fmt.Errorf("failed to marshal save: %w", err)
	}

	if err := r.client.Set(ctx, saveKey(id), string(data), 0).Err(); err != nil {
		r.logger.Error("Failed to save game", "uuid", id, "error", err)
		return fmt.Errorf("failed to save game: %w", err)
	}
	return nil
}

// LoadGame retrieves a saved playthrough. A record that unmarshals but
// is missing its character, journal or inventory is treated as corrupt
// and discarded, since resuming from it would wedge the engine.
func (r *RedisStorage) LoadGame(ctx context.Context, id uuid.UUID) (*SavedGame, error) {
	cmd := r.client.Get(ctx, saveKey(id))
	if err := cmd.Err(); err != nil {
		if err == redis.Nil {
			r.logger.Warn("Save not found", "uuid", id)
			return nil, nil // Return nil for not found
		}
		r.logger.Error("Failed to load save", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to load save: %w", err)
	}

	data := cmd.Val()
	if data == "" {
		r.logger.Warn("Save not found", "uuid", id)
		return nil, nil
	}

	var save SavedGame
	if err := json.Unmarshal([]byte(data), &save); err != nil {
		r.logger.Error("Failed to unmarshal save", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal save: %w", err)
	}

	if save.Character == nil || save.Character.Journal == nil || save.Character.Inventory == nil {
		r.logger.Error("Discarding corrupt save", "uuid", id)
		if err := r.client.Del(ctx, saveKey(id)).Err(); err != nil {
			r.logger.Error("Failed to delete corrupt save", "uuid", id, "error", err)
		}
		return nil, fmt.Errorf("save %s is corrupt", id)
	}

	return &save, nil
}

func (r *RedisStorage) DeleteGame(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, saveKey(id)).Err(); err != nil {
		r.logger.Error("Failed to delete save", "uuid", id, "error", err)
		return fmt.Errorf("failed to delete save: %w", err)
	}
	return nil
}
