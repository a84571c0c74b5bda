package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/flip7/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// DefaultKeyPrefix namespaces the keys written by the Redis repository
	DefaultKeyPrefix = "flip7"

	gamesKeySuffix = "games"
)

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// KeyPrefix namespaces the collection key, DefaultKeyPrefix when empty
	KeyPrefix string
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	key    string
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	return &redisRepository{
		client: cfg.RedisClient,
		key:    gamesKey(prefix),
	}, nil
}

// gamesKey returns the Redis key holding the game collection
func gamesKey(prefix string) string {
	return fmt.Sprintf("%s:%s", prefix, gamesKeySuffix)
}

// SaveGames persists the game collection to Redis
func (r *redisRepository) SaveGames(ctx context.Context, input *SaveGamesInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	gamesJSON, err := encodeGames(input.Games)
	if err != nil {
		return err
	}

	// No expiration, the history is kept until deleted
	if err := r.client.Set(ctx, r.key, gamesJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save games: %w", err)
	}

	return nil
}

// LoadGames retrieves the game collection from Redis
func (r *redisRepository) LoadGames(ctx context.Context) (*LoadGamesOutput, error) {
	gamesJSON, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &LoadGamesOutput{Games: []models.Game{}}, nil
		}
		return nil, fmt.Errorf("failed to get games: %w", err)
	}

	games, err := decodeGames(gamesJSON)
	if err != nil {
		return nil, err
	}

	return &LoadGamesOutput{
		Games: games,
		Found: true,
	}, nil
}
