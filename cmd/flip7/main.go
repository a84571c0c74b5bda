package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/flip7/internal/common/clock"
	"github.com/KirkDiggler/flip7/internal/common/uuid"
	"github.com/KirkDiggler/flip7/internal/config"
	"github.com/KirkDiggler/flip7/internal/handlers/cli"
	"github.com/KirkDiggler/flip7/internal/repositories/game"
	gameService "github.com/KirkDiggler/flip7/internal/services/game"
	"github.com/KirkDiggler/flip7/internal/services/messaging"
	"github.com/redis/go-redis/v9"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string) int {
	// Load .env before reading the environment
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create messaging service: %v\n", err)
		return 1
	}

	b := &backend{}
	defer b.close()

	handler, err := cli.New(&cli.Config{
		Settings:         config.DefaultConfig(),
		OpenService:      b.open,
		MessagingService: messagingSvc,
		UUIDGenerator:    uuid.New(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create command handler: %v\n", err)
		return 1
	}

	if err := handler.Execute(ctx, args); err != nil {
		return 1
	}
	return 0
}

// backend owns the storage connections opened for a command
type backend struct {
	redisClient *redis.Client
}

// open builds the game service on the configured storage
func (b *backend) open(ctx context.Context, settings *config.Config, logger *slog.Logger) (gameService.Service, error) {
	repo, err := b.repository(settings)
	if err != nil {
		return nil, err
	}

	logger.Debug("storage ready", slog.String("storage", settings.Storage))

	return gameService.New(&gameService.Config{
		GameRepo:      repo,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
}

func (b *backend) repository(settings *config.Config) (game.Repository, error) {
	switch settings.Storage {
	case config.StorageRedis:
		opts, err := redis.ParseURL(settings.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}

		b.redisClient = redis.NewClient(opts)

		return game.NewRedis(&game.Config{
			RedisClient: b.redisClient,
			KeyPrefix:   settings.RedisPrefix,
		})
	default:
		return game.NewFile(&game.FileConfig{
			Path: settings.DataFile,
		})
	}
}

func (b *backend) close() {
	if b.redisClient != nil {
		_ = b.redisClient.Close()
	}
}
