package game

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/flip7/internal/models"
	"github.com/natefinch/atomic"
)

// FileConfig holds configuration for the file game repository
type FileConfig struct {
	// Path is the file holding the game collection
	Path string
}

// fileRepository implements the Repository interface on a local JSON file
type fileRepository struct {
	path string
}

// NewFile creates a new file-backed game repository.
// The file and its directory are created on the first save.
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Path == "" {
		return nil, errors.New("path cannot be empty")
	}

	return &fileRepository{
		path: cfg.Path,
	}, nil
}

// SaveGames replaces the file with the game collection.
// The write goes through a temporary file so readers never see a partial collection.
func (r *fileRepository) SaveGames(ctx context.Context, input *SaveGamesInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	gamesJSON, err := encodeGames(input.Games)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := atomic.WriteFile(r.path, bytes.NewReader(gamesJSON)); err != nil {
		return fmt.Errorf("failed to save games: %w", err)
	}

	return nil
}

// LoadGames reads the game collection from the file
func (r *fileRepository) LoadGames(ctx context.Context) (*LoadGamesOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gamesJSON, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &LoadGamesOutput{Games: []models.Game{}}, nil
		}
		return nil, fmt.Errorf("failed to read games: %w", err)
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
