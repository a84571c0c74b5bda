package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// StorageFile keeps the games in a JSON file
	StorageFile = "file"

	// StorageRedis keeps the games under a Redis key
	StorageRedis = "redis"

	// OutputText renders human readable tables
	OutputText = "text"

	// OutputJSON renders JSON documents
	OutputJSON = "json"
)

var (
	// ErrUnknownStorage is returned for a storage other than file or redis
	ErrUnknownStorage = errors.New("unknown storage")

	// ErrUnknownOutput is returned for an output other than text or json
	ErrUnknownOutput = errors.New("unknown output format")

	// ErrUnknownTone is returned for a message tone that does not exist
	ErrUnknownTone = errors.New("unknown message tone")

	// ErrMissingDataFile is returned when file storage has no path
	ErrMissingDataFile = errors.New("data file is required for file storage")

	// ErrMissingRedisURL is returned when redis storage has no URL
	ErrMissingRedisURL = errors.New("redis url is required for redis storage")
)

// Config holds the settings of the flip7 binary
type Config struct {
	Storage     string
	DataFile    string
	RedisURL    string
	RedisPrefix string
	LogLevel    string
	Tone        string
	Output      string
	Verbose     bool
}

// LoadEnv loads variables from .env style files into the environment.
// Variables already set win, and missing files are skipped.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	return nil
}

// DefaultConfig returns a Config built from the environment
func DefaultConfig() *Config {
	return &Config{
		Storage:     getEnvOrDefault("FLIP7_STORAGE", StorageFile),
		DataFile:    getEnvOrDefault("FLIP7_DATA_FILE", defaultDataFile()),
		RedisURL:    getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0"),
		RedisPrefix: getEnvOrDefault("FLIP7_REDIS_PREFIX", "flip7"),
		LogLevel:    getEnvOrDefault("FLIP7_LOG_LEVEL", "warn"),
		Tone:        getEnvOrDefault("FLIP7_TONE", "funny"),
		Output:      OutputText,
	}
}

// Validate checks that the settings can be used
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageFile:
		if c.DataFile == "" {
			return ErrMissingDataFile
		}
	case StorageRedis:
		if c.RedisURL == "" {
			return ErrMissingRedisURL
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorage, c.Storage)
	}

	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutput, c.Output)
	}

	switch c.Tone {
	case "", "neutral", "funny", "encouraging":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTone, c.Tone)
	}

	return nil
}

// Level returns the log level to use. Verbose forces debug.
func (c *Config) Level() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func defaultDataFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".flip7", "games.json")
	}
	return filepath.Join(home, ".flip7", "games.json")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
