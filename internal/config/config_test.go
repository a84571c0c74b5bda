package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	for _, key := range []string{
		"FLIP7_STORAGE", "FLIP7_DATA_FILE", "REDIS_URL",
		"FLIP7_REDIS_PREFIX", "FLIP7_LOG_LEVEL", "FLIP7_TONE",
	} {
		s.T().Setenv(key, "")
	}
}

func (s *ConfigTestSuite) TestDefaultConfig() {
	cfg := DefaultConfig()

	s.Equal(StorageFile, cfg.Storage)
	s.Equal("games.json", filepath.Base(cfg.DataFile))
	s.Equal("flip7", cfg.RedisPrefix)
	s.Equal(OutputText, cfg.Output)
	s.Equal("funny", cfg.Tone)
	s.Require().NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestDefaultConfig_FromEnvironment() {
	s.T().Setenv("FLIP7_STORAGE", StorageRedis)
	s.T().Setenv("REDIS_URL", "redis://cache:6379/2")
	s.T().Setenv("FLIP7_REDIS_PREFIX", "scores")

	cfg := DefaultConfig()

	s.Equal(StorageRedis, cfg.Storage)
	s.Equal("redis://cache:6379/2", cfg.RedisURL)
	s.Equal("scores", cfg.RedisPrefix)
}

func (s *ConfigTestSuite) TestLoadEnv() {
	dir := s.T().TempDir()
	file := filepath.Join(dir, "test.env")
	s.Require().NoError(os.WriteFile(file, []byte("FLIP7_STORAGE=redis\nFLIP7_LOG_LEVEL=debug\n"), 0o600))

	// Unset so godotenv may fill them in; Setenv restores them afterwards
	s.T().Setenv("FLIP7_STORAGE", "")
	s.T().Setenv("FLIP7_LOG_LEVEL", "")
	s.Require().NoError(os.Unsetenv("FLIP7_STORAGE"))
	s.Require().NoError(os.Unsetenv("FLIP7_LOG_LEVEL"))

	s.Require().NoError(LoadEnv(file, filepath.Join(dir, "missing.env")))

	cfg := DefaultConfig()
	s.Equal(StorageRedis, cfg.Storage)
	s.Equal(slog.LevelDebug, cfg.Level())
}

func (s *ConfigTestSuite) TestValidate() {
	cfg := DefaultConfig()
	cfg.Storage = "sqlite"
	s.ErrorIs(cfg.Validate(), ErrUnknownStorage)

	cfg = DefaultConfig()
	cfg.Output = "yaml"
	s.ErrorIs(cfg.Validate(), ErrUnknownOutput)

	cfg = DefaultConfig()
	cfg.Tone = "sarcastic"
	s.ErrorIs(cfg.Validate(), ErrUnknownTone)

	cfg = DefaultConfig()
	cfg.DataFile = ""
	s.ErrorIs(cfg.Validate(), ErrMissingDataFile)

	cfg = DefaultConfig()
	cfg.Storage = StorageRedis
	cfg.RedisURL = ""
	s.ErrorIs(cfg.Validate(), ErrMissingRedisURL)
}

func (s *ConfigTestSuite) TestLevel() {
	cfg := DefaultConfig()
	s.Equal(slog.LevelWarn, cfg.Level())

	cfg.LogLevel = "INFO"
	s.Equal(slog.LevelInfo, cfg.Level())

	cfg.Verbose = true
	s.Equal(slog.LevelDebug, cfg.Level())
}
