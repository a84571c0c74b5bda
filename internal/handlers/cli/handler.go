package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/KirkDiggler/flip7/internal/common/uuid"
	"github.com/KirkDiggler/flip7/internal/config"
	"github.com/KirkDiggler/flip7/internal/services/game"
	"github.com/KirkDiggler/flip7/internal/services/messaging"
	"github.com/spf13/cobra"
)

// closeTimeout bounds the wait for the last save once a command has run
const closeTimeout = 5 * time.Second

// OpenServiceFunc builds the game service for the configured storage
type OpenServiceFunc func(ctx context.Context, settings *config.Config, logger *slog.Logger) (game.Service, error)

// Config holds the configuration for the command line handler
type Config struct {
	// Settings are the values flags default to
	Settings *config.Config

	// OpenService is called once flags are parsed
	OpenService OpenServiceFunc

	// Service dependencies
	MessagingService messaging.Service
	UUIDGenerator    uuid.UUID

	// Stdout and Stderr default to the process streams
	Stdout io.Writer
	Stderr io.Writer
}

// Handler runs flip7 commands against a game service
type Handler struct {
	settings    *config.Config
	openService OpenServiceFunc
	messaging   messaging.Service
	uuid        uuid.UUID
	stdout      io.Writer
	stderr      io.Writer

	// Set once the root command has parsed its flags
	service game.Service
	logger  *slog.Logger
	out     *Output
}

// New creates a new command line handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Settings == nil {
		return nil, errors.New("settings cannot be nil")
	}

	if cfg.OpenService == nil {
		return nil, errors.New("open service func cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.UUIDGenerator == nil {
		return nil, errors.New("UUID generator cannot be nil")
	}

	h := &Handler{
		settings:    cfg.Settings,
		openService: cfg.OpenService,
		messaging:   cfg.MessagingService,
		uuid:        cfg.UUIDGenerator,
		stdout:      cfg.Stdout,
		stderr:      cfg.Stderr,
	}

	if h.stdout == nil {
		h.stdout = os.Stdout
	}
	if h.stderr == nil {
		h.stderr = os.Stderr
	}

	return h, nil
}

// Execute runs the command line given in args, then waits for every change
// it made to be saved
func (h *Handler) Execute(ctx context.Context, args []string) error {
	root := h.newRootCmd()
	root.SetArgs(args)
	root.SetOut(h.stdout)
	root.SetErr(h.stderr)

	err := root.ExecuteContext(ctx)

	if h.service != nil {
		// The command context may already be cancelled by a signal
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
		closeErr := h.service.Close(closeCtx)
		cancel()
		if closeErr != nil {
			h.logger.Error("failed to close game service", slog.String("error", closeErr.Error()))
		}
		h.service = nil
	}

	if err != nil {
		h.printError(err)
	}

	return err
}

func (h *Handler) newRootCmd() *cobra.Command {
	settings := h.settings

	rootCmd := &cobra.Command{
		Use:   "flip7",
		Short: "Score keeper for Flip 7",
		Long: `flip7 keeps the score sheet of Flip 7 card games.

Games are saved after every change, either in a JSON file or in Redis.
The first player to reach 200 points wins.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := settings.Validate(); err != nil {
				return err
			}

			h.logger = slog.New(slog.NewJSONHandler(h.stderr, &slog.HandlerOptions{
				Level: settings.Level(),
			}))
			h.out = NewOutput(settings.Output, h.stdout)

			service, err := h.openService(cmd.Context(), settings, h.logger)
			if err != nil {
				return fmt.Errorf("failed to open games: %w", err)
			}

			h.service = service
			h.service.Load(cmd.Context())
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&settings.Output, "output", "o", settings.Output, "Output format: text, json")
	flags.StringVar(&settings.Storage, "storage", settings.Storage, "Storage: file, redis (env: FLIP7_STORAGE)")
	flags.StringVar(&settings.DataFile, "data-file", settings.DataFile, "Games file for file storage (env: FLIP7_DATA_FILE)")
	flags.StringVar(&settings.RedisURL, "redis-url", settings.RedisURL, "Redis URL for redis storage (env: REDIS_URL)")
	flags.StringVar(&settings.Tone, "tone", settings.Tone, "Message tone: neutral, funny, encouraging (env: FLIP7_TONE)")
	flags.BoolVarP(&settings.Verbose, "verbose", "v", settings.Verbose, "Verbose logging")

	// Add subcommands
	rootCmd.AddCommand(h.newGamesCmd())
	rootCmd.AddCommand(h.newNewCmd())
	rootCmd.AddCommand(h.newShowCmd())
	rootCmd.AddCommand(h.newRenameCmd())
	rootCmd.AddCommand(h.newDeleteCmd())
	rootCmd.AddCommand(h.newRoundCmd())
	rootCmd.AddCommand(h.newScoreCmd())
	rootCmd.AddCommand(h.newRecapCmd())

	return rootCmd
}

func (h *Handler) printError(err error) {
	out := h.out
	if out == nil {
		out = NewOutput(h.settings.Output, h.stdout)
	}
	out.PrintError(h.stderr, err)
}

func (h *Handler) tone() messaging.MessageTone {
	return messaging.MessageTone(h.settings.Tone)
}
