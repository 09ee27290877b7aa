package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/zenndi/zenndi-ops/internal/adapter/compressor"
	"github.com/zenndi/zenndi-ops/internal/adapter/database"
	"github.com/zenndi/zenndi-ops/internal/adapter/docker"
	"github.com/zenndi/zenndi-ops/internal/adapter/notify"
	"github.com/zenndi/zenndi-ops/internal/adapter/storage"
	"github.com/zenndi/zenndi-ops/internal/config"
	"github.com/zenndi/zenndi-ops/internal/domain"
	"github.com/zenndi/zenndi-ops/internal/infrastructure/logger"
	"github.com/zenndi/zenndi-ops/internal/tui"
	"github.com/zenndi/zenndi-ops/internal/usecase"
)

type App struct {
	config       *config.Config
	logger       *logger.Logger
	console      *notify.Console
	localStorage *storage.LocalStorage
	runtime      domain.ContainerRuntime
	backupUC     *usecase.Backup
	in           io.Reader
	out          io.Writer
}

func New(cfg *config.Config) (*App, error) {
	return newApp(cfg, os.Stdin, os.Stdout)
}

// newApp wires the components. Startup lines are logged at debug level so the
// menu owns the terminal at the default level.
func newApp(cfg *config.Config, in io.Reader, out io.Writer) (*App, error) {
	// Initialize logger
	log, err := logger.New(&cfg.App)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log.Debugf("Starting %s", cfg.App.Name)

	db, err := database.New(&cfg.Database)
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	runtime := initializeRuntime(cfg, log)

	// Initialize local storage and archive store
	localStorage := storage.NewLocal(cfg.Backup.Dir)

	s3Storage, err := storage.NewS3(context.Background(), &cfg.Storage, log)
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}
	log.Debugf("✓ MinIO upload enabled (endpoint: %s, bucket: %s)", cfg.Storage.Endpoint, s3Storage.Bucket())

	// Initialize notifications
	console := notify.NewConsole(out)

	var chat usecase.ChatSender
	if cfg.Telegram.Enabled() {
		chat = notify.NewTelegram(&cfg.Telegram, cfg.App.Name, notify.DefaultTelegramTimeout)
		log.Debugf("✓ Telegram notifications enabled")
	}
	notifier := usecase.NewNotifier(console, chat, log)

	archiveUC := usecase.NewArchive(s3Storage, notifier, "MinIO", log)

	backupUC := usecase.NewBackup(
		db,
		db.GetName(),
		runtime,
		localStorage,
		compressor.NewGzip(),
		archiveUC,
		notifier,
		console,
		log,
		cfg.Backup.Prefix,
	)

	return &App{
		config:       cfg,
		logger:       log,
		console:      console,
		localStorage: localStorage,
		runtime:      runtime,
		backupUC:     backupUC,
		in:           in,
		out:          out,
	}, nil
}

func initializeRuntime(cfg *config.Config, log *logger.Logger) domain.ContainerRuntime {
	switch cfg.Runtime.Type {
	case "api":
		api, err := docker.NewAPI()
		if err == nil {
			log.Debugf("✓ Using Docker Engine API runtime")
			return api
		}
		log.Warnf("Docker Engine API unavailable, falling back to %s CLI: %v", cfg.Runtime.Binary, err)
	case "cli", "":
	default:
		log.Warnf("Unknown runtime type: %s, using %s CLI", cfg.Runtime.Type, cfg.Runtime.Binary)
	}
	return docker.NewCLI(cfg.Runtime.Binary)
}

// RunSilent makes one backup attempt without the menu. Failures have already
// been reported through the notifier when it returns false.
func (a *App) RunSilent(ctx context.Context) bool {
	_, ok := a.backupUC.Execute(ctx, true)
	return ok
}

// RunInteractive shows the menu once and acts on the choice.
func (a *App) RunInteractive(ctx context.Context) error {
	choice, err := tui.Select(ctx, tui.NewMenu(a.config.App.Name, a.latestBackup(ctx)), a.in, a.out)
	if err != nil {
		return err
	}

	switch choice {
	case tui.ChoiceBackup:
		a.backupUC.Execute(ctx, false)
	default:
		a.console.Plain("👋 Exiting.")
	}
	return nil
}

func (a *App) latestBackup(ctx context.Context) string {
	artifacts, err := a.localStorage.List(ctx)
	if err != nil {
		a.logger.Warnf("Failed to list local backups: %v", err)
		return ""
	}
	if len(artifacts) == 0 {
		return "No local backups yet"
	}
	return fmt.Sprintf("Last backup: %s", artifacts[0].Name)
}

func (a *App) Shutdown() {
	a.logger.Debugf("Shutting down application...")
	if closer, ok := a.runtime.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			a.logger.Warnf("Failed to close runtime: %v", err)
		}
	}
	a.logger.Close()
}
