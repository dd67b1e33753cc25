// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"

	"github.com/Onimuxha/font/assets"
	"github.com/Onimuxha/font/internal/application/usecase"
	"github.com/Onimuxha/font/internal/cli/styles"
	"github.com/Onimuxha/font/internal/domain/catalog"
	"github.com/Onimuxha/font/internal/domain/preview"
	"github.com/Onimuxha/font/internal/domain/repository"
	clipboardadapter "github.com/Onimuxha/font/internal/infrastructure/clipboard"
	"github.com/Onimuxha/font/internal/infrastructure/config"
	"github.com/Onimuxha/font/internal/infrastructure/filesystem"
	"github.com/Onimuxha/font/internal/infrastructure/persistence/prefstore"
	"github.com/Onimuxha/font/internal/infrastructure/persistence/sqlite"
	"github.com/Onimuxha/font/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config  *config.Config
	Theme   *styles.Theme
	Catalog *catalog.Catalog
	History repository.DownloadRepository
	db      *sql.DB

	// Use cases
	BrowseUC   *usecase.BrowseCatalogUseCase
	PreviewUC  *usecase.ConfigurePreviewUseCase
	DownloadUC *usecase.DownloadFontUseCase
	CSSUC      *usecase.CopyCSSUseCase
	HistoryUC  *usecase.ListDownloadsUseCase

	saver *filesystem.Saver

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	cfg, manager := loadConfig()
	theme := styles.NewTheme(cfg)

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	cat, samples, err := catalog.Load(assets.CatalogJSON)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	dbFile := cfg.Database.Path
	if dbFile == "" {
		if dbFile, err = config.GetDatabaseFile(); err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}
	db, err := sqlite.NewConnection(ctx, dbFile)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug().Str("db_path", dbFile).Msg("database connected")

	historyRepo := sqlite.NewDownloadRepository(db)

	prefFile, err := config.GetPreferenceFile()
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("resolve preference path: %w", err)
	}

	downloadDir := cfg.Downloads.Dir
	if downloadDir == "" {
		if downloadDir, err = config.DefaultDownloadDir(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("resolve download dir: %w", err)
		}
	}

	resolver := preview.NewResolver(samples, rand.Intn)
	previewUC := usecase.NewConfigurePreviewUseCase(prefstore.New(prefFile), resolver)
	previewUC.Load(ctx)

	// Reload the global preview defaults when the config file changes
	// while the browser is open. Layout settings apply on next start.
	if manager != nil {
		manager.OnChange(func(*config.Config) {
			logger.Debug().Msg("configuration reloaded")
			previewUC.Load(ctx)
		})
		manager.Watch()
	}

	saver := filesystem.NewSaver()

	return &App{
		Config:     cfg,
		Theme:      theme,
		Catalog:    cat,
		History:    historyRepo,
		db:         db,
		BrowseUC:   usecase.NewBrowseCatalogUseCase(cat),
		PreviewUC:  previewUC,
		DownloadUC: usecase.NewDownloadFontUseCase(saver, saver, historyRepo, downloadDir),
		CSSUC:      usecase.NewCopyCSSUseCase(clipboardadapter.New()),
		HistoryUC:  usecase.NewListDownloadsUseCase(historyRepo),
		saver:      saver,
		ctx:        ctx,
	}, nil
}

// DownloadUCForDir builds a download use case targeting an alternate
// directory, sharing the app's saver and history.
func (a *App) DownloadUCForDir(dir string) *usecase.DownloadFontUseCase {
	return usecase.NewDownloadFontUseCase(a.saver, a.saver, a.History, dir)
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations. The manager
// is nil when defaults had to be used.
func loadConfig() (*config.Config, *config.Manager) {
	manager, err := config.NewManager()
	if err != nil {
		return config.Default(), nil
	}
	if err := manager.Load(); err != nil {
		return config.Default(), nil
	}
	return manager.Get(), manager
}
