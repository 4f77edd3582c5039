// Package cli wires the splitpane use cases for the command line.
package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bnema/splitpane/internal/application/usecase"
	"github.com/bnema/splitpane/internal/cli/styles"
	"github.com/bnema/splitpane/internal/domain/build"
	"github.com/bnema/splitpane/internal/domain/entity"
	"github.com/bnema/splitpane/internal/domain/repository"
	"github.com/bnema/splitpane/internal/infrastructure/config"
	"github.com/bnema/splitpane/internal/infrastructure/events"
	"github.com/bnema/splitpane/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/splitpane/internal/logging"
)

// Options tune how the app is assembled for a command.
type Options struct {
	// Interactive commands own the terminal, so logs go to the log file only.
	Interactive bool
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	db      *sqlite.LazyDB
	Layouts repository.LayoutRepository

	// Use cases
	LayoutsUC *usecase.ManageLayoutsUseCase
	PanesUC   *usecase.ManagePanesUseCase

	SplitMode *usecase.SplitModeState
	Events    *events.Bus
	LastPane  *LastPaneGuard

	newID   usecase.IDGenerator
	collabs usecase.PaneCollaborators

	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
// The database is opened lazily on first repository access.
func NewApp(opts Options) (*App, error) {
	mgr, cfg := loadConfig()

	logger, logCleanup, err := logging.NewWithFile(
		logging.Config{
			Level:      logging.ParseLevel(cfg.Logging.Level),
			Format:     cfg.Logging.Format,
			TimeFormat: "15:04:05",
		},
		logging.FileConfig{
			Enabled:       cfg.Logging.EnableFileLog,
			Dir:           cfg.Logging.LogDir,
			MaxSizeMB:     cfg.Logging.MaxSizeMB,
			MaxBackups:    cfg.Logging.MaxBackups,
			WriteToStderr: !opts.Interactive,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	ctx := logging.WithContext(context.Background(), logger)

	db := sqlite.NewLazyDB(cfg.Database.Path)
	layoutRepo := sqlite.NewLazyLayoutRepository(db)

	splitMode := usecase.NewSplitModeState(cfg.Workspace.SplitMode)
	bus := events.NewBus()
	guard := NewLastPaneGuard(cfg.Workspace.ConfirmLastPaneClose)

	layoutsUC := usecase.NewManageLayoutsUseCase(layoutRepo, entity.RebuildOptions{
		Resolver:         ResolveContent,
		NewID:            uuid.NewString,
		CanSplit:         cfg.Workspace.SplitMode,
		PlaceholderLabel: cfg.Workspace.PlaceholderLabel,
	})
	collabs := usecase.PaneCollaborators{
		Content:          KeyContent{},
		SplitMode:        splitMode,
		Notifier:         bus,
		LastPane:         guard,
		PlaceholderLabel: cfg.Workspace.PlaceholderLabel,
	}
	panesUC := usecase.NewManagePanesUseCase(uuid.NewString, collabs)

	logger.Debug().
		Str("db_path", cfg.Database.Path).
		Bool("split_mode", cfg.Workspace.SplitMode).
		Msg("app initialized")

	theme := styles.NewTheme()
	theme.CloseMarkers = cfg.Workspace.ShowCloseButtons

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         theme,
		db:            db,
		Layouts:       layoutRepo,
		LayoutsUC:     layoutsUC,
		PanesUC:       panesUC,
		SplitMode:     splitMode,
		Events:        bus,
		LastPane:      guard,
		newID:         uuid.NewString,
		collabs:       collabs,
		ctx:           ctx,
		logCleanup:    logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	err := a.db.Close()
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// PanesWithContent returns a pane use case whose new panes show key.
func (a *App) PanesWithContent(key string) *usecase.ManagePanesUseCase {
	collabs := a.collabs
	collabs.Content = KeyContent{Key: key}
	return usecase.NewManagePanesUseCase(a.newID, collabs)
}

// DefaultRatio returns the configured split ratio.
func (a *App) DefaultRatio() float64 {
	return a.Config.Workspace.DefaultSplitRatio
}

// ApplyConfig pushes reloaded settings into the running app. Split mode is
// process-wide state, so existing panes keep their split permission and only
// new panes see the change.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	a.SplitMode.Set(cfg.Workspace.SplitMode)
	a.LastPane.SetConfirm(cfg.Workspace.ConfirmLastPaneClose)
	logging.FromContext(a.ctx).Info().
		Bool("split_mode", cfg.Workspace.SplitMode).
		Float64("ratio", cfg.Workspace.DefaultSplitRatio).
		Msg("configuration reloaded")
}

// loadConfig falls back to defaults when the config cannot be loaded, so
// a broken config file never locks the user out of their layouts.
func loadConfig() (*config.Manager, *config.Config) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, withPaths(config.DefaultConfig())
	}
	if err := mgr.Load(); err != nil {
		logging.NewFromEnv().Warn().Err(err).Msg("using default configuration")
		return nil, withPaths(config.DefaultConfig())
	}
	return mgr, mgr.Get()
}

func withPaths(cfg *config.Config) *config.Config {
	if dbPath, err := config.GetDatabaseFile(); err == nil {
		cfg.Database.Path = dbPath
	}
	if logDir, err := config.GetLogDir(); err == nil {
		cfg.Logging.LogDir = logDir
	}
	if err := config.EnsureDirectories(); err != nil {
		logging.NewFromEnv().Warn().Err(err).Msg("could not create splitpane directories")
	}
	return cfg
}
