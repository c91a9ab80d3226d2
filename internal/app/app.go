package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/progdeck/progdeck/internal/config"
	"github.com/progdeck/progdeck/internal/console"
	"github.com/progdeck/progdeck/internal/ctxlog"
	"github.com/progdeck/progdeck/internal/menu"
	"github.com/progdeck/progdeck/internal/registry"
)

// Config holds the command-line level settings for one App instance.
// Non-empty values override the config file.
type Config struct {
	ConfigPath   string
	ProgramsPath string
	StorePath    string
	LogLevel     string
	LogFormat    string
}

// App encapsulates the launcher's dependencies, configuration, and lifecycle.
type App struct {
	con      *console.Console
	logger   *slog.Logger
	registry *registry.Registry
	cfg      *config.Config
}

// New is the constructor for the main application. It returns a fully
// initialized App with its own isolated logger and a populated, immutable
// program catalog. A failure to load configuration or to enumerate the
// programs directory is a fatal startup error and panics; the entrypoint
// recovers to present it cleanly.
func New(inR io.Reader, outW, logW io.Writer, appCfg *Config) *App {
	cfg, err := config.Load(context.Background(), appCfg.ConfigPath)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	mergeOverrides(cfg, appCfg)

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	con := console.New(inR, outW)

	reg := registry.New()
	mods := builtinModules(cfg, con)
	for _, mod := range mods {
		mod.Register(reg)
	}
	logger.Debug("Built-in programs registered.", "count", len(mods))

	if err := reg.DiscoverPrograms(ctx, cfg.ProgramsPath, cfg.ProgramPrefix); err != nil {
		panic(fmt.Errorf("failed to discover programs: %w", err))
	}
	logger.Debug("Program catalog ready.", "entries", reg.Len())

	return &App{
		con:      con,
		logger:   logger,
		registry: reg,
		cfg:      cfg,
	}
}

// mergeOverrides applies non-empty command-line values on top of the file
// configuration.
func mergeOverrides(cfg *config.Config, appCfg *Config) {
	if appCfg.ProgramsPath != "" {
		cfg.ProgramsPath = appCfg.ProgramsPath
	}
	if appCfg.StorePath != "" {
		cfg.StorePath = appCfg.StorePath
	}
	if appCfg.LogLevel != "" {
		cfg.LogLevel = appCfg.LogLevel
	}
	if appCfg.LogFormat != "" {
		cfg.LogFormat = appCfg.LogFormat
	}
}

// Run drives the menu loop until the user exits.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	err := menu.New(a.registry, a.con).Loop(ctx)

	a.logger.Debug("App.Run method finished.")
	return err
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
