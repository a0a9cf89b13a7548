package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/linkforce/internal/assist"
	"github.com/alexisbeaulieu97/linkforce/internal/config"
	"github.com/alexisbeaulieu97/linkforce/internal/export"
	"github.com/alexisbeaulieu97/linkforce/internal/logger"
	"github.com/alexisbeaulieu97/linkforce/internal/render"
	"github.com/alexisbeaulieu97/linkforce/internal/store"
	"github.com/alexisbeaulieu97/linkforce/internal/style"
)

// logFileName receives log output while the editor owns the terminal.
const logFileName = "linkforce.log"

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config    *config.Config
	Log       *logger.Logger
	Store     *store.Store
	Catalog   style.Catalog
	Renderer  *render.Renderer
	Assistant *assist.Assistant
	Exporter  *export.Exporter

	closers []io.Closer
}

type appOptions struct {
	// logToFile sends log lines to the data directory instead of stderr.
	logToFile bool
}

// Seams replaced by tests to avoid real browsers and network calls.
var (
	newGenerator = func(ctx context.Context, apiKey, model string) (assist.Generator, error) {
		gen, err := assist.NewGemini(ctx, apiKey, model)
		if err != nil {
			return nil, err
		}
		return gen, nil
	}
	newRasterizer = export.NewRasterizer
)

// openApp loads configuration and wires every service. The profile is loaded
// from its slot before openApp returns.
func openApp(cmd *cobra.Command, flags *rootFlags, opts appOptions) (*AppContext, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError("start", "loading configuration", err, "Fix the configuration file or run without --config to use defaults.")
	}

	app := &AppContext{Config: cfg, Catalog: style.DefaultCatalog()}

	log, err := app.newLogger(cmd, flags, opts)
	if err != nil {
		return nil, newCommandError("start", "creating logger", err, "Check log.level in the configuration and the data directory permissions.")
	}
	app.Log = log

	slot, err := openSlot(cfg.Store)
	if err != nil {
		app.Close()
		return nil, newCommandError("start", "opening profile storage", err, "Check store settings in the configuration file.")
	}
	app.Store = store.New(slot, log)
	app.closers = append(app.closers, app.Store)
	app.Store.Load(ctx)

	app.Assistant = app.newAssistant(ctx)

	app.Renderer, err = render.NewRenderer(app.Catalog)
	if err != nil {
		app.Close()
		return nil, newCommandError("start", "preparing templates", err, "This is a bug; please report it.")
	}

	raster, err := newRasterizer(export.Engine(cfg.Export.Engine))
	if err != nil {
		app.Close()
		return nil, newCommandError("start", "selecting export engine", err, "Set export.engine to chromedp or rod.")
	}
	app.Exporter = export.New(app.Renderer, raster, export.Config{
		OutputDir: cfg.Export.ResolvedOutputDir(),
		Timeout:   cfg.Export.Timeout,
		Options: export.Options{
			Width:      cfg.Export.Width,
			Height:     cfg.Export.Height,
			PixelRatio: cfg.Export.PixelRatio,
			BrowserBin: cfg.Export.BrowserBin,
		},
		Logger: log,
	})

	log.WithFields(map[string]any{"backend": cfg.Store.Backend, "engine": cfg.Export.Engine}).Debug("application ready")
	return app, nil
}

// Close releases storage connections and log files.
func (a *AppContext) Close() {
	if a == nil {
		return
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i].Close()
	}
	a.closers = nil
}

func (a *AppContext) newLogger(cmd *cobra.Command, flags *rootFlags, opts appOptions) (*logger.Logger, error) {
	level := a.Config.Log.Level
	if flags.verbose {
		level = "debug"
	}

	writer := cmd.ErrOrStderr()
	humanReadable := a.Config.Log.HumanReadable
	if opts.logToFile {
		dir, err := a.Config.Store.DataDir()
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
		file, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		a.closers = append(a.closers, file)
		writer = file
		humanReadable = false
	}

	return logger.New(logger.Options{Level: level, HumanReadable: humanReadable, Writer: writer})
}

func (a *AppContext) newAssistant(ctx context.Context) *assist.Assistant {
	// A missing .env file is normal; the variable may come from the shell.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		a.Log.Warn(err, "failed to read .env file")
	}

	var gen assist.Generator
	if key := a.Config.Assist.APIKey(); key != "" {
		g, err := newGenerator(ctx, key, a.Config.Assist.Model)
		if err != nil {
			a.Log.Warn(err, "bio assistant unavailable")
		} else {
			gen = g
		}
	}

	return assist.New(gen, assist.Options{
		Model:   a.Config.Assist.Model,
		Timeout: a.Config.Assist.Timeout,
		Logger:  a.Log,
	})
}

func openSlot(cfg config.StoreConfig) (store.Slot, error) {
	switch cfg.Backend {
	case "redis":
		return store.NewRedisSlot(store.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Key), nil
	default:
		dir, err := cfg.DataDir()
		if err != nil {
			return nil, err
		}
		return store.NewFileSlot(dir, cfg.Key)
	}
}
