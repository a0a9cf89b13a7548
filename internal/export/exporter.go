// Package export rasterizes the share card to a PNG file.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/alexisbeaulieu97/linkforce/internal/busy"
	"github.com/alexisbeaulieu97/linkforce/internal/logger"
	"github.com/alexisbeaulieu97/linkforce/internal/profile"
	"github.com/alexisbeaulieu97/linkforce/internal/render"
	lferrors "github.com/alexisbeaulieu97/linkforce/pkg/errors"
)

// Export stages reported through errors.ExportError.
const (
	StageRender    = "render"
	StageRasterize = "rasterize"
	StageWrite     = "write"
)

// Defaults match the on-screen card at a retina pixel ratio.
const (
	DefaultPixelRatio = 3
	DefaultTimeout    = 60 * time.Second
)

// ErrBusy means an export is already in flight.
var ErrBusy = busy.ErrBusy

// Config configures an Exporter.
type Config struct {
	OutputDir string
	Timeout   time.Duration
	Options   Options
	Logger    *logger.Logger
}

// Exporter renders the card, rasterizes it and writes the PNG. Only one
// export runs at a time.
type Exporter struct {
	renderer  *render.Renderer
	raster    Rasterizer
	outputDir string
	timeout   time.Duration
	opts      Options
	log       *logger.Logger
	gate      busy.Gate
}

// New creates an Exporter.
func New(renderer *render.Renderer, raster Rasterizer, cfg Config) *Exporter {
	if cfg.Options.Width <= 0 {
		cfg.Options.Width = render.CardWidth
	}
	if cfg.Options.Height <= 0 {
		cfg.Options.Height = render.CardHeight
	}
	if cfg.Options.PixelRatio <= 0 {
		cfg.Options.PixelRatio = DefaultPixelRatio
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}
	return &Exporter{
		renderer:  renderer,
		raster:    raster,
		outputDir: cfg.OutputDir,
		timeout:   cfg.Timeout,
		opts:      cfg.Options,
		log:       cfg.Logger.WithFields(map[string]any{"component": "export"}),
	}
}

// Busy reports whether an export is in flight.
func (e *Exporter) Busy() bool {
	return e.gate.Busy()
}

// Snapshot returns the card of p as PNG bytes.
func (e *Exporter) Snapshot(ctx context.Context, p profile.UserProfile) ([]byte, error) {
	var png []byte
	err := e.gate.Do(func() error {
		data, err := e.capture(ctx, p)
		if err != nil {
			return err
		}
		png = data
		return nil
	})
	if err != nil {
		return nil, e.fail(err)
	}
	return png, nil
}

// Export writes the card of p to the output directory and returns the file
// path. A failed export never leaves a partial file behind.
func (e *Exporter) Export(ctx context.Context, p profile.UserProfile) (string, error) {
	var path string
	err := e.gate.Do(func() error {
		data, err := e.capture(ctx, p)
		if err != nil {
			return err
		}
		path = filepath.Join(e.outputDir, profile.ExportFilename(p.Name))
		if err := writeFile(path, data); err != nil {
			return lferrors.NewExportError(StageWrite, err)
		}
		return nil
	})
	if err != nil {
		return "", e.fail(err)
	}
	e.log.WithFields(map[string]any{"path": path}).Info("card exported")
	return path, nil
}

func (e *Exporter) fail(err error) error {
	if errors.Is(err, busy.ErrBusy) {
		return ErrBusy
	}
	e.log.Warn(err, "card export failed")
	return err
}

func (e *Exporter) capture(ctx context.Context, p profile.UserProfile) ([]byte, error) {
	var page bytes.Buffer
	if err := e.renderer.Card(&page, p); err != nil {
		return nil, lferrors.NewExportError(StageRender, err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	started := time.Now()
	data, err := e.raster.Rasterize(ctx, page.Bytes(), render.CardSelector, e.opts)
	if err != nil {
		return nil, lferrors.NewExportError(StageRasterize, err)
	}
	if mime := mimetype.Detect(data); !mime.Is("image/png") {
		return nil, lferrors.NewExportError(StageRasterize, fmt.Errorf("rasterizer produced %s, want image/png", mime.String()))
	}
	e.log.WithFields(map[string]any{"bytes": len(data), "elapsed": time.Since(started).String()}).Debug("card rasterized")
	return data, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".linkforce-export-*.png")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
