package export

import (
	"context"
	"fmt"
)

// Engine names a rasterizer implementation.
type Engine string

const (
	EngineChromedp Engine = "chromedp"
	EngineRod      Engine = "rod"
)

// Options sizes the page the card is captured from.
type Options struct {
	// Width and Height are the CSS pixel size of the card element.
	Width  int
	Height int
	// PixelRatio scales the captured image.
	PixelRatio float64
	// BrowserBin overrides the browser executable; empty means auto-detect.
	BrowserBin string
}

// viewport leaves room around the card for the page padding.
func (o Options) viewport() (int, int) {
	const pagePadding = 48
	return o.Width + pagePadding, o.Height + pagePadding
}

func (o Options) ratio() float64 {
	if o.PixelRatio <= 0 {
		return 1
	}
	return o.PixelRatio
}

// Rasterizer captures the element matching selector in an HTML document as
// a PNG.
type Rasterizer interface {
	Rasterize(ctx context.Context, html []byte, selector string, opts Options) ([]byte, error)
}

// NewRasterizer returns the rasterizer for engine.
func NewRasterizer(engine Engine) (Rasterizer, error) {
	switch engine {
	case EngineChromedp, "":
		return &ChromeRasterizer{}, nil
	case EngineRod:
		return &RodRasterizer{}, nil
	default:
		return nil, fmt.Errorf("unknown export engine %q", engine)
	}
}
