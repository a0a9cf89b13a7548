package export

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// RodRasterizer drives a headless browser through go-rod.
type RodRasterizer struct{}

func (r *RodRasterizer) Rasterize(ctx context.Context, html []byte, selector string, opts Options) ([]byte, error) {
	launch := launcher.New().Headless(true).Set("disable-gpu").Set("no-sandbox")
	if opts.BrowserBin != "" {
		launch = launch.Bin(opts.BrowserBin)
	}
	defer launch.Cleanup()
	defer launch.Kill()

	controlURL, err := launch.Context(ctx).Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to browser: %w", err)
	}
	defer func() { _ = browser.Close() }()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}

	width, height := opts.viewport()
	if err := (proto.EmulationSetDeviceMetricsOverride{
		Width:             width,
		Height:            height,
		DeviceScaleFactor: opts.ratio(),
		Mobile:            false,
	}).Call(page); err != nil {
		return nil, fmt.Errorf("set viewport: %w", err)
	}

	if err := page.SetDocumentContent(string(html)); err != nil {
		return nil, fmt.Errorf("load card: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait for card: %w", err)
	}

	el, err := page.Element(selector)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", selector, err)
	}
	png, err := el.Screenshot(proto.PageCaptureScreenshotFormatPng, 0)
	if err != nil {
		return nil, fmt.Errorf("rod capture: %w", err)
	}
	return png, nil
}
