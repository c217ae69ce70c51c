package cvfolio

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-cvfolio/internal/fileutil"
)

// rasterizer abstracts DOM-to-bitmap capture to allow different backends.
type rasterizer interface {
	Rasterize(ctx context.Context, htmlContent string, widthPx, scale int) (image.Image, error)
	Close() error
}

// Compile-time interface check.
var _ rasterizer = (*rodRasterizer)(nil)

// rasterViewportHeight is the initial viewport height. The screenshot captures
// beyond the viewport, so only the width matters for layout.
const rasterViewportHeight = 1080

// rodRasterizer captures a full-page screenshot of rendered HTML using
// headless Chrome via go-rod. Rod automatically downloads Chromium on first
// run if not found.
type rodRasterizer struct {
	browser *rod.Browser
	timeout time.Duration
}

// newRodRasterizer creates a rodRasterizer with the given timeout.
func newRodRasterizer(timeout time.Duration) *rodRasterizer {
	return &rodRasterizer{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (r *rodRasterizer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (r *rodRasterizer) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// Rasterize renders the HTML at a fixed viewport width with the given device
// scale factor and captures a full-page PNG screenshot. The load wait covers
// image decoding, so a profile photo that is still downloading blocks the
// capture instead of being dropped from the output.
func (r *rodRasterizer) Rasterize(ctx context.Context, htmlContent string, widthPx, scale int) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// Fixed-width viewport: layout is identical regardless of the host
	// machine's screen. The scale factor is the supersampling multiplier.
	err = (&proto.EmulationSetDeviceMetricsOverride{
		Width:             widthPx,
		Height:            rasterViewportHeight,
		DeviceScaleFactor: float64(scale),
		Mobile:            false,
	}).Call(page)
	if err != nil {
		return nil, fmt.Errorf("%w: setting viewport: %v", ErrPageCreate, err)
	}

	// Wait for page load with timeout from context or default
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	shot, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRasterize, err)
	}

	bitmap, err := png.Decode(bytes.NewReader(shot))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding screenshot: %v", ErrRasterize, err)
	}
	return bitmap, nil
}
