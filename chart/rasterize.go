package chart

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"

	"energy-report/utils"
)

// Rasterizer turns a dashboard SVG into a PNG by loading it in headless
// Chrome and taking a full-page screenshot.
type Rasterizer struct {
	chromeBin string
	timeout   time.Duration
	logger    *utils.Logger
	retry     *utils.RetryConfig
}

// NewRasterizer creates a Rasterizer. An empty chromeBin triggers a lookup
// of the usual Chrome/Chromium install locations.
func NewRasterizer(chromeBin string, timeout time.Duration, maxRetries int, logger *utils.Logger) *Rasterizer {
	return &Rasterizer{
		chromeBin: FindChromeBinary(chromeBin),
		timeout:   timeout,
		logger:    logger,
		retry: &utils.RetryConfig{
			MaxAttempts: maxRetries,
			BaseDelay:   time.Second,
			Logger:      logger,
		},
	}
}

// RenderPNG rasterises svg at width x height pixels.
func (r *Rasterizer) RenderPNG(ctx context.Context, svg string, width, height int) ([]byte, error) {
	page, err := writeHTMLPage(svg)
	if err != nil {
		return nil, err
	}
	defer os.Remove(page)

	r.logger.Info("[chart] Rasterising dashboard with browser: %s", displayBin(r.chromeBin))

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("hide-scrollbars", true),
	)
	if r.chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(r.chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	var png []byte
	err = r.retry.Do("render-dashboard-png", func() error {
		// Suppress chromedp log noise
		tabCtx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
		defer cancelTab()

		tabCtx, cancelTimeout := context.WithTimeout(tabCtx, r.timeout)
		defer cancelTimeout()

		var buf []byte
		if err := chromedp.Run(tabCtx,
			chromedp.EmulateViewport(int64(width), int64(height)),
			chromedp.Navigate("file://"+page),
			chromedp.WaitReady("svg", chromedp.ByQuery),
			chromedp.FullScreenshot(&buf, 100),
		); err != nil {
			return err
		}
		if len(buf) == 0 {
			return fmt.Errorf("empty screenshot")
		}
		png = buf
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("chart: rasterise: %w", err)
	}

	r.logger.Debug("[chart] PNG rendered: %d bytes", len(png))
	return png, nil
}

// htmlPage wraps the SVG so it renders edge to edge.
func htmlPage(svg string) string {
	return `<!DOCTYPE html><html><head><meta charset="utf-8">` +
		`<style>html,body{margin:0;padding:0;background:#fff}svg{display:block}</style>` +
		`</head><body>` + svg + `</body></html>`
}

func writeHTMLPage(svg string) (string, error) {
	f, err := os.CreateTemp("", "dashboard-*.html")
	if err != nil {
		return "", fmt.Errorf("chart: create temp page: %w", err)
	}
	if _, err := f.WriteString(htmlPage(svg)); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("chart: write temp page: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("chart: close temp page: %w", err)
	}
	abs, err := filepath.Abs(f.Name())
	if err != nil {
		return f.Name(), nil
	}
	return abs, nil
}

func displayBin(bin string) string {
	if bin == "" {
		return "(chromedp default)"
	}
	return bin
}

// FindChromeBinary locates a Chrome/Chromium binary, preferring configured.
func FindChromeBinary(configured string) string {
	if configured != "" {
		return configured
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
