package worker

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"resumeforge/internal/render"
)

// rasterScale is the device scale used for the export screenshot. Capturing
// at 2x keeps text crisp after the bitmap is re-embedded into PDF pages.
const rasterScale = 2

// errSurfaceMissing means the loaded page has no document surface to
// capture. Retrying cannot help; the render itself is broken.
var errSurfaceMissing = errors.New("document surface #resume-root not found")

// rasterizeHTML renders the document HTML in a headless browser and captures
// a full-height PNG of it at rasterScale. The returned image is exactly
// render.PageWidthPx * rasterScale pixels wide; its height depends on the
// content.
func rasterizeHTML(htmlContent, chromeBin string) ([]byte, error) {
	launch := launcher.New().
		Headless(true).
		NoSandbox(true)
	defer launch.Cleanup()

	if chromeBin != "" {
		launch = launch.Bin(chromeBin)
	} else if path, ok := launcher.LookPath(); ok {
		launch = launch.Bin(path)
	}

	browserURL, err := launch.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chromium: %w", err)
	}

	browser := rod.New().ControlURL(browserURL).Timeout(90 * time.Second)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}
	defer func() {
		_ = browser.Close()
	}()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	defer func() {
		_ = page.Close()
	}()

	page = page.Timeout(60 * time.Second)

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             render.PageWidthPx,
		Height:            render.PageHeightPx,
		DeviceScaleFactor: rasterScale,
		Mobile:            false,
	}); err != nil {
		return nil, fmt.Errorf("set viewport: %w", err)
	}

	if err := page.SetDocumentContent(htmlContent); err != nil {
		return nil, fmt.Errorf("set document content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait load: %w", err)
	}

	found, err := page.Eval(`() => document.getElementById("resume-root") !== null`)
	if err != nil {
		return nil, fmt.Errorf("probe document surface: %w", err)
	}
	if !found.Value.Bool() {
		return nil, errSurfaceMissing
	}

	// Fallback font metrics shift the layout; give WebFonts a bounded
	// chance to settle first.
	if _, err := page.Timeout(5 * time.Second).Eval(`() => {
	  if (document && document.fonts && document.fonts.ready) {
	    return Promise.race([
	      document.fonts.ready.then(() => true),
	      new Promise((resolve) => setTimeout(() => resolve(true), 3000))
	    ]);
	  }
	  return true;
	}`); err != nil {
		return nil, fmt.Errorf("wait fonts: %w", err)
	}

	data, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("capture screenshot: %w", err)
	}
	return data, nil
}
