package exporter

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/m-mizutani/ghresume/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// A4 page dimensions in inches with a uniform margin.
const (
	paperWidthA4  = 8.27
	paperHeightA4 = 11.69
	marginInches  = 0.4
)

// networkIdleWindow is how long the page must stay free of in-flight
// requests before the export proceeds. Remote assets (avatar, README
// images) load over the network even though the document itself comes
// from a local file.
const networkIdleWindow = 300 * time.Millisecond

// rodSession drives one headless Chromium process via go-rod.
type rodSession struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration
}

var _ session = (*rodSession)(nil)

// newRodSession launches an isolated browser process and connects to it.
// Rod downloads a Chromium build on first use unless a binary is
// configured.
func newRodSession(cfg config) (session, error) {
	l := launcher.New().Headless(true)

	if cfg.browserBin != "" {
		l = l.Bin(cfg.browserBin)
	}
	if cfg.noSandbox || os.Getenv("CI") == "true" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to launch browser")
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, goerr.Wrap(err, "failed to connect to browser")
	}

	return &rodSession{
		browser:  browser,
		launcher: l,
		timeout:  cfg.timeout,
	}, nil
}

// Close terminates the browser process and removes launcher leftovers.
func (x *rodSession) Close() error {
	err := x.browser.Close()
	x.launcher.Cleanup()
	return err
}

// Render loads the HTML file in a fresh page, waits for load and network
// idle, switches to screen media emulation, and prints to PDF.
func (x *rodSession) Render(ctx context.Context, htmlPath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := x.browser.Page(proto.TargetCreateTarget{URL: "file://" + htmlPath})
	if err != nil {
		return nil, goerr.Wrap(types.ErrRenderFailed, "failed to create page", goerr.V("cause", err.Error()))
	}
	defer func() { _ = page.Close() }()

	page = page.Context(ctx).Timeout(x.timeout)

	waitIdle := page.WaitRequestIdle(networkIdleWindow, nil, nil, nil)
	if err := page.WaitLoad(); err != nil {
		return nil, goerr.Wrap(types.ErrRenderFailed, "failed to load page", goerr.V("cause", err.Error()))
	}
	waitIdle()

	// The resume stylesheet targets screen media; without this the print
	// pipeline would apply print styles instead.
	setMedia := proto.EmulationSetEmulatedMedia{Media: "screen"}
	if err := setMedia.Call(page); err != nil {
		return nil, goerr.Wrap(types.ErrRenderFailed, "failed to emulate screen media", goerr.V("cause", err.Error()))
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:      floatPtr(paperWidthA4),
		PaperHeight:     floatPtr(paperHeightA4),
		MarginTop:       floatPtr(marginInches),
		MarginBottom:    floatPtr(marginInches),
		MarginLeft:      floatPtr(marginInches),
		MarginRight:     floatPtr(marginInches),
		PrintBackground: true,
	})
	if err != nil {
		return nil, goerr.Wrap(types.ErrRenderFailed, "failed to print page to PDF", goerr.V("cause", err.Error()))
	}

	pdf, err := io.ReadAll(reader)
	if err != nil {
		return nil, goerr.Wrap(types.ErrRenderFailed, "failed to read PDF stream", goerr.V("cause", err.Error()))
	}

	return pdf, nil
}

func floatPtr(v float64) *float64 {
	return &v
}
