package exporter

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/ghresume/pkg/domain/interfaces"
	"github.com/m-mizutani/ghresume/pkg/domain/types"
	"github.com/m-mizutani/ghresume/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

const defaultTimeout = 60 * time.Second

// Exporter rasterizes rendered HTML documents into PDF bytes with a
// headless Chromium instance.
//
// By default every export launches its own browser process and tears it
// down when the export finishes, on success and on failure alike. That
// trades throughput for isolation: a wedged renderer cannot poison later
// requests. WithPersistentBrowser flips the tradeoff and keeps one browser
// alive across exports.
type Exporter struct {
	cfg config

	// newSession is swapped out in tests to avoid launching a browser.
	newSession func() (session, error)

	mu   sync.Mutex
	kept session
}

var _ interfaces.PDFExporter = (*Exporter)(nil)

// session is one connected browser instance. Close must terminate the
// underlying OS process.
type session interface {
	Render(ctx context.Context, htmlPath string) ([]byte, error)
	Close() error
}

type config struct {
	browserBin string
	noSandbox  bool
	persistent bool
	timeout    time.Duration
}

type Option func(*config)

// WithBrowserBin uses a pre-installed browser binary instead of letting
// rod download its own Chromium. Useful in containers.
func WithBrowserBin(path string) Option {
	return func(cfg *config) {
		cfg.browserBin = path
	}
}

// WithNoSandbox disables the Chromium sandbox. Required in most CI and
// container environments.
func WithNoSandbox(noSandbox bool) Option {
	return func(cfg *config) {
		cfg.noSandbox = noSandbox
	}
}

// WithPersistentBrowser reuses a single browser process across exports
// instead of launching one per request.
func WithPersistentBrowser(persistent bool) Option {
	return func(cfg *config) {
		cfg.persistent = persistent
	}
}

// WithTimeout bounds a single export, page load included.
func WithTimeout(d time.Duration) Option {
	return func(cfg *config) {
		if d > 0 {
			cfg.timeout = d
		}
	}
}

func New(options ...Option) *Exporter {
	cfg := config{timeout: defaultTimeout}
	for _, opt := range options {
		opt(&cfg)
	}

	x := &Exporter{cfg: cfg}
	x.newSession = func() (session, error) {
		return newRodSession(x.cfg)
	}
	return x
}

// ExportPDF converts the HTML document to PDF bytes. Any failure is
// reported as types.ErrRenderFailed. The browser session is released on
// every exit path unless the exporter runs in persistent mode.
func (x *Exporter) ExportPDF(ctx context.Context, html string) ([]byte, error) {
	htmlPath, cleanup, err := writeTempHTML(html)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	if x.cfg.persistent {
		sess, err := x.keptSession()
		if err != nil {
			return nil, err
		}
		return sess.Render(ctx, htmlPath)
	}

	sess, err := x.newSession()
	if err != nil {
		return nil, goerr.Wrap(types.ErrRenderFailed, "failed to start browser session", goerr.V("cause", err.Error()))
	}
	defer safe.Close(sess)

	return sess.Render(ctx, htmlPath)
}

// keptSession lazily starts the shared browser in persistent mode.
func (x *Exporter) keptSession() (session, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.kept != nil {
		return x.kept, nil
	}

	sess, err := x.newSession()
	if err != nil {
		return nil, goerr.Wrap(types.ErrRenderFailed, "failed to start browser session", goerr.V("cause", err.Error()))
	}
	x.kept = sess
	return sess, nil
}

// Close terminates the shared browser if persistent mode started one.
func (x *Exporter) Close() error {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.kept == nil {
		return nil
	}
	err := x.kept.Close()
	x.kept = nil
	return err
}
