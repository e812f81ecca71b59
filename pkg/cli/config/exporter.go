package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/ghresume/pkg/infra/exporter"
	"github.com/urfave/cli/v3"
)

// Exporter configures the headless browser used for PDF export.
type Exporter struct {
	browserBin string
	noSandbox  bool
	persistent bool
	timeout    time.Duration
}

func (x *Exporter) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "browser-bin",
			Usage:       "Path to a Chromium/Chrome binary (downloaded automatically when empty)",
			Category:    "PDF Export",
			Destination: &x.browserBin,
			Sources:     cli.EnvVars("GHRESUME_BROWSER_BIN"),
		},
		&cli.BoolFlag{
			Name:        "no-sandbox",
			Usage:       "Disable the browser sandbox (required in most containers)",
			Category:    "PDF Export",
			Destination: &x.noSandbox,
			Sources:     cli.EnvVars("GHRESUME_NO_SANDBOX"),
		},
		&cli.BoolFlag{
			Name:        "persistent-browser",
			Usage:       "Keep one browser process alive across exports instead of per-request launch",
			Category:    "PDF Export",
			Destination: &x.persistent,
			Sources:     cli.EnvVars("GHRESUME_PERSISTENT_BROWSER"),
		},
		&cli.DurationFlag{
			Name:        "export-timeout",
			Usage:       "Upper bound for a single PDF export",
			Category:    "PDF Export",
			Destination: &x.timeout,
			Sources:     cli.EnvVars("GHRESUME_EXPORT_TIMEOUT"),
			Value:       60 * time.Second,
		},
	}
}

func (x Exporter) New() *exporter.Exporter {
	return exporter.New(
		exporter.WithBrowserBin(x.browserBin),
		exporter.WithNoSandbox(x.noSandbox),
		exporter.WithPersistentBrowser(x.persistent),
		exporter.WithTimeout(x.timeout),
	)
}

func (x Exporter) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("BrowserBin", x.browserBin),
		slog.Bool("NoSandbox", x.noSandbox),
		slog.Bool("PersistentBrowser", x.persistent),
		slog.Duration("Timeout", x.timeout),
	)
}
