package config

import (
	"log/slog"

	"github.com/m-mizutani/ghresume/pkg/domain/types"
	"github.com/m-mizutani/ghresume/pkg/infra/ghclient"
	"github.com/urfave/cli/v3"
)

// GitHub holds the optional API token. Without a token the service runs
// against the unauthenticated rate limit, which is logged at startup but
// not fatal.
type GitHub struct {
	token types.GitHubToken `masq:"secret"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub API token for elevated rate limits (optional)",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("GHRESUME_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
	}
}

func (x GitHub) New() (*ghclient.Client, error) {
	var options []ghclient.Option
	if x.token != "" {
		options = append(options, ghclient.WithToken(x.token))
	}
	return ghclient.New(options...)
}

func (x GitHub) HasToken() bool {
	return x.token != ""
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("Token.len", len(x.token)),
	)
}
