package ghclient

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/ghresume/pkg/domain/interfaces"
	"github.com/m-mizutani/ghresume/pkg/domain/model"
	"github.com/m-mizutani/ghresume/pkg/domain/types"
	"github.com/m-mizutani/ghresume/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

// userAgent identifies this client to the GitHub API.
const userAgent = "ghresume"

// reposPerPage is the page size for repository listing.
const reposPerPage = 100

// Client fetches public profile data from the GitHub REST API. A token is
// optional; without one, requests run against the unauthenticated rate
// limit.
type Client struct {
	gh *github.Client
}

var _ interfaces.GitHubClient = (*Client)(nil)

type config struct {
	token      types.GitHubToken
	httpClient *http.Client
	baseURL    string
}

type Option func(*config)

// WithToken attaches a bearer token to every outbound request for elevated
// rate limits.
func WithToken(token types.GitHubToken) Option {
	return func(cfg *config) {
		cfg.token = token
	}
}

// WithHTTPClient replaces the underlying HTTP client. Mainly for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = httpClient
	}
}

// WithBaseURL points the client at a different API endpoint. Mainly for
// tests against httptest servers. A trailing slash is appended when missing.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) {
		cfg.baseURL = baseURL
	}
}

func New(options ...Option) (*Client, error) {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	httpClient := cfg.httpClient
	if cfg.token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: string(cfg.token),
		})
		ctx := context.Background()
		if httpClient != nil {
			ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
		}
		httpClient = oauth2.NewClient(ctx, src)
	}

	gh := github.NewClient(httpClient)
	gh.UserAgent = userAgent

	if cfg.baseURL != "" {
		if cfg.baseURL[len(cfg.baseURL)-1] != '/' {
			cfg.baseURL += "/"
		}
		u, err := url.Parse(cfg.baseURL)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid base URL", goerr.V("url", cfg.baseURL))
		}
		gh.BaseURL = u
	}

	return &Client{gh: gh}, nil
}

// GetUser fetches the user's public profile. An upstream 404 is mapped to
// types.ErrUserNotFound; every other failure becomes types.ErrUpstream.
func (x *Client) GetUser(ctx context.Context, user types.GitHubUser) (*model.Profile, error) {
	ghUser, resp, err := x.gh.Users.Get(ctx, string(user))
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, goerr.Wrap(types.ErrUserNotFound, "user does not exist", goerr.V("username", user))
		}
		return nil, goerr.Wrap(types.ErrUpstream, "failed to get user", goerr.V("username", user), goerr.V("cause", err.Error()))
	}

	profile := &model.Profile{
		Login:       types.GitHubUser(ghUser.GetLogin()),
		Name:        ghUser.GetName(),
		AvatarURL:   ghUser.GetAvatarURL(),
		Bio:         ghUser.GetBio(),
		Company:     ghUser.GetCompany(),
		Location:    ghUser.GetLocation(),
		Email:       ghUser.GetEmail(),
		Blog:        ghUser.GetBlog(),
		Followers:   ghUser.GetFollowers(),
		Following:   ghUser.GetFollowing(),
		PublicRepos: ghUser.GetPublicRepos(),
		CreatedAt:   ghUser.GetCreatedAt().Time,
		HTMLURL:     ghUser.GetHTMLURL(),
	}

	logging.From(ctx).Debug("fetched github profile",
		slog.Any("username", user),
		slog.Int("public_repos", profile.PublicRepos),
	)

	return profile, nil
}

// ListRepositories fetches all public repositories owned by the user,
// preserving the API's ordering.
func (x *Client) ListRepositories(ctx context.Context, user types.GitHubUser) ([]*model.Repository, error) {
	var allRepos []*model.Repository
	opts := &github.RepositoryListOptions{
		Type:        "owner",
		ListOptions: github.ListOptions{PerPage: reposPerPage},
	}

	for {
		result, resp, err := x.gh.Repositories.List(ctx, string(user), opts)
		if err != nil {
			if resp != nil && resp.StatusCode == http.StatusNotFound {
				return nil, goerr.Wrap(types.ErrUserNotFound, "user does not exist", goerr.V("username", user))
			}
			return nil, goerr.Wrap(types.ErrUpstream, "failed to list repositories", goerr.V("username", user), goerr.V("cause", err.Error()))
		}

		for _, repo := range result {
			allRepos = append(allRepos, &model.Repository{
				Name:        repo.GetName(),
				Description: repo.GetDescription(),
				Stars:       repo.GetStargazersCount(),
				Forks:       repo.GetForksCount(),
				Language:    repo.GetLanguage(),
				HTMLURL:     repo.GetHTMLURL(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.From(ctx).Debug("listed github repositories",
		slog.Any("username", user),
		slog.Int("count", len(allRepos)),
	)

	return allRepos, nil
}

// GetProfileReadme fetches the README of the repository named after the
// user (the profile-README convention) as raw markdown. go-github decodes
// the base64 content.
func (x *Client) GetProfileReadme(ctx context.Context, user types.GitHubUser) (string, error) {
	readme, _, err := x.gh.Repositories.GetReadme(ctx, string(user), string(user), nil)
	if err != nil {
		return "", goerr.Wrap(types.ErrUpstream, "failed to get profile readme", goerr.V("username", user), goerr.V("cause", err.Error()))
	}

	content, err := readme.GetContent()
	if err != nil {
		return "", goerr.Wrap(types.ErrUpstream, "failed to decode profile readme", goerr.V("username", user), goerr.V("cause", err.Error()))
	}

	return content, nil
}
