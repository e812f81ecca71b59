package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption = goerr.New("invalid option")

	// ErrUserNotFound is returned when GitHub reports the requested user
	// does not exist. Mapped to HTTP 404 by the server.
	ErrUserNotFound = goerr.New("github user not found")

	// ErrUpstream covers every other GitHub API failure: network errors,
	// rate limiting, and non-2xx responses other than 404.
	ErrUpstream = goerr.New("github api request failed")

	// ErrRenderFailed covers template rendering and PDF export failures.
	ErrRenderFailed = goerr.New("resume rendering failed")
)
