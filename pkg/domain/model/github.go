package model

import (
	"time"

	"github.com/m-mizutani/ghresume/pkg/domain/types"
)

// Profile represents a GitHub user's public profile as returned by the API.
// Optional fields are kept as-is; placeholder substitution happens when the
// view model is built.
type Profile struct {
	Login       types.GitHubUser
	Name        string
	AvatarURL   string
	Bio         string
	Company     string
	Location    string
	Email       string
	Blog        string
	Followers   int
	Following   int
	PublicRepos int
	CreatedAt   time.Time
	HTMLURL     string
}

// Repository represents one public repository of the profile owner.
type Repository struct {
	Name        string
	Description string
	Stars       int
	Forks       int
	Language    string
	HTMLURL     string
}
