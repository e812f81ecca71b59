package model

import (
	"sort"
	"time"

	"github.com/m-mizutani/ghresume/pkg/domain/types"
)

// Placeholder strings substituted for optional profile fields the API left
// empty. Company, location, email and blog stay empty; the template omits
// their rows instead.
const (
	PlaceholderBio         = "This user has not written a bio yet."
	PlaceholderDescription = "No description provided."
	PlaceholderLanguage    = "Not specified"
)

// MaxRepositories is the number of repositories shown on a resume.
const MaxRepositories = 10

// memberSinceFormat renders the account creation date, e.g. "March 9, 2013".
const memberSinceFormat = "January 2, 2006"

const generatedAtFormat = "Jan 2, 2006 15:04 MST"

// RepositorySummary is the template-ready projection of one repository.
type RepositorySummary struct {
	Name        string
	Description string
	Stars       int
	Forks       int
	Language    string
	HTMLURL     string
}

// Resume is the flat record consumed by the template renderer. All optional
// fields are already substituted; the template never branches on nil.
type Resume struct {
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
	MemberSince string
	ProfileURL  string

	Repositories []RepositorySummary

	// ReadmeHTML is the sanitized profile README fragment. Empty when the
	// user has no profile README or its fetch failed.
	ReadmeHTML string

	GeneratedAt string
}

// NewResume builds the view model from a fetched profile, its repository
// list and an optional sanitized README fragment. Pure transformation:
// placeholder substitution, stable top-N selection by stars, and date
// formatting.
func NewResume(profile *Profile, repos []*Repository, readmeHTML string, now time.Time) *Resume {
	resume := &Resume{
		Login:       profile.Login,
		Name:        profile.Name,
		AvatarURL:   profile.AvatarURL,
		Bio:         profile.Bio,
		Company:     profile.Company,
		Location:    profile.Location,
		Email:       profile.Email,
		Blog:        profile.Blog,
		Followers:   profile.Followers,
		Following:   profile.Following,
		PublicRepos: profile.PublicRepos,
		MemberSince: profile.CreatedAt.Format(memberSinceFormat),
		ProfileURL:  profile.HTMLURL,
		ReadmeHTML:  readmeHTML,
		GeneratedAt: now.Format(generatedAtFormat),
	}

	if resume.Name == "" {
		resume.Name = string(profile.Login)
	}
	if resume.Bio == "" {
		resume.Bio = PlaceholderBio
	}

	resume.Repositories = topRepositories(repos)

	return resume
}

// HasReadme reports whether the resume carries a profile README section.
func (x *Resume) HasReadme() bool {
	return x.ReadmeHTML != ""
}

// topRepositories selects the MaxRepositories highest-starred repositories.
// The sort is stable so ties keep the API's original ordering.
func topRepositories(repos []*Repository) []RepositorySummary {
	sorted := make([]*Repository, len(repos))
	copy(sorted, repos)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Stars > sorted[j].Stars
	})

	if len(sorted) > MaxRepositories {
		sorted = sorted[:MaxRepositories]
	}

	summaries := make([]RepositorySummary, 0, len(sorted))
	for _, repo := range sorted {
		summary := RepositorySummary{
			Name:        repo.Name,
			Description: repo.Description,
			Stars:       repo.Stars,
			Forks:       repo.Forks,
			Language:    repo.Language,
			HTMLURL:     repo.HTMLURL,
		}
		if summary.Description == "" {
			summary.Description = PlaceholderDescription
		}
		if summary.Language == "" {
			summary.Language = PlaceholderLanguage
		}
		summaries = append(summaries, summary)
	}

	return summaries
}
