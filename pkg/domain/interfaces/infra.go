package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubClient Renderer PDFExporter

import (
	"context"

	"github.com/m-mizutani/ghresume/pkg/domain/model"
	"github.com/m-mizutani/ghresume/pkg/domain/types"
)

// GitHubClient fetches public profile data from the GitHub REST API.
type GitHubClient interface {
	// GetUser returns the public profile, or types.ErrUserNotFound when
	// GitHub reports the user does not exist.
	GetUser(ctx context.Context, user types.GitHubUser) (*model.Profile, error)

	// ListRepositories returns all public repositories owned by the user,
	// in the API's original order.
	ListRepositories(ctx context.Context, user types.GitHubUser) ([]*model.Repository, error)

	// GetProfileReadme returns the raw markdown of the profile README
	// (the repository named after the user). Callers treat any error as
	// "no README"; this path never fails the pipeline.
	GetProfileReadme(ctx context.Context, user types.GitHubUser) (string, error)
}

// Renderer turns markdown and view models into HTML.
type Renderer interface {
	// MarkdownToHTML converts untrusted markdown into a sanitized HTML
	// fragment safe to embed in the resume document.
	MarkdownToHTML(ctx context.Context, markdown string) (string, error)

	// RenderResume renders the resume view model into a full HTML document.
	RenderResume(ctx context.Context, resume *model.Resume, variant types.RenderVariant) (string, error)
}

// PDFExporter rasterizes a rendered HTML document into PDF bytes.
type PDFExporter interface {
	ExportPDF(ctx context.Context, html string) ([]byte, error)
}
