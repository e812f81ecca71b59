package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ghresume/pkg/domain/model"
	"github.com/m-mizutani/ghresume/pkg/domain/types"
	"github.com/m-mizutani/ghresume/pkg/utils/logging"
)

// Preview builds the resume and renders it as HTML with the download
// affordance, for display in a browser.
func (x *UseCase) Preview(ctx context.Context, user types.GitHubUser) (string, error) {
	resume, err := x.buildResume(ctx, user)
	if err != nil {
		return "", err
	}

	return x.clients.Renderer().RenderResume(ctx, resume, types.RenderVariantPreview)
}

// ExportPDF builds the resume, renders the final document variant, and
// rasterizes it to PDF bytes.
func (x *UseCase) ExportPDF(ctx context.Context, user types.GitHubUser) ([]byte, error) {
	resume, err := x.buildResume(ctx, user)
	if err != nil {
		return nil, err
	}

	html, err := x.clients.Renderer().RenderResume(ctx, resume, types.RenderVariantDocument)
	if err != nil {
		return nil, err
	}

	return x.clients.PDFExporter().ExportPDF(ctx, html)
}

// buildResume fetches profile and repositories (both must succeed), picks
// up the optional profile README, and assembles the view model.
func (x *UseCase) buildResume(ctx context.Context, user types.GitHubUser) (*model.Resume, error) {
	profile, err := x.clients.GitHub().GetUser(ctx, user)
	if err != nil {
		return nil, err
	}

	repos, err := x.clients.GitHub().ListRepositories(ctx, user)
	if err != nil {
		return nil, err
	}

	readmeHTML := x.fetchProfileReadme(ctx, user)

	return model.NewResume(profile, repos, readmeHTML, logging.CtxTime(ctx)), nil
}

// fetchProfileReadme returns the sanitized README fragment, or an empty
// string on any failure. The README is supplementary content; a missing
// repository, a transient network error, and a decode failure all degrade
// the same way and never fail the pipeline. The cause is logged at debug
// level so transient upstream errors stay observable.
func (x *UseCase) fetchProfileReadme(ctx context.Context, user types.GitHubUser) string {
	markdown, err := x.clients.GitHub().GetProfileReadme(ctx, user)
	if err != nil {
		logging.From(ctx).Debug("no profile readme available",
			slog.Any("username", user),
			slog.Any("error", err),
		)
		return ""
	}
	if markdown == "" {
		return ""
	}

	html, err := x.clients.Renderer().MarkdownToHTML(ctx, markdown)
	if err != nil {
		logging.From(ctx).Debug("failed to render profile readme",
			slog.Any("username", user),
			slog.Any("error", err),
		)
		return ""
	}

	return html
}
