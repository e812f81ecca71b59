package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/ghresume/pkg/domain/mock"
	"github.com/m-mizutani/ghresume/pkg/domain/model"
	"github.com/m-mizutani/ghresume/pkg/domain/types"
	"github.com/m-mizutani/ghresume/pkg/infra"
	"github.com/m-mizutani/ghresume/pkg/usecase"
	"github.com/m-mizutani/ghresume/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func newGitHubMock() *mock.GitHubClientMock {
	return &mock.GitHubClientMock{
		GetUserFunc: func(ctx context.Context, user types.GitHubUser) (*model.Profile, error) {
			return &model.Profile{
				Login:     user,
				Name:      "The Octocat",
				CreatedAt: time.Date(2011, 1, 25, 18, 44, 36, 0, time.UTC),
			}, nil
		},
		ListRepositoriesFunc: func(ctx context.Context, user types.GitHubUser) ([]*model.Repository, error) {
			return []*model.Repository{
				{Name: "hello-world", Stars: 42},
			}, nil
		},
		GetProfileReadmeFunc: func(ctx context.Context, user types.GitHubUser) (string, error) {
			return "# Hi there", nil
		},
	}
}

func newRendererMock() *mock.RendererMock {
	return &mock.RendererMock{
		MarkdownToHTMLFunc: func(ctx context.Context, markdown string) (string, error) {
			return "<h1>Hi there</h1>", nil
		},
		RenderResumeFunc: func(ctx context.Context, resume *model.Resume, variant types.RenderVariant) (string, error) {
			return "<html>rendered</html>", nil
		},
	}
}

func TestPreview(t *testing.T) {
	ctx := context.Background()

	t.Run("renders the preview variant", func(t *testing.T) {
		ghMock := newGitHubMock()
		rMock := newRendererMock()

		uc := usecase.New(infra.New(
			infra.WithGitHubClient(ghMock),
			infra.WithRenderer(rMock),
		))

		html := gt.R1(uc.Preview(ctx, "octocat")).NoError(t)
		gt.V(t, html).Equal("<html>rendered</html>")

		gt.A(t, rMock.RenderResumeCalls()).Length(1)
		gt.V(t, rMock.RenderResumeCalls()[0].Variant).Equal(types.RenderVariantPreview)
		gt.V(t, rMock.RenderResumeCalls()[0].Resume.Login).Equal(types.GitHubUser("octocat"))
		gt.V(t, rMock.RenderResumeCalls()[0].Resume.ReadmeHTML).Equal("<h1>Hi there</h1>")
	})

	t.Run("missing readme degrades to empty fragment", func(t *testing.T) {
		ghMock := newGitHubMock()
		ghMock.GetProfileReadmeFunc = func(ctx context.Context, user types.GitHubUser) (string, error) {
			return "", errors.New("404 not found")
		}
		rMock := newRendererMock()

		uc := usecase.New(infra.New(
			infra.WithGitHubClient(ghMock),
			infra.WithRenderer(rMock),
		))

		gt.R1(uc.Preview(ctx, "octocat")).NoError(t)

		gt.A(t, rMock.MarkdownToHTMLCalls()).Length(0)
		gt.V(t, rMock.RenderResumeCalls()[0].Resume.ReadmeHTML).Equal("")
	})

	t.Run("readme render failure degrades to empty fragment", func(t *testing.T) {
		ghMock := newGitHubMock()
		rMock := newRendererMock()
		rMock.MarkdownToHTMLFunc = func(ctx context.Context, markdown string) (string, error) {
			return "", errors.New("broken markdown")
		}

		uc := usecase.New(infra.New(
			infra.WithGitHubClient(ghMock),
			infra.WithRenderer(rMock),
		))

		gt.R1(uc.Preview(ctx, "octocat")).NoError(t)
		gt.V(t, rMock.RenderResumeCalls()[0].Resume.ReadmeHTML).Equal("")
	})

	t.Run("profile fetch failure fails the whole request", func(t *testing.T) {
		ghMock := newGitHubMock()
		ghMock.GetUserFunc = func(ctx context.Context, user types.GitHubUser) (*model.Profile, error) {
			return nil, types.ErrUserNotFound
		}
		rMock := newRendererMock()

		uc := usecase.New(infra.New(
			infra.WithGitHubClient(ghMock),
			infra.WithRenderer(rMock),
		))

		_, err := uc.Preview(ctx, "no-such-user")
		gt.Error(t, err)
		gt.V(t, errors.Is(err, types.ErrUserNotFound)).Equal(true)
		gt.A(t, rMock.RenderResumeCalls()).Length(0)
	})

	t.Run("repository fetch failure fails the whole request", func(t *testing.T) {
		ghMock := newGitHubMock()
		ghMock.ListRepositoriesFunc = func(ctx context.Context, user types.GitHubUser) ([]*model.Repository, error) {
			return nil, errors.New("rate limited")
		}
		rMock := newRendererMock()

		uc := usecase.New(infra.New(
			infra.WithGitHubClient(ghMock),
			infra.WithRenderer(rMock),
		))

		_, err := uc.Preview(ctx, "octocat")
		gt.Error(t, err)
		gt.A(t, rMock.RenderResumeCalls()).Length(0)
	})

	t.Run("uses injected clock for generation time", func(t *testing.T) {
		fixed := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
		ctx := logging.CtxWithTime(context.Background(), func() time.Time { return fixed })

		ghMock := newGitHubMock()
		rMock := newRendererMock()

		uc := usecase.New(infra.New(
			infra.WithGitHubClient(ghMock),
			infra.WithRenderer(rMock),
		))

		gt.R1(uc.Preview(ctx, "octocat")).NoError(t)
		gt.V(t, rMock.RenderResumeCalls()[0].Resume.GeneratedAt).Equal("Jun 15, 2024 12:00 UTC")
	})
}

func TestExportPDF(t *testing.T) {
	ctx := context.Background()

	t.Run("exporter receives the document variant HTML", func(t *testing.T) {
		ghMock := newGitHubMock()
		rMock := newRendererMock()
		eMock := &mock.PDFExporterMock{
			ExportPDFFunc: func(ctx context.Context, html string) ([]byte, error) {
				return []byte("%PDF-1.4"), nil
			},
		}

		uc := usecase.New(infra.New(
			infra.WithGitHubClient(ghMock),
			infra.WithRenderer(rMock),
			infra.WithPDFExporter(eMock),
		))

		pdf := gt.R1(uc.ExportPDF(ctx, "octocat")).NoError(t)
		gt.V(t, string(pdf)).Equal("%PDF-1.4")

		gt.A(t, rMock.RenderResumeCalls()).Length(1)
		gt.V(t, rMock.RenderResumeCalls()[0].Variant).Equal(types.RenderVariantDocument)
		gt.A(t, eMock.ExportPDFCalls()).Length(1)
		gt.V(t, eMock.ExportPDFCalls()[0].HTML).Equal("<html>rendered</html>")
	})

	t.Run("render failure skips the exporter", func(t *testing.T) {
		ghMock := newGitHubMock()
		rMock := newRendererMock()
		rMock.RenderResumeFunc = func(ctx context.Context, resume *model.Resume, variant types.RenderVariant) (string, error) {
			return "", errors.New("template exploded")
		}
		eMock := &mock.PDFExporterMock{
			ExportPDFFunc: func(ctx context.Context, html string) ([]byte, error) {
				return []byte("pdf"), nil
			},
		}

		uc := usecase.New(infra.New(
			infra.WithGitHubClient(ghMock),
			infra.WithRenderer(rMock),
			infra.WithPDFExporter(eMock),
		))

		_, err := uc.ExportPDF(ctx, "octocat")
		gt.Error(t, err)
		gt.A(t, eMock.ExportPDFCalls()).Length(0)
	})

	t.Run("export failure is propagated", func(t *testing.T) {
		ghMock := newGitHubMock()
		rMock := newRendererMock()
		eMock := &mock.PDFExporterMock{
			ExportPDFFunc: func(ctx context.Context, html string) ([]byte, error) {
				return nil, types.ErrRenderFailed
			},
		}

		uc := usecase.New(infra.New(
			infra.WithGitHubClient(ghMock),
			infra.WithRenderer(rMock),
			infra.WithPDFExporter(eMock),
		))

		_, err := uc.ExportPDF(ctx, "octocat")
		gt.Error(t, err)
		gt.V(t, errors.Is(err, types.ErrRenderFailed)).Equal(true)
	})
}
