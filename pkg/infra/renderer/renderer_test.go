package renderer_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/ghresume/pkg/domain/model"
	"github.com/m-mizutani/ghresume/pkg/domain/types"
	"github.com/m-mizutani/ghresume/pkg/infra/renderer"
	"github.com/m-mizutani/gt"
)

func testResume() *model.Resume {
	profile := &model.Profile{
		Login:       "octocat",
		Name:        "The Octocat",
		AvatarURL:   "https://avatars.githubusercontent.com/u/583231",
		Bio:         "I am a cat",
		Location:    "San Francisco",
		Followers:   1000,
		PublicRepos: 8,
		CreatedAt:   time.Date(2011, 1, 25, 18, 44, 36, 0, time.UTC),
		HTMLURL:     "https://github.com/octocat",
	}
	repos := []*model.Repository{
		{Name: "hello-world", Description: "My first repo", Stars: 42, Forks: 9, Language: "Go", HTMLURL: "https://github.com/octocat/hello-world"},
	}
	return model.NewResume(profile, repos, "", time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
}

func TestRenderResume(t *testing.T) {
	ctx := context.Background()
	r := renderer.New()

	t.Run("preview variant includes download affordance", func(t *testing.T) {
		html := gt.R1(r.RenderResume(ctx, testResume(), types.RenderVariantPreview)).NoError(t)

		gt.V(t, strings.Contains(html, "/pdf?username=octocat")).Equal(true)
		gt.V(t, strings.Contains(html, "Download PDF")).Equal(true)
	})

	t.Run("document variant has no download affordance", func(t *testing.T) {
		html := gt.R1(r.RenderResume(ctx, testResume(), types.RenderVariantDocument)).NoError(t)

		gt.V(t, strings.Contains(html, "Download PDF")).Equal(false)
	})

	t.Run("renders profile and repositories", func(t *testing.T) {
		html := gt.R1(r.RenderResume(ctx, testResume(), types.RenderVariantDocument)).NoError(t)

		gt.V(t, strings.Contains(html, "The Octocat")).Equal(true)
		gt.V(t, strings.Contains(html, "@octocat")).Equal(true)
		gt.V(t, strings.Contains(html, "hello-world")).Equal(true)
		gt.V(t, strings.Contains(html, "January 25, 2011")).Equal(true)
	})

	t.Run("inlines the stylesheet", func(t *testing.T) {
		html := gt.R1(r.RenderResume(ctx, testResume(), types.RenderVariantDocument)).NoError(t)

		gt.V(t, strings.Contains(html, "<style>")).Equal(true)
		gt.V(t, strings.Contains(html, ".resume")).Equal(true)
	})

	t.Run("escapes profile text fields", func(t *testing.T) {
		resume := testResume()
		resume.Bio = `<script>alert("bio")</script>`

		html := gt.R1(r.RenderResume(ctx, resume, types.RenderVariantDocument)).NoError(t)

		gt.V(t, strings.Contains(html, "<script>alert")).Equal(false)
	})

	t.Run("embeds sanitized readme fragment verbatim", func(t *testing.T) {
		resume := testResume()
		resume.ReadmeHTML = "<p>Hi, I build <strong>things</strong></p>"

		html := gt.R1(r.RenderResume(ctx, resume, types.RenderVariantDocument)).NoError(t)

		gt.V(t, strings.Contains(html, "<p>Hi, I build <strong>things</strong></p>")).Equal(true)
	})

	t.Run("omits readme section when absent", func(t *testing.T) {
		html := gt.R1(r.RenderResume(ctx, testResume(), types.RenderVariantDocument)).NoError(t)

		gt.V(t, strings.Contains(html, `class="readme"`)).Equal(false)
	})
}
