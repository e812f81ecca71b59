package model_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/ghresume/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func testProfile() *model.Profile {
	return &model.Profile{
		Login:       "octocat",
		Name:        "The Octocat",
		AvatarURL:   "https://avatars.githubusercontent.com/u/583231",
		Bio:         "I am a cat",
		Company:     "GitHub",
		Location:    "San Francisco",
		Followers:   1000,
		Following:   9,
		PublicRepos: 8,
		CreatedAt:   time.Date(2011, 1, 25, 18, 44, 36, 0, time.UTC),
		HTMLURL:     "https://github.com/octocat",
	}
}

func TestNewResume(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("copies profile fields", func(t *testing.T) {
		resume := model.NewResume(testProfile(), nil, "", now)

		gt.V(t, resume.Login).Equal("octocat")
		gt.V(t, resume.Name).Equal("The Octocat")
		gt.V(t, resume.Bio).Equal("I am a cat")
		gt.V(t, resume.MemberSince).Equal("January 25, 2011")
		gt.V(t, resume.ProfileURL).Equal("https://github.com/octocat")
		gt.V(t, resume.GeneratedAt).Equal("Jun 15, 2024 12:00 UTC")
	})

	t.Run("substitutes placeholders for absent optional fields", func(t *testing.T) {
		profile := testProfile()
		profile.Name = ""
		profile.Bio = ""

		resume := model.NewResume(profile, nil, "", now)

		gt.V(t, resume.Name).Equal("octocat")
		gt.V(t, resume.Bio).Equal(model.PlaceholderBio)
	})

	t.Run("substitutes repository placeholders", func(t *testing.T) {
		repos := []*model.Repository{
			{Name: "empty-repo"},
		}

		resume := model.NewResume(testProfile(), repos, "", now)

		gt.A(t, resume.Repositories).Length(1)
		gt.V(t, resume.Repositories[0].Description).Equal(model.PlaceholderDescription)
		gt.V(t, resume.Repositories[0].Language).Equal(model.PlaceholderLanguage)
	})

	t.Run("has readme only when fragment is set", func(t *testing.T) {
		without := model.NewResume(testProfile(), nil, "", now)
		gt.V(t, without.HasReadme()).Equal(false)

		with := model.NewResume(testProfile(), nil, "<p>hello</p>", now)
		gt.V(t, with.HasReadme()).Equal(true)
		gt.V(t, with.ReadmeHTML).Equal("<p>hello</p>")
	})
}

func TestTopRepositories(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("truncates to top 10 by stars descending", func(t *testing.T) {
		repos := make([]*model.Repository, 0, 15)
		for i := 0; i < 15; i++ {
			repos = append(repos, &model.Repository{
				Name:  fmt.Sprintf("repo-%02d", i),
				Stars: i,
			})
		}

		resume := model.NewResume(testProfile(), repos, "", now)

		gt.A(t, resume.Repositories).Length(model.MaxRepositories)
		gt.V(t, resume.Repositories[0].Stars).Equal(14)
		gt.V(t, resume.Repositories[9].Stars).Equal(5)

		for i := 1; i < len(resume.Repositories); i++ {
			gt.V(t, resume.Repositories[i-1].Stars >= resume.Repositories[i].Stars).Equal(true)
		}

		// Every entry must come from the input list.
		names := map[string]bool{}
		for _, repo := range repos {
			names[repo.Name] = true
		}
		for _, summary := range resume.Repositories {
			gt.V(t, names[summary.Name]).Equal(true)
		}
	})

	t.Run("keeps all repositories when fewer than 10", func(t *testing.T) {
		repos := []*model.Repository{
			{Name: "alpha", Stars: 3},
			{Name: "bravo", Stars: 7},
			{Name: "charlie", Stars: 1},
		}

		resume := model.NewResume(testProfile(), repos, "", now)

		gt.A(t, resume.Repositories).Length(3)
		gt.V(t, resume.Repositories[0].Name).Equal("bravo")
		gt.V(t, resume.Repositories[1].Name).Equal("alpha")
		gt.V(t, resume.Repositories[2].Name).Equal("charlie")
	})

	t.Run("stable sort keeps API order on star ties", func(t *testing.T) {
		repos := []*model.Repository{
			{Name: "first", Stars: 5},
			{Name: "second", Stars: 5},
			{Name: "third", Stars: 5},
		}

		resume := model.NewResume(testProfile(), repos, "", now)

		gt.V(t, resume.Repositories[0].Name).Equal("first")
		gt.V(t, resume.Repositories[1].Name).Equal("second")
		gt.V(t, resume.Repositories[2].Name).Equal("third")
	})

	t.Run("does not mutate the input list", func(t *testing.T) {
		repos := []*model.Repository{
			{Name: "low", Stars: 1},
			{Name: "high", Stars: 9},
		}

		_ = model.NewResume(testProfile(), repos, "", now)

		gt.V(t, repos[0].Name).Equal("low")
		gt.V(t, repos[1].Name).Equal("high")
	})
}
