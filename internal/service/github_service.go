package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/go-github/github"
	"golang.org/x/oauth2"
)

var ErrGithubUserNotFound = errors.New("github user not found")

// GithubService lists a member's public repositories for the profile page.
// Requests are unauthenticated unless a token is configured.
type GithubService struct {
	client *github.Client
}

func NewGithubService(token string) *GithubService {
	var httpClient *http.Client
	if token != "" {
		httpClient = oauth2.NewClient(context.Background(),
			oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	}
	return &GithubService{client: github.NewClient(httpClient)}
}

type RepoSummary struct {
	Name        string `json:"name"`
	HTMLURL     string `json:"htmlUrl"`
	Description string `json:"description,omitempty"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	Watchers    int    `json:"watchers"`
}

// ListRepos returns the user's five earliest-created public repos
// (created ascending, page size 5).
func (s *GithubService) ListRepos(ctx context.Context, username string) ([]RepoSummary, error) {
	repos, resp, err := s.client.Repositories.List(ctx, username, &github.RepositoryListOptions{
		Sort:        "created",
		Direction:   "asc",
		ListOptions: github.ListOptions{PerPage: 5},
	})
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, ErrGithubUserNotFound
		}
		return nil, err
	}

	summaries := make([]RepoSummary, 0, len(repos))
	for _, repo := range repos {
		summaries = append(summaries, RepoSummary{
			Name:        repo.GetName(),
			HTMLURL:     repo.GetHTMLURL(),
			Description: repo.GetDescription(),
			Stars:       repo.GetStargazersCount(),
			Forks:       repo.GetForksCount(),
			Watchers:    repo.GetWatchersCount(),
		})
	}
	return summaries, nil
}
