package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Zaid-maker/git-wrapped-api/internal/models"
	"github.com/Zaid-maker/git-wrapped-api/pkg/config"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// GitHubService fetches profiles, repositories, network lists and
// contribution calendars from the GitHub REST and GraphQL APIs. The client
// is constructed explicitly from the supplied configuration; there is no
// package-level client or ambient token.
type GitHubService struct {
	client     *github.Client
	httpClient *http.Client
	graphqlURL string
	limiter    *rate.Limiter
}

func NewGitHubService(cfg *config.Config) *GitHubService {
	ctx := context.Background()

	httpClient := http.DefaultClient
	if cfg.GitHub.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.GitHub.Token})
		httpClient = oauth2.NewClient(ctx, ts)
	}

	return &GitHubService{
		client:     github.NewClient(httpClient),
		httpClient: httpClient,
		graphqlURL: cfg.GitHub.GraphQLURL,
		limiter:    rate.NewLimiter(rate.Limit(cfg.GitHub.RequestsPerSecond), cfg.GitHub.Burst),
	}
}

// GetUser retrieves the profile of a GitHub user
func (s *GitHubService) GetUser(ctx context.Context, username string) (*models.GitHubUser, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	user, resp, err := s.client.Users.Get(ctx, username)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("user %q: %w", username, ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to get user %q: %w", username, err)
	}

	return convertUser(user), nil
}

// ListRepositories fetches every public repository owned by the user
func (s *GitHubService) ListRepositories(ctx context.Context, username string) ([]models.Repository, error) {
	opt := &github.RepositoryListOptions{
		Type:        "owner",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var all []models.Repository
	for {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		repos, resp, err := s.client.Repositories.List(ctx, username, opt)
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories for %q: %w", username, err)
		}
		for _, repo := range repos {
			all = append(all, convertRepository(repo))
		}
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	return all, nil
}

// ListFollowers fetches the user's followers
func (s *GitHubService) ListFollowers(ctx context.Context, username string) ([]models.NetworkUser, error) {
	opt := &github.ListOptions{PerPage: 100}

	var all []models.NetworkUser
	for {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		users, resp, err := s.client.Users.ListFollowers(ctx, username, opt)
		if err != nil {
			return nil, fmt.Errorf("failed to list followers for %q: %w", username, err)
		}
		for _, user := range users {
			all = append(all, models.NetworkUser{
				Login:     user.GetLogin(),
				AvatarURL: user.GetAvatarURL(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	return all, nil
}

// ListFollowing fetches the users the given user follows
func (s *GitHubService) ListFollowing(ctx context.Context, username string) ([]models.NetworkUser, error) {
	opt := &github.ListOptions{PerPage: 100}

	var all []models.NetworkUser
	for {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		users, resp, err := s.client.Users.ListFollowing(ctx, username, opt)
		if err != nil {
			return nil, fmt.Errorf("failed to list following for %q: %w", username, err)
		}
		for _, user := range users {
			all = append(all, models.NetworkUser{
				Login:     user.GetLogin(),
				AvatarURL: user.GetAvatarURL(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	return all, nil
}

// contributionsQuery asks the GraphQL API for the user's contribution
// calendar over the last year.
const contributionsQuery = `query($login: String!) {
  user(login: $login) {
    contributionsCollection {
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            date
            contributionCount
            weekday
          }
        }
      }
    }
  }
}`

type graphqlRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

type contributionsResponse struct {
	Data struct {
		User *struct {
			ContributionsCollection struct {
				ContributionCalendar struct {
					TotalContributions int `json:"totalContributions"`
					Weeks              []struct {
						ContributionDays []struct {
							Date              string `json:"date"`
							ContributionCount int    `json:"contributionCount"`
							Weekday           int    `json:"weekday"`
						} `json:"contributionDays"`
					} `json:"weeks"`
				} `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// GetContributionDays retrieves the per-day contribution series for the last
// year, ordered by date ascending, together with the calendar total.
func (s *GitHubService) GetContributionDays(ctx context.Context, username string) ([]models.ContributionDay, int, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, 0, err
	}

	payload, err := json.Marshal(graphqlRequest{
		Query:     contributionsQuery,
		Variables: map[string]string{"login": username},
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to marshal contributions query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.graphqlURL, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build contributions request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query contributions for %q: %w", username, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("GitHub GraphQL API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read contributions response: %w", err)
	}

	var parsed contributionsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, 0, fmt.Errorf("failed to unmarshal contributions response: %w", err)
	}
	if len(parsed.Errors) > 0 {
		return nil, 0, fmt.Errorf("GitHub GraphQL API error: %s", parsed.Errors[0].Message)
	}
	if parsed.Data.User == nil {
		return nil, 0, fmt.Errorf("user %q: %w", username, ErrUserNotFound)
	}

	calendar := parsed.Data.User.ContributionsCollection.ContributionCalendar
	var days []models.ContributionDay
	for _, week := range calendar.Weeks {
		for _, d := range week.ContributionDays {
			date, err := time.Parse("2006-01-02", d.Date)
			if err != nil {
				continue
			}
			days = append(days, models.ContributionDay{
				Date:    date,
				Count:   d.ContributionCount,
				Weekday: d.Weekday,
			})
		}
	}

	return days, calendar.TotalContributions, nil
}

// convertUser maps a go-github user to our model, applying defaults for
// optional fields at the boundary.
func convertUser(user *github.User) *models.GitHubUser {
	converted := &models.GitHubUser{
		Login:       user.GetLogin(),
		Name:        user.GetName(),
		AvatarURL:   user.GetAvatarURL(),
		Bio:         user.GetBio(),
		Followers:   user.GetFollowers(),
		Following:   user.GetFollowing(),
		PublicRepos: user.GetPublicRepos(),
	}
	if user.CreatedAt != nil {
		converted.CreatedAt = &user.CreatedAt.Time
	}
	return converted
}

// convertRepository maps a go-github repository to our model
func convertRepository(repo *github.Repository) models.Repository {
	converted := models.Repository{
		Name:     repo.GetName(),
		FullName: repo.GetFullName(),
		Stars:    repo.GetStargazersCount(),
		Forks:    repo.GetForksCount(),
		HTMLURL:  repo.GetHTMLURL(),
		Fork:     repo.GetFork(),
	}
	if repo.Description != nil {
		converted.Description = repo.Description
	}
	if repo.Language != nil {
		converted.Language = repo.Language
	}
	if repo.UpdatedAt != nil {
		converted.UpdatedAt = &repo.UpdatedAt.Time
	}
	return converted
}
