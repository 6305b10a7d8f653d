package services

import (
	"context"
	"sort"
	"strings"

	"github.com/Zaid-maker/git-wrapped-api/internal/models"
	"github.com/Zaid-maker/git-wrapped-api/pkg/config"
)

// Repository browser sort orders
const (
	SortStars   = "stars"
	SortUpdated = "updated"
	SortName    = "name"
)

// RepositoryService serves the paginated repository browser
type RepositoryService struct {
	githubService *GitHubService
	perPageMax    int
}

func NewRepositoryService(githubService *GitHubService, cfg *config.Config) *RepositoryService {
	return &RepositoryService{
		githubService: githubService,
		perPageMax:    cfg.Stats.PerPageMax,
	}
}

// Browse returns one page of the user's repositories in the requested order
func (s *RepositoryService) Browse(ctx context.Context, username, sortOrder string, page, perPage int) (*models.RepositoryPage, error) {
	repos, err := s.githubService.ListRepositories(ctx, username)
	if err != nil {
		return nil, err
	}

	sorted := s.SortRepositories(repos, sortOrder)

	totalCount := len(sorted)
	totalPages := pageCount(totalCount, perPage)

	return &models.RepositoryPage{
		Username:     username,
		Page:         page,
		PerPage:      perPage,
		TotalCount:   totalCount,
		TotalPages:   totalPages,
		Repositories: s.paginateRepositories(sorted, page, perPage),
	}, nil
}

// SortRepositories orders a repository list without mutating the input.
// Unknown sort orders fall back to stars.
func (s *RepositoryService) SortRepositories(repos []models.Repository, sortOrder string) []models.Repository {
	sorted := make([]models.Repository, len(repos))
	copy(sorted, repos)

	switch sortOrder {
	case SortName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
		})
	case SortUpdated:
		sort.SliceStable(sorted, func(i, j int) bool {
			switch {
			case sorted[i].UpdatedAt == nil:
				return false
			case sorted[j].UpdatedAt == nil:
				return true
			default:
				return sorted[i].UpdatedAt.After(*sorted[j].UpdatedAt)
			}
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Stars > sorted[j].Stars
		})
	}

	return sorted
}

// ClampPerPage bounds a requested page size to [1, max]
func (s *RepositoryService) ClampPerPage(perPage int) int {
	if perPage < 1 {
		return 1
	}
	if perPage > s.perPageMax {
		return s.perPageMax
	}
	return perPage
}

func (s *RepositoryService) paginateRepositories(repos []models.Repository, page, perPage int) []models.Repository {
	if page < 1 || perPage < 1 {
		return []models.Repository{}
	}
	start := (page - 1) * perPage
	if start >= len(repos) {
		return []models.Repository{}
	}
	end := start + perPage
	if end > len(repos) {
		end = len(repos)
	}
	return repos[start:end]
}
