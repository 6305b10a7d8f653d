package services

import (
	"context"
	"sync"
	"time"

	"github.com/Zaid-maker/git-wrapped-api/internal/models"
	"github.com/Zaid-maker/git-wrapped-api/pkg/config"
)

// WrappedService assembles the full dashboard payload for a user. It fetches
// the profile, repository list and contribution calendar concurrently, then
// hands everything to the statistics service. All results are request-scoped.
type WrappedService struct {
	githubService *GitHubService
	statsService  *StatisticsService
	topLanguages  int
}

func NewWrappedService(githubService *GitHubService, statsService *StatisticsService, cfg *config.Config) *WrappedService {
	return &WrappedService{
		githubService: githubService,
		statsService:  statsService,
		topLanguages:  cfg.Stats.TopLanguages,
	}
}

// BuildWrapped produces the wrapped dashboard for a username
func (s *WrappedService) BuildWrapped(ctx context.Context, username string) (*models.WrappedStats, error) {
	var (
		wg       sync.WaitGroup
		user     *models.GitHubUser
		repos    []models.Repository
		days     []models.ContributionDay
		total    int
		userErr  error
		repoErr  error
		daysErr  error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		user, userErr = s.githubService.GetUser(ctx, username)
	}()
	go func() {
		defer wg.Done()
		repos, repoErr = s.githubService.ListRepositories(ctx, username)
	}()
	go func() {
		defer wg.Done()
		days, total, daysErr = s.githubService.GetContributionDays(ctx, username)
	}()
	wg.Wait()

	if userErr != nil {
		return nil, userErr
	}
	if repoErr != nil {
		return nil, repoErr
	}
	if daysErr != nil {
		return nil, daysErr
	}

	wrapped := &models.WrappedStats{
		User:              *user,
		TotalCommits:      total,
		LongestStreak:     s.statsService.LongestStreak(days),
		CurrentStreak:     s.statsService.CurrentStreak(days),
		MostActiveWeekday: s.statsService.MostActiveWeekday(days),
		MostActiveMonth:   s.statsService.MostActiveMonth(days),
		Repositories:      s.statsService.AggregateRepositoryStats(repos, s.topLanguages),
		Calendar:          s.statsService.BuildCalendar(username, days),
		GeneratedAt:       time.Now().UTC(),
	}
	wrapped.CommitRank = s.statsService.CommitRank(wrapped.TotalCommits)

	return wrapped, nil
}

// BuildCalendar produces only the heat-map payload for a username
func (s *WrappedService) BuildCalendar(ctx context.Context, username string) (*models.ContributionCalendar, error) {
	days, _, err := s.githubService.GetContributionDays(ctx, username)
	if err != nil {
		return nil, err
	}

	calendar := s.statsService.BuildCalendar(username, days)
	return &calendar, nil
}

// Snapshot produces the lightweight per-user statistics record used by the
// network leaderboard.
func (s *WrappedService) Snapshot(ctx context.Context, username string) (*models.UserStatsSnapshot, error) {
	var (
		wg      sync.WaitGroup
		user    *models.GitHubUser
		repos   []models.Repository
		days    []models.ContributionDay
		total   int
		userErr error
		repoErr error
		daysErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		user, userErr = s.githubService.GetUser(ctx, username)
	}()
	go func() {
		defer wg.Done()
		repos, repoErr = s.githubService.ListRepositories(ctx, username)
	}()
	go func() {
		defer wg.Done()
		days, total, daysErr = s.githubService.GetContributionDays(ctx, username)
	}()
	wg.Wait()

	if userErr != nil {
		return nil, userErr
	}
	if repoErr != nil {
		return nil, repoErr
	}
	if daysErr != nil {
		return nil, daysErr
	}

	repoStats := s.statsService.AggregateRepositoryStats(repos, 0)

	return &models.UserStatsSnapshot{
		Username:      user.Login,
		AvatarURL:     user.AvatarURL,
		TotalCommits:  total,
		LongestStreak: s.statsService.LongestStreak(days),
		CurrentStreak: s.statsService.CurrentStreak(days),
		StarsEarned:   repoStats.TotalStars,
		Followers:     user.Followers,
		Following:     user.Following,
	}, nil
}
