package services

import (
	"context"
	"sync"

	"github.com/Zaid-maker/git-wrapped-api/internal/models"
	"github.com/Zaid-maker/git-wrapped-api/pkg/config"
	"github.com/Zaid-maker/git-wrapped-api/pkg/logger"
)

// Network leaderboard metrics
const (
	MetricConnections = "connections"
	MetricCommits     = "commits"
	MetricStreak      = "streak"
	MetricStars       = "stars"
)

// NetworkService builds the followers/following leaderboard for a user.
// Member snapshots are fetched concurrently with a bounded fan-out; the
// fetch order does not matter because ranking happens over the collected
// set afterwards.
type NetworkService struct {
	githubService  *GitHubService
	wrappedService *WrappedService
	statsService   *StatisticsService
	concurrency    int
}

func NewNetworkService(githubService *GitHubService, wrappedService *WrappedService, statsService *StatisticsService, cfg *config.Config) *NetworkService {
	return &NetworkService{
		githubService:  githubService,
		wrappedService: wrappedService,
		statsService:   statsService,
		concurrency:    cfg.Stats.NetworkConcurrency,
	}
}

// BuildNetwork produces one page of the network leaderboard for a username.
// Members are the union of followers and following; the requested page of
// members is fetched and ranked, and the aggregate averages cover exactly
// that page.
func (s *NetworkService) BuildNetwork(ctx context.Context, username, metric string, page, perPage int) (*models.NetworkPage, error) {
	var (
		wg           sync.WaitGroup
		followers    []models.NetworkUser
		following    []models.NetworkUser
		followerErr  error
		followingErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		followers, followerErr = s.githubService.ListFollowers(ctx, username)
	}()
	go func() {
		defer wg.Done()
		following, followingErr = s.githubService.ListFollowing(ctx, username)
	}()
	wg.Wait()

	if followerErr != nil {
		return nil, followerErr
	}
	if followingErr != nil {
		return nil, followingErr
	}

	followerSet := loginSet(followers)
	followingSet := loginSet(following)
	members := unionMembers(followers, following)

	totalCount := len(members)
	totalPages := pageCount(totalCount, perPage)
	pageMembers := paginate(members, page, perPage)

	snapshots := s.fetchSnapshots(ctx, pageMembers)

	entries := make([]models.LeaderboardEntry, 0, len(snapshots))
	for _, snapshot := range snapshots {
		entries = append(entries, models.LeaderboardEntry{
			Username:       snapshot.Username,
			Value:          metricValue(snapshot, metric),
			AvatarURL:      snapshot.AvatarURL,
			ConnectionType: s.statsService.ClassifyConnection(snapshot.Username, followerSet, followingSet),
		})
	}

	if metric == MetricConnections {
		entries = s.statsService.RankNetworkMembers(entries)
	} else {
		entries = rankByValue(s.statsService, snapshots, entries, metric)
	}

	return &models.NetworkPage{
		Username:   username,
		Metric:     metric,
		Page:       page,
		PerPage:    perPage,
		TotalCount: totalCount,
		TotalPages: totalPages,
		Entries:    entries,
		Aggregate:  s.statsService.NetworkAverages(snapshots),
	}, nil
}

// fetchSnapshots fans out per-member snapshot fetches, bounded by the
// configured concurrency. Members whose fetch fails are logged and skipped
// rather than failing the whole page.
func (s *NetworkService) fetchSnapshots(ctx context.Context, members []models.NetworkUser) []models.UserStatsSnapshot {
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		snapshots []models.UserStatsSnapshot
	)

	sem := make(chan struct{}, s.concurrency)
	for _, member := range members {
		wg.Add(1)
		go func(member models.NetworkUser) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			snapshot, err := s.wrappedService.Snapshot(ctx, member.Login)
			if err != nil {
				logger.WithError(err).Warnf("skipping network member %s", member.Login)
				return
			}

			mu.Lock()
			snapshots = append(snapshots, *snapshot)
			mu.Unlock()
		}(member)
	}
	wg.Wait()

	return snapshots
}

// ValidMetric reports whether the metric name is one the leaderboard knows
func ValidMetric(metric string) bool {
	switch metric {
	case MetricConnections, MetricCommits, MetricStreak, MetricStars:
		return true
	}
	return false
}

// metricValue selects the snapshot field for a metric
func metricValue(snapshot models.UserStatsSnapshot, metric string) int {
	switch metric {
	case MetricStreak:
		return snapshot.LongestStreak
	case MetricStars:
		return snapshot.StarsEarned
	default:
		return snapshot.TotalCommits
	}
}

// rankByValue builds a single-metric leaderboard but keeps the connection
// classification already computed for each entry.
func rankByValue(stats *StatisticsService, snapshots []models.UserStatsSnapshot, classified []models.LeaderboardEntry, metric string) []models.LeaderboardEntry {
	connections := make(map[string]models.ConnectionType, len(classified))
	for _, entry := range classified {
		connections[entry.Username] = entry.ConnectionType
	}

	ranked := stats.BuildLeaderboard(snapshots, func(u models.UserStatsSnapshot) int {
		return metricValue(u, metric)
	})
	for i := range ranked {
		ranked[i].ConnectionType = connections[ranked[i].Username]
	}

	return ranked
}

// loginSet indexes network users by login for classification lookups
func loginSet(users []models.NetworkUser) map[string]bool {
	set := make(map[string]bool, len(users))
	for _, user := range users {
		set[user.Login] = true
	}
	return set
}

// unionMembers merges followers and following, keeping first-seen order
func unionMembers(followers, following []models.NetworkUser) []models.NetworkUser {
	seen := make(map[string]bool, len(followers)+len(following))
	var members []models.NetworkUser
	for _, user := range append(append([]models.NetworkUser{}, followers...), following...) {
		if seen[user.Login] {
			continue
		}
		seen[user.Login] = true
		members = append(members, user)
	}
	return members
}

// paginate slices one page out of the member list; out-of-range pages are
// empty, not an error.
func paginate(members []models.NetworkUser, page, perPage int) []models.NetworkUser {
	if page < 1 || perPage < 1 {
		return nil
	}
	start := (page - 1) * perPage
	if start >= len(members) {
		return nil
	}
	end := start + perPage
	if end > len(members) {
		end = len(members)
	}
	return members[start:end]
}

// pageCount returns the number of pages needed for count items
func pageCount(count, perPage int) int {
	if perPage < 1 {
		return 0
	}
	pages := count / perPage
	if count%perPage != 0 {
		pages++
	}
	return pages
}
