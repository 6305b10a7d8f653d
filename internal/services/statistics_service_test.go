package services

import (
	"testing"
	"time"

	"github.com/Zaid-maker/git-wrapped-api/internal/models"
	"github.com/stretchr/testify/assert"
)

// day builds a contribution day n days after the fixed test origin.
func day(offset, count int) models.ContributionDay {
	origin := time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC) // a Sunday
	date := origin.AddDate(0, 0, offset)
	return models.ContributionDay{
		Date:    date,
		Count:   count,
		Weekday: int(date.Weekday()),
	}
}

func series(counts ...int) []models.ContributionDay {
	days := make([]models.ContributionDay, 0, len(counts))
	for i, count := range counts {
		days = append(days, day(i, count))
	}
	return days
}

func TestLongestStreak(t *testing.T) {
	service := NewStatisticsService()

	testCases := []struct {
		name     string
		days     []models.ContributionDay
		expected int
	}{
		{
			name:     "Empty input",
			days:     nil,
			expected: 0,
		},
		{
			name:     "All zero days",
			days:     series(0, 0, 0),
			expected: 0,
		},
		{
			name:     "Single active day",
			days:     series(1),
			expected: 1,
		},
		{
			name:     "Streak broken by zero day",
			days:     series(3, 0, 5, 2, 0),
			expected: 2, // the {5,2} run
		},
		{
			name:     "Unbroken run counts every day",
			days:     series(1, 1, 1, 1, 1),
			expected: 5,
		},
		{
			name:     "Longest run is not the last run",
			days:     series(1, 2, 3, 0, 4, 0, 1),
			expected: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, service.LongestStreak(tc.days))
		})
	}
}

func TestLongestStreakIgnoresInputOrder(t *testing.T) {
	service := NewStatisticsService()

	ordered := series(1, 1, 0, 1, 1, 1)
	shuffled := []models.ContributionDay{ordered[4], ordered[0], ordered[5], ordered[2], ordered[1], ordered[3]}

	assert.Equal(t, 3, service.LongestStreak(shuffled), "Streak must be computed over date order, not input order")
}

func TestLongestStreakMonotonicUnderAppends(t *testing.T) {
	service := NewStatisticsService()

	// Appending qualifying days never decreases the longest streak
	days := series(2, 0, 1)
	previous := service.LongestStreak(days)
	for i := 0; i < 10; i++ {
		days = append(days, day(len(days), 1))
		current := service.LongestStreak(days)
		assert.GreaterOrEqual(t, current, previous)
		previous = current
	}
	assert.Equal(t, 11, previous)
}

func TestCurrentStreak(t *testing.T) {
	service := NewStatisticsService()

	testCases := []struct {
		name     string
		days     []models.ContributionDay
		expected int
	}{
		{
			name:     "Empty input",
			days:     nil,
			expected: 0,
		},
		{
			name:     "Series ending with zero day",
			days:     series(3, 1, 0),
			expected: 0,
		},
		{
			name:     "Series ending with active run",
			days:     series(0, 2, 4, 1),
			expected: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, service.CurrentStreak(tc.days))
		})
	}
}

func TestMostActiveWeekday(t *testing.T) {
	service := NewStatisticsService()

	t.Run("Empty input returns zero value", func(t *testing.T) {
		assert.Equal(t, models.WeekdayActivity{}, service.MostActiveWeekday(nil))
	})

	t.Run("Highest weekday total wins", func(t *testing.T) {
		// 14 days starting on a Sunday: Mondays carry the load
		days := series(0, 10, 0, 0, 0, 0, 0, 0, 6, 1, 1, 1, 1, 1)

		activity := service.MostActiveWeekday(days)
		assert.Equal(t, time.Monday, activity.Weekday)
		assert.Equal(t, 16, activity.Total)
		assert.InDelta(t, 8.0, activity.Average, 0.001) // 16 / (14/7)
	})

	t.Run("Ties resolve to the lowest weekday index", func(t *testing.T) {
		// Sunday and Wednesday both total 5
		days := series(5, 0, 0, 5, 0, 0, 0)

		activity := service.MostActiveWeekday(days)
		assert.Equal(t, time.Sunday, activity.Weekday)
	})
}

func TestMostActiveMonth(t *testing.T) {
	service := NewStatisticsService()

	t.Run("Empty input returns zero value", func(t *testing.T) {
		assert.Equal(t, models.MonthActivity{}, service.MostActiveMonth(nil))
	})

	t.Run("Highest month total wins", func(t *testing.T) {
		days := []models.ContributionDay{
			{Date: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), Count: 3},
			{Date: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), Count: 7},
			{Date: time.Date(2024, time.February, 2, 0, 0, 0, 0, time.UTC), Count: 4},
		}

		activity := service.MostActiveMonth(days)
		assert.Equal(t, time.February, activity.Month)
		assert.Equal(t, 11, activity.Total)
	})

	t.Run("Ties resolve to the earliest month", func(t *testing.T) {
		days := []models.ContributionDay{
			{Date: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), Count: 5},
			{Date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), Count: 5},
		}

		assert.Equal(t, time.January, service.MostActiveMonth(days).Month)
	})
}

func TestCommitRank(t *testing.T) {
	service := NewStatisticsService()

	testCases := []struct {
		name     string
		commits  int
		expected string
	}{
		{"Below lowest threshold", 0, "D"},
		{"Just below C", 49, "D"},
		{"Exactly at C threshold", 50, "C"},
		{"B tier", 250, "B"},
		{"B+ tier", 500, "B+"},
		{"A tier", 1500, "A"},
		{"A+ tier", 2000, "A+"},
		{"Top tier", 5000, "S"},
		{"Far above top tier", 100000, "S"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, service.CommitRank(tc.commits))
		})
	}
}

func TestCommitRankIsNonDecreasing(t *testing.T) {
	service := NewStatisticsService()

	// Tier index must never improve as the commit count goes down
	tierIndex := map[string]int{"D": 0, "C": 1, "B": 2, "B+": 3, "A": 4, "A+": 5, "S": 6}

	previous := tierIndex[service.CommitRank(0)]
	for commits := 1; commits <= 6000; commits += 7 {
		current := tierIndex[service.CommitRank(commits)]
		assert.GreaterOrEqual(t, current, previous, "rank regressed at %d commits", commits)
		previous = current
	}
}

func strPtr(s string) *string { return &s }

func TestAggregateRepositoryStats(t *testing.T) {
	service := NewStatisticsService()

	t.Run("Empty input returns zero values", func(t *testing.T) {
		stats := service.AggregateRepositoryStats(nil, 5)
		assert.Equal(t, 0, stats.TotalStars)
		assert.Empty(t, stats.TopLanguages)
	})

	t.Run("Stars sum and languages tally", func(t *testing.T) {
		repos := []models.Repository{
			{Stars: 10, Forks: 2, Language: strPtr("Go")},
			{Stars: 5, Forks: 1, Language: strPtr("TypeScript")},
			{Stars: 3, Language: strPtr("Go")},
			{Stars: 1}, // no primary language
		}

		stats := service.AggregateRepositoryStats(repos, 5)
		assert.Equal(t, 4, stats.TotalRepositories)
		assert.Equal(t, 19, stats.TotalStars)
		assert.Equal(t, 3, stats.TotalForks)
		assert.Equal(t, []models.LanguageCount{
			{Language: "Go", Count: 2},
			{Language: "TypeScript", Count: 1},
		}, stats.TopLanguages)
	})

	t.Run("Top-N cutoff and insertion-order ties", func(t *testing.T) {
		repos := []models.Repository{
			{Language: strPtr("Rust")},
			{Language: strPtr("Python")},
			{Language: strPtr("Zig")},
		}

		stats := service.AggregateRepositoryStats(repos, 2)
		assert.Len(t, stats.TopLanguages, 2)
		// All counts equal: first-seen languages survive the cutoff
		assert.Equal(t, "Rust", stats.TopLanguages[0].Language)
		assert.Equal(t, "Python", stats.TopLanguages[1].Language)
	})
}

func TestBuildLeaderboard(t *testing.T) {
	service := NewStatisticsService()

	commits := func(u models.UserStatsSnapshot) int { return u.TotalCommits }

	t.Run("Ranks follow descending values", func(t *testing.T) {
		users := []models.UserStatsSnapshot{
			{Username: "alice", TotalCommits: 100},
			{Username: "bob", TotalCommits: 50},
			{Username: "carol", TotalCommits: 200},
		}

		entries := service.BuildLeaderboard(users, commits)
		assert.Equal(t, []int{200, 100, 50}, []int{entries[0].Value, entries[1].Value, entries[2].Value})
		assert.Equal(t, []int{1, 2, 3}, []int{entries[0].Rank, entries[1].Rank, entries[2].Rank})
		assert.Equal(t, "carol", entries[0].Username)
	})

	t.Run("Ranks are a gapless permutation", func(t *testing.T) {
		users := []models.UserStatsSnapshot{
			{Username: "a", TotalCommits: 7},
			{Username: "b", TotalCommits: 7},
			{Username: "c", TotalCommits: 7},
			{Username: "d", TotalCommits: 9},
		}

		entries := service.BuildLeaderboard(users, commits)
		seen := make(map[int]bool)
		for i, entry := range entries {
			assert.False(t, seen[entry.Rank], "duplicate rank %d", entry.Rank)
			seen[entry.Rank] = true
			if i > 0 {
				assert.LessOrEqual(t, entry.Value, entries[i-1].Value)
			}
		}
		assert.Len(t, seen, len(users))
	})

	t.Run("Ties keep input order", func(t *testing.T) {
		users := []models.UserStatsSnapshot{
			{Username: "first", TotalCommits: 5},
			{Username: "second", TotalCommits: 5},
		}

		entries := service.BuildLeaderboard(users, commits)
		assert.Equal(t, "first", entries[0].Username)
		assert.Equal(t, "second", entries[1].Username)
	})

	t.Run("Empty input yields empty leaderboard", func(t *testing.T) {
		assert.Empty(t, service.BuildLeaderboard(nil, commits))
	})
}

func TestClassifyConnection(t *testing.T) {
	service := NewStatisticsService()

	followers := map[string]bool{"alice": true, "bob": true}
	following := map[string]bool{"alice": true, "carol": true}

	testCases := []struct {
		name     string
		username string
		expected models.ConnectionType
	}{
		{"Mutual connection", "alice", models.ConnectionMutual},
		{"Follower only", "bob", models.ConnectionFollower},
		{"Following only", "carol", models.ConnectionFollowing},
		{"No connection", "dave", models.ConnectionNone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, service.ClassifyConnection(tc.username, followers, following))
		})
	}
}

func TestRankNetworkMembers(t *testing.T) {
	service := NewStatisticsService()

	entries := []models.LeaderboardEntry{
		{Username: "stranger", Value: 900, ConnectionType: models.ConnectionNone},
		{Username: "fan", Value: 50, ConnectionType: models.ConnectionFollower},
		{Username: "friend", Value: 10, ConnectionType: models.ConnectionMutual},
		{Username: "idol", Value: 500, ConnectionType: models.ConnectionFollowing},
		{Username: "buddy", Value: 5, ConnectionType: models.ConnectionMutual},
	}

	ranked := service.RankNetworkMembers(entries)

	// Connection type dominates, commits break ties inside a type
	order := make([]string, 0, len(ranked))
	for _, entry := range ranked {
		order = append(order, entry.Username)
	}
	assert.Equal(t, []string{"friend", "buddy", "fan", "idol", "stranger"}, order)

	for i, entry := range ranked {
		assert.Equal(t, i+1, entry.Rank)
	}

	// Input slice must not be reordered
	assert.Equal(t, "stranger", entries[0].Username)
}

func TestNetworkAverages(t *testing.T) {
	service := NewStatisticsService()

	t.Run("Empty input returns zeros not NaN", func(t *testing.T) {
		aggregate := service.NetworkAverages(nil)
		assert.Equal(t, 0, aggregate.TotalUsers)
		assert.Equal(t, 0.0, aggregate.AverageCommits)
		assert.Equal(t, 0.0, aggregate.AverageStreak)
		assert.Equal(t, 0.0, aggregate.AverageStars)
	})

	t.Run("Arithmetic means", func(t *testing.T) {
		users := []models.UserStatsSnapshot{
			{TotalCommits: 100, LongestStreak: 10, StarsEarned: 4},
			{TotalCommits: 200, LongestStreak: 20, StarsEarned: 8},
		}

		aggregate := service.NetworkAverages(users)
		assert.Equal(t, 2, aggregate.TotalUsers)
		assert.Equal(t, 150.0, aggregate.AverageCommits)
		assert.Equal(t, 15.0, aggregate.AverageStreak)
		assert.Equal(t, 6.0, aggregate.AverageStars)
	})
}

func TestCalendarLevel(t *testing.T) {
	service := NewStatisticsService()

	testCases := []struct {
		count    int
		expected int
	}{
		{0, 0},
		{1, 1},
		{3, 1},
		{4, 2},
		{6, 2},
		{7, 3},
		{9, 3},
		{10, 4},
		{50, 4},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, service.CalendarLevel(tc.count), "count %d", tc.count)
	}
}

func TestBuildCalendar(t *testing.T) {
	service := NewStatisticsService()

	t.Run("Empty input yields empty calendar", func(t *testing.T) {
		calendar := service.BuildCalendar("octocat", nil)
		assert.Equal(t, 0, calendar.TotalContributions)
		assert.Empty(t, calendar.Weeks)
	})

	t.Run("Days group into Sunday-anchored weeks", func(t *testing.T) {
		// 10 days starting on a Sunday: one full week plus a partial one
		days := series(1, 0, 2, 0, 0, 0, 3, 4, 0, 12)

		calendar := service.BuildCalendar("octocat", days)
		assert.Equal(t, "octocat", calendar.Username)
		assert.Equal(t, 22, calendar.TotalContributions)
		assert.Len(t, calendar.Weeks, 2)
		assert.Len(t, calendar.Weeks[0].Days, 7)
		assert.Len(t, calendar.Weeks[1].Days, 3)
		assert.Equal(t, 4, calendar.Weeks[1].Days[2].Level) // 12 contributions
		assert.Equal(t, "2024-01-07", calendar.Weeks[0].Days[0].Date)
	})
}
