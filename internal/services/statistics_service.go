package services

import (
	"sort"
	"time"

	"github.com/Zaid-maker/git-wrapped-api/internal/models"
)

// StatisticsService computes derived statistics over contribution series,
// repository lists and user snapshots. Every method is a pure transformation:
// no I/O, no errors, defined zero-value results for empty input.
type StatisticsService struct{}

func NewStatisticsService() *StatisticsService {
	return &StatisticsService{}
}

// commitRankTiers maps total-commit thresholds to qualitative tiers,
// ordered from highest to lowest.
var commitRankTiers = []struct {
	Min  int
	Tier string
}{
	{5000, "S"},
	{2000, "A+"},
	{1000, "A"},
	{500, "B+"},
	{200, "B"},
	{50, "C"},
}

// LongestStreak returns the length of the longest run of consecutive days
// with at least one contribution. Empty input returns 0.
func (s *StatisticsService) LongestStreak(days []models.ContributionDay) int {
	ordered := sortedByDate(days)

	longest := 0
	current := 0
	for _, day := range ordered {
		if day.Count > 0 {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
	}

	return longest
}

// CurrentStreak returns the length of the contribution run ending on the most
// recent day of the series.
func (s *StatisticsService) CurrentStreak(days []models.ContributionDay) int {
	ordered := sortedByDate(days)

	streak := 0
	for i := len(ordered) - 1; i >= 0; i-- {
		if ordered[i].Count == 0 {
			break
		}
		streak++
	}

	return streak
}

// MostActiveWeekday buckets contributions by weekday and returns the weekday
// with the highest total. Ties resolve to the lowest weekday index so the
// result does not depend on input order. The average is normalized by the
// number of times that weekday occurs in the series (total days / 7).
func (s *StatisticsService) MostActiveWeekday(days []models.ContributionDay) models.WeekdayActivity {
	if len(days) == 0 {
		return models.WeekdayActivity{}
	}

	var buckets [7]int
	for _, day := range days {
		if day.Weekday >= 0 && day.Weekday < 7 {
			buckets[day.Weekday] += day.Count
		}
	}

	best := 0
	for i := 1; i < 7; i++ {
		if buckets[i] > buckets[best] {
			best = i
		}
	}

	occurrences := float64(len(days)) / 7
	average := 0.0
	if occurrences > 0 {
		average = float64(buckets[best]) / occurrences
	}

	return models.WeekdayActivity{
		Weekday: time.Weekday(best),
		Total:   buckets[best],
		Average: average,
	}
}

// MostActiveMonth buckets contributions by calendar month and returns the
// month with the highest total. Ties resolve to the earliest month.
func (s *StatisticsService) MostActiveMonth(days []models.ContributionDay) models.MonthActivity {
	if len(days) == 0 {
		return models.MonthActivity{}
	}

	var buckets [13]int // index by time.Month (1-12)
	for _, day := range days {
		buckets[day.Date.Month()] += day.Count
	}

	best := 1
	for m := 2; m <= 12; m++ {
		if buckets[m] > buckets[best] {
			best = m
		}
	}

	return models.MonthActivity{
		Month: time.Month(best),
		Total: buckets[best],
	}
}

// TotalContributions sums the contribution counts of the series.
func (s *StatisticsService) TotalContributions(days []models.ContributionDay) int {
	total := 0
	for _, day := range days {
		total += day.Count
	}
	return total
}

// CommitRank maps a total-commit count to a qualitative tier. The mapping is
// a non-decreasing step function over the fixed thresholds above; counts
// below the lowest threshold fall into the default tier.
func (s *StatisticsService) CommitRank(totalCommits int) string {
	for _, tier := range commitRankTiers {
		if totalCommits >= tier.Min {
			return tier.Tier
		}
	}
	return "D"
}

// AggregateRepositoryStats sums stars and forks and tallies primary-language
// occurrences, returning the topLanguages most frequent languages. Languages
// with equal counts keep their first-seen order.
func (s *StatisticsService) AggregateRepositoryStats(repos []models.Repository, topLanguages int) models.RepositoryStats {
	stats := models.RepositoryStats{
		TotalRepositories: len(repos),
		TopLanguages:      []models.LanguageCount{},
	}

	counts := make(map[string]int)
	var order []string

	for _, repo := range repos {
		stats.TotalStars += repo.Stars
		stats.TotalForks += repo.Forks

		lang := repo.PrimaryLanguage()
		if lang == "" {
			continue
		}
		if _, seen := counts[lang]; !seen {
			order = append(order, lang)
		}
		counts[lang]++
	}

	tally := make([]models.LanguageCount, 0, len(order))
	for _, lang := range order {
		tally = append(tally, models.LanguageCount{Language: lang, Count: counts[lang]})
	}

	// Stable sort keeps insertion order between equal counts
	sort.SliceStable(tally, func(i, j int) bool {
		return tally[i].Count > tally[j].Count
	})

	if topLanguages > 0 && len(tally) > topLanguages {
		tally = tally[:topLanguages]
	}
	stats.TopLanguages = tally

	return stats
}

// BuildLeaderboard ranks users by the selected metric, descending. The sort
// is stable so equal values retain their input order; ranks are the 1-based
// positions, a permutation of 1..N.
func (s *StatisticsService) BuildLeaderboard(users []models.UserStatsSnapshot, metric func(models.UserStatsSnapshot) int) []models.LeaderboardEntry {
	entries := make([]models.LeaderboardEntry, 0, len(users))
	for _, user := range users {
		entries = append(entries, models.LeaderboardEntry{
			Username:  user.Username,
			Value:     metric(user),
			AvatarURL: user.AvatarURL,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}

// ClassifyConnection classifies a network member relative to the queried
// user: mutual if present in both sets, otherwise follower-only,
// following-only, or none.
func (s *StatisticsService) ClassifyConnection(username string, followers, following map[string]bool) models.ConnectionType {
	inFollowers := followers[username]
	inFollowing := following[username]

	switch {
	case inFollowers && inFollowing:
		return models.ConnectionMutual
	case inFollowers:
		return models.ConnectionFollower
	case inFollowing:
		return models.ConnectionFollowing
	default:
		return models.ConnectionNone
	}
}

// RankNetworkMembers orders leaderboard entries by connection type then
// value, both descending, and assigns 1-based ranks. The sort is stable.
func (s *StatisticsService) RankNetworkMembers(entries []models.LeaderboardEntry) []models.LeaderboardEntry {
	ranked := make([]models.LeaderboardEntry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].ConnectionType != ranked[j].ConnectionType {
			return ranked[i].ConnectionType > ranked[j].ConnectionType
		}
		return ranked[i].Value > ranked[j].Value
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return ranked
}

// NetworkAverages returns the arithmetic means of commits, streak and stars
// across the supplied snapshots. An empty slice yields all zeros.
func (s *StatisticsService) NetworkAverages(users []models.UserStatsSnapshot) models.NetworkAggregate {
	aggregate := models.NetworkAggregate{TotalUsers: len(users)}
	if len(users) == 0 {
		return aggregate
	}

	var commits, streaks, stars int
	for _, user := range users {
		commits += user.TotalCommits
		streaks += user.LongestStreak
		stars += user.StarsEarned
	}

	n := float64(len(users))
	aggregate.AverageCommits = float64(commits) / n
	aggregate.AverageStreak = float64(streaks) / n
	aggregate.AverageStars = float64(stars) / n

	return aggregate
}

// CalendarLevel maps a daily contribution count to a heat-map intensity
// level between 0 and 4.
func (s *StatisticsService) CalendarLevel(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= 3:
		return 1
	case count <= 6:
		return 2
	case count <= 9:
		return 3
	default:
		return 4
	}
}

// BuildCalendar arranges a contribution series into heat-map weeks. Days are
// sorted by date and grouped into columns of seven, starting a new column on
// each Sunday.
func (s *StatisticsService) BuildCalendar(username string, days []models.ContributionDay) models.ContributionCalendar {
	ordered := sortedByDate(days)

	calendar := models.ContributionCalendar{
		Username: username,
		Weeks:    []models.CalendarWeek{},
	}

	var week models.CalendarWeek
	for _, day := range ordered {
		calendar.TotalContributions += day.Count

		if day.Weekday == 0 && len(week.Days) > 0 {
			calendar.Weeks = append(calendar.Weeks, week)
			week = models.CalendarWeek{}
		}
		week.Days = append(week.Days, models.CalendarDay{
			Date:  day.Date.Format("2006-01-02"),
			Count: day.Count,
			Level: s.CalendarLevel(day.Count),
		})
	}
	if len(week.Days) > 0 {
		calendar.Weeks = append(calendar.Weeks, week)
	}

	return calendar
}

// sortedByDate returns a date-ascending copy of the series. Streak and
// calendar computations must not depend on input order.
func sortedByDate(days []models.ContributionDay) []models.ContributionDay {
	ordered := make([]models.ContributionDay, len(days))
	copy(ordered, days)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})
	return ordered
}
