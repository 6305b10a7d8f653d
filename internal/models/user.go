package models

import "time"

// GitHubUser is the profile of the queried user
type GitHubUser struct {
	Login       string     `json:"login"`
	Name        string     `json:"name"`
	AvatarURL   string     `json:"avatar_url"`
	Bio         string     `json:"bio"`
	Followers   int        `json:"followers"`
	Following   int        `json:"following"`
	PublicRepos int        `json:"public_repos"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// NetworkUser is a minimal follower/following list entry
type NetworkUser struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// UserStatsSnapshot is the per-user derived statistics record.
// It is recomputed on every request and never persisted.
type UserStatsSnapshot struct {
	Username      string `json:"username"`
	AvatarURL     string `json:"avatar_url"`
	TotalCommits  int    `json:"total_commits"`
	LongestStreak int    `json:"longest_streak"`
	CurrentStreak int    `json:"current_streak"`
	StarsEarned   int    `json:"stars_earned"`
	Followers     int    `json:"followers"`
	Following     int    `json:"following"`
}

// WrappedStats is the full dashboard payload for a single user
type WrappedStats struct {
	User              GitHubUser           `json:"user"`
	TotalCommits      int                  `json:"total_commits"`
	LongestStreak     int                  `json:"longest_streak"`
	CurrentStreak     int                  `json:"current_streak"`
	CommitRank        string               `json:"commit_rank"`
	MostActiveWeekday WeekdayActivity      `json:"most_active_weekday"`
	MostActiveMonth   MonthActivity        `json:"most_active_month"`
	Repositories      RepositoryStats      `json:"repositories"`
	Calendar          ContributionCalendar `json:"calendar"`
	GeneratedAt       time.Time            `json:"generated_at"`
}
