package models

// ConnectionType classifies a network member relative to the queried user
type ConnectionType int

const (
	ConnectionNone      ConnectionType = 0 // no relationship
	ConnectionFollowing ConnectionType = 1 // the user follows them
	ConnectionFollower  ConnectionType = 2 // they follow the user
	ConnectionMutual    ConnectionType = 3 // both
)

// String returns the API label for a connection type
func (t ConnectionType) String() string {
	switch t {
	case ConnectionMutual:
		return "mutual"
	case ConnectionFollower:
		return "follower"
	case ConnectionFollowing:
		return "following"
	default:
		return "none"
	}
}

// LeaderboardEntry is one ranked row of a leaderboard
type LeaderboardEntry struct {
	Username       string         `json:"username"`
	Value          int            `json:"value"`
	Rank           int            `json:"rank"`
	AvatarURL      string         `json:"avatar_url"`
	ConnectionType ConnectionType `json:"connection_type"`
}

// NetworkAggregate holds arithmetic means over the current page of snapshots
type NetworkAggregate struct {
	TotalUsers     int     `json:"total_users"`
	AverageCommits float64 `json:"average_commits"`
	AverageStreak  float64 `json:"average_streak"`
	AverageStars   float64 `json:"average_stars"`
}

// NetworkPage is one page of the network leaderboard
type NetworkPage struct {
	Username   string             `json:"username"`
	Metric     string             `json:"metric"`
	Page       int                `json:"page"`
	PerPage    int                `json:"per_page"`
	TotalCount int                `json:"total_count"`
	TotalPages int                `json:"total_pages"`
	Entries    []LeaderboardEntry `json:"entries"`
	Aggregate  NetworkAggregate   `json:"aggregate"`
}
