package models

import "time"

// ContributionDay represents a single day in a user's contribution calendar
type ContributionDay struct {
	Date    time.Time `json:"date"`
	Count   int       `json:"count"`
	Weekday int       `json:"weekday"` // 0 = Sunday .. 6 = Saturday
}

// CalendarDay is a contribution day annotated with a heat-map intensity level
type CalendarDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"` // 0 (no activity) .. 4 (highest)
}

// CalendarWeek groups calendar days into a column of the heat-map grid
type CalendarWeek struct {
	Days []CalendarDay `json:"days"`
}

// ContributionCalendar is the heat-map payload for a user
type ContributionCalendar struct {
	Username           string         `json:"username"`
	TotalContributions int            `json:"total_contributions"`
	Weeks              []CalendarWeek `json:"weeks"`
}

// WeekdayActivity describes the most active weekday across a contribution series
type WeekdayActivity struct {
	Weekday time.Weekday `json:"weekday"`
	Total   int          `json:"total"`
	Average float64      `json:"average"` // per occurrence of that weekday
}

// MonthActivity describes the most active calendar month across a contribution series
type MonthActivity struct {
	Month time.Month `json:"month"`
	Total int        `json:"total"`
}
