package models

import "time"

// Repository represents a GitHub repository as exposed by the API.
// Optional GitHub fields are pointers; defaults are applied once at the
// fetch boundary so aggregation code never checks for nil.
type Repository struct {
	Name        string     `json:"name"`
	FullName    string     `json:"full_name"`
	Description *string    `json:"description,omitempty"`
	Language    *string    `json:"language,omitempty"`
	Stars       int        `json:"stars"`
	Forks       int        `json:"forks"`
	HTMLURL     string     `json:"html_url"`
	Fork        bool       `json:"fork"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// PrimaryLanguage returns the repository's primary language or "" when GitHub
// reports none.
func (r *Repository) PrimaryLanguage() string {
	if r.Language == nil {
		return ""
	}
	return *r.Language
}

// LanguageCount is one entry of a top-languages tally
type LanguageCount struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
}

// RepositoryStats is the aggregate over a user's repository list
type RepositoryStats struct {
	TotalRepositories int             `json:"total_repositories"`
	TotalStars        int             `json:"total_stars"`
	TotalForks        int             `json:"total_forks"`
	TopLanguages      []LanguageCount `json:"top_languages"`
}

// RepositoryPage is one page of the repository browser
type RepositoryPage struct {
	Username     string       `json:"username"`
	Page         int          `json:"page"`
	PerPage      int          `json:"per_page"`
	TotalCount   int          `json:"total_count"`
	TotalPages   int          `json:"total_pages"`
	Repositories []Repository `json:"repositories"`
}
