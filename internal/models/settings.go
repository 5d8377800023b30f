package models

import (
	"time"
)

// Settings is the site-wide configuration record. At most one row exists; it
// is created from defaults on first save and updated in place afterwards.
type Settings struct {
	ID               string    `json:"id" db:"id"`
	SiteTitle        string    `json:"site_title" db:"site_title"`
	Tagline          string    `json:"tagline" db:"tagline"`
	AltTagline       string    `json:"alt_tagline" db:"alt_tagline"`
	MenuLinks        string    `json:"menu_links" db:"menu_links"`
	PostsPerPage     int       `json:"posts_per_page" db:"posts_per_page"`
	AllowComments    bool      `json:"allow_comments" db:"allow_comments"`
	ModerateComments bool      `json:"moderate_comments" db:"moderate_comments"`
	GoogleAccount    string    `json:"google_account,omitempty" db:"google_account"`
	LastModifiedDate time.Time `json:"last_modified_date" db:"last_modified_date"`
	LastModifiedBy   string    `json:"last_modified_by,omitempty" db:"last_modified_by"`
}

// DefaultSettings returns the settings used before any have been saved.
func DefaultSettings() *Settings {
	return &Settings{
		SiteTitle:     "Your Site Title",
		MenuLinks:     "",
		PostsPerPage:  10,
		AllowComments: true,
	}
}
