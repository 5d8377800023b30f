package models

import (
	"strings"
	"time"
)

// MoreMarker splits a post body into the teaser shown in list views and the
// full text shown on the permalink page.
const MoreMarker = "<!--more-->"

// Post represents a blog post or a static content page. Content pages share
// the post shape but are excluded from the chronological stream.
type Post struct {
	ID               string    `json:"id" db:"id"`
	Title            string    `json:"title" db:"title"`
	UrlSegment       string    `json:"url_segment" db:"url_segment"`
	Text             string    `json:"text" db:"text"`
	AuthorID         string    `json:"author_id" db:"author_id"`
	IsPublished      bool      `json:"is_published" db:"is_published"`
	PublishedDate    time.Time `json:"published_date" db:"published_date"`
	LastModifiedDate time.Time `json:"last_modified_date" db:"last_modified_date"`
	AllowComments    bool      `json:"allow_comments" db:"allow_comments"`
	IsContentPage    bool      `json:"is_content_page" db:"is_content_page"`
}

// AboveTheFold returns the portion of the body before the more marker, or the
// whole body when no marker is present.
func (p *Post) AboveTheFold() string {
	if i := strings.Index(p.Text, MoreMarker); i >= 0 {
		return p.Text[:i]
	}
	return p.Text
}

// IsSummarized reports whether the body contains a more marker.
func (p *Post) IsSummarized() bool {
	return strings.Contains(p.Text, MoreMarker)
}

// VisibleAt reports whether the post is publicly visible at the given time.
// Future-dated posts are scheduled, not published.
func (p *Post) VisibleAt(now time.Time) bool {
	return p.IsPublished && !p.PublishedDate.After(now)
}
