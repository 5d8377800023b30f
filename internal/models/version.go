package models

import (
	"time"
)

// Version is an immutable snapshot of a post's content fields, taken before an
// edit overwrites the post or explicitly when saving a draft. Versions never
// own their parent's lifecycle; they only point back at it.
type Version struct {
	ID               string    `json:"id" db:"id"`
	VersionOfID      string    `json:"version_of_id" db:"version_of_id"`
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

// VersionFromPost copies a post's content fields into a new version snapshot.
// The version's own identity is left for the caller to assign.
func VersionFromPost(post *Post) *Version {
	return &Version{
		VersionOfID:      post.ID,
		Title:            post.Title,
		UrlSegment:       post.UrlSegment,
		Text:             post.Text,
		AuthorID:         post.AuthorID,
		IsPublished:      post.IsPublished,
		PublishedDate:    post.PublishedDate,
		LastModifiedDate: post.LastModifiedDate,
		AllowComments:    post.AllowComments,
		IsContentPage:    post.IsContentPage,
	}
}

// ApplyTo copies the version's content fields onto the post in place. The
// post's identity is preserved; the version's id never propagates.
func (v *Version) ApplyTo(post *Post) {
	post.Title = v.Title
	post.UrlSegment = v.UrlSegment
	post.Text = v.Text
	post.AuthorID = v.AuthorID
	post.IsPublished = v.IsPublished
	post.PublishedDate = v.PublishedDate
	post.LastModifiedDate = v.LastModifiedDate
	post.AllowComments = v.AllowComments
	post.IsContentPage = v.IsContentPage
}
