package validation

import (
	"regexp"
	"strings"

	"github.com/blog-platform-api/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const (
	maxTitleLength    = 100
	maxNameLength     = 100
	maxEmailLength    = 100
	maxHomepageLength = 100

	// Comment titles are stored in a VARCHAR(255) column.
	maxCommentTitleLength = 255
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateComment checks a submitted comment before it reaches the moderation
// engine, which assumes valid input objects.
func ValidateComment(comment *models.Comment) []ValidationError {
	var errors []ValidationError

	if comment.PostID == "" {
		errors = append(errors, ValidationError{Field: "post_id", Message: "post_id is required"})
	}

	if strings.TrimSpace(comment.Name) == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "name is required"})
	} else if len(comment.Name) > maxNameLength {
		errors = append(errors, ValidationError{Field: "name", Message: "name is too long"})
	}

	email := strings.TrimSpace(comment.Email)
	if email == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "email is required"})
	} else if len(email) > maxEmailLength || !emailRegex.MatchString(email) {
		errors = append(errors, ValidationError{Field: "email", Message: "invalid email format"})
	}

	if len(comment.Homepage) > maxHomepageLength {
		errors = append(errors, ValidationError{Field: "homepage", Message: "homepage is too long"})
	}

	if len(comment.Title) > maxCommentTitleLength {
		errors = append(errors, ValidationError{Field: "title", Message: "title is too long"})
	}

	if strings.TrimSpace(comment.Body) == "" {
		errors = append(errors, ValidationError{Field: "body", Message: "comment body is required"})
	}

	return errors
}

// ValidatePost checks an authored post or content page.
func ValidatePost(post *models.Post) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(post.Title) == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	} else if len(post.Title) > maxTitleLength {
		errors = append(errors, ValidationError{Field: "title", Message: "title is too long"})
	}

	if strings.TrimSpace(post.Text) == "" {
		errors = append(errors, ValidationError{Field: "text", Message: "post content is required"})
	}

	return errors
}

// ValidateSettings checks the site settings record before saving.
func ValidateSettings(settings *models.Settings) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(settings.SiteTitle) == "" {
		errors = append(errors, ValidationError{Field: "site_title", Message: "site_title is required"})
	}
	if settings.PostsPerPage < 1 {
		errors = append(errors, ValidationError{Field: "posts_per_page", Message: "posts_per_page must be at least 1"})
	}

	return errors
}
