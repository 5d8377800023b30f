package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/blog-platform-api/internal/daterange"
	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/service"
	"github.com/blog-platform-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// BlogHandler handles the public blog surface
type BlogHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(services *service.Services, log zerolog.Logger) *BlogHandler {
	return &BlogHandler{
		services: services,
		log:      log.With().Str("handler", "blog").Logger(),
	}
}

// ListPosts handles GET /v1/posts?page=N
// Returns the published post stream, newest first, paged by the site's
// posts-per-page setting.
func (h *BlogHandler) ListPosts(c *gin.Context) {
	ctx := c.Request.Context()

	settings, err := h.services.Settings.Get(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load settings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load posts"})
		return
	}

	q := service.DefaultPostQuery()
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		q.Page = page
		q.PageSize = settings.PostsPerPage
	}

	posts, err := h.services.Post.ListPosts(ctx, q)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list posts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": summarize(posts), "page_size": settings.PostsPerPage})
}

// listedPost is the list-view shape of a post: the body is cut at the more
// marker and the flag tells clients a full version exists behind the
// permalink.
type listedPost struct {
	*models.Post
	IsSummarized bool `json:"is_summarized"`
}

func summarize(posts []*models.Post) []listedPost {
	out := make([]listedPost, 0, len(posts))
	for _, p := range posts {
		copied := *p
		summarized := copied.IsSummarized()
		copied.Text = copied.AboveTheFold()
		out = append(out, listedPost{Post: &copied, IsSummarized: summarized})
	}
	return out
}

// ListByDate handles GET /v1/archive/:year[/:month[/:day]]
func (h *BlogHandler) ListByDate(c *gin.Context) {
	year, month, day, ok := dateParams(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	posts, err := h.services.Post.ListPostsByDate(c.Request.Context(), year, month, day, !c.GetBool(adminFlagKey))
	if err != nil {
		if errors.Is(err, daterange.ErrInvalidDate) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		h.log.Error().Err(err).Msg("Failed to list posts by date")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": summarize(posts)})
}

// GetByPermalink handles GET /v1/archive/:year/:month/:day/:slug
func (h *BlogHandler) GetByPermalink(c *gin.Context) {
	year, month, day, ok := dateParams(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	post, err := h.services.Post.GetPostByPermalink(
		c.Request.Context(), year, month, day, c.Param("slug"), !c.GetBool(adminFlagKey))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to resolve permalink")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load post"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// GetContentPage handles GET /v1/pages/:slug
// Content pages resolve by slug alone; unpublished or future-dated pages are
// only visible to admins.
func (h *BlogHandler) GetContentPage(c *gin.Context) {
	ctx := c.Request.Context()

	page, err := h.services.Post.GetPostBySlug(ctx, c.Param("slug"), true)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to resolve content page")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load page"})
		return
	}
	if page == nil || !(c.GetBool(adminFlagKey) || page.VisibleAt(time.Now())) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// ListComments handles GET /v1/posts/:id/comments
// Admin requests also see unapproved comments.
func (h *BlogHandler) ListComments(c *gin.Context) {
	filter := models.PublicComments()
	if c.GetBool(adminFlagKey) {
		filter = models.AllComments()
	}

	comments, err := h.services.Comment.ListComments(c.Request.Context(), c.Param("id"), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list comments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CountComments handles GET /v1/posts/:id/comments/count
func (h *BlogHandler) CountComments(c *gin.Context) {
	count, err := h.services.Comment.CountComments(c.Request.Context(), c.Param("id"), models.PublicComments())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to count comments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// AddComment handles POST /v1/comments
func (h *BlogHandler) AddComment(c *gin.Context) {
	var comment models.Comment
	if err := c.ShouldBindJSON(&comment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateComment(&comment); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	comment.IPAddress = c.ClientIP()

	id, err := h.services.Comment.AddComment(c.Request.Context(), &comment, c.GetBool(adminFlagKey))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		if errors.Is(err, service.ErrCommentsClosed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "comments are closed"})
			return
		}
		h.log.Error().Err(err).Msg("Failed to add comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add comment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetSettings handles GET /v1/settings
func (h *BlogHandler) GetSettings(c *gin.Context) {
	settings, err := h.services.Settings.Get(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load settings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// dateParams parses the year/month/day path segments. Missing segments come
// back as zero; a malformed segment fails the parse outright.
func dateParams(c *gin.Context) (year, month, day int, ok bool) {
	parse := func(name string) (int, bool) {
		v := c.Param(name)
		if v == "" {
			return 0, true
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return 0, false
		}
		return n, true
	}

	if year, ok = parse("year"); !ok {
		return 0, 0, 0, false
	}
	if month, ok = parse("month"); !ok {
		return 0, 0, 0, false
	}
	if day, ok = parse("day"); !ok {
		return 0, 0, 0, false
	}
	return year, month, day, true
}
