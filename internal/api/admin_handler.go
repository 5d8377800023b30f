package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/service"
	"github.com/blog-platform-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AdminHandler handles authoring, versioning, moderation and settings
type AdminHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(services *service.Services, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		services: services,
		log:      log.With().Str("handler", "admin").Logger(),
	}
}

// ListPosts handles GET /v1/admin/posts?page=N&page_size=M
// The admin listing includes drafts and content pages.
func (h *AdminHandler) ListPosts(c *gin.Context) {
	q := service.PostQuery{
		IncludeContentPages:  true,
		OrderByPublishedDesc: true,
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		q.Page = page
	}
	if size, err := strconv.Atoi(c.Query("page_size")); err == nil && size > 0 {
		q.PageSize = size
	}

	posts, err := h.services.Post.ListPosts(c.Request.Context(), q)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list posts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// CreatePost handles POST /v1/admin/posts
func (h *AdminHandler) CreatePost(c *gin.Context) {
	var post models.Post
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidatePost(&post); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	id, err := h.services.Post.CreatePost(c.Request.Context(), &post)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "url_segment": post.UrlSegment})
}

// GetPost handles GET /v1/admin/posts/:id
func (h *AdminHandler) GetPost(c *gin.Context) {
	post, err := h.services.Post.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to get post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load post"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// UpdatePost handles PUT /v1/admin/posts/:id
func (h *AdminHandler) UpdatePost(c *gin.Context) {
	var post models.Post
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	post.ID = c.Param("id")

	if errs := validation.ValidatePost(&post); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	if err := h.services.Post.UpdatePost(c.Request.Context(), &post); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		h.log.Error().Err(err).Msg("Failed to update post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update post"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost handles DELETE /v1/admin/posts/:id
// Deleting a post also removes its versions and comments.
func (h *AdminHandler) DeletePost(c *gin.Context) {
	if err := h.services.Post.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		h.log.Error().Err(err).Msg("Failed to delete post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete post"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ListVersions handles GET /v1/admin/posts/:id/versions
func (h *AdminHandler) ListVersions(c *gin.Context) {
	versions, err := h.services.Version.ListVersions(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list versions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load versions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"versions": versions})
}

// SnapshotPost handles POST /v1/admin/posts/:id/versions
func (h *AdminHandler) SnapshotPost(c *gin.Context) {
	id, err := h.services.Version.SnapshotPostByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		h.log.Error().Err(err).Msg("Failed to snapshot post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to snapshot post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetVersion handles GET /v1/admin/versions/:id
func (h *AdminHandler) GetVersion(c *gin.Context) {
	version, err := h.services.Version.GetVersion(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to get version")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load version"})
		return
	}
	if version == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "version not found"})
		return
	}

	c.JSON(http.StatusOK, version)
}

// UpdateVersion handles PUT /v1/admin/versions/:id
func (h *AdminHandler) UpdateVersion(c *gin.Context) {
	var version models.Version
	if err := c.ShouldBindJSON(&version); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	version.ID = c.Param("id")

	if err := h.services.Version.UpdateVersion(c.Request.Context(), &version); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "version not found"})
			return
		}
		h.log.Error().Err(err).Msg("Failed to update version")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update version"})
		return
	}

	c.JSON(http.StatusOK, version)
}

// DeleteVersion handles DELETE /v1/admin/versions/:id
func (h *AdminHandler) DeleteVersion(c *gin.Context) {
	if err := h.services.Version.DeleteVersion(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "version not found"})
			return
		}
		h.log.Error().Err(err).Msg("Failed to delete version")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete version"})
		return
	}

	c.Status(http.StatusNoContent)
}

// PublishVersion handles POST /v1/admin/versions/:id/publish
func (h *AdminHandler) PublishVersion(c *gin.Context) {
	if err := h.services.Version.PublishVersion(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "version not found"})
			return
		}
		h.log.Error().Err(err).Msg("Failed to publish version")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to publish version"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ListUnapproved handles GET /v1/admin/comments/unapproved?post_id=...
func (h *AdminHandler) ListUnapproved(c *gin.Context) {
	ctx := c.Request.Context()

	var comments []*models.Comment
	var err error
	if postID := c.Query("post_id"); postID != "" {
		comments, err = h.services.Comment.ListUnapprovedForPost(ctx, postID)
	} else {
		comments, err = h.services.Comment.ListUnapproved(ctx)
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list unapproved comments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CountUnapproved handles GET /v1/admin/comments/unapproved/count?post_id=...
func (h *AdminHandler) CountUnapproved(c *gin.Context) {
	ctx := c.Request.Context()

	var count int
	var err error
	if postID := c.Query("post_id"); postID != "" {
		count, err = h.services.Comment.CountUnapprovedForPost(ctx, postID)
	} else {
		count, err = h.services.Comment.CountUnapproved(ctx)
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to count unapproved comments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// SetApproval handles PUT /v1/admin/comments/:id/approval
func (h *AdminHandler) SetApproval(c *gin.Context) {
	var req struct {
		Approved bool `json:"approved"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.services.Comment.Approve(c.Request.Context(), c.Param("id"), req.Approved); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
			return
		}
		h.log.Error().Err(err).Msg("Failed to set comment approval")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update comment"})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteComment handles DELETE /v1/admin/comments/:id
// Comments are soft-deleted and remain available for audit.
func (h *AdminHandler) DeleteComment(c *gin.Context) {
	if err := h.services.Comment.SoftDelete(c.Request.Context(), c.Param("id")); err != nil {
		h.log.Error().Err(err).Msg("Failed to delete comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete comment"})
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateSettings handles PUT /v1/admin/settings
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var settings models.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateSettings(&settings); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	if err := h.services.Settings.AddOrUpdate(c.Request.Context(), &settings); err != nil {
		h.log.Error().Err(err).Msg("Failed to save settings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}
