package mocks

import (
	"context"

	"github.com/blog-platform-api/internal/models"
)

// MockPostRepository is a mock implementation of PostRepository. Posts keep
// their insertion order so source-order semantics are testable.
type MockPostRepository struct {
	Posts       []*models.Post
	InsertError error
	GetAllCalls int
	UpdateCalls int
}

func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{}
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Posts = append(m.Posts, post)
	return nil
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	m.UpdateCalls++
	for i, p := range m.Posts {
		if p.ID == post.ID {
			m.Posts[i] = post
			return nil
		}
	}
	return nil
}

func (m *MockPostRepository) Delete(ctx context.Context, id string) error {
	for i, p := range m.Posts {
		if p.ID == id {
			m.Posts = append(m.Posts[:i], m.Posts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MockPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	for _, p := range m.Posts {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MockPostRepository) GetAll(ctx context.Context) ([]*models.Post, error) {
	m.GetAllCalls++
	out := make([]*models.Post, len(m.Posts))
	copy(out, m.Posts)
	return out, nil
}

func (m *MockPostRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	for _, p := range m.Posts {
		if p.UrlSegment == slug {
			return true, nil
		}
	}
	return false, nil
}

// MockVersionRepository is a mock implementation of VersionRepository
type MockVersionRepository struct {
	Versions    []*models.Version
	InsertError error
	CreateCalls int
	UpdateCalls int
}

func NewMockVersionRepository() *MockVersionRepository {
	return &MockVersionRepository{}
}

func (m *MockVersionRepository) Create(ctx context.Context, version *models.Version) error {
	m.CreateCalls++
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Versions = append(m.Versions, version)
	return nil
}

func (m *MockVersionRepository) Update(ctx context.Context, version *models.Version) error {
	m.UpdateCalls++
	for i, v := range m.Versions {
		if v.ID == version.ID {
			m.Versions[i] = version
			return nil
		}
	}
	return nil
}

func (m *MockVersionRepository) Delete(ctx context.Context, id string) error {
	for i, v := range m.Versions {
		if v.ID == id {
			m.Versions = append(m.Versions[:i], m.Versions[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MockVersionRepository) GetByID(ctx context.Context, id string) (*models.Version, error) {
	for _, v := range m.Versions {
		if v.ID == id {
			copied := *v
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MockVersionRepository) GetAll(ctx context.Context) ([]*models.Version, error) {
	out := make([]*models.Version, len(m.Versions))
	copy(out, m.Versions)
	return out, nil
}

func (m *MockVersionRepository) DeleteAllForPost(ctx context.Context, postID string) error {
	kept := m.Versions[:0]
	for _, v := range m.Versions {
		if v.VersionOfID != postID {
			kept = append(kept, v)
		}
	}
	m.Versions = kept
	return nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Comments    []*models.Comment
	InsertError error
	CreateCalls int
	UpdateCalls int
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	m.CreateCalls++
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Comments = append(m.Comments, comment)
	return nil
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	m.UpdateCalls++
	for i, c := range m.Comments {
		if c.ID == comment.ID {
			m.Comments[i] = comment
			return nil
		}
	}
	return nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id string) error {
	for i, c := range m.Comments {
		if c.ID == id {
			m.Comments = append(m.Comments[:i], m.Comments[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	for _, c := range m.Comments {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MockCommentRepository) GetAll(ctx context.Context) ([]*models.Comment, error) {
	out := make([]*models.Comment, len(m.Comments))
	copy(out, m.Comments)
	return out, nil
}

func (m *MockCommentRepository) DeleteAllForPost(ctx context.Context, postID string) error {
	kept := m.Comments[:0]
	for _, c := range m.Comments {
		if c.PostID != postID {
			kept = append(kept, c)
		}
	}
	m.Comments = kept
	return nil
}

// MockSettingsRepository is a mock implementation of SettingsRepository
type MockSettingsRepository struct {
	Settings    *models.Settings
	UpsertCalls int
}

func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{}
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	if m.Settings == nil {
		return nil, nil
	}
	copied := *m.Settings
	return &copied, nil
}

func (m *MockSettingsRepository) AddOrUpdate(ctx context.Context, settings *models.Settings) error {
	m.UpsertCalls++
	copied := *settings
	m.Settings = &copied
	return nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users map[string]*models.User
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: make(map[string]*models.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	m.Users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return m.Users[id], nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
