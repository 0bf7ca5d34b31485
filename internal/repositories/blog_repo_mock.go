package repositories

import (
	"fmt"
	"sync"

	"bloglist/internal/models"

	"github.com/google/uuid"
)

// MockBlogRepository is an in-memory implementation of BlogRepository.
// It shares a MockUserRepository so the owned-write operations can
// keep the owner's blog list in step with the blog map.
type MockBlogRepository struct {
	blogs map[string]models.Blog
	users *MockUserRepository
	mu    sync.RWMutex
}

// NewMockBlogRepository creates a new instance of MockBlogRepository.
func NewMockBlogRepository(users *MockUserRepository) *MockBlogRepository {
	return &MockBlogRepository{
		blogs: make(map[string]models.Blog),
		users: users,
	}
}

// GetAll returns all blogs.
func (r *MockBlogRepository) GetAll() ([]models.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	blogList := make([]models.Blog, 0, len(r.blogs))
	for _, b := range r.blogs {
		blogList = append(blogList, b)
	}
	return blogList, nil
}

// GetByID returns a blog by its ID.
func (r *MockBlogRepository) GetByID(id string) (*models.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	blog, ok := r.blogs[id]
	if !ok {
		return nil, fmt.Errorf("blog with ID %s: %w", id, ErrNotFound)
	}
	return &blog, nil
}

// CreateOwned adds a new blog and appends its id to the owner's blog
// list. The owner's list is written first so a failed owner update
// never leaves an orphaned blog behind.
func (r *MockBlogRepository) CreateOwned(blog *models.Blog, owner *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if blog.ID == "" {
		blog.ID = uuid.New().String()
	}
	blog.UserID = owner.ID

	owner.BlogIDs = append(owner.BlogIDs, blog.ID)
	if err := r.users.Update(owner); err != nil {
		owner.BlogIDs = owner.BlogIDs[:len(owner.BlogIDs)-1]
		return fmt.Errorf("failed to update owner blog list: %w", err)
	}
	r.blogs[blog.ID] = *blog
	return nil
}

// Update modifies an existing blog.
func (r *MockBlogRepository) Update(blog *models.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.blogs[blog.ID]
	if !ok {
		return fmt.Errorf("blog with ID %s for update: %w", blog.ID, ErrNotFound)
	}
	r.blogs[blog.ID] = *blog
	return nil
}

// DeleteOwned removes a blog and drops its id from the owner's blog
// list.
func (r *MockBlogRepository) DeleteOwned(blog *models.Blog, owner *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.blogs[blog.ID]; !ok {
		return fmt.Errorf("blog with ID %s for deletion: %w", blog.ID, ErrNotFound)
	}

	previousList := owner.BlogIDs
	updatedList := make([]string, 0, len(previousList))
	for _, id := range previousList {
		if id != blog.ID {
			updatedList = append(updatedList, id)
		}
	}
	owner.BlogIDs = updatedList
	if err := r.users.Update(owner); err != nil {
		owner.BlogIDs = previousList
		return fmt.Errorf("failed to update owner blog list: %w", err)
	}
	delete(r.blogs, blog.ID)
	return nil
}
