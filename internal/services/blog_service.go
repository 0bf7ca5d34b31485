package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"bloglist/internal/models"
	"bloglist/internal/repositories"
	"bloglist/pkg/rabbitmq"
)

// BlogInput is the flat field set accepted for blog create and update.
type BlogInput struct {
	Title   string `json:"title" validate:"required"`
	Author  string `json:"author"`
	Content string `json:"content" validate:"required"`
	Image   string `json:"image"`
	Likes   int    `json:"likes" validate:"gte=0"`
}

// BlogService coordinates blog mutations: it applies the ownership
// policy, keeps the owner's blog list consistent with the blog store
// through the repository's transactional operations, and publishes
// events for downstream consumers.
type BlogService struct {
	blogRepo repositories.BlogRepository
	mqClient *rabbitmq.Client
}

// NewBlogService creates a new BlogService. mqClient may be nil, in
// which case event publishing is skipped.
func NewBlogService(blogRepo repositories.BlogRepository, mqClient *rabbitmq.Client) *BlogService {
	return &BlogService{
		blogRepo: blogRepo,
		mqClient: mqClient,
	}
}

// GetAllBlogs retrieves all blogs. Read-only, no authentication.
func (s *BlogService) GetAllBlogs() ([]models.Blog, error) {
	return s.blogRepo.GetAll()
}

// GetBlogByID retrieves a single blog by its ID.
func (s *BlogService) GetBlogByID(id string) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(id)
	if err != nil {
		return nil, s.wrapLookupErr(id, err)
	}
	return blog, nil
}

// CreateBlog creates a blog owned by the user. The blog insert and the
// owner's blog-list append are applied as one transaction by the
// repository; the returned blog carries its generated id.
func (s *BlogService) CreateBlog(user *models.User, input BlogInput) (*models.Blog, error) {
	if err := validateBlogInput(input); err != nil {
		return nil, err
	}

	blog := &models.Blog{
		Title:   strings.TrimSpace(input.Title),
		Author:  input.Author,
		Content: input.Content,
		Image:   input.Image,
		Likes:   input.Likes,
		UserID:  user.ID,
	}
	if err := s.blogRepo.CreateOwned(blog, user); err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	s.publishEvent("blog.created", blog)
	return blog, nil
}

// UpdateBlog replaces a blog's fields wholesale. Only the recorded
// owner may update; the owner reference itself is never replaced.
func (s *BlogService) UpdateBlog(user *models.User, id string, input BlogInput) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(id)
	if err != nil {
		return nil, s.wrapLookupErr(id, err)
	}
	if !CanMutate(ActionUpdate, blog, user.ID) {
		return nil, fmt.Errorf("%s blog %s: %w", ActionUpdate, id, ErrForbidden)
	}
	if err := validateBlogInput(input); err != nil {
		return nil, err
	}

	blog.Title = strings.TrimSpace(input.Title)
	blog.Author = input.Author
	blog.Content = input.Content
	blog.Image = input.Image
	blog.Likes = input.Likes

	if err := s.blogRepo.Update(blog); err != nil {
		return nil, fmt.Errorf("failed to update blog: %w", err)
	}
	return blog, nil
}

// DeleteBlog removes a blog and its id from the owner's blog list in
// one transaction. Only the recorded owner may delete.
func (s *BlogService) DeleteBlog(user *models.User, id string) error {
	blog, err := s.blogRepo.GetByID(id)
	if err != nil {
		return s.wrapLookupErr(id, err)
	}
	if !CanMutate(ActionDelete, blog, user.ID) {
		return fmt.Errorf("%s blog %s: %w", ActionDelete, id, ErrForbidden)
	}

	if err := s.blogRepo.DeleteOwned(blog, user); err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}

	s.publishEvent("blog.deleted", blog)
	return nil
}

// LikeBlog increments the blog's like counter by exactly one. A user
// may not like their own blog.
func (s *BlogService) LikeBlog(user *models.User, id string) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(id)
	if err != nil {
		return nil, s.wrapLookupErr(id, err)
	}
	if !CanMutate(ActionLike, blog, user.ID) {
		return nil, fmt.Errorf("%s own blog %s: %w", ActionLike, id, ErrForbidden)
	}

	blog.Likes++
	if err := s.blogRepo.Update(blog); err != nil {
		return nil, fmt.Errorf("failed to save like: %w", err)
	}

	s.publishEvent("blog.liked", blog)
	return blog, nil
}

// validateBlogInput enforces the type-shape rules: title and content
// non-empty after trimming, likes non-negative.
func validateBlogInput(input BlogInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("title is required: %w", ErrValidation)
	}
	if strings.TrimSpace(input.Content) == "" {
		return fmt.Errorf("content is required: %w", ErrValidation)
	}
	if input.Likes < 0 {
		return fmt.Errorf("likes must not be negative: %w", ErrValidation)
	}
	return nil
}

// wrapLookupErr maps repository not-found errors to ErrNotFound and
// passes storage failures through wrapped.
func (s *BlogService) wrapLookupErr(id string, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("blog %s: %w", id, ErrNotFound)
	}
	return fmt.Errorf("failed to load blog %s: %w", id, err)
}

// publishEvent sends a blog event to the message queue. Publishing is
// best effort: a failure is logged and the request proceeds.
func (s *BlogService) publishEvent(routingKey string, blog *models.Blog) {
	if s.mqClient == nil {
		return
	}
	payload := map[string]interface{}{
		"blogID": blog.ID,
		"userID": blog.UserID,
		"title":  blog.Title,
		"likes":  blog.Likes,
	}
	if err := s.mqClient.PublishBlogEvent(routingKey, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event for blog %s: %v", routingKey, blog.ID, err)
	}
}
