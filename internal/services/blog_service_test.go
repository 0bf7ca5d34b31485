package services_test

import (
	"testing"

	"bloglist/internal/models"
	"bloglist/internal/repositories"
	"bloglist/internal/services"

	"github.com/stretchr/testify/assert"
)

// setupBlogService wires a BlogService over the in-memory repositories
// with two registered users. The nil mq client disables event
// publishing.
func setupBlogService(t *testing.T) (*services.BlogService, *repositories.MockUserRepository, *models.User, *models.User) {
	t.Helper()

	userRepo := repositories.NewMockUserRepository()
	alice := &models.User{Username: "alice", Name: "Alice Liddell"}
	bob := &models.User{Username: "bob", Name: "Bob Gray"}
	assert.NoError(t, userRepo.Create(alice))
	assert.NoError(t, userRepo.Create(bob))

	blogRepo := repositories.NewMockBlogRepository(userRepo)
	return services.NewBlogService(blogRepo, nil), userRepo, alice, bob
}

func TestBlogService_CreateBlog(t *testing.T) {
	service, userRepo, alice, _ := setupBlogService(t)

	blog, err := service.CreateBlog(alice, services.BlogInput{
		Title:   "Hi",
		Content: "World",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, blog.ID)
	assert.Equal(t, alice.ID, blog.UserID)
	assert.Equal(t, 0, blog.Likes)

	// Both sides of the ownership link are written: the blog records
	// the owner and the owner's list records the blog.
	assert.Contains(t, alice.BlogIDs, blog.ID)
	stored, err := userRepo.GetByID(alice.ID)
	assert.NoError(t, err)
	assert.Contains(t, stored.BlogIDs, blog.ID)
}

func TestBlogService_CreateBlogValidation(t *testing.T) {
	service, _, alice, _ := setupBlogService(t)

	_, err := service.CreateBlog(alice, services.BlogInput{Title: "   ", Content: "World"})
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = service.CreateBlog(alice, services.BlogInput{Title: "Hi", Content: "\t\n"})
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = service.CreateBlog(alice, services.BlogInput{Title: "Hi", Content: "World", Likes: -1})
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestBlogService_UpdateBlog(t *testing.T) {
	service, _, alice, bob := setupBlogService(t)

	blog, err := service.CreateBlog(alice, services.BlogInput{Title: "Hi", Author: "A.", Content: "World"})
	assert.NoError(t, err)

	// Non-owner is refused with Forbidden, not NotFound.
	_, err = service.UpdateBlog(bob, blog.ID, services.BlogInput{Title: "Hijacked", Content: "Nope"})
	assert.ErrorIs(t, err, services.ErrForbidden)
	assert.NotErrorIs(t, err, services.ErrNotFound)

	// Owner replaces all fields; the owner reference never changes.
	updated, err := service.UpdateBlog(alice, blog.ID, services.BlogInput{
		Title:   "Hello again",
		Author:  "Alice L.",
		Content: "Updated body",
		Image:   "cover.png",
		Likes:   3,
	})
	assert.NoError(t, err)
	assert.Equal(t, blog.ID, updated.ID)
	assert.Equal(t, "Hello again", updated.Title)
	assert.Equal(t, "Alice L.", updated.Author)
	assert.Equal(t, "Updated body", updated.Content)
	assert.Equal(t, "cover.png", updated.Image)
	assert.Equal(t, 3, updated.Likes)
	assert.Equal(t, alice.ID, updated.UserID)

	// Unknown id
	_, err = service.UpdateBlog(alice, "no-such-blog", services.BlogInput{Title: "x", Content: "y"})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestBlogService_DeleteBlog(t *testing.T) {
	service, userRepo, alice, bob := setupBlogService(t)

	blog, err := service.CreateBlog(alice, services.BlogInput{Title: "Hi", Content: "World"})
	assert.NoError(t, err)

	// Non-owner may not delete.
	err = service.DeleteBlog(bob, blog.ID)
	assert.ErrorIs(t, err, services.ErrForbidden)

	// Owner delete removes the blog and the owner's list entry.
	err = service.DeleteBlog(alice, blog.ID)
	assert.NoError(t, err)
	assert.NotContains(t, alice.BlogIDs, blog.ID)

	_, err = service.GetBlogByID(blog.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	stored, err := userRepo.GetByID(alice.ID)
	assert.NoError(t, err)
	assert.NotContains(t, stored.BlogIDs, blog.ID)

	// Deleting again is NotFound.
	err = service.DeleteBlog(alice, blog.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestBlogService_LikeBlog(t *testing.T) {
	service, _, alice, bob := setupBlogService(t)

	blog, err := service.CreateBlog(alice, services.BlogInput{Title: "Hi", Content: "World"})
	assert.NoError(t, err)

	// Another user's like increments by exactly one.
	liked, err := service.LikeBlog(bob, blog.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, liked.Likes)

	liked, err = service.LikeBlog(bob, blog.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, liked.Likes)

	// The author may not like their own blog.
	_, err = service.LikeBlog(alice, blog.ID)
	assert.ErrorIs(t, err, services.ErrForbidden)

	// The denied like left the counter untouched.
	current, err := service.GetBlogByID(blog.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, current.Likes)

	// Unknown id
	_, err = service.LikeBlog(bob, "no-such-blog")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestBlogService_GetAllBlogs(t *testing.T) {
	service, _, alice, bob := setupBlogService(t)

	_, err := service.CreateBlog(alice, services.BlogInput{Title: "One", Content: "a"})
	assert.NoError(t, err)
	_, err = service.CreateBlog(bob, services.BlogInput{Title: "Two", Content: "b"})
	assert.NoError(t, err)

	blogs, err := service.GetAllBlogs()
	assert.NoError(t, err)
	assert.Len(t, blogs, 2)
}
