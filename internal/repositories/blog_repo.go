package repositories

import (
	"errors"

	"bloglist/internal/models"
)

// ErrNotFound is returned by lookups for identifiers that resolve to
// no record. Wrapped errors should be checked with errors.Is.
var ErrNotFound = errors.New("record not found")

// BlogRepository defines the interface for blog data access.
//
// CreateOwned and DeleteOwned pair the blog write with the owner's
// blog-list write; implementations must apply both or neither, so the
// owner's list and the set of blogs referencing the owner never drift
// apart.
type BlogRepository interface {
	GetAll() ([]models.Blog, error)
	GetByID(id string) (*models.Blog, error)
	CreateOwned(blog *models.Blog, owner *models.User) error
	Update(blog *models.Blog) error
	DeleteOwned(blog *models.Blog, owner *models.User) error
}
