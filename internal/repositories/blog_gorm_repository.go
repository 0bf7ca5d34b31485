package repositories

import (
	"fmt"

	"bloglist/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMBlogRepository is a GORM implementation of BlogRepository.
type GORMBlogRepository struct {
	db *gorm.DB
}

// NewGORMBlogRepository creates a new instance of GORMBlogRepository.
func NewGORMBlogRepository(db *gorm.DB) *GORMBlogRepository {
	return &GORMBlogRepository{
		db: db,
	}
}

// GetAll retrieves all blogs from the database.
func (r *GORMBlogRepository) GetAll() ([]models.Blog, error) {
	var blogs []models.Blog
	if err := r.db.Find(&blogs).Error; err != nil {
		return nil, fmt.Errorf("failed to get all blogs: %w", err)
	}
	return blogs, nil
}

// GetByID retrieves a single blog by its ID from the database.
func (r *GORMBlogRepository) GetByID(id string) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.First(&blog, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("blog with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get blog by ID %s: %w", id, err)
	}
	return &blog, nil
}

// CreateOwned inserts the blog and appends its id to the owner's blog
// list in a single transaction. The owner struct is only mutated when
// both writes commit.
func (r *GORMBlogRepository) CreateOwned(blog *models.Blog, owner *models.User) error {
	if blog.ID == "" {
		blog.ID = uuid.New().String()
	}
	blog.UserID = owner.ID

	updatedList := append(append([]string{}, owner.BlogIDs...), blog.ID)
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(blog).Error; err != nil {
			return fmt.Errorf("failed to create blog: %w", err)
		}
		updatedOwner := *owner
		updatedOwner.BlogIDs = updatedList
		res := tx.Save(&updatedOwner)
		if res.Error != nil {
			return fmt.Errorf("failed to update owner blog list: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("owner with ID %s: %w", owner.ID, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}
	owner.BlogIDs = updatedList
	return nil
}

// Update replaces an existing blog record.
func (r *GORMBlogRepository) Update(blog *models.Blog) error {
	res := r.db.Save(blog)
	if res.Error != nil {
		return fmt.Errorf("failed to update blog: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("blog with ID %s for update: %w", blog.ID, ErrNotFound)
	}
	return nil
}

// DeleteOwned removes the blog and drops its id from the owner's blog
// list in a single transaction.
func (r *GORMBlogRepository) DeleteOwned(blog *models.Blog, owner *models.User) error {
	updatedList := make([]string, 0, len(owner.BlogIDs))
	for _, id := range owner.BlogIDs {
		if id != blog.ID {
			updatedList = append(updatedList, id)
		}
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Blog{}, "id = ?", blog.ID)
		if res.Error != nil {
			return fmt.Errorf("failed to delete blog: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("blog with ID %s for deletion: %w", blog.ID, ErrNotFound)
		}
		updatedOwner := *owner
		updatedOwner.BlogIDs = updatedList
		if err := tx.Save(&updatedOwner).Error; err != nil {
			return fmt.Errorf("failed to update owner blog list: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	owner.BlogIDs = updatedList
	return nil
}
