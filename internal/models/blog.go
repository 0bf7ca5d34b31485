package models

// Blog represents a published post. UserID is the owning identity and
// is fixed at creation; the Author field is a free-text byline and may
// differ from the owner's username.
type Blog struct {
	ID      string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title   string `json:"title" gorm:"type:varchar(200)" validate:"required"`
	Author  string `json:"author" gorm:"type:varchar(100)"`
	Content string `json:"content" gorm:"type:text" validate:"required"`
	Image   string `json:"image" gorm:"type:varchar(500)"`
	Likes   int    `json:"likes" validate:"gte=0"`
	UserID  string `json:"user_id" gorm:"index;type:varchar(36)"`
}
