package models

// User represents a registered author.
type User struct {
	ID       string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username string   `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Name     string   `json:"name" gorm:"type:varchar(100)"`
	Password string   `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never the plaintext
	BlogIDs  []string `json:"blogs" gorm:"serializer:json;type:text"`
}

// OwnsBlog reports whether the blog id appears in the user's blog list.
func (u *User) OwnsBlog(blogID string) bool {
	for _, id := range u.BlogIDs {
		if id == blogID {
			return true
		}
	}
	return false
}
