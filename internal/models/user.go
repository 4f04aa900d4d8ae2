package models

import "time"

// User rows are provisioned by the external identity provider; this service only reads them
// and lets a user pick a username.
type User struct {
	ID       string  `gorm:"primaryKey;type:text" json:"id"`
	Name     string  `json:"name"`
	Email    string  `gorm:"uniqueIndex" json:"email"`
	Username *string `gorm:"uniqueIndex" json:"username"`
	Image    string  `json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName returns the username, or "" when none has been chosen yet.
func (u User) DisplayName() string {
	if u.Username == nil {
		return ""
	}
	return *u.Username
}

type UsernameRequest struct {
	Name string `json:"name" binding:"required,min=3,max=32,alphanumunderscore"`
}
