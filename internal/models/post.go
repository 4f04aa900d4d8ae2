package models

import (
	"time"

	"gorm.io/datatypes"
)

type Post struct {
	ID          string         `gorm:"primaryKey;type:text" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Content     datatypes.JSON `json:"content"`
	AuthorID    string         `gorm:"type:text;not null;index" json:"author_id"`
	Author      User           `gorm:"foreignKey:AuthorID" json:"author"`
	CommunityID string         `gorm:"type:text;not null;index" json:"community_id"`
	Community   Community      `gorm:"foreignKey:CommunityID" json:"-"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type CreatePostRequest struct {
	Title       string         `json:"title" binding:"required,min=3,max=128"`
	CommunityID string         `json:"communityId" binding:"required"`
	Content     datatypes.JSON `json:"content"`
}

// CachedPost is the denormalized snapshot written to Redis once a post is popular.
type CachedPost struct {
	ID             string    `json:"id"`
	AuthorUsername string    `json:"authorUsername"`
	Content        string    `json:"content"`
	Title          string    `json:"title"`
	CurrentVote    VoteType  `json:"currentVote"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Fields flattens the snapshot into the hash written with HSET.
func (p CachedPost) Fields() map[string]any {
	return map[string]any{
		"id":             p.ID,
		"authorUsername": p.AuthorUsername,
		"content":        p.Content,
		"title":          p.Title,
		"currentVote":    string(p.CurrentVote),
		"createdAt":      p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
