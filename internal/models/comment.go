package models

import "time"

type Comment struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	Text      string    `gorm:"not null" json:"text"`
	AuthorID  string    `gorm:"type:text;not null" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"-"`
	PostID    string    `gorm:"type:text;not null;index" json:"post_id"`
	Post      Post      `gorm:"foreignKey:PostID" json:"-"`
	ReplyToID *string   `gorm:"type:text" json:"reply_to_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCommentRequest struct {
	PostID    string  `json:"postId" binding:"required"`
	Text      string  `json:"text" binding:"required"`
	ReplyToID *string `json:"replyToId,omitempty"`
}
