package models

import "time"

type VoteType string

const (
	VoteTypeUp   VoteType = "UP"
	VoteTypeDown VoteType = "DOWN"
)

func (t VoteType) Valid() bool {
	return t == VoteTypeUp || t == VoteTypeDown
}

// VoteKey identifies the single vote a user may hold on a target.
type VoteKey struct {
	UserID   string
	TargetID string
}

// VoteRecord is one user's stance on one post or comment.
type VoteRecord struct {
	UserID   string   `json:"userId"`
	TargetID string   `json:"targetId"`
	Type     VoteType `json:"type"`
}

func (r VoteRecord) Key() VoteKey {
	return VoteKey{UserID: r.UserID, TargetID: r.TargetID}
}

// Vote model - one row per (user, post); the composite primary key enforces uniqueness
type Vote struct {
	UserID    string    `gorm:"primaryKey;type:text" json:"user_id"`
	PostID    string    `gorm:"primaryKey;type:text;index" json:"post_id"`
	Type      VoteType  `gorm:"type:text;not null" json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentVote model - one row per (user, comment)
type CommentVote struct {
	UserID    string    `gorm:"primaryKey;type:text" json:"user_id"`
	CommentID string    `gorm:"primaryKey;type:text;index" json:"comment_id"`
	Type      VoteType  `gorm:"type:text;not null" json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PostVoteRequest struct {
	PostID   string   `json:"postId" binding:"required"`
	VoteType VoteType `json:"voteType" binding:"required,oneof=UP DOWN"`
}

type CommentVoteRequest struct {
	CommentID string   `json:"commentId" binding:"required"`
	VoteType  VoteType `json:"voteType" binding:"required,oneof=UP DOWN"`
}
