package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/emilythestrangee/breadit-api/internal/models"
)

type CommentStore interface {
	// Create fails with errs.ErrNotFound when the post or the replied-to comment is missing.
	Create(ctx context.Context, comment *models.Comment) error
}

type commentStore struct {
	db *gorm.DB
}

func NewCommentStore(db *gorm.DB) CommentStore {
	return &commentStore{db: db}
}

func (s *commentStore) Create(ctx context.Context, comment *models.Comment) error {
	return translate(s.db.WithContext(ctx).Omit("Author", "Post").Create(comment).Error)
}
