package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/emilythestrangee/breadit-api/internal/models"
)

type PostStore interface {
	Create(ctx context.Context, post *models.Post) error
	// FindWithAuthor loads a post and its author; errs.ErrNotFound when absent.
	FindWithAuthor(ctx context.Context, id string) (*models.Post, error)
}

type postStore struct {
	db *gorm.DB
}

func NewPostStore(db *gorm.DB) PostStore {
	return &postStore{db: db}
}

func (s *postStore) Create(ctx context.Context, post *models.Post) error {
	return translate(s.db.WithContext(ctx).Omit("Author", "Community").Create(post).Error)
}

func (s *postStore) FindWithAuthor(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).Preload("Author").Take(&post, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &post, nil
}
