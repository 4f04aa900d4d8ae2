package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/emilythestrangee/breadit-api/internal/errs"
	"github.com/emilythestrangee/breadit-api/internal/models"
)

type UserStore interface {
	UsernameTaken(ctx context.Context, username string) (bool, error)
	// SetUsername fails with errs.ErrNotFound for an unknown user and
	// errs.ErrConstraintViolation when another user holds the name.
	SetUsername(ctx context.Context, userID, username string) error
}

type userStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) UserStore {
	return &userStore{db: db}
}

func (s *userStore) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (s *userStore) SetUsername(ctx context.Context, userID, username string) error {
	result := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Update("username", username)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
