package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/emilythestrangee/breadit-api/internal/errs"
	"github.com/emilythestrangee/breadit-api/internal/models"
)

// CommunityStore also serves as the membership gate for post creation.
type CommunityStore interface {
	// Create stores the community and subscribes its creator in one transaction.
	Create(ctx context.Context, community *models.Community) error
	IsMember(ctx context.Context, userID, communityID string) (bool, error)
	IsCreator(ctx context.Context, userID, communityID string) (bool, error)
	// Join fails with errs.ErrConstraintViolation when the user is already a member.
	Join(ctx context.Context, userID, communityID string) error
	// Leave fails with errs.ErrNotFound when the user is not a member.
	Leave(ctx context.Context, userID, communityID string) error
}

type communityStore struct {
	db *gorm.DB
}

func NewCommunityStore(db *gorm.DB) CommunityStore {
	return &communityStore{db: db}
}

func (s *communityStore) Create(ctx context.Context, community *models.Community) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(community).Error; err != nil {
			return err
		}
		if community.CreatorID == nil {
			return nil
		}
		return tx.Omit("User", "Community").Create(&models.Membership{
			UserID:      *community.CreatorID,
			CommunityID: community.ID,
		}).Error
	})
	return translate(err)
}

func (s *communityStore) IsMember(ctx context.Context, userID, communityID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Membership{}).
		Where("user_id = ? AND community_id = ?", userID, communityID).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (s *communityStore) IsCreator(ctx context.Context, userID, communityID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Community{}).
		Where("id = ? AND creator_id = ?", communityID, userID).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (s *communityStore) Join(ctx context.Context, userID, communityID string) error {
	membership := models.Membership{UserID: userID, CommunityID: communityID}
	return translate(s.db.WithContext(ctx).Omit("User", "Community").Create(&membership).Error)
}

func (s *communityStore) Leave(ctx context.Context, userID, communityID string) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND community_id = ?", userID, communityID).
		Delete(&models.Membership{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
