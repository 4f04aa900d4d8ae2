package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/emilythestrangee/breadit-api/internal/errs"
	"github.com/emilythestrangee/breadit-api/internal/models"
)

// VoteStore persists at most one vote per (user, target).
type VoteStore interface {
	// Find returns the vote for key, or nil when the user has not voted on the target.
	Find(ctx context.Context, key models.VoteKey) (*models.VoteRecord, error)
	// Create fails with errs.ErrConstraintViolation when a vote already exists for key.
	Create(ctx context.Context, key models.VoteKey, voteType models.VoteType) error
	// Update fails with errs.ErrNotFound when no vote exists for key.
	Update(ctx context.Context, key models.VoteKey, voteType models.VoteType) error
	// Delete fails with errs.ErrNotFound when no vote exists for key.
	Delete(ctx context.Context, key models.VoteKey) error
	ListForTarget(ctx context.Context, targetID string) ([]models.VoteRecord, error)
}

type voteRow interface {
	models.Vote | models.CommentVote
}

type voteStore[T voteRow] struct {
	db           *gorm.DB
	targetColumn string
	toRow        func(key models.VoteKey, voteType models.VoteType) T
	toRecord     func(row T) models.VoteRecord
}

func NewPostVoteStore(db *gorm.DB) VoteStore {
	return &voteStore[models.Vote]{
		db:           db,
		targetColumn: "post_id",
		toRow: func(key models.VoteKey, voteType models.VoteType) models.Vote {
			return models.Vote{UserID: key.UserID, PostID: key.TargetID, Type: voteType}
		},
		toRecord: func(row models.Vote) models.VoteRecord {
			return models.VoteRecord{UserID: row.UserID, TargetID: row.PostID, Type: row.Type}
		},
	}
}

func NewCommentVoteStore(db *gorm.DB) VoteStore {
	return &voteStore[models.CommentVote]{
		db:           db,
		targetColumn: "comment_id",
		toRow: func(key models.VoteKey, voteType models.VoteType) models.CommentVote {
			return models.CommentVote{UserID: key.UserID, CommentID: key.TargetID, Type: voteType}
		},
		toRecord: func(row models.CommentVote) models.VoteRecord {
			return models.VoteRecord{UserID: row.UserID, TargetID: row.CommentID, Type: row.Type}
		},
	}
}

func (s *voteStore[T]) byKey(ctx context.Context, key models.VoteKey) *gorm.DB {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND "+s.targetColumn+" = ?", key.UserID, key.TargetID)
}

func (s *voteStore[T]) Find(ctx context.Context, key models.VoteKey) (*models.VoteRecord, error) {
	var row T
	err := s.byKey(ctx, key).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err)
	}

	record := s.toRecord(row)
	return &record, nil
}

// Create relies on the (user, target) primary key; there is no read before the insert.
func (s *voteStore[T]) Create(ctx context.Context, key models.VoteKey, voteType models.VoteType) error {
	row := s.toRow(key, voteType)
	return translate(s.db.WithContext(ctx).Create(&row).Error)
}

func (s *voteStore[T]) Update(ctx context.Context, key models.VoteKey, voteType models.VoteType) error {
	result := s.byKey(ctx, key).Model(new(T)).Update("type", voteType)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (s *voteStore[T]) Delete(ctx context.Context, key models.VoteKey) error {
	result := s.byKey(ctx, key).Delete(new(T))
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (s *voteStore[T]) ListForTarget(ctx context.Context, targetID string) ([]models.VoteRecord, error) {
	var rows []T
	err := s.db.WithContext(ctx).Where(s.targetColumn+" = ?", targetID).Find(&rows).Error
	if err != nil {
		return nil, translate(err)
	}

	records := make([]models.VoteRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, s.toRecord(row))
	}
	return records, nil
}
