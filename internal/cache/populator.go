package cache

import (
	"context"

	"github.com/emilythestrangee/breadit-api/internal/models"
)

type Populator struct {
	writer    SnapshotWriter
	threshold int
}

func NewPopulator(writer SnapshotWriter, threshold int) *Populator {
	return &Populator{writer: writer, threshold: threshold}
}

func (p *Populator) Threshold() int {
	return p.threshold
}

// MaybePromote writes a snapshot of post when score has reached the threshold.
// Concurrent promotions of the same post are last-writer-wins.
func (p *Populator) MaybePromote(ctx context.Context, post *models.Post, score int, currentVote models.VoteType) error {
	if score < p.threshold {
		return nil
	}

	snap := models.CachedPost{
		ID:             post.ID,
		AuthorUsername: post.Author.DisplayName(),
		Content:        string(post.Content),
		Title:          post.Title,
		CurrentVote:    currentVote,
		CreatedAt:      post.CreatedAt,
	}
	return p.writer.WriteSnapshot(ctx, SnapshotKey(post.ID), snap)
}
