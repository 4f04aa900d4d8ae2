package handlers

import (
	"context"
	"fmt"

	"github.com/emilythestrangee/breadit-api/internal/database"
	"github.com/emilythestrangee/breadit-api/internal/models"
	"github.com/emilythestrangee/breadit-api/internal/voting"
)

const voteRetryMessage = "Cannot vote now. Try again later"

// applyVote executes the resolved action against the store.
func applyVote(ctx context.Context, store database.VoteStore, key models.VoteKey, action voting.Action) error {
	switch action.Kind {
	case voting.Create:
		return store.Create(ctx, key, action.Type)
	case voting.Update:
		return store.Update(ctx, key, action.Type)
	case voting.Delete:
		return store.Delete(ctx, key)
	default:
		return fmt.Errorf("unknown vote action %d", action.Kind)
	}
}
