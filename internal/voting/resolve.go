// Package voting decides how a vote request changes a user's vote on a target
// and derives a target's score from its votes.
package voting

import "github.com/emilythestrangee/breadit-api/internal/models"

type ActionKind int

const (
	// Create stores a first vote for the (user, target) pair.
	Create ActionKind = iota + 1
	// Delete removes the existing vote (toggle-off).
	Delete
	// Update flips the existing vote to the requested type (switch).
	Update
)

func (k ActionKind) String() string {
	switch k {
	case Create:
		return "create"
	case Delete:
		return "delete"
	case Update:
		return "update"
	default:
		return "unknown"
	}
}

type Action struct {
	Kind ActionKind
	// Type is the vote type to persist; unset for Delete.
	Type models.VoteType
}

// Resolve maps the current vote (nil when absent) and the requested type to an action.
func Resolve(existing *models.VoteRecord, requested models.VoteType) Action {
	switch {
	case existing == nil:
		return Action{Kind: Create, Type: requested}
	case existing.Type == requested:
		return Action{Kind: Delete}
	default:
		return Action{Kind: Update, Type: requested}
	}
}

// Apply returns votes with action applied for key, leaving the input untouched.
func Apply(votes []models.VoteRecord, key models.VoteKey, action Action) []models.VoteRecord {
	out := make([]models.VoteRecord, 0, len(votes)+1)
	for _, v := range votes {
		if v.Key() == key {
			continue
		}
		out = append(out, v)
	}
	if action.Kind == Create || action.Kind == Update {
		out = append(out, models.VoteRecord{UserID: key.UserID, TargetID: key.TargetID, Type: action.Type})
	}
	return out
}
