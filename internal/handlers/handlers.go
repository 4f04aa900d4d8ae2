package handlers

import (
	"time"

	"go.uber.org/zap"

	"github.com/emilythestrangee/breadit-api/internal/cache"
	"github.com/emilythestrangee/breadit-api/internal/database"
)

// Handler combines all handler types
type Handler struct {
	Post      *PostHandler
	Comment   *CommentHandler
	Community *CommunityHandler
	User      *UserHandler
}

// Stores groups the persistence dependencies of the handlers.
type Stores struct {
	Posts        database.PostStore
	PostVotes    database.VoteStore
	Comments     database.CommentStore
	CommentVotes database.VoteStore
	Communities  database.CommunityStore
	Users        database.UserStore
}

// NewHandler creates a unified handler with all sub-handlers. timeout bounds every
// store and cache round trip made while serving a request.
func NewHandler(stores Stores, populator *cache.Populator, timeout time.Duration, log *zap.Logger) *Handler {
	return &Handler{
		Post:      NewPostHandler(stores.Posts, stores.PostVotes, stores.Communities, populator, timeout, log),
		Comment:   NewCommentHandler(stores.Comments, stores.CommentVotes, timeout, log),
		Community: NewCommunityHandler(stores.Communities, timeout, log),
		User:      NewUserHandler(stores.Users, timeout, log),
	}
}
