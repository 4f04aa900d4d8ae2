package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/emilythestrangee/breadit-api/internal/cache"
	"github.com/emilythestrangee/breadit-api/internal/database"
	"github.com/emilythestrangee/breadit-api/internal/errs"
	"github.com/emilythestrangee/breadit-api/internal/models"
	"github.com/emilythestrangee/breadit-api/internal/voting"
)

type PostHandler struct {
	posts       database.PostStore
	votes       database.VoteStore
	communities database.CommunityStore
	cache       *cache.Populator
	timeout     time.Duration
	log         *zap.Logger
}

func NewPostHandler(
	posts database.PostStore,
	votes database.VoteStore,
	communities database.CommunityStore,
	populator *cache.Populator,
	timeout time.Duration,
	log *zap.Logger,
) *PostHandler {
	return &PostHandler{
		posts:       posts,
		votes:       votes,
		communities: communities,
		cache:       populator,
		timeout:     timeout,
		log:         log.Named("posts"),
	}
}

// CreatePost creates a post in a community the caller belongs to
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := authenticate(c)
	if !ok {
		return
	}

	req, ok := bind[models.CreatePostRequest](c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	member, err := h.communities.IsMember(ctx, userID, req.CommunityID)
	if err != nil {
		serverError(c, h.log, "failed to check membership", err, "Cannot post now. Try again later")
		return
	}
	if !member {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You are not a member of this community."})
		return
	}

	post := models.Post{
		Title:       req.Title,
		Content:     req.Content,
		AuthorID:    userID,
		CommunityID: req.CommunityID,
	}
	if err := h.posts.Create(ctx, &post); err != nil {
		serverError(c, h.log, "failed to create post", err, "Cannot post now. Try again later")
		return
	}

	c.String(http.StatusOK, "OK")
}

// VotePost records, switches or withdraws the caller's vote on a post, then promotes
// the post to the cache when its score reaches the threshold.
func (h *PostHandler) VotePost(c *gin.Context) {
	userID, ok := authenticate(c)
	if !ok {
		return
	}

	req, ok := bind[models.PostVoteRequest](c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	key := models.VoteKey{UserID: userID, TargetID: req.PostID}

	existing, err := h.votes.Find(ctx, key)
	if err != nil {
		serverError(c, h.log, "failed to load vote", err, voteRetryMessage)
		return
	}

	post, err := h.posts.FindWithAuthor(ctx, req.PostID)
	if errors.Is(err, errs.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found."})
		return
	}
	if err != nil {
		serverError(c, h.log, "failed to load post", err, voteRetryMessage)
		return
	}

	action := voting.Resolve(existing, req.VoteType)
	if err := applyVote(ctx, h.votes, key, action); err != nil {
		serverError(c, h.log, "failed to apply vote", err, voteRetryMessage)
		return
	}

	if action.Kind == voting.Delete {
		c.Status(http.StatusOK)
		return
	}

	// The vote is committed from here on; recount and caching are best-effort.
	votes, err := h.votes.ListForTarget(ctx, post.ID)
	if err != nil {
		h.log.Warn("vote recorded but recount failed",
			zap.String("post_id", post.ID),
			zap.Error(err),
		)
		c.Status(http.StatusOK)
		return
	}

	score := voting.Score(votes)
	if err := h.cache.MaybePromote(ctx, post, score, req.VoteType); err != nil {
		h.log.Warn("failed to cache post",
			zap.String("post_id", post.ID),
			zap.Int("score", score),
			zap.Error(err),
		)
	}

	c.Status(http.StatusOK)
}
