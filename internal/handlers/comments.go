package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/emilythestrangee/breadit-api/internal/database"
	"github.com/emilythestrangee/breadit-api/internal/errs"
	"github.com/emilythestrangee/breadit-api/internal/models"
	"github.com/emilythestrangee/breadit-api/internal/voting"
)

type CommentHandler struct {
	comments database.CommentStore
	votes    database.VoteStore
	timeout  time.Duration
	log      *zap.Logger
}

func NewCommentHandler(comments database.CommentStore, votes database.VoteStore, timeout time.Duration, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		comments: comments,
		votes:    votes,
		timeout:  timeout,
		log:      log.Named("comments"),
	}
}

// CreateComment adds a comment, optionally as a reply, to a post
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, ok := authenticate(c)
	if !ok {
		return
	}

	req, ok := bind[models.CreateCommentRequest](c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	comment := models.Comment{
		Text:      req.Text,
		PostID:    req.PostID,
		AuthorID:  userID,
		ReplyToID: req.ReplyToID,
	}
	err := h.comments.Create(ctx, &comment)
	if errors.Is(err, errs.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found."})
		return
	}
	if err != nil {
		serverError(c, h.log, "failed to create comment", err, "Cannot comment now. Try again later")
		return
	}

	c.String(http.StatusOK, "OK")
}

// VoteComment records, switches or withdraws the caller's vote on a comment.
// Comments are not checked for existence and their scores are never cached.
func (h *CommentHandler) VoteComment(c *gin.Context) {
	userID, ok := authenticate(c)
	if !ok {
		return
	}

	req, ok := bind[models.CommentVoteRequest](c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	key := models.VoteKey{UserID: userID, TargetID: req.CommentID}

	existing, err := h.votes.Find(ctx, key)
	if err != nil {
		serverError(c, h.log, "failed to load comment vote", err, voteRetryMessage)
		return
	}

	action := voting.Resolve(existing, req.VoteType)
	if err := applyVote(ctx, h.votes, key, action); err != nil {
		serverError(c, h.log, "failed to apply comment vote", err, voteRetryMessage)
		return
	}

	c.Status(http.StatusOK)
}
