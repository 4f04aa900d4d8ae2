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
)

type CommunityHandler struct {
	communities database.CommunityStore
	timeout     time.Duration
	log         *zap.Logger
}

func NewCommunityHandler(communities database.CommunityStore, timeout time.Duration, log *zap.Logger) *CommunityHandler {
	return &CommunityHandler{
		communities: communities,
		timeout:     timeout,
		log:         log.Named("communities"),
	}
}

// CreateCommunity creates a community and subscribes its creator
func (h *CommunityHandler) CreateCommunity(c *gin.Context) {
	userID, ok := authenticate(c)
	if !ok {
		return
	}

	req, ok := bind[models.CreateCommunityRequest](c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	community := models.Community{Name: req.Name, CreatorID: &userID}
	err := h.communities.Create(ctx, &community)
	if errors.Is(err, errs.ErrConstraintViolation) {
		c.JSON(http.StatusConflict, gin.H{"error": "Community already exists."})
		return
	}
	if err != nil {
		serverError(c, h.log, "failed to create community", err, "Could not create community")
		return
	}

	c.String(http.StatusOK, community.Name)
}

func (h *CommunityHandler) Subscribe(c *gin.Context) {
	userID, ok := authenticate(c)
	if !ok {
		return
	}

	req, ok := bind[models.MembershipRequest](c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	err := h.communities.Join(ctx, userID, req.CommunityID)
	switch {
	case errors.Is(err, errs.ErrConstraintViolation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "You are already a member of this community."})
		return
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Community not found."})
		return
	case err != nil:
		serverError(c, h.log, "failed to subscribe", err, "Cannot subscribe now. Try again later")
		return
	}

	c.String(http.StatusOK, req.CommunityID)
}

func (h *CommunityHandler) Unsubscribe(c *gin.Context) {
	userID, ok := authenticate(c)
	if !ok {
		return
	}

	req, ok := bind[models.MembershipRequest](c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	member, err := h.communities.IsMember(ctx, userID, req.CommunityID)
	if err != nil {
		serverError(c, h.log, "failed to check membership", err, "Cannot unsubscribe now. Try again later")
		return
	}
	if !member {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You are not a member of this community."})
		return
	}

	creator, err := h.communities.IsCreator(ctx, userID, req.CommunityID)
	if err != nil {
		serverError(c, h.log, "failed to check community creator", err, "Cannot unsubscribe now. Try again later")
		return
	}
	if creator {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You can't revoke your membership from your own community."})
		return
	}

	err = h.communities.Leave(ctx, userID, req.CommunityID)
	if errors.Is(err, errs.ErrNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You are not a member of this community."})
		return
	}
	if err != nil {
		serverError(c, h.log, "failed to unsubscribe", err, "Cannot unsubscribe now. Try again later")
		return
	}

	c.String(http.StatusOK, req.CommunityID)
}
