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

type UserHandler struct {
	users   database.UserStore
	timeout time.Duration
	log     *zap.Logger
}

func NewUserHandler(users database.UserStore, timeout time.Duration, log *zap.Logger) *UserHandler {
	return &UserHandler{
		users:   users,
		timeout: timeout,
		log:     log.Named("users"),
	}
}

// UpdateUsername sets the caller's username
func (h *UserHandler) UpdateUsername(c *gin.Context) {
	userID, ok := authenticate(c)
	if !ok {
		return
	}

	req, ok := bind[models.UsernameRequest](c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	taken, err := h.users.UsernameTaken(ctx, req.Name)
	if err != nil {
		serverError(c, h.log, "failed to check username", err, "Cannot change username now. Try again later")
		return
	}
	if taken {
		c.JSON(http.StatusConflict, gin.H{"error": "Username is taken."})
		return
	}

	err = h.users.SetUsername(ctx, userID, req.Name)
	switch {
	case errors.Is(err, errs.ErrConstraintViolation):
		c.JSON(http.StatusConflict, gin.H{"error": "Username is taken."})
		return
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		return
	case err != nil:
		serverError(c, h.log, "failed to update username", err, "Cannot change username now. Try again later")
		return
	}

	c.String(http.StatusOK, "OK")
}
