package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	mock_database "github.com/emilythestrangee/breadit-api/internal/database/mocks"
	"github.com/emilythestrangee/breadit-api/internal/errs"
	"github.com/emilythestrangee/breadit-api/internal/handlers"
	"github.com/emilythestrangee/breadit-api/internal/middleware"
	"github.com/emilythestrangee/breadit-api/internal/models"
	"github.com/emilythestrangee/breadit-api/internal/testutil"
)

func newCommentRouter(t *testing.T) (*gin.Engine, *mock_database.MockCommentStore, *mock_database.MockVoteStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	comments := mock_database.NewMockCommentStore(ctrl)
	votes := mock_database.NewMockVoteStore(ctrl)

	h := handlers.NewCommentHandler(comments, votes, time.Second, zap.NewNop())

	r := gin.New()
	r.Use(middleware.Authenticate(testutil.JWTSecret))
	r.PATCH("/api/community/post/comment", h.CreateComment)
	r.PATCH("/api/community/post/comment/vote", h.VoteComment)
	return r, comments, votes
}

func TestVoteComment(t *testing.T) {
	key := models.VoteKey{UserID: "u1", TargetID: "c1"}
	up := gin.H{"commentId": "c1", "voteType": "UP"}
	down := gin.H{"commentId": "c1", "voteType": "DOWN"}

	tests := []struct {
		name       string
		body       any
		token      bool
		setup      func(v *mock_database.MockVoteStore)
		wantStatus int
	}{
		{
			name:       "anonymous",
			body:       up,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "bad vote type",
			body:       gin.H{"commentId": "c1", "voteType": "MEH"},
			token:      true,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:  "first vote",
			body:  up,
			token: true,
			setup: func(v *mock_database.MockVoteStore) {
				v.EXPECT().Find(gomock.Any(), key).Return(nil, nil)
				v.EXPECT().Create(gomock.Any(), key, models.VoteTypeUp).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "same type toggles off",
			body:  down,
			token: true,
			setup: func(v *mock_database.MockVoteStore) {
				v.EXPECT().Find(gomock.Any(), key).Return(&models.VoteRecord{UserID: "u1", TargetID: "c1", Type: models.VoteTypeDown}, nil)
				v.EXPECT().Delete(gomock.Any(), key).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "opposite type switches",
			body:  down,
			token: true,
			setup: func(v *mock_database.MockVoteStore) {
				v.EXPECT().Find(gomock.Any(), key).Return(&models.VoteRecord{UserID: "u1", TargetID: "c1", Type: models.VoteTypeUp}, nil)
				v.EXPECT().Update(gomock.Any(), key, models.VoteTypeDown).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "store unavailable",
			body:  up,
			token: true,
			setup: func(v *mock_database.MockVoteStore) {
				v.EXPECT().Find(gomock.Any(), key).Return(nil, errs.Transient(errors.New("down")))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, votes := newCommentRouter(t)
			if tt.setup != nil {
				tt.setup(votes)
			}
			token := ""
			if tt.token {
				token = testutil.Token(t, "u1")
			}

			w := testutil.MakeRequest(t, r, http.MethodPatch, "/api/community/post/comment/vote", tt.body, token)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCreateComment(t *testing.T) {
	t.Run("reply", func(t *testing.T) {
		r, comments, _ := newCommentRouter(t)
		comments.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *models.Comment) error {
				assert.Equal(t, "p1", c.PostID)
				assert.Equal(t, "u1", c.AuthorID)
				if assert.NotNil(t, c.ReplyToID) {
					assert.Equal(t, "parent", *c.ReplyToID)
				}
				return nil
			})

		w := testutil.MakeRequest(t, r, http.MethodPatch, "/api/community/post/comment",
			gin.H{"postId": "p1", "text": "nice crumb", "replyToId": "parent"}, testutil.Token(t, "u1"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
	})

	t.Run("missing post", func(t *testing.T) {
		r, comments, _ := newCommentRouter(t)
		comments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errs.ErrNotFound)

		w := testutil.MakeRequest(t, r, http.MethodPatch, "/api/community/post/comment",
			gin.H{"postId": "nope", "text": "hello"}, testutil.Token(t, "u1"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Post not found.", testutil.ErrorMessage(t, w))
	})

	t.Run("empty text", func(t *testing.T) {
		r, _, _ := newCommentRouter(t)

		w := testutil.MakeRequest(t, r, http.MethodPatch, "/api/community/post/comment",
			gin.H{"postId": "p1"}, testutil.Token(t, "u1"))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "text is required", testutil.ErrorMessage(t, w))
	})
}
