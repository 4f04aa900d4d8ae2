package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/emilythestrangee/breadit-api/internal/config"
	"github.com/emilythestrangee/breadit-api/internal/database"
	"github.com/emilythestrangee/breadit-api/internal/models"
	"github.com/emilythestrangee/breadit-api/internal/server"
	"github.com/emilythestrangee/breadit-api/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig(threshold int) config.Config {
	return config.Config{
		App:  config.App{Environment: "dev", Port: "0"},
		Auth: config.Auth{JWTSecret: string(testutil.JWTSecret)},
		Vote: config.Vote{
			CacheAfterUpvotes: threshold,
			StoreTimeout:      5 * time.Second,
		},
	}
}

func newRedis(t *testing.T) (*miniredis.Miniredis, redis.UniversalClient) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

// stubDB satisfies database.Service for routes that never reach a store.
type stubDB struct {
	status string
}

func (s stubDB) Health(context.Context) map[string]string { return map[string]string{"status": s.status} }
func (stubDB) Close() error                                 { return nil }
func (stubDB) GetDB() *gorm.DB                              { return nil }

var _ database.Service = stubDB{}

func TestHealth(t *testing.T) {
	mr, rdb := newRedis(t)
	r := server.New(testConfig(1), stubDB{status: "up"}, rdb, zap.NewNop()).RegisterRoutes()

	w := testutil.MakeRequest(t, r, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "up", body["database"]["status"])
	assert.Equal(t, "up", body["redis"]["status"])

	mr.Close()

	w = testutil.MakeRequest(t, r, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestVoteRateLimit(t *testing.T) {
	_, rdb := newRedis(t)
	cfg := testConfig(1)
	cfg.Vote.RateLimit = 0.001
	cfg.Vote.RateBurst = 1
	r := server.New(cfg, stubDB{status: "up"}, rdb, zap.NewNop()).RegisterRoutes()
	token := testutil.Token(t, "u1")

	// An invalid body still spends a token without touching a store.
	w := testutil.MakeRequest(t, r, http.MethodPatch, "/api/community/post/vote", gin.H{"postId": "p1"}, token)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = testutil.MakeRequest(t, r, http.MethodPatch, "/api/community/post/vote", gin.H{"postId": "p1"}, token)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "Too many votes. Slow down.", testutil.ErrorMessage(t, w))

	// Buckets are per caller.
	w = testutil.MakeRequest(t, r, http.MethodPatch, "/api/community/post/vote", gin.H{"postId": "p1"}, testutil.Token(t, "u2"))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPostVotePromotesToCache(t *testing.T) {
	svc := testutil.SetupTestService(t)
	db := svc.GetDB()
	mr, rdb := newRedis(t)
	r := server.New(testConfig(5), svc, rdb, zap.NewNop()).RegisterRoutes()

	voters := make([]*models.User, 5)
	for i := range voters {
		voters[i] = testutil.CreateTestUser(t, db, "voter_"+string(rune('a'+i)))
	}
	community := testutil.CreateTestCommunity(t, db, voters[0], "sourdough")
	post := testutil.CreateTestPost(t, db, voters[0], community, "Open crumb at last")
	key := "post" + post.ID

	vote := func(u *models.User, voteType string) int {
		w := testutil.MakeRequest(t, r, http.MethodPatch, "/api/community/post/vote",
			gin.H{"postId": post.ID, "voteType": voteType}, testutil.Token(t, u.ID))
		return w.Code
	}

	for _, u := range voters[:4] {
		require.Equal(t, http.StatusOK, vote(u, "UP"))
	}
	assert.False(t, mr.Exists(key), "score 4 is below the threshold")

	require.Equal(t, http.StatusOK, vote(voters[4], "UP"))
	require.True(t, mr.Exists(key))
	assert.Equal(t, post.ID, mr.HGet(key, "id"))
	assert.Equal(t, "Open crumb at last", mr.HGet(key, "title"))
	assert.Equal(t, "voter_a", mr.HGet(key, "authorUsername"))
	assert.Equal(t, "UP", mr.HGet(key, "currentVote"))
	assert.JSONEq(t, `{"blocks":[]}`, mr.HGet(key, "content"))

	// Toggling off lowers the score without touching the snapshot.
	require.Equal(t, http.StatusOK, vote(voters[0], "UP"))
	var count int64
	require.NoError(t, db.Model(&models.Vote{}).Where("post_id = ?", post.ID).Count(&count).Error)
	assert.Equal(t, int64(4), count)
	assert.True(t, mr.Exists(key))

	w := testutil.MakeRequest(t, r, http.MethodPatch, "/api/community/post/vote",
		gin.H{"postId": "missing", "voteType": "DOWN"}, testutil.Token(t, voters[0].ID))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
