// Package testutil holds helpers shared by integration tests that need a real
// Postgres and authenticated HTTP requests.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/emilythestrangee/breadit-api/internal/database"
	"github.com/emilythestrangee/breadit-api/internal/models"
)

// JWTSecret signs every token produced by Token.
var JWTSecret = []byte("test-secret")

// SetupTestService starts a throwaway Postgres container and returns a migrated
// database service. It skips the test under -short.
func SetupTestService(t *testing.T) database.Service {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("breadit_test"),
		tcpostgres.WithUsername("breadit"),
		tcpostgres.WithPassword("breadit"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	svc, err := database.Open(dsn, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })

	return svc
}

func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return SetupTestService(t).GetDB()
}

func CreateTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Name:  username,
		Email: username + "@example.com",
	}
	if username != "" {
		user.Username = &username
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateTestCommunity creates a community owned by creator and subscribes the creator.
func CreateTestCommunity(t *testing.T, db *gorm.DB, creator *models.User, name string) *models.Community {
	t.Helper()
	community := &models.Community{Name: name, CreatorID: &creator.ID}
	require.NoError(t, db.Create(community).Error)
	require.NoError(t, db.Omit("User", "Community").Create(&models.Membership{UserID: creator.ID, CommunityID: community.ID}).Error)
	return community
}

func CreateTestPost(t *testing.T, db *gorm.DB, author *models.User, community *models.Community, title string) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:       title,
		Content:     datatypes.JSON(`{"blocks":[]}`),
		AuthorID:    author.ID,
		CommunityID: community.ID,
	}
	require.NoError(t, db.Omit("Author", "Community").Create(post).Error)
	return post
}

func CreateTestComment(t *testing.T, db *gorm.DB, author *models.User, post *models.Post, text string) *models.Comment {
	t.Helper()
	comment := &models.Comment{Text: text, AuthorID: author.ID, PostID: post.ID}
	require.NoError(t, db.Omit("Author", "Post").Create(comment).Error)
	return comment
}

// Token returns a bearer token for userID signed with JWTSecret.
func Token(t *testing.T, userID string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(JWTSecret)
	require.NoError(t, err)
	return token
}

// MakeRequest serves one request through h. body is JSON-encoded unless it is nil;
// an empty token sends the request anonymously.
func MakeRequest(t *testing.T, h http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// ErrorMessage decodes the {"error": ...} body of a failed response.
func ErrorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}
