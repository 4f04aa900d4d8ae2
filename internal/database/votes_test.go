package database_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilythestrangee/breadit-api/internal/database"
	"github.com/emilythestrangee/breadit-api/internal/errs"
	"github.com/emilythestrangee/breadit-api/internal/models"
	"github.com/emilythestrangee/breadit-api/internal/testutil"
)

func TestVoteStores(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	user := testutil.CreateTestUser(t, db, "baker")
	community := testutil.CreateTestCommunity(t, db, user, "bread")
	post := testutil.CreateTestPost(t, db, user, community, "Rye")
	comment := testutil.CreateTestComment(t, db, user, post, "dense")

	stores := map[string]struct {
		store  database.VoteStore
		target string
	}{
		"post":    {database.NewPostVoteStore(db), post.ID},
		"comment": {database.NewCommentVoteStore(db), comment.ID},
	}

	for name, tc := range stores {
		t.Run(name, func(t *testing.T) {
			key := models.VoteKey{UserID: user.ID, TargetID: tc.target}

			got, err := tc.store.Find(ctx, key)
			require.NoError(t, err)
			assert.Nil(t, got)

			assert.ErrorIs(t, tc.store.Update(ctx, key, models.VoteTypeDown), errs.ErrNotFound)
			assert.ErrorIs(t, tc.store.Delete(ctx, key), errs.ErrNotFound)

			require.NoError(t, tc.store.Create(ctx, key, models.VoteTypeUp))
			assert.ErrorIs(t, tc.store.Create(ctx, key, models.VoteTypeDown), errs.ErrConstraintViolation)

			got, err = tc.store.Find(ctx, key)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, models.VoteRecord{UserID: user.ID, TargetID: tc.target, Type: models.VoteTypeUp}, *got)

			require.NoError(t, tc.store.Update(ctx, key, models.VoteTypeDown))
			votes, err := tc.store.ListForTarget(ctx, tc.target)
			require.NoError(t, err)
			require.Len(t, votes, 1)
			assert.Equal(t, models.VoteTypeDown, votes[0].Type)

			require.NoError(t, tc.store.Delete(ctx, key))
			votes, err = tc.store.ListForTarget(ctx, tc.target)
			require.NoError(t, err)
			assert.Empty(t, votes)
		})
	}
}

func TestVoteStore_ListForTargetIsScoped(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	store := database.NewPostVoteStore(db)

	a := testutil.CreateTestUser(t, db, "alpha")
	b := testutil.CreateTestUser(t, db, "bravo")
	community := testutil.CreateTestCommunity(t, db, a, "loaves")
	p1 := testutil.CreateTestPost(t, db, a, community, "First")
	p2 := testutil.CreateTestPost(t, db, a, community, "Second")

	require.NoError(t, store.Create(ctx, models.VoteKey{UserID: a.ID, TargetID: p1.ID}, models.VoteTypeUp))
	require.NoError(t, store.Create(ctx, models.VoteKey{UserID: b.ID, TargetID: p1.ID}, models.VoteTypeDown))
	require.NoError(t, store.Create(ctx, models.VoteKey{UserID: b.ID, TargetID: p2.ID}, models.VoteTypeUp))

	votes, err := store.ListForTarget(ctx, p1.ID)
	require.NoError(t, err)
	assert.Len(t, votes, 2)
	for _, v := range votes {
		assert.Equal(t, p1.ID, v.TargetID)
	}
}

func TestVoteStore_ConcurrentCreateKeepsOneVote(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	store := database.NewPostVoteStore(db)

	user := testutil.CreateTestUser(t, db, "racer")
	community := testutil.CreateTestCommunity(t, db, user, "track")
	post := testutil.CreateTestPost(t, db, user, community, "Photo finish")
	key := models.VoteKey{UserID: user.ID, TargetID: post.ID}

	const attempts = 10
	results := make([]error, attempts)
	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = store.Create(ctx, key, models.VoteTypeUp)
		}()
	}
	wg.Wait()

	var succeeded int
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
	}
	assert.Equal(t, 1, succeeded)

	votes, err := store.ListForTarget(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, votes, 1)
}
