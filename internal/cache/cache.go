// Package cache promotes popular posts into a Redis hash for the fast read path.
// It only ever writes: snapshots are never refreshed downward or removed here.
package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/emilythestrangee/breadit-api/internal/errs"
	"github.com/emilythestrangee/breadit-api/internal/models"
)

// SnapshotWriter stores a post snapshot under key, overwriting any previous value.
type SnapshotWriter interface {
	WriteSnapshot(ctx context.Context, key string, snap models.CachedPost) error
}

// SnapshotKey is the Redis key holding the snapshot of a post.
func SnapshotKey(postID string) string {
	return "post" + postID
}

type RedisWriter struct {
	client redis.UniversalClient
}

func NewRedisWriter(client redis.UniversalClient) *RedisWriter {
	return &RedisWriter{client: client}
}

func (w *RedisWriter) WriteSnapshot(ctx context.Context, key string, snap models.CachedPost) error {
	if err := w.client.HSet(ctx, key, snap.Fields()).Err(); err != nil {
		return errs.Transient(fmt.Errorf("hset %s: %w", key, err))
	}
	return nil
}

var _ SnapshotWriter = (*RedisWriter)(nil)
