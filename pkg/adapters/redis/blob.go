package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/submittals/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// BlobStore implements ports.BlobStore with one Redis hash per session.
type BlobStore struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// NewBlobStore creates a blob store. A non-zero ttl is refreshed on every Put,
// so uploads expire together with their session.
func NewBlobStore(client *backend.Client, prefix string, ttl time.Duration) *BlobStore {
	return &BlobStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (b *BlobStore) key(sessionID string) string {
	return b.prefix + "blob:" + sessionID
}

// Put stores data in the session hash.
func (b *BlobStore) Put(ctx context.Context, sessionID, fileID string, data []byte) error {
	pipe := b.client.Pipeline()
	pipe.HSet(ctx, b.key(sessionID), fileID, data)
	if b.ttl > 0 {
		pipe.Expire(ctx, b.key(sessionID), b.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store blob: %w", err)
	}
	return nil
}

// Get returns the stored data.
func (b *BlobStore) Get(ctx context.Context, sessionID, fileID string) ([]byte, error) {
	data, err := b.client.HGet(ctx, b.key(sessionID), fileID).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, domain.ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to read blob: %w", err)
	}
	return data, nil
}

// Delete removes one file from the session hash.
func (b *BlobStore) Delete(ctx context.Context, sessionID, fileID string) error {
	if err := b.client.HDel(ctx, b.key(sessionID), fileID).Err(); err != nil {
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	return nil
}

// Purge drops the whole session hash.
func (b *BlobStore) Purge(ctx context.Context, sessionID string) error {
	if err := b.client.Del(ctx, b.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to purge blobs: %w", err)
	}
	return nil
}
