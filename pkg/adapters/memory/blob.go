package memory

import (
	"context"
	"sync"

	"github.com/aretw0/submittals/pkg/domain"
)

// BlobStore implements ports.BlobStore in memory.
// Safe for concurrent use.
type BlobStore struct {
	data map[string]map[string][]byte
	mu   sync.RWMutex
}

// NewBlobStore creates an empty blob store.
func NewBlobStore() *BlobStore {
	return &BlobStore{
		data: make(map[string]map[string][]byte),
	}
}

// Put stores a copy of data.
func (b *BlobStore) Put(ctx context.Context, sessionID, fileID string, data []byte) error {
	copied := append([]byte(nil), data...)

	b.mu.Lock()
	defer b.mu.Unlock()
	files, ok := b.data[sessionID]
	if !ok {
		files = make(map[string][]byte)
		b.data[sessionID] = files
	}
	files[fileID] = copied
	return nil
}

// Get returns a copy of the stored data.
func (b *BlobStore) Get(ctx context.Context, sessionID, fileID string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, ok := b.data[sessionID][fileID]
	if !ok {
		return nil, domain.ErrBlobNotFound
	}
	return append([]byte(nil), data...), nil
}

// Delete removes one file.
func (b *BlobStore) Delete(ctx context.Context, sessionID, fileID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	files, ok := b.data[sessionID]
	if !ok {
		return nil
	}
	delete(files, fileID)
	if len(files) == 0 {
		delete(b.data, sessionID)
	}
	return nil
}

// Purge removes every file of the session.
func (b *BlobStore) Purge(ctx context.Context, sessionID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.data, sessionID)
	return nil
}
