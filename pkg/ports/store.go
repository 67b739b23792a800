package ports

import (
	"context"

	"github.com/aretw0/submittals/pkg/domain"
)

// StateStore defines the interface for keeping session state between host
// requests. Sessions live only as long as the store keeps them.
type StateStore interface {
	// Save persists the state for a given session ID.
	Save(ctx context.Context, sessionID string, state *domain.State) error

	// Load retrieves the state for a given session ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.State, error)

	// Delete removes the state for a given session ID.
	Delete(ctx context.Context, sessionID string) error

	// List returns the IDs of live sessions.
	List(ctx context.Context) ([]string, error)
}

// BlobStore holds the bytes of uploaded files, scoped to a session.
// Answers only carry domain.FileRef; the content lives here.
type BlobStore interface {
	// Put stores data under the file ID.
	Put(ctx context.Context, sessionID, fileID string, data []byte) error

	// Get returns the data for the file ID.
	// Returns domain.ErrBlobNotFound if nothing is stored.
	Get(ctx context.Context, sessionID, fileID string) ([]byte, error)

	// Delete removes a single file. Missing files are not an error.
	Delete(ctx context.Context, sessionID, fileID string) error

	// Purge removes every file of the session.
	Purge(ctx context.Context, sessionID string) error
}
