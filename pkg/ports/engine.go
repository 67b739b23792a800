package ports

import (
	"context"

	"github.com/aretw0/submittals/pkg/cover"
	"github.com/aretw0/submittals/pkg/domain"
	"github.com/aretw0/submittals/pkg/schema"
)

// Wizard is the session-oriented surface consumed by hosts (HTTP, MCP, CLI).
// Every call that names a session returns domain.ErrSessionNotFound when the
// session does not exist.
type Wizard interface {
	// Start creates a new session and returns its first view.
	Start(ctx context.Context) (domain.View, error)

	// View renders the current section of a session.
	View(ctx context.Context, sessionID string) (domain.View, error)

	// SetAnswer edits a non-file field.
	SetAnswer(ctx context.Context, sessionID, key string, value any) (domain.View, error)

	// Attach stores an upload and references it from a file field.
	Attach(ctx context.Context, sessionID, key string, upload domain.Upload) (domain.View, error)

	// Detach removes one file from a file field.
	Detach(ctx context.Context, sessionID, key, fileID string) (domain.View, error)

	// Navigate moves the cursor.
	Navigate(ctx context.Context, sessionID string, move domain.Move) (domain.View, error)

	// Generate renders the cover page from the session's answers.
	Generate(ctx context.Context, sessionID string) (cover.Document, error)

	// Reset clears every answer of a session.
	Reset(ctx context.Context, sessionID string) (domain.View, error)

	// End deletes a session and its uploads.
	End(ctx context.Context, sessionID string) error

	// Graph returns a Mermaid diagram with the session's progress overlaid.
	Graph(ctx context.Context, sessionID string) (string, error)

	// Schema returns the static form definition.
	Schema() *schema.Schema
}
