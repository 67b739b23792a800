package submittals

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/aretw0/submittals/internal/logging"
	"github.com/aretw0/submittals/internal/presentation/graph"
	"github.com/aretw0/submittals/internal/runtime"
	"github.com/aretw0/submittals/pkg/adapters/memory"
	"github.com/aretw0/submittals/pkg/cover"
	"github.com/aretw0/submittals/pkg/domain"
	"github.com/aretw0/submittals/pkg/form"
	"github.com/aretw0/submittals/pkg/ports"
	"github.com/aretw0/submittals/pkg/schema"
	"github.com/aretw0/submittals/pkg/session"
	"github.com/google/uuid"
)

// DefaultMaxUploadSize caps a single attachment.
const DefaultMaxUploadSize int64 = 20 << 20

// CoverDateLayout is how the submittal date is printed on the cover.
const CoverDateLayout = "01-02-2006"

// Engine is the high-level entry point of the submittals wizard.
// It binds the stateless runtime to a session store, upload storage and the
// cover renderer, and implements ports.Wizard for hosts.
type Engine struct {
	runtime  *runtime.Engine
	schema   *schema.Schema
	sessions *session.Manager

	store    ports.StateStore
	blobs    ports.BlobStore
	locker   ports.DistributedLocker
	renderer *cover.Renderer

	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	maxUpload int64
	lockTTL   time.Duration
	newID     func() string

	nameKey, dateKey, logoKey string
}

var _ ports.Wizard = (*Engine)(nil)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithSchema replaces the built-in submittal form.
func WithSchema(s *schema.Schema) Option {
	return func(e *Engine) {
		e.schema = s
	}
}

// WithStore sets where session state lives. Defaults to memory.
func WithStore(store ports.StateStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithBlobStore sets where uploads live. Defaults to memory.
func WithBlobStore(blobs ports.BlobStore) Option {
	return func(e *Engine) {
		e.blobs = blobs
	}
}

// WithLocker enables distributed locking of sessions.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(e *Engine) {
		e.locker = locker
	}
}

// WithLockTTL sets the lease of distributed session locks.
func WithLockTTL(ttl time.Duration) Option {
	return func(e *Engine) {
		e.lockTTL = ttl
	}
}

// WithRenderer sets the cover renderer.
func WithRenderer(r *cover.Renderer) Option {
	return func(e *Engine) {
		e.renderer = r
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMaxUploadSize caps attachments, in bytes.
func WithMaxUploadSize(n int64) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxUpload = n
		}
	}
}

// WithIDGenerator overrides how session and file IDs are minted.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		e.newID = fn
	}
}

// WithCoverFields names the answers printed on the cover. Only needed with a
// custom schema.
func WithCoverFields(name, date, logo string) Option {
	return func(e *Engine) {
		e.nameKey, e.dateKey, e.logoKey = name, date, logo
	}
}

// New initializes a new Engine. Without options it runs the submittal form
// on in-memory storage.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{
		maxUpload: DefaultMaxUploadSize,
		newID:     uuid.NewString,
		nameKey:   form.ProjectName,
		dateKey:   form.SubmittalDate,
		logoKey:   form.Logo,
	}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.schema == nil {
		eng.schema = form.Default()
	}
	if eng.store == nil {
		eng.store = memory.NewStore()
	}
	if eng.blobs == nil {
		eng.blobs = memory.NewBlobStore()
	}
	if eng.renderer == nil {
		eng.renderer = cover.New()
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	if f, ok := eng.schema.Field(eng.logoKey); ok && !f.Kind.IsFile() {
		return nil, fmt.Errorf("cover logo field %q must be a file field", eng.logoKey)
	}

	sessionOpts := []session.Option{session.WithLogger(eng.logger), session.WithLockTTL(eng.lockTTL)}
	if eng.locker != nil {
		sessionOpts = append(sessionOpts, session.WithLocker(eng.locker))
	}
	eng.sessions = session.NewManager(eng.store, sessionOpts...)

	eng.runtime = runtime.NewEngine(eng.schema,
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
	)

	return eng, nil
}

// Schema returns the form definition.
func (e *Engine) Schema() *schema.Schema {
	return e.schema
}

// Start creates a new session positioned on the first section.
func (e *Engine) Start(ctx context.Context) (domain.View, error) {
	state := e.runtime.Start(ctx, e.newID())
	if err := e.sessions.Create(ctx, state); err != nil {
		return domain.View{}, fmt.Errorf("failed to start session: %w", err)
	}
	e.logger.Info("session started", "session_id", state.SessionID)
	return e.runtime.View(state), nil
}

// View renders the current section of a session.
func (e *Engine) View(ctx context.Context, sessionID string) (domain.View, error) {
	state, err := e.sessions.Load(ctx, sessionID)
	if err != nil {
		return domain.View{}, err
	}
	return e.runtime.View(state), nil
}

// State returns a copy of the raw session state.
func (e *Engine) State(ctx context.Context, sessionID string) (*domain.State, error) {
	return e.sessions.Load(ctx, sessionID)
}

// SetAnswer edits a non-file field. File fields change only through Attach
// and Detach.
func (e *Engine) SetAnswer(ctx context.Context, sessionID, key string, value any) (domain.View, error) {
	field, ok := e.schema.Field(key)
	if !ok {
		return domain.View{}, fmt.Errorf("%w: %s", domain.ErrUnknownField, key)
	}
	if field.Kind.IsFile() {
		return domain.View{}, fmt.Errorf("%w: %s", domain.ErrFileField, key)
	}

	return e.update(ctx, sessionID, func(s *domain.State) (*domain.State, error) {
		return e.runtime.SetAnswer(ctx, s, key, value)
	})
}

// Attach stores the upload and adds its reference to a file field.
// Single-file fields keep only the latest upload.
func (e *Engine) Attach(ctx context.Context, sessionID, key string, upload domain.Upload) (domain.View, error) {
	field, ok := e.schema.Field(key)
	if !ok {
		return domain.View{}, fmt.Errorf("%w: %s", domain.ErrUnknownField, key)
	}
	if !field.Kind.IsFile() {
		return domain.View{}, fmt.Errorf("%w: %s", domain.ErrFileField, key)
	}
	if int64(len(upload.Data)) > e.maxUpload {
		return domain.View{}, fmt.Errorf("%w: %d bytes exceeds %d", domain.ErrFileTooLarge, len(upload.Data), e.maxUpload)
	}

	ref := domain.FileRef{
		ID:          e.newID(),
		Name:        upload.Name,
		ContentType: upload.ContentType,
		Size:        int64(len(upload.Data)),
	}
	if err := e.blobs.Put(ctx, sessionID, ref.ID, upload.Data); err != nil {
		return domain.View{}, fmt.Errorf("failed to store upload: %w", err)
	}

	var replaced []domain.FileRef
	view, err := e.update(ctx, sessionID, func(s *domain.State) (*domain.State, error) {
		refs := slices.Clone(s.Answers.Files(key))
		if field.Kind == schema.KindFile {
			replaced = refs
			refs = nil
		}
		return e.runtime.SetAnswer(ctx, s, key, append(refs, ref))
	})
	if err != nil {
		e.dropBlobs(ctx, sessionID, ref)
		return domain.View{}, err
	}
	e.dropBlobs(ctx, sessionID, replaced...)
	return view, nil
}

// Detach removes one file from a file field.
func (e *Engine) Detach(ctx context.Context, sessionID, key, fileID string) (domain.View, error) {
	field, ok := e.schema.Field(key)
	if !ok {
		return domain.View{}, fmt.Errorf("%w: %s", domain.ErrUnknownField, key)
	}
	if !field.Kind.IsFile() {
		return domain.View{}, fmt.Errorf("%w: %s", domain.ErrFileField, key)
	}

	var removed domain.FileRef
	view, err := e.update(ctx, sessionID, func(s *domain.State) (*domain.State, error) {
		refs := slices.Clone(s.Answers.Files(key))
		i := slices.IndexFunc(refs, func(r domain.FileRef) bool { return r.ID == fileID })
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, fileID)
		}
		removed = refs[i]
		return e.runtime.SetAnswer(ctx, s, key, slices.Delete(refs, i, i+1))
	})
	if err != nil {
		return domain.View{}, err
	}
	e.dropBlobs(ctx, sessionID, removed)
	return view, nil
}

// Navigate moves the cursor of a session.
func (e *Engine) Navigate(ctx context.Context, sessionID string, move domain.Move) (domain.View, error) {
	return e.update(ctx, sessionID, func(s *domain.State) (*domain.State, error) {
		return e.runtime.Navigate(ctx, s, move)
	})
}

// Reset clears every answer and upload of a session and returns to the first section.
func (e *Engine) Reset(ctx context.Context, sessionID string) (domain.View, error) {
	view, err := e.update(ctx, sessionID, func(s *domain.State) (*domain.State, error) {
		return e.runtime.Reset(ctx, s), nil
	})
	if err != nil {
		return domain.View{}, err
	}
	if err := e.blobs.Purge(ctx, sessionID); err != nil {
		e.logger.Warn("failed to purge uploads", "session_id", sessionID, "err", err)
	}
	return view, nil
}

// End deletes a session and its uploads.
func (e *Engine) End(ctx context.Context, sessionID string) error {
	if _, err := e.sessions.Load(ctx, sessionID); err != nil {
		return err
	}
	if err := e.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	if err := e.blobs.Purge(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to purge uploads: %w", err)
	}
	e.logger.Info("session ended", "session_id", sessionID)
	return nil
}

// Sessions lists live session IDs.
func (e *Engine) Sessions(ctx context.Context) ([]string, error) {
	return e.sessions.List(ctx)
}

// Generate renders the cover page from the session's project name, submittal
// date and logo. It reads answers only; a failed render changes nothing.
func (e *Engine) Generate(ctx context.Context, sessionID string) (cover.Document, error) {
	state, err := e.sessions.Load(ctx, sessionID)
	if err != nil {
		return cover.Document{}, err
	}

	started := time.Now()
	doc, err := e.render(ctx, state)
	e.runtime.EmitGenerate(ctx, state, time.Since(started), len(doc.Data), err)
	return doc, err
}

func (e *Engine) render(ctx context.Context, state *domain.State) (cover.Document, error) {
	name := strings.TrimSpace(state.Answers.Text(e.nameKey))

	var date string
	if d, ok := state.Answers.Date(e.dateKey); ok {
		date = d.Format(CoverDateLayout)
	}

	var logo []byte
	if refs := state.Answers.Files(e.logoKey); len(refs) > 0 {
		data, err := e.blobs.Get(ctx, state.SessionID, refs[len(refs)-1].ID)
		if err != nil {
			return cover.Document{}, fmt.Errorf("failed to read logo: %w", err)
		}
		// An attached logo is always decoded, even when empty.
		logo = append([]byte{}, data...)
	}

	doc, err := e.renderer.Render(name, date, logo)
	if err != nil {
		return cover.Document{}, fmt.Errorf("failed to render cover: %w", err)
	}
	return doc, nil
}

// Graph returns a Mermaid flowchart of the sections with the session's
// progress overlaid.
func (e *Engine) Graph(ctx context.Context, sessionID string) (string, error) {
	state, err := e.sessions.Load(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return graph.GenerateMermaid(e.schema.Sections(), &graph.GraphOverlay{Progress: e.runtime.Progress(state)}), nil
}

// Diagram returns the Mermaid flowchart of the sections without session data.
func (e *Engine) Diagram() string {
	return graph.GenerateMermaid(e.schema.Sections(), nil)
}

func (e *Engine) update(ctx context.Context, sessionID string, fn func(*domain.State) (*domain.State, error)) (domain.View, error) {
	state, err := e.sessions.Update(ctx, sessionID, fn)
	if err != nil {
		return domain.View{}, err
	}
	return e.runtime.View(state), nil
}

func (e *Engine) dropBlobs(ctx context.Context, sessionID string, refs ...domain.FileRef) {
	for _, r := range refs {
		if err := e.blobs.Delete(ctx, sessionID, r.ID); err != nil && !errors.Is(err, domain.ErrBlobNotFound) {
			e.logger.Warn("failed to delete upload", "session_id", sessionID, "file_id", r.ID, "err", err)
		}
	}
}
