package runtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/submittals/internal/logging"
	"github.com/aretw0/submittals/pkg/domain"
	"github.com/aretw0/submittals/pkg/schema"
)

// Engine is the wizard state machine.
// It is stateless: every operation takes a State and returns a new one,
// leaving the input untouched.
type Engine struct {
	schema *schema.Schema
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	now    func() time.Time
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates a new engine over a validated schema.
func NewEngine(s *schema.Schema, opts ...EngineOption) *Engine {
	e := &Engine{
		schema: s,
		logger: logging.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Schema returns the schema the engine runs.
func (e *Engine) Schema() *schema.Schema {
	return e.schema
}

// Start creates the initial state of a session, positioned on the first section.
func (e *Engine) Start(ctx context.Context, sessionID string) *domain.State {
	state := domain.NewState(sessionID)
	e.logger.Debug("session started", "session_id", sessionID)
	e.emitSectionEnter(ctx, state)
	return state
}

// CurrentSection returns the active section ID.
func (e *Engine) CurrentSection(state *domain.State) int {
	return e.schema.Clamp(state.Cursor)
}

// IsComplete evaluates the completion predicate of section id against the
// current answers. Unknown ids are never complete.
func (e *Engine) IsComplete(state *domain.State, id int) bool {
	sec, ok := e.schema.Section(id)
	if !ok {
		return false
	}
	return sec.IsComplete(state.Answers)
}

// Reset clears every answer and returns to the first section.
func (e *Engine) Reset(ctx context.Context, state *domain.State) *domain.State {
	if state.Cursor != 0 {
		e.emitSectionLeave(ctx, state)
	}
	next := domain.NewState(state.SessionID)
	e.logger.Debug("session reset", "session_id", state.SessionID)
	if state.Cursor != 0 {
		e.emitSectionEnter(ctx, next)
	}
	return next
}
