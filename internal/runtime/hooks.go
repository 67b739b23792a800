package runtime

import (
	"context"
	"time"

	"github.com/aretw0/submittals/pkg/domain"
	"github.com/aretw0/submittals/pkg/schema"
)

func (e *Engine) emitSectionEnter(ctx context.Context, state *domain.State) {
	if e.hooks.OnSectionEnter == nil {
		return
	}
	e.hooks.OnSectionEnter(ctx, e.sectionEvent(domain.EventSectionEnter, state))
}

func (e *Engine) emitSectionLeave(ctx context.Context, state *domain.State) {
	if e.hooks.OnSectionLeave == nil {
		return
	}
	e.hooks.OnSectionLeave(ctx, e.sectionEvent(domain.EventSectionLeave, state))
}

func (e *Engine) emitAnswer(ctx context.Context, state *domain.State, field schema.Field) {
	if e.hooks.OnAnswer == nil {
		return
	}
	e.hooks.OnAnswer(ctx, &domain.AnswerEvent{
		EventBase: e.base(domain.EventAnswer, state.SessionID),
		Field:     field.Key,
		Kind:      string(field.Kind),
	})
}

// EmitGenerate reports a cover render attempt. The engine does not render
// itself; the caller owning the renderer calls this once per attempt.
func (e *Engine) EmitGenerate(ctx context.Context, state *domain.State, took time.Duration, size int, err error) {
	if err != nil {
		e.logger.Error("cover generation failed", "session_id", state.SessionID, "err", err)
	} else {
		e.logger.Info("cover generated", "session_id", state.SessionID, "bytes", size, "duration", took)
	}
	if e.hooks.OnGenerate == nil {
		return
	}
	evt := &domain.GenerateEvent{
		EventBase: e.base(domain.EventGenerate, state.SessionID),
		Duration:  took,
		Size:      size,
	}
	if err != nil {
		evt.IsError = true
		evt.Error = err.Error()
	}
	e.hooks.OnGenerate(ctx, evt)
}

func (e *Engine) sectionEvent(t domain.EventType, state *domain.State) *domain.SectionEvent {
	id := e.CurrentSection(state)
	sec, _ := e.schema.Section(id)
	return &domain.SectionEvent{
		EventBase:  e.base(t, state.SessionID),
		SectionID:  id,
		SectionKey: sec.Key,
	}
}

func (e *Engine) base(t domain.EventType, sessionID string) domain.EventBase {
	return domain.EventBase{
		Timestamp: e.now(),
		Type:      t,
		SessionID: sessionID,
	}
}
