package runtime

import (
	"context"
	"fmt"

	"github.com/aretw0/submittals/pkg/domain"
)

// GoTo jumps to section id unconditionally. Out of range ids are clamped.
func (e *Engine) GoTo(ctx context.Context, state *domain.State, id int) *domain.State {
	return e.moveTo(ctx, state, e.schema.Clamp(id))
}

// Next advances one section. It is a no-op on the terminal section.
func (e *Engine) Next(ctx context.Context, state *domain.State) *domain.State {
	return e.moveTo(ctx, state, e.schema.Clamp(e.CurrentSection(state)+1))
}

// Back returns one section. It is a no-op on the first section.
func (e *Engine) Back(ctx context.Context, state *domain.State) *domain.State {
	return e.moveTo(ctx, state, e.schema.Clamp(e.CurrentSection(state)-1))
}

// Navigate applies a host navigation request.
// Only an unknown action fails; the move itself never does.
func (e *Engine) Navigate(ctx context.Context, state *domain.State, move domain.Move) (*domain.State, error) {
	switch move.Action {
	case domain.MoveNext:
		return e.Next(ctx, state), nil
	case domain.MoveBack:
		return e.Back(ctx, state), nil
	case domain.MoveGoTo:
		return e.GoTo(ctx, state, move.Section), nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMove, move.Action)
}

func (e *Engine) moveTo(ctx context.Context, state *domain.State, target int) *domain.State {
	next := state.Clone()
	if target == e.CurrentSection(state) {
		next.Cursor = target
		return next
	}

	e.emitSectionLeave(ctx, state)
	next.Cursor = target
	next.History = append(next.History, target)
	e.logger.Debug("section changed", "session_id", state.SessionID, "from", state.Cursor, "section", target)
	e.emitSectionEnter(ctx, next)
	return next
}
