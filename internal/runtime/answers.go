package runtime

import (
	"context"
	"fmt"

	"github.com/aretw0/submittals/pkg/domain"
	"github.com/aretw0/submittals/pkg/schema"
)

// SetAnswer stores value under key after normalizing it for the field.
//
// Every well-formed value is accepted. Choices matching an option regardless
// of case are stored as that option; others are kept as given. Unknown keys fail with domain.ErrUnknownField and values of the wrong
// shape with a *schema.ValidationError. A nil value clears the answer.
func (e *Engine) SetAnswer(ctx context.Context, state *domain.State, key string, value any) (*domain.State, error) {
	field, ok := e.schema.Field(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownField, key)
	}

	normalized, err := field.Normalize(value)
	if err != nil {
		return nil, &schema.ValidationError{Key: key, Reason: err.Error(), Value: value}
	}

	next := state.Clone()
	next.Answers.Set(key, normalized)

	e.logger.Debug("answer set", "session_id", state.SessionID, "field", key, "kind", field.Kind)
	e.emitAnswer(ctx, next, field)
	return next, nil
}
