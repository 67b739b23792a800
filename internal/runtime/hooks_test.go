package runtime_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/submittals/internal/runtime"
	"github.com/aretw0/submittals/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_LifecycleHooks(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	var entered, left, answered []string
	var generated []*domain.GenerateEvent

	hooks := domain.LifecycleHooks{
		OnSectionEnter: func(_ context.Context, e *domain.SectionEvent) {
			assert.Equal(t, fixed, e.Timestamp)
			entered = append(entered, e.SectionKey)
		},
		OnSectionLeave: func(_ context.Context, e *domain.SectionEvent) {
			left = append(left, e.SectionKey)
		},
		OnAnswer: func(_ context.Context, e *domain.AnswerEvent) {
			answered = append(answered, e.Field+":"+e.Kind)
		},
		OnGenerate: func(_ context.Context, e *domain.GenerateEvent) {
			generated = append(generated, e)
		},
	}

	engine := runtime.NewEngine(threeSteps(t),
		runtime.WithLifecycleHooks(hooks),
		runtime.WithClock(func() time.Time { return fixed }),
	)

	state := engine.Start(ctx, "s1")
	state, err := engine.SetAnswer(ctx, state, "name", "Acme")
	require.NoError(t, err)
	state = engine.Next(ctx, state)
	state = engine.Next(ctx, state)
	state = engine.Next(ctx, state) // no-op at terminal emits nothing
	engine.EmitGenerate(ctx, state, time.Millisecond, 1024, nil)
	engine.EmitGenerate(ctx, state, time.Millisecond, 0, errors.New("boom"))
	engine.Reset(ctx, state)

	assert.Equal(t, []string{"name", "extras", "done", "name"}, entered)
	assert.Equal(t, []string{"name", "extras", "done"}, left)
	assert.Equal(t, []string{"name:text"}, answered)

	require.Len(t, generated, 2)
	assert.Equal(t, 1024, generated[0].Size)
	assert.False(t, generated[0].IsError)
	assert.True(t, generated[1].IsError)
	assert.Equal(t, "boom", generated[1].Error)
	assert.Equal(t, domain.EventGenerate, generated[1].Type)
}
