package runtime_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/submittals/internal/runtime"
	"github.com/aretw0/submittals/pkg/domain"
	"github.com/aretw0/submittals/pkg/dsl"
	"github.com/aretw0/submittals/pkg/form"
	"github.com/aretw0/submittals/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeSteps(t *testing.T) *schema.Schema {
	t.Helper()
	b := dsl.New()
	b.Section("name", "Name").
		Text("name", "Name").
		CompleteWhen(schema.NonBlank("name"))
	b.Section("extras", "Extras").
		Choice("more", "More?", "Yes", "No").
		MultiChoice("items", "Items", "a", "b").
		VisibleWhen(schema.Equals("more", "Yes")).
		Date("when", "When").
		Confirm("ok", "OK")
	b.Section("done", "Done").Terminal()
	s, err := b.Build()
	require.NoError(t, err)
	return s
}

func TestEngine_StartAndNavigate(t *testing.T) {
	ctx := context.Background()
	engine := runtime.NewEngine(threeSteps(t))

	state := engine.Start(ctx, "s1")
	assert.Equal(t, 0, engine.CurrentSection(state))
	assert.Equal(t, "s1", state.SessionID)

	state = engine.Back(ctx, state)
	assert.Equal(t, 0, engine.CurrentSection(state), "back at first section is a no-op")

	state = engine.Next(ctx, state)
	state = engine.Next(ctx, state)
	assert.Equal(t, 2, engine.CurrentSection(state))

	state = engine.Next(ctx, state)
	assert.Equal(t, 2, engine.CurrentSection(state), "next at terminal is a no-op")

	state = engine.GoTo(ctx, state, 0)
	assert.Equal(t, 0, engine.CurrentSection(state))
	assert.Equal(t, []int{0, 1, 2, 0}, state.History)
}

func TestEngine_GoToClamps(t *testing.T) {
	ctx := context.Background()
	engine := runtime.NewEngine(threeSteps(t))
	state := engine.Start(ctx, "s1")

	assert.Equal(t, 2, engine.CurrentSection(engine.GoTo(ctx, state, 99)))
	assert.Equal(t, 0, engine.CurrentSection(engine.GoTo(ctx, state, -5)))
}

func TestEngine_NavigationDoesNotMutateInput(t *testing.T) {
	ctx := context.Background()
	engine := runtime.NewEngine(threeSteps(t))
	state := engine.Start(ctx, "s1")

	next := engine.Next(ctx, state)
	assert.Equal(t, 0, state.Cursor)
	assert.Equal(t, []int{0}, state.History)
	assert.Equal(t, 1, next.Cursor)
}

func TestEngine_Navigate(t *testing.T) {
	ctx := context.Background()
	engine := runtime.NewEngine(threeSteps(t))
	state := engine.Start(ctx, "s1")

	state, err := engine.Navigate(ctx, state, domain.Move{Action: domain.MoveGoTo, Section: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, state.Cursor)

	state, err = engine.Navigate(ctx, state, domain.Move{Action: domain.MoveBack})
	require.NoError(t, err)
	assert.Equal(t, 1, state.Cursor)

	state, err = engine.Navigate(ctx, state, domain.Move{Action: domain.MoveNext})
	require.NoError(t, err)
	assert.Equal(t, 2, state.Cursor)

	_, err = engine.Navigate(ctx, state, domain.Move{Action: "jump"})
	assert.ErrorIs(t, err, domain.ErrInvalidMove)
}

func TestEngine_IsComplete(t *testing.T) {
	ctx := context.Background()
	engine := runtime.NewEngine(threeSteps(t))
	state := engine.Start(ctx, "s1")

	assert.False(t, engine.IsComplete(state, 0))
	assert.True(t, engine.IsComplete(state, 1), "sections without a predicate are complete")
	assert.False(t, engine.IsComplete(state, 42), "unknown sections are never complete")
	assert.False(t, engine.IsComplete(state, -1))

	state, err := engine.SetAnswer(ctx, state, "name", "Acme")
	require.NoError(t, err)
	assert.True(t, engine.IsComplete(state, 0))
}

func TestEngine_SetAnswer(t *testing.T) {
	ctx := context.Background()
	engine := runtime.NewEngine(threeSteps(t))
	state := engine.Start(ctx, "s1")

	t.Run("unknown field", func(t *testing.T) {
		_, err := engine.SetAnswer(ctx, state, "nope", "x")
		assert.ErrorIs(t, err, domain.ErrUnknownField)
	})

	t.Run("wrong shape", func(t *testing.T) {
		_, err := engine.SetAnswer(ctx, state, "name", 12)
		var verr *schema.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "name", verr.Key)
	})

	t.Run("out of list choices are accepted", func(t *testing.T) {
		next, err := engine.SetAnswer(ctx, state, "more", "Maybe")
		require.NoError(t, err)
		assert.Equal(t, "Maybe", next.Answers.Choice("more"))
	})

	t.Run("normalization", func(t *testing.T) {
		next, err := engine.SetAnswer(ctx, state, "when", "03/14/2025")
		require.NoError(t, err)
		next, err = engine.SetAnswer(ctx, next, "ok", "yes")
		require.NoError(t, err)
		next, err = engine.SetAnswer(ctx, next, "items", []any{"a", "a", "b"})
		require.NoError(t, err)

		assert.Equal(t, "2025-03-14", next.Answers.Text("when"))
		assert.True(t, next.Answers.Bool("ok"))
		assert.Equal(t, []string{"a", "b"}, next.Answers.Choices("items"))
		assert.Empty(t, state.Answers, "input state is untouched")
	})

	t.Run("nil clears", func(t *testing.T) {
		next, err := engine.SetAnswer(ctx, state, "name", "Acme")
		require.NoError(t, err)
		next, err = engine.SetAnswer(ctx, next, "name", nil)
		require.NoError(t, err)
		assert.False(t, next.Answers.Has("name"))
	})
}

func TestEngine_ViewAndProgress(t *testing.T) {
	ctx := context.Background()
	engine := runtime.NewEngine(threeSteps(t))
	state := engine.Start(ctx, "s1")
	state = engine.Next(ctx, state)

	view := engine.View(state)
	assert.Equal(t, "s1", view.SessionID)
	assert.Equal(t, "extras", view.Section.Key)
	assert.True(t, view.CanBack)
	assert.True(t, view.CanNext)

	var keys []string
	for _, f := range view.Fields {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"more", "when", "ok"}, keys, "items hidden until more=Yes")

	state, err := engine.SetAnswer(ctx, state, "more", "Yes")
	require.NoError(t, err)
	view = engine.View(state)
	require.Len(t, view.Fields, 4)
	assert.Equal(t, "Yes", view.Fields[0].Value)

	require.Len(t, view.Progress, 3)
	assert.False(t, view.Progress[0].Complete)
	assert.True(t, view.Progress[0].Visited)
	assert.True(t, view.Progress[1].Current)
	assert.False(t, view.Progress[2].Visited)

	view = engine.View(engine.GoTo(ctx, state, 2))
	assert.True(t, view.Section.Terminal)
	assert.False(t, view.CanNext)
}

func TestEngine_Reset(t *testing.T) {
	ctx := context.Background()
	engine := runtime.NewEngine(threeSteps(t))
	state := engine.Start(ctx, "s1")
	state, err := engine.SetAnswer(ctx, state, "name", "Acme")
	require.NoError(t, err)
	state = engine.GoTo(ctx, state, 2)

	reset := engine.Reset(ctx, state)
	assert.Equal(t, "s1", reset.SessionID)
	assert.Equal(t, 0, reset.Cursor)
	assert.Empty(t, reset.Answers)
	assert.Equal(t, "Acme", state.Answers.Text("name"))
}

func TestEngine_NoShortCircuitRetainsAnswers(t *testing.T) {
	ctx := context.Background()
	engine := runtime.NewEngine(form.Default())
	state := engine.Start(ctx, "s1")

	var err error
	state, err = engine.SetAnswer(ctx, state, form.CoveredSpaces, form.Yes)
	require.NoError(t, err)
	state, err = engine.SetAnswer(ctx, state, form.Systems, []string{form.SystemUMS})
	require.NoError(t, err)
	assert.False(t, engine.IsComplete(state, 1))

	state, err = engine.SetAnswer(ctx, state, form.CoveredSpaces, form.No)
	require.NoError(t, err)
	assert.True(t, engine.IsComplete(state, 1))
	assert.Equal(t, []string{form.SystemUMS}, state.Answers.Choices(form.Systems))
}
