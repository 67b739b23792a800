package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/submittals/internal/runtime"
	"github.com/aretw0/submittals/pkg/domain"
	"github.com/aretw0/submittals/pkg/form"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestCursorBounds verifies the cursor never leaves [0, N].
// Property: for any sequence of moves, 0 <= CurrentSection <= Last
func TestCursorBounds(t *testing.T) {
	ctx := context.Background()
	engine := runtime.NewEngine(form.Default())
	last := engine.Schema().Last()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("cursor stays within bounds", prop.ForAll(
		func(actions []int, targets []int) bool {
			state := engine.Start(ctx, "prop")
			for i, a := range actions {
				move := domain.Move{Action: domain.MoveNext}
				switch a {
				case 1:
					move.Action = domain.MoveBack
				case 2:
					move.Action = domain.MoveGoTo
					if i < len(targets) {
						move.Section = targets[i]
					}
				}
				next, err := engine.Navigate(ctx, state, move)
				if err != nil {
					return false
				}
				state = next
				if c := engine.CurrentSection(state); c < 0 || c > last || c != state.Cursor {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 2)),
		gen.SliceOf(gen.IntRange(-20, 20)),
	))

	properties.Property("boundary moves are no-ops", prop.ForAll(
		func(n int) bool {
			state := engine.Start(ctx, "prop")
			for i := 0; i < n; i++ {
				state = engine.Back(ctx, state)
			}
			if state.Cursor != 0 {
				return false
			}
			state = engine.GoTo(ctx, state, last)
			for i := 0; i < n; i++ {
				state = engine.Next(ctx, state)
			}
			return state.Cursor == last
		},
		gen.IntRange(1, 10),
	))

	properties.TestingRun(t)
}

// TestIsCompletePurity verifies completion is a pure function of answers.
// Property: IsComplete(s, id) == IsComplete(s, id) and answers are unchanged
func TestIsCompletePurity(t *testing.T) {
	ctx := context.Background()
	engine := runtime.NewEngine(form.Default())

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	choice := func(opts ...string) gopter.Gen { return gen.OneConstOf(toAny(opts)...) }

	properties.Property("completion is pure", prop.ForAll(
		func(name, covered, install, signage string, profile bool, files int) bool {
			state := engine.Start(ctx, "prop")
			set := func(k string, v any) {
				if next, err := engine.SetAnswer(ctx, state, k, v); err == nil {
					state = next
				}
			}
			set(form.ProjectName, name)
			set(form.CoveredSpaces, covered)
			set(form.Systems, []string{form.SystemUMS})
			set(form.UMSInstall, install)
			set(form.Signage, signage)
			if profile {
				set(form.SignageTypes, []string{form.SignageProfile})
			}
			refs := make([]domain.FileRef, files)
			for i := range refs {
				refs[i] = domain.FileRef{ID: string(rune('a' + i))}
			}
			set(form.Drawings, refs)

			before := state.Clone()
			for id := 0; id <= engine.Schema().Last(); id++ {
				first := engine.IsComplete(state, id)
				second := engine.IsComplete(state, id)
				if first != second {
					return false
				}
			}
			return len(before.Answers) == len(state.Answers) &&
				before.Answers.Text(form.ProjectName) == state.Answers.Text(form.ProjectName)
		},
		gen.AlphaString(),
		choice(form.Yes, form.No, ""),
		choice(form.InstallCChannel, form.InstallEmbedded, form.InstallConduit),
		choice(form.Yes, form.No),
		gen.Bool(),
		gen.IntRange(0, 3),
	))

	properties.TestingRun(t)
}

func toAny(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
