package schema

import (
	"testing"

	"github.com/aretw0/submittals/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func answers(kv ...any) domain.Answers {
	a := domain.NewAnswers()
	for i := 0; i+1 < len(kv); i += 2 {
		a.Set(kv[i].(string), kv[i+1])
	}
	return a
}

func TestPredicates_Leaves(t *testing.T) {
	a := answers(
		"name", "  ",
		"manager", "Select one",
		"systems", []string{"UMS"},
		"files", []domain.FileRef{{ID: "1"}, {ID: "2"}},
	)

	assert.True(t, Answered("name")(a), "whitespace is still an answer")
	assert.False(t, NonBlank("name")(a))
	assert.False(t, ChoiceOtherThan("manager", "Select one")(a))
	assert.True(t, ChoiceOtherThan("manager", "Someone else")(a))
	assert.True(t, Includes("systems", "UMS")(a))
	assert.False(t, Includes("systems", "Upsolut")(a))
	assert.True(t, AnySelected("systems")(a))
	assert.False(t, AnySelected("missing")(a))
	assert.True(t, AtLeastFiles("files", 1)(a))
	assert.False(t, FileCount("files", 1)(a))
	assert.True(t, FileCount("files", 2)(a))
	assert.True(t, Equals("manager", "Select one")(a))
}

func TestPredicates_Combinators(t *testing.T) {
	yes := Always()
	no := Not(Always())
	a := domain.NewAnswers()

	assert.True(t, All()(a))
	assert.False(t, Any()(a))
	assert.True(t, All(yes, yes)(a))
	assert.False(t, All(yes, no)(a))
	assert.True(t, Any(no, yes)(a))
	assert.True(t, When(no, no)(a), "false antecedent holds vacuously")
	assert.False(t, When(yes, no)(a))
}

func TestGated(t *testing.T) {
	p := Gated("covered", "Yes", "No", AnySelected("systems"))

	assert.False(t, p(answers()), "unanswered gate is incomplete")
	assert.True(t, p(answers("covered", "No")))
	assert.False(t, p(answers("covered", "Yes")))
	assert.True(t, p(answers("covered", "Yes", "systems", []string{"UMS"})))

	// Nested answers left behind by an earlier "Yes" do not matter.
	assert.True(t, p(answers("covered", "No", "systems", []string{})))

	assert.False(t, p(answers("covered", "maybe")), "answers off the gate are incomplete")
	assert.False(t, p(answers("covered", "yes", "systems", []string{"UMS"})), "gate values match exactly")
}

func TestForEachSelected(t *testing.T) {
	p := ForEachSelected("systems", func(option string) Predicate {
		if option == "UMS" {
			return Answered("ums_led")
		}
		return nil
	})

	assert.True(t, p(answers()), "no selection, nothing to check")
	assert.False(t, p(answers("systems", []string{"UMS"})))
	assert.True(t, p(answers("systems", []string{"UMS"}, "ums_led", "Internal")))
	assert.True(t, p(answers("systems", []string{"Other"})))
}
