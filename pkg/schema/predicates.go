package schema

import (
	"slices"
	"strings"

	"github.com/aretw0/submittals/pkg/domain"
)

// Predicate is a pure rule over the current answers.
type Predicate func(domain.Answers) bool

// Always is satisfied by any answers.
func Always() Predicate {
	return func(domain.Answers) bool { return true }
}

// Answered is satisfied when key holds a non-empty value.
func Answered(key string) Predicate {
	return func(a domain.Answers) bool { return a.Has(key) }
}

// Equals is satisfied when the single-choice answer at key is want.
func Equals(key, want string) Predicate {
	return func(a domain.Answers) bool { return a.Choice(key) == want }
}

// Includes is satisfied when the multi-choice answer at key contains option.
func Includes(key, option string) Predicate {
	return func(a domain.Answers) bool { return slices.Contains(a.Choices(key), option) }
}

// AnySelected is satisfied when at least one option is chosen at key.
func AnySelected(key string) Predicate {
	return func(a domain.Answers) bool { return len(a.Choices(key)) > 0 }
}

// NonBlank is satisfied when the text at key is non-empty after trimming.
func NonBlank(key string) Predicate {
	return func(a domain.Answers) bool { return strings.TrimSpace(a.Text(key)) != "" }
}

// ChoiceOtherThan is satisfied when a choice is made and it is not placeholder.
func ChoiceOtherThan(key, placeholder string) Predicate {
	return func(a domain.Answers) bool {
		c := a.Choice(key)
		return c != "" && c != placeholder
	}
}

// FileCount is satisfied when exactly n files are attached at key.
func FileCount(key string, n int) Predicate {
	return func(a domain.Answers) bool { return len(a.Files(key)) == n }
}

// AtLeastFiles is satisfied when n or more files are attached at key.
func AtLeastFiles(key string, n int) Predicate {
	return func(a domain.Answers) bool { return len(a.Files(key)) >= n }
}

// All is satisfied when every predicate is. All() is satisfied.
func All(preds ...Predicate) Predicate {
	return func(a domain.Answers) bool {
		for _, p := range preds {
			if !p(a) {
				return false
			}
		}
		return true
	}
}

// Any is satisfied when at least one predicate is. Any() is not satisfied.
func Any(preds ...Predicate) Predicate {
	return func(a domain.Answers) bool {
		for _, p := range preds {
			if p(a) {
				return true
			}
		}
		return false
	}
}

// Not negates p.
func Not(p Predicate) Predicate {
	return func(a domain.Answers) bool { return !p(a) }
}

// When is the implication cond => then: satisfied when cond does not hold,
// or when both hold.
func When(cond, then Predicate) Predicate {
	return func(a domain.Answers) bool { return !cond(a) || then(a) }
}

// Gated models a parent question that unlocks nested requirements.
// It is satisfied when the answer at key is closed, or when it is open and
// then is satisfied. Any other answer, including none, is unsatisfied.
func Gated(key, open, closed string, then Predicate) Predicate {
	return func(a domain.Answers) bool {
		switch a.Choice(key) {
		case closed:
			return true
		case open:
			return then(a)
		}
		return false
	}
}

// ForEachSelected requires every option chosen at key to satisfy the
// predicate returned by rule. Options for which rule returns nil carry no
// requirements.
func ForEachSelected(key string, rule func(option string) Predicate) Predicate {
	return func(a domain.Answers) bool {
		for _, option := range a.Choices(key) {
			p := rule(option)
			if p != nil && !p(a) {
				return false
			}
		}
		return true
	}
}
