/*
Package schema describes the wizard declaratively: sections, their fields and
the predicates that decide field visibility and section completion.

A Schema is data, not control flow. Hosts walk it to draw widgets, and the
runtime evaluates its predicates against a session's answers.

# Predicates

Predicates are pure functions of domain.Answers. They are composed from small
combinators so that conditional requirements read like the business rule:

	schema.Gated("signage", "Yes", "No", schema.All(
		schema.AnySelected("signage_types"),
		schema.When(schema.Includes("signage_types", "Profile signs"),
			schema.FileCount("signage_design", 1)),
	))

A gated predicate is satisfied when its parent question holds the closing
value, or the opening value with the nested rule met. Nested answers left over
from an earlier "Yes" are ignored, never cleared.

# Kinds

Each field has a Kind that normalizes raw host input (strings, JSON arrays,
booleans) into the canonical stored shape. Field.Normalize also maps choice
input onto the matching option regardless of case. Normalization only fails
on values that cannot be represented at all; it never rejects a value for
business reasons.
*/
package schema
