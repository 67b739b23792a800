/*
Package dsl provides a Go DSL for programmatically constructing wizard schemas.

It lets the form be declared with a type-safe, fluent builder instead of
hand-assembling schema.Section literals. Field modifiers apply to the field
added just before them, which keeps conditional sub-fields next to the field
that reveals them.

Example usage:

	package main

	import (
		"github.com/aretw0/submittals/pkg/dsl"
		"github.com/aretw0/submittals/pkg/schema"
	)

	func main() {
		b := dsl.New()

		b.Section("intro", "Project").
			Text("project_name", "Project name").
			Choice("covered", "Covered spaces?", "Yes", "No").
			MultiChoice("systems", "Systems", "UMS", "Upsolut").
			VisibleWhen(schema.Equals("covered", "Yes")).
			CompleteWhen(schema.NonBlank("project_name"))

		b.Section("generate", "Generate").Terminal()

		s, err := b.Build()
		// ... pass s to submittals.WithSchema(s)
	}
*/
package dsl
