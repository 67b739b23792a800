/*
Package submittals is a multi-step intake wizard that collects the details of a
parking guidance project and renders the submittal cover page.

The wizard is a linear sequence of sections. Each section declares its fields,
conditional visibility of sub-fields and a completion predicate that drives
the checkmarks of the navigation menu. Navigation is always free: the cursor
moves with Next, Back and GoTo and never advances on its own. The terminal
section produces a single-page PDF with the project name, the submittal date
and the customer logo.

# Architecture

The core is stateless. The runtime takes a session State and returns a new
one; the Engine in this package binds it to ports for session storage
(memory or Redis), upload storage and distributed locking, and exposes the
session-oriented ports.Wizard API that hosts drive. Reference hosts live in
pkg/adapters/http (JSON), pkg/adapters/mcp (agent tools) and the interactive
terminal behind "submittals run".

# Usage

	eng, err := submittals.New()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	view, _ := eng.Start(ctx)
	id := view.SessionID

	eng.SetAnswer(ctx, id, form.ProjectName, "Acme Tower")
	eng.SetAnswer(ctx, id, form.ProjectManager, "Alex Morgan")
	eng.Navigate(ctx, id, domain.Move{Action: domain.MoveGoTo, Section: 6})

	doc, err := eng.Generate(ctx, id)
	if err != nil {
		log.Fatal(err)
	}
	os.WriteFile(doc.Filename, doc.Data, 0o644)
*/
package submittals
