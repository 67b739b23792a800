/*
Package domain contains the core domain models of the submittals wizard.

It defines the session snapshot (cursor and answers), the answer values the
form collects, the read-only views handed to hosts, and the lifecycle events
emitted while a session moves through the wizard. This package is kept pure and
free of I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Answers: The per-session answer store (field key -> value).
  - FileRef: A reference to an uploaded file held by a blob store.
  - State: Captures the runtime snapshot of a session (Cursor, Answers, History).
  - View: What a host needs to render the active section and the navigation menu.
*/
package domain
