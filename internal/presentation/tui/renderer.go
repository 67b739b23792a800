package tui

import (
	"github.com/charmbracelet/glamour"
)

// Markdown renders markdown for the terminal.
type Markdown func(string) (string, error)

// NewRenderer returns a glamour renderer wrapped at width columns, or nil
// when glamour cannot be initialized. Non-terminal output should use Plain.
func NewRenderer(width int) Markdown {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	return r.Render
}

// Plain returns markdown unchanged.
func Plain(markdown string) (string, error) {
	return markdown, nil
}
