package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the startup banner with the version underneath.
func PrintBanner(w io.Writer, profile termenv.Profile, version string) {
	// Slate to teal, one shade per line.
	lines := []struct{ text, color string }{
		{`  ____        _               _ _   _        _     `, "#94a3b8"},
		{` / ___| _   _| |__  _ __ ___ (_) |_| |_ __ _| |___ `, "#5eead4"},
		{` \___ \| | | | '_ \| '_ ' _ \| | __| __/ _' | / __|`, "#2dd4bf"},
		{`  ___) | |_| | |_) | | | | | | | |_| || (_| | \__ \`, "#14b8a6"},
		{` |____/ \__,_|_.__/|_| |_| |_|_|\__|\__\__,_|_|___/`, "#0d9488"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, profile.String(l.text).Foreground(profile.Color(l.color)))
	}
	fmt.Fprintln(w, profile.String("  cover page wizard "+strings.TrimSpace(version)).Faint())
	fmt.Fprintln(w)
}
