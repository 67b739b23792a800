package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/submittals/pkg/domain"
	"github.com/muesli/termenv"
)

const (
	checkmark = "✓"
	pending   = "·"
)

// Menu lists every section with its checkmark. The active section is
// marked with an arrow.
func Menu(profile termenv.Profile, progress []domain.SectionStatus) string {
	var sb strings.Builder
	for _, st := range progress {
		cursor := "  "
		if st.Current {
			cursor = profile.String("> ").Bold().String()
		}

		mark := profile.String(pending).Faint()
		if st.Complete {
			mark = profile.String(checkmark).Foreground(profile.Color("#22c55e"))
		}

		title := profile.String(st.Title)
		if st.Current {
			title = title.Bold()
		}
		fmt.Fprintf(&sb, "%s%s %d. %s\n", cursor, mark, st.ID, title)
	}
	return sb.String()
}

// SectionMarkdown describes the active section and its visible fields.
func SectionMarkdown(view domain.View) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "## %d. %s\n\n", view.Section.ID, view.Section.Title)
	if view.Section.Description != "" {
		fmt.Fprintf(&sb, "%s\n\n", view.Section.Description)
	}

	for _, f := range view.Fields {
		fmt.Fprintf(&sb, "- **%s** `%s` (%s): %s\n", f.Label, f.Key, f.Kind, FormatValue(f.Value))
		if len(f.Options) > 0 {
			fmt.Fprintf(&sb, "  - options: %s\n", strings.Join(f.Options, " | "))
		}
		if f.Help != "" {
			fmt.Fprintf(&sb, "  - %s\n", f.Help)
		}
	}
	if len(view.Fields) == 0 {
		sb.WriteString("_Nothing to fill in here._\n")
	}
	return sb.String()
}

// FormatValue prints an answer the way the shell accepts it back.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "_unanswered_"
	case string:
		return t
	case bool:
		if t {
			return "yes"
		}
		return "no"
	case []string:
		return strings.Join(t, ", ")
	case []domain.FileRef:
		names := make([]string, len(t))
		for i, r := range t {
			names[i] = fmt.Sprintf("%s [%s]", r.Name, r.ID)
		}
		return strings.Join(names, ", ")
	}
	return fmt.Sprint(v)
}
