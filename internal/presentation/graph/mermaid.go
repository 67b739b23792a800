package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/submittals/pkg/domain"
	"github.com/aretw0/submittals/pkg/schema"
)

// GraphOverlay contains dynamic session data to visualize on the graph.
type GraphOverlay struct {
	Progress []domain.SectionStatus
}

// GenerateMermaid produces a Mermaid flowchart of the wizard sections.
// It applies semantic styling:
// - First section: ((Circle))
// - Terminal section: [[Subroutine]]
// - Default: [Rectangle]
// Sections are linked in order; a dotted edge from the terminal section back
// to the first one marks free navigation.
// It also applies overlay styles (Complete/Visited/Current) if provided.
func GenerateMermaid(sections []schema.Section, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for i, sec := range sections {
		safeID := sanitizeMermaidID(sec.Key)

		opener, closer := "[", "]"
		switch {
		case i == 0:
			opener, closer = "((", "))"
		case sec.Terminal:
			opener, closer = "[[", "]]"
		}

		title := strings.ReplaceAll(sec.Title, "\"", "'")
		sb.WriteString(fmt.Sprintf("    %s%s\"%d. %s\"%s\n", safeID, opener, sec.ID, title, closer))

		if i > 0 {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", sanitizeMermaidID(sections[i-1].Key), safeID))
		}
	}

	if len(sections) > 1 {
		first := sanitizeMermaidID(sections[0].Key)
		last := sanitizeMermaidID(sections[len(sections)-1].Key)
		sb.WriteString(fmt.Sprintf("    %s -. \"go to\" .-> %s\n", last, first))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef complete fill:#c8e6c9,stroke:#2e7d32,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		// Later class lines win in Mermaid, so current is written last.
		var current string
		for _, st := range overlay.Progress {
			safeID := sanitizeMermaidID(st.Key)
			switch {
			case st.Complete:
				sb.WriteString(fmt.Sprintf("    class %s complete;\n", safeID))
			case st.Visited:
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
			if st.Current {
				current = safeID
			}
		}
		if current != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", current))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
