package tui

import (
	"bytes"
	"testing"

	"github.com/aretw0/submittals/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestMenu(t *testing.T) {
	out := Menu(termenv.Ascii, []domain.SectionStatus{
		{ID: 0, Title: "Project information", Complete: true},
		{ID: 1, Title: "Covered spaces", Current: true},
	})

	assert.Equal(t, "  ✓ 0. Project information\n> · 1. Covered spaces\n", out)
}

func TestSectionMarkdown(t *testing.T) {
	md := SectionMarkdown(domain.View{
		Section: domain.SectionView{ID: 4, Title: "Drawings", Description: "Upload plans."},
		Fields: []domain.FieldView{
			{Key: "drawings", Label: "Floor plans", Kind: "multifile", Value: []domain.FileRef{{ID: "f1", Name: "l1.pdf"}}},
			{Key: "rooftop", Label: "Rooftop", Kind: "choice", Options: []string{"Yes", "No"}, Help: "Open-air levels."},
		},
	})

	assert.Contains(t, md, "## 4. Drawings")
	assert.Contains(t, md, "Upload plans.")
	assert.Contains(t, md, "- **Floor plans** `drawings` (multifile): l1.pdf [f1]")
	assert.Contains(t, md, "  - options: Yes | No")
	assert.Contains(t, md, "  - Open-air levels.")

	empty := SectionMarkdown(domain.View{Section: domain.SectionView{ID: 6, Title: "Generate"}})
	assert.Contains(t, empty, "_Nothing to fill in here._")
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "_unanswered_", FormatValue(nil))
	assert.Equal(t, "yes", FormatValue(true))
	assert.Equal(t, "no", FormatValue(false))
	assert.Equal(t, "UMS, Upsolut", FormatValue([]string{"UMS", "Upsolut"}))
	assert.Equal(t, "42", FormatValue(42))
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, termenv.Ascii, "1.2.3\n")
	assert.Contains(t, buf.String(), "cover page wizard 1.2.3")
	assert.NotContains(t, buf.String(), "\x1b[", "ascii profile emits no escapes")
}

func TestPlain(t *testing.T) {
	out, err := Plain("# hi")
	assert.NoError(t, err)
	assert.Equal(t, "# hi", out)
}
