package schema

import (
	"strings"

	"github.com/aretw0/submittals/pkg/domain"
)

// Field describes one input bound to a stable answer key.
type Field struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Kind        Kind     `json:"kind"`
	Options     []string `json:"options,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Accept      []string `json:"accept,omitempty"`
	Help        string   `json:"help,omitempty"`

	// Visible decides whether the field is shown. Nil means always visible.
	Visible Predicate `json:"-"`
}

// IsVisible evaluates the visibility predicate against answers.
func (f Field) IsVisible(a domain.Answers) bool {
	return f.Visible == nil || f.Visible(a)
}

// Normalize converts value into the stored shape for the field kind and maps
// choices onto the option they match regardless of case and surrounding
// whitespace. Choices matching no option are kept as given.
func (f Field) Normalize(value any) (any, error) {
	normalized, err := f.Kind.Normalize(value)
	if err != nil || !f.Kind.HasOptions() {
		return normalized, err
	}

	switch v := normalized.(type) {
	case string:
		return f.canonical(v), nil
	case []string:
		out := make([]string, 0, len(v))
		seen := make(map[string]bool, len(v))
		for _, choice := range v {
			c := f.canonical(choice)
			if seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
		}
		return out, nil
	}
	return normalized, nil
}

func (f Field) canonical(choice string) string {
	trimmed := strings.TrimSpace(choice)
	for _, option := range f.Options {
		if strings.EqualFold(option, trimmed) {
			return option
		}
	}
	return choice
}

// Section is one step of the wizard.
type Section struct {
	ID          int     `json:"id"`
	Key         string  `json:"key"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Fields      []Field `json:"fields"`
	Terminal    bool    `json:"terminal,omitempty"`

	// Complete decides the checkmark. Nil means always complete.
	Complete Predicate `json:"-"`
}

// IsComplete evaluates the completion predicate against answers.
func (s Section) IsComplete(a domain.Answers) bool {
	return s.Complete == nil || s.Complete(a)
}

// Schema is an immutable, validated sequence of sections.
type Schema struct {
	sections []Section
	fields   map[string]int // field key -> section id
}

// New validates sections and assigns their ordinal IDs.
//
// Section keys and field keys must be unique, every section needs a key,
// choice kinds must declare options, and exactly one section, the last, must
// be terminal.
func New(sections ...Section) (*Schema, error) {
	var errs []error

	if len(sections) == 0 {
		return nil, &ValidationError{Key: "sections", Reason: "at least one section is required"}
	}

	s := &Schema{
		sections: make([]Section, len(sections)),
		fields:   make(map[string]int),
	}
	seenSections := make(map[string]bool, len(sections))

	for i, sec := range sections {
		sec.ID = i
		sec.Fields = append([]Field(nil), sec.Fields...)

		if sec.Key == "" {
			errs = append(errs, &ValidationError{Key: sec.Title, Reason: "section key is required"})
		} else if seenSections[sec.Key] {
			errs = append(errs, &ValidationError{Key: sec.Key, Reason: "duplicate section key"})
		}
		seenSections[sec.Key] = true

		if sec.Terminal && i != len(sections)-1 {
			errs = append(errs, &ValidationError{Key: sec.Key, Reason: "terminal section must be last"})
		}

		for _, f := range sec.Fields {
			switch {
			case f.Key == "":
				errs = append(errs, &ValidationError{Key: sec.Key, Reason: "field key is required"})
				continue
			case !f.Kind.Valid():
				errs = append(errs, &ValidationError{Key: f.Key, Reason: "unsupported kind", Value: string(f.Kind)})
			case f.Kind.HasOptions() && len(f.Options) == 0:
				errs = append(errs, &ValidationError{Key: f.Key, Reason: "choice field needs options"})
			}
			if _, dup := s.fields[f.Key]; dup {
				errs = append(errs, &ValidationError{Key: f.Key, Reason: "duplicate field key"})
				continue
			}
			s.fields[f.Key] = i
		}

		s.sections[i] = sec
	}

	if !s.sections[len(s.sections)-1].Terminal {
		errs = append(errs, &ValidationError{Key: s.sections[len(s.sections)-1].Key, Reason: "last section must be terminal"})
	}

	if len(errs) > 0 {
		return nil, &AggregateError{Errors: errs}
	}
	return s, nil
}

// Len returns the number of sections.
func (s *Schema) Len() int { return len(s.sections) }

// Last returns the ID of the terminal section.
func (s *Schema) Last() int { return len(s.sections) - 1 }

// Clamp bounds id to [0, Last()].
func (s *Schema) Clamp(id int) int {
	if id < 0 {
		return 0
	}
	if id > s.Last() {
		return s.Last()
	}
	return id
}

// Sections returns the sections in order.
func (s *Schema) Sections() []Section {
	return append([]Section(nil), s.sections...)
}

// Section returns the section with the given ID.
func (s *Schema) Section(id int) (Section, bool) {
	if id < 0 || id >= len(s.sections) {
		return Section{}, false
	}
	return s.sections[id], true
}

// Field returns the field definition bound to key.
func (s *Schema) Field(key string) (Field, bool) {
	id, ok := s.fields[key]
	if !ok {
		return Field{}, false
	}
	for _, f := range s.sections[id].Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// SectionOf returns the section that declares the field key.
func (s *Schema) SectionOf(key string) (Section, bool) {
	id, ok := s.fields[key]
	if !ok {
		return Section{}, false
	}
	return s.sections[id], true
}

// VisibleFields returns the fields of section id that are visible for answers.
func (s *Schema) VisibleFields(id int, a domain.Answers) []Field {
	sec, ok := s.Section(id)
	if !ok {
		return nil
	}
	var out []Field
	for _, f := range sec.Fields {
		if f.IsVisible(a) {
			out = append(out, f)
		}
	}
	return out
}
