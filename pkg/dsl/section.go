package dsl

import "github.com/aretw0/submittals/pkg/schema"

// SectionBuilder provides a fluent API for configuring a section.
// Field modifiers (VisibleWhen, Placeholder, Help, Accept) apply to the most
// recently added field.
type SectionBuilder struct {
	section schema.Section
	builder *Builder
}

// Describe sets the markdown description shown above the fields.
func (s *SectionBuilder) Describe(text string) *SectionBuilder {
	s.section.Description = text
	return s
}

// Text adds a free text field.
func (s *SectionBuilder) Text(key, label string) *SectionBuilder {
	return s.add(schema.Field{Key: key, Label: label, Kind: schema.KindText})
}

// Date adds a date field.
func (s *SectionBuilder) Date(key, label string) *SectionBuilder {
	return s.add(schema.Field{Key: key, Label: label, Kind: schema.KindDate})
}

// Choice adds a single-choice field.
func (s *SectionBuilder) Choice(key, label string, options ...string) *SectionBuilder {
	return s.add(schema.Field{Key: key, Label: label, Kind: schema.KindChoice, Options: options})
}

// MultiChoice adds a multi-choice field.
func (s *SectionBuilder) MultiChoice(key, label string, options ...string) *SectionBuilder {
	return s.add(schema.Field{Key: key, Label: label, Kind: schema.KindMultiChoice, Options: options})
}

// Confirm adds a checkbox field.
func (s *SectionBuilder) Confirm(key, label string) *SectionBuilder {
	return s.add(schema.Field{Key: key, Label: label, Kind: schema.KindConfirm})
}

// File adds a single file attachment field.
func (s *SectionBuilder) File(key, label string, accept ...string) *SectionBuilder {
	return s.add(schema.Field{Key: key, Label: label, Kind: schema.KindFile, Accept: accept})
}

// Files adds a multiple file attachment field.
func (s *SectionBuilder) Files(key, label string, accept ...string) *SectionBuilder {
	return s.add(schema.Field{Key: key, Label: label, Kind: schema.KindMultiFile, Accept: accept})
}

// VisibleWhen attaches a visibility predicate to the last field.
func (s *SectionBuilder) VisibleWhen(p schema.Predicate) *SectionBuilder {
	if f := s.last(); f != nil {
		f.Visible = p
	}
	return s
}

// Placeholder sets the placeholder of the last field.
func (s *SectionBuilder) Placeholder(text string) *SectionBuilder {
	if f := s.last(); f != nil {
		f.Placeholder = text
	}
	return s
}

// Help sets the help text of the last field.
func (s *SectionBuilder) Help(text string) *SectionBuilder {
	if f := s.last(); f != nil {
		f.Help = text
	}
	return s
}

// CompleteWhen sets the completion predicate of the section.
func (s *SectionBuilder) CompleteWhen(p schema.Predicate) *SectionBuilder {
	s.section.Complete = p
	return s
}

// Terminal marks the section as the end of the wizard.
func (s *SectionBuilder) Terminal() *SectionBuilder {
	s.section.Terminal = true
	return s
}

// Section starts the next section on the parent builder.
func (s *SectionBuilder) Section(key, title string) *SectionBuilder {
	return s.builder.Section(key, title)
}

// Build returns the underlying schema.Section.
// This is primarily used by the Builder, but exposed for advanced usage.
func (s *SectionBuilder) Build() schema.Section {
	sec := s.section
	sec.Fields = append([]schema.Field(nil), s.section.Fields...)
	return sec
}

func (s *SectionBuilder) add(f schema.Field) *SectionBuilder {
	s.section.Fields = append(s.section.Fields, f)
	return s
}

func (s *SectionBuilder) last() *schema.Field {
	if len(s.section.Fields) == 0 {
		return nil
	}
	return &s.section.Fields[len(s.section.Fields)-1]
}
