package dsl

import (
	"fmt"

	"github.com/aretw0/submittals/pkg/schema"
)

// Builder manages the schema construction.
type Builder struct {
	sections []*SectionBuilder
	index    map[string]*SectionBuilder
}

// New creates a new schema builder.
func New() *Builder {
	return &Builder{
		index: make(map[string]*SectionBuilder),
	}
}

// Section appends a new section to the wizard.
// If the section already exists, it returns the existing builder.
func (b *Builder) Section(key, title string) *SectionBuilder {
	if sb, ok := b.index[key]; ok {
		return sb
	}
	sb := &SectionBuilder{
		section: schema.Section{
			Key:   key,
			Title: title,
		},
		builder: b,
	}
	b.sections = append(b.sections, sb)
	b.index[key] = sb
	return sb
}

// Build validates the sections, in declaration order, into a Schema.
func (b *Builder) Build() (*schema.Schema, error) {
	sections := make([]schema.Section, 0, len(b.sections))
	for _, sb := range b.sections {
		sections = append(sections, sb.Build())
	}

	s, err := schema.New(sections...)
	if err != nil {
		return nil, fmt.Errorf("failed to build schema: %w", err)
	}
	return s, nil
}
