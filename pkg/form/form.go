// Package form declares the parking guidance submittal wizard.
package form

import (
	"github.com/aretw0/submittals/pkg/dsl"
	"github.com/aretw0/submittals/pkg/schema"
)

// Options customizes the form.
type Options struct {
	// Managers lists the selectable project managers. The placeholder is
	// always prepended. Empty means DefaultManagers.
	Managers []string
}

// New builds the submittal schema.
func New(opts Options) (*schema.Schema, error) {
	managers := opts.Managers
	if len(managers) == 0 {
		managers = DefaultManagers
	}
	managerOptions := append([]string{ManagerPlaceholder}, managers...)

	b := dsl.New()

	b.Section(SectionIntro, "Project information").
		Describe("Basic details printed on the submittal cover page.").
		Text(ProjectName, "Project name").
		Placeholder("e.g. Acme Tower").
		Choice(ProjectManager, "Project manager", managerOptions...).
		Placeholder(ManagerPlaceholder).
		Date(SubmittalDate, "Submittal date").
		Help("Optional. Printed under the project name.").
		File(Logo, "Customer logo", imageExts...).
		Help("Optional. Placed in the bottom-right corner of the cover.").
		CompleteWhen(schema.All(
			schema.NonBlank(ProjectName),
			schema.ChoiceOtherThan(ProjectManager, ManagerPlaceholder),
		))

	covered := b.Section(SectionCovered, "Covered spaces").
		Describe("Indoor parking levels with a guidance system.").
		Choice(CoveredSpaces, "Does the project include covered spaces?", yesNo...).
		MultiChoice(Systems, "Systems included in the project", systemOptions...).
		VisibleWhen(schema.Equals(CoveredSpaces, Yes))
	systemFields(covered, SystemUMS, UMSLED, UMSInstall, UMSEmbedded, UMSConduit)
	covered.
		Confirm(UMSRemovePOSU, "POSU is NOT required for this project (only COMO will be included)").
		VisibleWhen(systemSelected(SystemUMS))
	systemFields(covered, SystemUpsolut, UpsolutLED, UpsolutInstall, UpsolutEmbedded, UpsolutConduit)
	covered.CompleteWhen(schema.Gated(CoveredSpaces, Yes, No, schema.All(
		schema.AnySelected(Systems),
		schema.ForEachSelected(Systems, systemComplete),
	)))

	b.Section(SectionRooftop, "Rooftop / open-air").
		Choice(Rooftop, "Does the project include rooftop or open-air spaces?", yesNo...).
		MultiChoice(RooftopSensors, "Sensors", RooftopSensorOptions...).
		VisibleWhen(schema.Equals(Rooftop, Yes)).
		CompleteWhen(schema.Gated(Rooftop, Yes, No, schema.AnySelected(RooftopSensors)))

	b.Section(SectionSignage, "Signage").
		Choice(Signage, "Does the project include signage?", yesNo...).
		MultiChoice(SignageTypes, "Signage types", SignageOptions...).
		VisibleWhen(schema.Equals(Signage, Yes)).
		File(SignageDesign, "Profile sign design", drawingExts...).
		VisibleWhen(schema.All(schema.Equals(Signage, Yes), schema.Includes(SignageTypes, SignageProfile))).
		CompleteWhen(schema.Gated(Signage, Yes, No, schema.All(
			schema.AnySelected(SignageTypes),
			schema.When(schema.Includes(SignageTypes, SignageProfile), schema.AtLeastFiles(SignageDesign, 1)),
		)))

	b.Section(SectionDrawings, "Drawings").
		Files(Drawings, "Parking layout drawings", drawingExts...).
		Help("One or more PDF, DWG or DXF files.").
		CompleteWhen(schema.AtLeastFiles(Drawings, 1))

	b.Section(SectionServer, "Server").
		File(NetworkTopology, "Network topology").
		CompleteWhen(schema.FileCount(NetworkTopology, 1))

	b.Section(SectionGenerate, "Generate").
		Describe("Download the submittal cover page.").
		Terminal()

	s, err := b.Build()
	if err != nil {
		return nil, err
	}
	return withReadiness(s)
}

// Default is the form with the default managers.
func Default() *schema.Schema {
	s, err := New(Options{})
	if err != nil {
		panic(err)
	}
	return s
}

// systemDetail holds the per-system answer keys.
type systemDetail struct {
	led, install, embedded, conduit string
}

var details = map[string]systemDetail{
	SystemUMS:     {UMSLED, UMSInstall, UMSEmbedded, UMSConduit},
	SystemUpsolut: {UpsolutLED, UpsolutInstall, UpsolutEmbedded, UpsolutConduit},
}

func systemSelected(system string) schema.Predicate {
	return schema.All(schema.Equals(CoveredSpaces, Yes), schema.Includes(Systems, system))
}

func systemFields(s *dsl.SectionBuilder, system, led, install, embedded, conduit string) {
	visible := systemSelected(system)
	s.Choice(led, system+" LED type", ledOptions...).
		VisibleWhen(visible).
		Choice(install, system+" installation type", installOpts...).
		VisibleWhen(visible).
		Choice(embedded, system+" embedded installation type", mountOptions...).
		VisibleWhen(schema.All(visible, schema.Equals(install, InstallEmbedded))).
		Choice(conduit, system+" conduit installation type", mountOptions...).
		VisibleWhen(schema.All(visible, schema.Equals(install, InstallConduit)))
}

func systemComplete(system string) schema.Predicate {
	d, ok := details[system]
	if !ok {
		return nil
	}
	return schema.All(
		schema.Answered(d.led),
		schema.Answered(d.install),
		schema.When(schema.Equals(d.install, InstallEmbedded), schema.Answered(d.embedded)),
		schema.When(schema.Equals(d.install, InstallConduit), schema.Answered(d.conduit)),
	)
}

// withReadiness makes the terminal section complete once every section
// before it is.
func withReadiness(s *schema.Schema) (*schema.Schema, error) {
	sections := s.Sections()
	prior := make([]schema.Predicate, 0, len(sections)-1)
	for _, sec := range sections[:len(sections)-1] {
		prior = append(prior, sec.IsComplete)
	}
	sections[len(sections)-1].Complete = schema.All(prior...)
	return schema.New(sections...)
}
