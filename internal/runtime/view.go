package runtime

import "github.com/aretw0/submittals/pkg/domain"

// Progress returns the navigation menu: one entry per section with its
// checkmark. Completion is recomputed on every call.
func (e *Engine) Progress(state *domain.State) []domain.SectionStatus {
	current := e.CurrentSection(state)
	sections := e.schema.Sections()
	out := make([]domain.SectionStatus, 0, len(sections))
	for _, sec := range sections {
		out = append(out, domain.SectionStatus{
			ID:       sec.ID,
			Key:      sec.Key,
			Title:    sec.Title,
			Complete: sec.IsComplete(state.Answers),
			Current:  sec.ID == current,
			Visited:  state.Visited(sec.ID),
		})
	}
	return out
}

// View describes the active section with its visible fields and their values.
func (e *Engine) View(state *domain.State) domain.View {
	current := e.CurrentSection(state)
	sec, _ := e.schema.Section(current)

	fields := make([]domain.FieldView, 0, len(sec.Fields))
	for _, f := range e.schema.VisibleFields(current, state.Answers) {
		value, _ := state.Answers.Get(f.Key)
		fields = append(fields, domain.FieldView{
			Key:         f.Key,
			Label:       f.Label,
			Kind:        string(f.Kind),
			Options:     f.Options,
			Placeholder: f.Placeholder,
			Accept:      f.Accept,
			Help:        f.Help,
			Value:       value,
		})
	}

	return domain.View{
		SessionID: state.SessionID,
		Section: domain.SectionView{
			ID:          sec.ID,
			Key:         sec.Key,
			Title:       sec.Title,
			Description: sec.Description,
			Complete:    sec.IsComplete(state.Answers),
			Terminal:    sec.Terminal,
		},
		Fields:   fields,
		Progress: e.Progress(state),
		CanBack:  current > 0,
		CanNext:  current < e.schema.Last(),
	}
}
