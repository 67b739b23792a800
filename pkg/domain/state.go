package domain

// State represents the current snapshot of a wizard session.
type State struct {
	// SessionID identifies the session this snapshot belongs to.
	SessionID string `json:"session_id"`

	// Cursor is the ordinal of the active section, bounded to [0, N].
	Cursor int `json:"cursor"`

	// Answers holds every value collected so far.
	Answers Answers `json:"answers"`

	// History tracks the sections visited, in order.
	History []int `json:"history,omitempty"`
}

// NewState creates a clean state positioned on the first section.
func NewState(sessionID string) *State {
	return &State{
		SessionID: sessionID,
		Cursor:    0,
		Answers:   NewAnswers(),
		History:   []int{0},
	}
}

// Clone returns a copy of the state that can be mutated without touching s.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	next := *s
	next.Answers = s.Answers.Clone()
	next.History = append([]int(nil), s.History...)
	return &next
}

// Visited reports whether the section has been entered at least once.
func (s *State) Visited(id int) bool {
	for _, h := range s.History {
		if h == id {
			return true
		}
	}
	return false
}
