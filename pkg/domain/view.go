package domain

// MoveAction names a navigation request.
type MoveAction string

const (
	MoveNext MoveAction = "next"
	MoveBack MoveAction = "back"
	MoveGoTo MoveAction = "goto"
)

// Move is a user-initiated navigation request.
// Section is only read for MoveGoTo.
type Move struct {
	Action  MoveAction `json:"action"`
	Section int        `json:"section,omitempty"`
}

// SectionStatus is one entry of the navigation menu.
type SectionStatus struct {
	ID       int    `json:"id"`
	Key      string `json:"key"`
	Title    string `json:"title"`
	Complete bool   `json:"complete"`
	Current  bool   `json:"current"`
	Visited  bool   `json:"visited"`
}

// FieldView is a visible field of the active section with its current value.
type FieldView struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Kind        string   `json:"kind"`
	Options     []string `json:"options,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Accept      []string `json:"accept,omitempty"`
	Help        string   `json:"help,omitempty"`
	Value       any      `json:"value,omitempty"`
}

// SectionView describes the active section.
type SectionView struct {
	ID          int    `json:"id"`
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Complete    bool   `json:"complete"`
	Terminal    bool   `json:"terminal"`
}

// View is everything a host needs to draw the wizard for one session.
type View struct {
	SessionID string          `json:"session_id"`
	Section   SectionView     `json:"section"`
	Fields    []FieldView     `json:"fields"`
	Progress  []SectionStatus `json:"progress"`
	CanBack   bool            `json:"can_back"`
	CanNext   bool            `json:"can_next"`
}
