package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSectionEnter EventType = "section_enter"
	EventSectionLeave EventType = "section_leave"
	EventAnswer       EventType = "answer"
	EventGenerate     EventType = "generate"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
}

// SectionEvent represents entry or exit from a section.
type SectionEvent struct {
	EventBase
	SectionID  int    `json:"section_id"`
	SectionKey string `json:"section_key"`
}

// AnswerEvent represents a field edit.
type AnswerEvent struct {
	EventBase
	Field string `json:"field"`
	Kind  string `json:"kind"`
}

// GenerateEvent represents one cover page render attempt.
type GenerateEvent struct {
	EventBase
	Duration time.Duration `json:"duration"`
	Size     int           `json:"size,omitempty"`
	IsError  bool          `json:"is_error,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// LifecycleHooks defines callbacks for wizard observability.
type LifecycleHooks struct {
	OnSectionEnter func(context.Context, *SectionEvent)
	OnSectionLeave func(context.Context, *SectionEvent)
	OnAnswer       func(context.Context, *AnswerEvent)
	OnGenerate     func(context.Context, *GenerateEvent)
}
