package schema

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/submittals/pkg/domain"
)

// Kind defines the widget family of a field and the shape of its answer.
type Kind string

const (
	KindChoice      Kind = "choice"
	KindMultiChoice Kind = "multichoice"
	KindText        Kind = "text"
	KindDate        Kind = "date"
	KindConfirm     Kind = "confirm"
	KindFile        Kind = "file"
	KindMultiFile   Kind = "multifile"
)

// IsFile reports whether answers of this kind are file references.
func (k Kind) IsFile() bool {
	return k == KindFile || k == KindMultiFile
}

// HasOptions reports whether the kind picks from a fixed option list.
func (k Kind) HasOptions() bool {
	return k == KindChoice || k == KindMultiChoice
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindChoice, KindMultiChoice, KindText, KindDate, KindConfirm, KindFile, KindMultiFile:
		return true
	}
	return false
}

// Normalize converts a raw value into the canonical stored shape for k.
// A nil value always normalizes to nil, which clears the answer.
func (k Kind) Normalize(value any) (any, error) {
	if value == nil {
		return nil, nil
	}

	switch k {
	case KindText, KindChoice:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", value)
		}
		return s, nil

	case KindMultiChoice:
		return normalizeChoices(value)

	case KindDate:
		return normalizeDate(value)

	case KindConfirm:
		return normalizeConfirm(value)

	case KindFile, KindMultiFile:
		switch t := value.(type) {
		case []domain.FileRef:
			return append([]domain.FileRef(nil), t...), nil
		case domain.FileRef:
			return []domain.FileRef{t}, nil
		}
		return nil, fmt.Errorf("expected file references, got %T", value)
	}

	return nil, fmt.Errorf("unsupported kind: %s", k)
}

// normalizeChoices returns a de-duplicated list preserving first-seen order.
func normalizeChoices(value any) ([]string, error) {
	var raw []string
	switch t := value.(type) {
	case []string:
		raw = t
	case string:
		raw = []string{t}
	case []any:
		raw = make([]string, 0, len(t))
		for i, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d: expected string, got %T", i, item)
			}
			raw = append(raw, s)
		}
	default:
		return nil, fmt.Errorf("expected list of strings, got %T", value)
	}

	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out, nil
}

var dateLayouts = []string{domain.DateLayout, time.RFC3339, "01-02-2006", "01/02/2006"}

func normalizeDate(value any) (any, error) {
	switch t := value.(type) {
	case time.Time:
		if t.IsZero() {
			return nil, nil
		}
		return t.Format(domain.DateLayout), nil
	case string:
		clean := strings.TrimSpace(t)
		if clean == "" {
			return nil, nil
		}
		for _, layout := range dateLayouts {
			if d, err := time.Parse(layout, clean); err == nil {
				return d.Format(domain.DateLayout), nil
			}
		}
		return nil, fmt.Errorf("invalid date: '%s' (expected YYYY-MM-DD)", t)
	}
	return nil, fmt.Errorf("expected date string, got %T", value)
}

func normalizeConfirm(value any) (any, error) {
	switch t := value.(type) {
	case bool:
		return t, nil
	case string:
		clean := strings.ToLower(strings.TrimSpace(t))
		switch clean {
		case "y", "yes", "true", "1", "on":
			return true, nil
		case "n", "no", "false", "0", "off", "":
			return false, nil
		}
		return nil, fmt.Errorf("invalid confirmation input: '%s' (expected y/n/yes/no)", t)
	}
	return nil, fmt.Errorf("expected bool, got %T", value)
}
