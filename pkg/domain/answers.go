package domain

import (
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// DateLayout is the canonical storage format for date answers.
const DateLayout = "2006-01-02"

// FileRef points at an uploaded file held by a ports.BlobStore.
type FileRef struct {
	ID          string `json:"id" mapstructure:"id"`
	Name        string `json:"name" mapstructure:"name"`
	ContentType string `json:"content_type,omitempty" mapstructure:"content_type"`
	Size        int64  `json:"size" mapstructure:"size"`
}

// Answers is the per-session answer store, keyed by field key.
//
// Values keep whatever shape they were stored with. After a JSON round trip
// (Redis, HTTP) slices come back as []any and file references as
// map[string]any, so reads go through the typed accessors below instead of
// type assertions.
type Answers map[string]any

// NewAnswers returns an empty answer store.
func NewAnswers() Answers {
	return make(Answers)
}

// Get returns the stored value. A nil value is reported as absent.
func (a Answers) Get(key string) (any, bool) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Set stores a value under key, allocating the map if needed.
func (a *Answers) Set(key string, value any) {
	if *a == nil {
		*a = make(Answers)
	}
	(*a)[key] = value
}

// Reset drops every answer.
func (a *Answers) Reset() {
	*a = make(Answers)
}

// Has reports whether key holds a non-empty value.
func (a Answers) Has(key string) bool {
	v, ok := a.Get(key)
	if !ok {
		return false
	}
	switch t := v.(type) {
	case string:
		return t != ""
	case []string:
		return len(t) > 0
	case []FileRef:
		return len(t) > 0
	case []any:
		return len(t) > 0
	}
	return true
}

// Text returns a string answer, or "" when absent or not a string.
func (a Answers) Text(key string) string {
	v, ok := a.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Choice returns a single-choice answer.
func (a Answers) Choice(key string) string {
	return a.Text(key)
}

// Choices returns a multi-choice answer in stored order.
func (a Answers) Choices(key string) []string {
	v, ok := a.Get(key)
	if !ok {
		return nil
	}
	if s, ok := v.([]string); ok {
		return s
	}
	var out []string
	if err := decode(v, &out); err != nil {
		return nil
	}
	return out
}

// Bool returns a confirm answer.
func (a Answers) Bool(key string) bool {
	v, ok := a.Get(key)
	if !ok {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	var out bool
	if err := decode(v, &out); err != nil {
		return false
	}
	return out
}

// Date returns a date answer stored in DateLayout.
func (a Answers) Date(key string) (time.Time, bool) {
	v, ok := a.Get(key)
	if !ok {
		return time.Time{}, false
	}
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case string:
		d, err := time.Parse(DateLayout, strings.TrimSpace(t))
		if err != nil {
			return time.Time{}, false
		}
		return d, true
	}
	return time.Time{}, false
}

// Files returns the file references attached to key.
func (a Answers) Files(key string) []FileRef {
	v, ok := a.Get(key)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case []FileRef:
		return t
	case FileRef:
		return []FileRef{t}
	}
	var out []FileRef
	if err := decode(v, &out); err != nil {
		return nil
	}
	return out
}

// Clone returns a copy whose slices can be mutated independently.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		switch t := v.(type) {
		case []string:
			out[k] = append([]string(nil), t...)
		case []FileRef:
			out[k] = append([]FileRef(nil), t...)
		case []any:
			out[k] = append([]any(nil), t...)
		default:
			out[k] = v
		}
	}
	return out
}

func decode(input any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

// Upload is a file submitted by a host for a file field.
type Upload struct {
	Name        string
	ContentType string
	Data        []byte
}
