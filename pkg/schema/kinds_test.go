package schema

import (
	"testing"
	"time"

	"github.com/aretw0/submittals/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Normalize(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		input   any
		want    any
		wantErr bool
	}{
		{"text keeps whitespace", KindText, "  Acme  ", "  Acme  ", false},
		{"text rejects numbers", KindText, 42, nil, true},
		{"choice accepts any string", KindChoice, "Maybe", "Maybe", false},
		{"multichoice from json array", KindMultiChoice, []any{"UMS", "Upsolut"}, []string{"UMS", "Upsolut"}, false},
		{"multichoice dedupes", KindMultiChoice, []string{"UMS", "UMS", "", "Upsolut"}, []string{"UMS", "Upsolut"}, false},
		{"multichoice from single string", KindMultiChoice, "UMS", []string{"UMS"}, false},
		{"multichoice rejects mixed", KindMultiChoice, []any{"UMS", 1}, nil, true},
		{"date iso", KindDate, "2025-03-14", "2025-03-14", false},
		{"date us", KindDate, "03-14-2025", "2025-03-14", false},
		{"date time value", KindDate, time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC), "2025-03-14", false},
		{"date blank clears", KindDate, "  ", nil, false},
		{"date garbage", KindDate, "someday", nil, true},
		{"confirm yes", KindConfirm, "Yes", true, false},
		{"confirm bool", KindConfirm, false, false, false},
		{"confirm garbage", KindConfirm, "perhaps", nil, true},
		{"file single ref", KindFile, domain.FileRef{ID: "a"}, []domain.FileRef{{ID: "a"}}, false},
		{"file rejects strings", KindMultiFile, "a.pdf", nil, true},
		{"nil clears", KindText, nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.kind.Normalize(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKind_Classification(t *testing.T) {
	assert.True(t, KindFile.IsFile())
	assert.True(t, KindMultiFile.IsFile())
	assert.False(t, KindText.IsFile())
	assert.True(t, KindChoice.HasOptions())
	assert.False(t, KindDate.HasOptions())
	assert.False(t, Kind("slider").Valid())
}
