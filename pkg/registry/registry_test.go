package registry

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activity(id string) Activity {
	return Activity{
		ID:          id,
		DisplayName: id,
		Category:    "letters",
		TaskType:    id,
		InputSchema: map[string]interface{}{"type": "object"},
		Errors:      []ActivityError{{Code: "VALIDATION_FAILED", Category: "VALIDATION"}},
	}
}

func TestUpsert_ReplacesAndSorts(t *testing.T) {
	reg := &ActivityRegistry{Version: "1.0.0", Activities: []Activity{activity("render-letter")}}
	updated := activity("render-letter")
	updated.Description = "new"
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	reg.Upsert(now, activity("deliver-letter"), updated)

	require.Len(t, reg.Activities, 2)
	assert.Equal(t, "deliver-letter", reg.Activities[0].ID)
	assert.Equal(t, "new", reg.Activities[1].Description)
	assert.Equal(t, "2026-10-16T09:00:00Z", reg.LastUpdated)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		reg     ActivityRegistry
		wantErr string
	}{
		{name: "empty", reg: ActivityRegistry{}, wantErr: "no activities"},
		{
			name:    "duplicate id",
			reg:     ActivityRegistry{Activities: []Activity{activity("a"), activity("a")}},
			wantErr: "duplicate activity ID",
		},
		{
			name: "missing category",
			reg: ActivityRegistry{Activities: []Activity{func() Activity {
				a := activity("a")
				a.Category = ""
				return a
			}()}},
			wantErr: "Category",
		},
		{
			name: "error without category",
			reg: ActivityRegistry{Activities: []Activity{func() Activity {
				a := activity("a")
				a.Errors = append(a.Errors, ActivityError{Code: "QUERY_TIMEOUT"})
				return a
			}()}},
			wantErr: "without code or category",
		},
		{name: "valid", reg: ActivityRegistry{Activities: []Activity{activity("a"), activity("b")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.reg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configs", "activity-registry.json")
	reg := &ActivityRegistry{Version: "1.0.0", Activities: []Activity{activity("chat")}}

	require.NoError(t, SaveRegistry(reg, path))
	loaded, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.Equal(t, reg.Activities[0].ID, loaded.Activities[0].ID)
	assert.NoError(t, loaded.Validate())
}
