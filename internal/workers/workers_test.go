// internal/workers/workers_test.go
package workers

import (
	"testing"
	"time"

	"hopeconnect/internal/common/config"
	"hopeconnect/internal/common/validation"
	"hopeconnect/pkg/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitions_Unique(t *testing.T) {
	seen := map[string]bool{}
	for _, def := range Definitions() {
		assert.False(t, seen[def.TaskType], def.TaskType)
		seen[def.TaskType] = true
		assert.NotNil(t, def.Handler)
		assert.NotEmpty(t, def.ErrorCodes, def.TaskType)

		_, err := validation.Compile(def.InputSchema())
		assert.NoError(t, err, def.TaskType)
		_, err = validation.Compile(def.OutputSchema())
		assert.NoError(t, err, def.TaskType)
	}
	for _, want := range []string{
		"list-assessment-questions", "submit-assessment", "get-assessment",
		"render-letter", "deliver-letter", "answer-chat-query",
	} {
		assert.True(t, seen[want], want)
	}
}

func TestActivities_ProduceValidRegistry(t *testing.T) {
	cfg := &config.Config{Workers: map[string]config.WorkerConfig{
		"deliver-letter": {Enabled: true, MaxJobsActive: 2, Timeout: 45000, MaxRetries: 5},
	}}

	reg := &registry.ActivityRegistry{Version: "1.0.0"}
	reg.Upsert(time.Now(), Activities(cfg, "0.3.0")...)
	require.NoError(t, reg.Validate())

	for _, a := range reg.Activities {
		if a.TaskType == "deliver-letter" {
			assert.Equal(t, "45s", a.Timeout)
			assert.Equal(t, 5, a.Retries)
			assert.Contains(t, a.InputSchema["required"], "recipientEmail")
			assert.Equal(t, "POST /api/v1/letters/send", a.HTTPRoute)
			assert.Contains(t, a.Errors, registry.ActivityError{
				Code: "NOTIFICATION_SEND_FAILED", Category: "NOTIFICATION", Retries: 3,
			})
			assert.Contains(t, a.Errors, registry.ActivityError{
				Code: "UNKNOWN_LETTER_TYPE", Category: "VALIDATION", Retries: 0,
			})
		}
	}
}
