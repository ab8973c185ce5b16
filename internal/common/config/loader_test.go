// internal/common/config/loader_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile_AppliesDefaultsAndExpandsEnv(t *testing.T) {
	t.Setenv("HOPE_TEST_DB_PASSWORD", "s3cret")

	path := writeConfig(t, `
app:
  name: hope-server
database:
  postgres:
    host: localhost
    database: hope
    user: hope
    password: ${HOPE_TEST_DB_PASSWORD}
workers:
  submit-assessment:
    enabled: true
  render-letter:
    enabled: false
    timeout: 5000
assessment:
  question_cache_ttl: 300
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Database.Postgres.Password)
	assert.Equal(t, 5432, cfg.Database.Postgres.Port)
	assert.Equal(t, "disable", cfg.Database.Postgres.SSLMode)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, int64(1<<20), cfg.HTTP.MaxBodyBytes)
	assert.Equal(t, "hope-services", cfg.Directory.IndexName)
	assert.Equal(t, 5*time.Minute, cfg.Assessment.QuestionCacheDuration())

	submit := cfg.Workers["submit-assessment"]
	assert.Equal(t, 5, submit.MaxJobsActive)
	assert.Equal(t, 30000, submit.Timeout)
	assert.Equal(t, 3, submit.MaxRetries)
	assert.Equal(t, 5000, cfg.Workers["render-letter"].Timeout)

	assert.True(t, IsWorkerEnabled(cfg, "submit-assessment"))
	assert.False(t, IsWorkerEnabled(cfg, "render-letter"))
	assert.True(t, IsWorkerEnabled(cfg, "answer-chat-query"))
}

func TestLoadFromFile_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "missing postgres host",
			body:    "database:\n  postgres:\n    database: hope\n    user: hope\n",
			wantErr: "database.postgres.host is required",
		},
		{
			name: "camunda enabled without broker",
			body: `
camunda:
  enabled: true
database:
  postgres: {host: localhost, database: hope, user: hope}
`,
			wantErr: "camunda.broker_address",
		},
		{
			name: "outreach enabled without topic",
			body: `
database:
  postgres: {host: localhost, database: hope, user: hope}
notifications:
  outreach:
    enabled: true
`,
			wantErr: "topic_arn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_USER", "")
			t.Setenv("OUTREACH_TOPIC_ARN", "")
			_, err := LoadFromFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetWorkerConfig_Defaults(t *testing.T) {
	cfg := &Config{}
	w := GetWorkerConfig(cfg, "render-letter")
	assert.True(t, w.Enabled)
	assert.Equal(t, 5, w.MaxJobsActive)
	assert.Equal(t, 30*time.Second, GetDuration(w.Timeout))
}
