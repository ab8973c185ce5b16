// internal/common/camunda/jobs_test.go
package camunda

import (
	"testing"

	"hopeconnect/internal/common/errors"
	"hopeconnect/internal/common/validation"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobWithVariables(vars string) entities.Job {
	return entities.Job{ActivatedJob: &pb.ActivatedJob{Key: 42, Type: "render-letter", Variables: vars}}
}

func TestParseVariables(t *testing.T) {
	var input struct {
		LanguageCode string `json:"languageCode"`
		LetterType   string `json:"letterType"`
	}

	err := ParseVariables(jobWithVariables(`{"languageCode":"fr","letterType":"employment"}`), &input)
	require.NoError(t, err)
	assert.Equal(t, "fr", input.LanguageCode)
	assert.Equal(t, "employment", input.LetterType)
}

func TestParseVariables_Malformed(t *testing.T) {
	var input map[string]interface{}
	err := ParseVariables(jobWithVariables(`{"languageCode":`), &input)
	require.Error(t, err)

	stdErr, ok := errors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeValidationFailed, stdErr.Code)
}

func TestValidateVariables(t *testing.T) {
	v := validation.MustCompile(validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"message": {Type: "string", MinLength: validation.Int(1)},
		},
		Required: []string{"message"},
	})

	assert.NoError(t, ValidateVariables(jobWithVariables(`{"message":"food in leeds","other":1}`), v))

	err := ValidateVariables(jobWithVariables(`{"message":""}`), v)
	stdErr, ok := errors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeValidationFailed, stdErr.Code)
	assert.Contains(t, stdErr.Details, "message")
}
