// internal/common/camunda/jobs.go
package camunda

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"hopeconnect/internal/common/errors"
	"hopeconnect/internal/common/logger"
	"hopeconnect/internal/common/metrics"
	"hopeconnect/internal/common/validation"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

// ParseVariables decodes the job variables into out. A decode failure is a
// validation error.
func ParseVariables(job entities.Job, out interface{}) error {
	if err := json.Unmarshal([]byte(job.Variables), out); err != nil {
		return errors.NewValidationError(fmt.Sprintf("parse job variables: %v", err))
	}
	return nil
}

// ValidateVariables checks the raw job variables against v.
func ValidateVariables(job entities.Job, v *validation.Validator) error {
	result := v.ValidateJSON([]byte(job.Variables))
	if result.Valid {
		return nil
	}
	return errors.NewValidationError(strings.Join(result.GetErrorMessages(), "; "))
}

// CompleteJob completes job with output as its variables.
func CompleteJob(ctx context.Context, client worker.JobClient, job entities.Job, output interface{}, log logger.Logger) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		log.Error("failed to create complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err,
		})
		FailJob(ctx, client, job, errors.NewInternalError(err), log)
		return
	}

	if _, err := cmd.Send(ctx); err != nil {
		log.Error("failed to send complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err,
		})
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(job.Type).Inc()
	log.Info("job completed", map[string]interface{}{"jobKey": job.Key})
}

// FailJob reports err through the shared ErrorHandler: retryable codes are
// failed with retries left, everything else is thrown as a BPMN error.
func FailJob(ctx context.Context, client worker.JobClient, job entities.Job, err error, log logger.Logger) {
	stdErr := errors.Normalize(err)
	metrics.WorkerJobsFailed.WithLabelValues(job.Type, string(stdErr.Code)).Inc()
	errors.NewErrorHandler(log).HandleJobError(ctx, client, job, stdErr)
}
