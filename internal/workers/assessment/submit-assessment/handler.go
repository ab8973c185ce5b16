// internal/workers/assessment/submit-assessment/handler.go
package submitassessment

import (
	"context"

	"hopeconnect/internal/common/camunda"
	"hopeconnect/internal/common/logger"
	"hopeconnect/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "submit-assessment"
)

// Submitter is satisfied by *assessment.Service.
type Submitter interface {
	Submit(ctx context.Context, userID string, answers []models.AnswerInput) (*models.SubmissionResult, error)
}

type Handler struct {
	config    *Config
	submitter Submitter
	logger    logger.Logger
}

func NewHandler(config *Config, submitter Submitter, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		submitter: submitter,
		logger:    log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	var input Input
	if err := camunda.ValidateVariables(job, inputValidator); err != nil {
		camunda.FailJob(ctx, client, job, err, h.logger)
		return
	}
	if err := camunda.ParseVariables(job, &input); err != nil {
		camunda.FailJob(ctx, client, job, err, h.logger)
		return
	}

	output, err := h.execute(ctx, &input)
	if err != nil {
		camunda.FailJob(ctx, client, job, err, h.logger)
		return
	}
	camunda.CompleteJob(ctx, client, job, output, h.logger)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	result, err := h.submitter.Submit(ctx, input.UserID, input.Answers)
	if err != nil {
		return nil, err
	}

	h.logger.Info("assessment submitted", map[string]interface{}{
		"assessmentId": result.AssessmentID,
		"severity":     result.Severity,
	})

	return &Output{
		AssessmentID:     result.AssessmentID,
		TotalScore:       result.TotalScore,
		MaxScore:         result.MaxScore,
		Percentage:       result.Percentage,
		Severity:         result.Severity,
		Interpretation:   result.Interpretation,
		Recommendations:  result.Recommendations,
		RequiresOutreach: result.Severity == models.SeveritySevere,
	}, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
