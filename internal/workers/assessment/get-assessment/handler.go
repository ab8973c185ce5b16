// internal/workers/assessment/get-assessment/handler.go
package getassessment

import (
	"context"

	"hopeconnect/internal/common/camunda"
	"hopeconnect/internal/common/logger"
	"hopeconnect/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "get-assessment"
)

// Getter is satisfied by *assessment.Service.
type Getter interface {
	Get(ctx context.Context, id string) (*models.AssessmentWithAnswers, error)
}

type Handler struct {
	config *Config
	getter Getter
	logger logger.Logger
}

func NewHandler(config *Config, getter Getter, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		getter: getter,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
	found, err := h.getter.Get(ctx, input.AssessmentID)
	if err != nil {
		return nil, err
	}
	return &Output{Assessment: found.Assessment, Answers: found.Answers}, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
