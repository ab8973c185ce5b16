// internal/workers/assessment/list-questions/handler.go
package listquestions

import (
	"context"

	"hopeconnect/internal/assessment/scoring"
	"hopeconnect/internal/common/camunda"
	"hopeconnect/internal/common/logger"
	"hopeconnect/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "list-assessment-questions"
)

// QuestionLister is satisfied by *assessment.Service.
type QuestionLister interface {
	Questions(ctx context.Context) ([]models.Question, error)
}

type Handler struct {
	config    *Config
	questions QuestionLister
	logger    logger.Logger
}

func NewHandler(config *Config, questions QuestionLister, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		questions: questions,
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

	output, err := h.execute(ctx, &Input{})
	if err != nil {
		camunda.FailJob(ctx, client, job, err, h.logger)
		return
	}
	camunda.CompleteJob(ctx, client, job, output, h.logger)
}

func (h *Handler) execute(ctx context.Context, _ *Input) (*Output, error) {
	questions, err := h.questions.Questions(ctx)
	if err != nil {
		return nil, err
	}
	return &Output{
		Questions:     questions,
		QuestionCount: len(questions),
		MaxScore:      scoring.MaxAnswerValue * len(questions),
	}, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
