// internal/workers/chat/answer-chat-query/handler.go
package answerchatquery

import (
	"context"

	"hopeconnect/internal/common/camunda"
	"hopeconnect/internal/common/logger"
	"hopeconnect/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "answer-chat-query"
)

// Responder is satisfied by *chat.Responder.
type Responder interface {
	Respond(ctx context.Context, message string) models.ChatResponse
}

type Handler struct {
	config    *Config
	responder Responder
	logger    logger.Logger
}

func NewHandler(config *Config, responder Responder, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		responder: responder,
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

// A message that is not understood still completes the job; the process
// decides what to do with understood=false.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	resp := h.responder.Respond(ctx, input.Message)
	return &Output{ChatResponse: resp, ServiceCount: len(resp.Services)}, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
