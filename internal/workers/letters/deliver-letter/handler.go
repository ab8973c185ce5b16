// internal/workers/letters/deliver-letter/handler.go
package deliverletter

import (
	"context"

	"hopeconnect/internal/common/camunda"
	"hopeconnect/internal/common/logger"
	"hopeconnect/internal/letters"
	"hopeconnect/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "deliver-letter"
)

// Deliverer is satisfied by *letters.Service.
type Deliverer interface {
	Deliver(ctx context.Context, req models.LetterRequest, recipientEmail string) (*letters.Delivery, error)
}

type Handler struct {
	config    *Config
	deliverer Deliverer
	logger    logger.Logger
}

func NewHandler(config *Config, deliverer Deliverer, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		deliverer: deliverer,
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
	delivery, err := h.deliverer.Deliver(ctx, input.LetterRequest, input.RecipientEmail)
	if err != nil {
		return nil, err
	}

	h.logger.Info("letter delivered", map[string]interface{}{
		"letterId":  delivery.Letter.ID,
		"messageId": delivery.MessageID,
	})

	return &Output{
		LetterID:     delivery.Letter.ID,
		LanguageCode: delivery.Letter.Language,
		LetterType:   delivery.Letter.LetterType,
		MessageID:    delivery.MessageID,
		Delivered:    true,
	}, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
