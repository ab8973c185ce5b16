// internal/workers/letters/render-letter/handler.go
package renderletter

import (
	"context"
	"strings"

	"hopeconnect/internal/common/camunda"
	"hopeconnect/internal/common/logger"
	"hopeconnect/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "render-letter"
)

// Renderer is satisfied by *letters.Service.
type Renderer interface {
	Render(ctx context.Context, req models.LetterRequest) (*models.Letter, error)
}

type Handler struct {
	config   *Config
	renderer Renderer
	logger   logger.Logger
}

func NewHandler(config *Config, renderer Renderer, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		renderer: renderer,
		logger:   log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
	letter, err := h.renderer.Render(ctx, input.LetterRequest)
	if err != nil {
		return nil, err
	}

	requested := strings.ToLower(strings.TrimSpace(input.LanguageCode))
	return &Output{
		LetterID:     letter.ID,
		LanguageCode: letter.Language,
		LetterType:   letter.LetterType,
		Title:        letter.Title,
		Body:         letter.Body,
		FellBack:     requested != letter.Language && !strings.HasPrefix(requested, letter.Language+"-") && !strings.HasPrefix(requested, letter.Language+"_"),
	}, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
