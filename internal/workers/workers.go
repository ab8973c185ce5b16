// Package workers wires the Zeebe job workers to the domain services and
// describes them for the activity registry.
package workers

import (
	"time"

	"hopeconnect/internal/assessment"
	"hopeconnect/internal/chat"
	"hopeconnect/internal/common/camunda"
	"hopeconnect/internal/common/config"
	"hopeconnect/internal/common/errors"
	"hopeconnect/internal/common/logger"
	"hopeconnect/internal/common/validation"
	"hopeconnect/internal/letters"
	"hopeconnect/pkg/registry"

	getassessment "hopeconnect/internal/workers/assessment/get-assessment"
	listquestions "hopeconnect/internal/workers/assessment/list-questions"
	submitassessment "hopeconnect/internal/workers/assessment/submit-assessment"
	answerchatquery "hopeconnect/internal/workers/chat/answer-chat-query"
	deliverletter "hopeconnect/internal/workers/letters/deliver-letter"
	renderletter "hopeconnect/internal/workers/letters/render-letter"

	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// Services are the domain services the workers delegate to.
type Services struct {
	Assessment *assessment.Service
	Letters    *letters.Service
	Chat       *chat.Responder
}

// Definition describes one worker.
type Definition struct {
	TaskType     string
	DisplayName  string
	Description  string
	Category     string
	HTTPRoute    string
	InputSchema  func() validation.JSONSchema
	OutputSchema func() validation.JSONSchema
	ErrorCodes   []errors.ErrorCode
	Tags         []string
	// Handler builds the job handler. timeout is the per-job context deadline.
	Handler func(s Services, timeout time.Duration, log logger.Logger) worker.JobHandler
}

// Definitions lists every worker in registration order.
func Definitions() []Definition {
	return []Definition{
		{
			TaskType:     listquestions.TaskType,
			DisplayName:  "List Assessment Questions",
			Description:  "Returns the active self-assessment questions in display order",
			Category:     "assessment",
			HTTPRoute:    "GET /api/v1/assessment/questions",
			InputSchema:  listquestions.GetInputSchema,
			OutputSchema: listquestions.GetOutputSchema,
			ErrorCodes: []errors.ErrorCode{
				errors.ErrCodeQueryExecutionFailed,
				errors.ErrCodeQueryTimeout,
				errors.ErrCodeDatabaseConnectionFailed,
			},
			Tags: []string{"assessment", "postgres", "redis"},
			Handler: func(s Services, timeout time.Duration, log logger.Logger) worker.JobHandler {
				return listquestions.NewHandler(&listquestions.Config{Timeout: timeout}, s.Assessment, log).Handle
			},
		},
		{
			TaskType:     submitassessment.TaskType,
			DisplayName:  "Submit Assessment",
			Description:  "Scores a complete answer set, stores it atomically and flags severe outcomes",
			Category:     "assessment",
			HTTPRoute:    "POST /api/v1/assessment/submit",
			InputSchema:  submitassessment.GetInputSchema,
			OutputSchema: submitassessment.GetOutputSchema,
			ErrorCodes: []errors.ErrorCode{
				errors.ErrCodeValidationFailed,
				errors.ErrCodeUnknownQuestion,
				errors.ErrCodeInvalidAnswerValue,
				errors.ErrCodeIncompleteAssessment,
				errors.ErrCodeAssessmentSubmitFailed,
			},
			Tags: []string{"assessment", "postgres", "sns"},
			Handler: func(s Services, timeout time.Duration, log logger.Logger) worker.JobHandler {
				return submitassessment.NewHandler(&submitassessment.Config{Timeout: timeout}, s.Assessment, log).Handle
			},
		},
		{
			TaskType:     getassessment.TaskType,
			DisplayName:  "Get Assessment",
			Description:  "Loads a stored assessment with its answers",
			Category:     "assessment",
			HTTPRoute:    "GET /api/v1/assessment/{id}",
			InputSchema:  getassessment.GetInputSchema,
			OutputSchema: getassessment.GetOutputSchema,
			ErrorCodes: []errors.ErrorCode{
				errors.ErrCodeValidationFailed,
				errors.ErrCodeAssessmentNotFound,
				errors.ErrCodeQueryExecutionFailed,
				errors.ErrCodeQueryTimeout,
				errors.ErrCodeDatabaseConnectionFailed,
			},
			Tags: []string{"assessment", "postgres"},
			Handler: func(s Services, timeout time.Duration, log logger.Logger) worker.JobHandler {
				return getassessment.NewHandler(&getassessment.Config{Timeout: timeout}, s.Assessment, log).Handle
			},
		},
		{
			TaskType:     renderletter.TaskType,
			DisplayName:  "Render Letter",
			Description:  "Renders an advocacy letter from the bundled multilingual templates",
			Category:     "letters",
			HTTPRoute:    "POST /api/v1/letters/render",
			InputSchema:  renderletter.GetInputSchema,
			OutputSchema: renderletter.GetOutputSchema,
			ErrorCodes: []errors.ErrorCode{
				errors.ErrCodeValidationFailed,
				errors.ErrCodeUnknownLetterType,
				errors.ErrCodeQueryExecutionFailed,
			},
			Tags: []string{"letters", "templates"},
			Handler: func(s Services, timeout time.Duration, log logger.Logger) worker.JobHandler {
				return renderletter.NewHandler(&renderletter.Config{Timeout: timeout}, s.Letters, log).Handle
			},
		},
		{
			TaskType:     deliverletter.TaskType,
			DisplayName:  "Deliver Letter",
			Description:  "Renders a letter and emails it to the recipient",
			Category:     "letters",
			HTTPRoute:    "POST /api/v1/letters/send",
			InputSchema:  deliverletter.GetInputSchema,
			OutputSchema: deliverletter.GetOutputSchema,
			ErrorCodes: []errors.ErrorCode{
				errors.ErrCodeValidationFailed,
				errors.ErrCodeUnknownLetterType,
				errors.ErrCodeBusinessRule,
				errors.ErrCodeNotificationSendFailed,
			},
			Tags: []string{"letters", "ses"},
			Handler: func(s Services, timeout time.Duration, log logger.Logger) worker.JobHandler {
				return deliverletter.NewHandler(&deliverletter.Config{Timeout: timeout}, s.Letters, log).Handle
			},
		},
		{
			TaskType:     answerchatquery.TaskType,
			DisplayName:  "Answer Chat Query",
			Description:  "Answers a HopeBot message with local service listings",
			Category:     "chat",
			HTTPRoute:    "POST /api/v1/chat",
			InputSchema:  answerchatquery.GetInputSchema,
			OutputSchema: answerchatquery.GetOutputSchema,
			ErrorCodes:   []errors.ErrorCode{errors.ErrCodeValidationFailed},
			Tags:         []string{"chat"},
			Handler: func(s Services, timeout time.Duration, log logger.Logger) worker.JobHandler {
				return answerchatquery.NewHandler(&answerchatquery.Config{Timeout: timeout}, s.Chat, log).Handle
			},
		},
	}
}

// StartAll opens every enabled worker. Callers close the returned workers on
// shutdown.
func StartAll(client zbc.Client, cfg *config.Config, services Services, log logger.Logger) []worker.JobWorker {
	var started []worker.JobWorker
	for _, def := range Definitions() {
		wcfg := config.GetWorkerConfig(cfg, def.TaskType)
		handler := def.Handler(services, config.GetDuration(wcfg.Timeout), log)
		if jw := camunda.StartWorker(client, def.TaskType, wcfg, handler, log); jw != nil {
			started = append(started, jw)
		}
	}
	log.Info("workers registered", map[string]interface{}{"count": len(started)})
	return started
}

// Activities renders the definitions as registry entries.
func Activities(cfg *config.Config, version string) []registry.Activity {
	defs := Definitions()
	out := make([]registry.Activity, 0, len(defs))
	for _, def := range defs {
		wcfg := config.GetWorkerConfig(cfg, def.TaskType)
		codes := make([]registry.ActivityError, len(def.ErrorCodes))
		for i, c := range def.ErrorCodes {
			codes[i] = registry.ActivityError{
				Code:     string(c),
				Category: errors.GetErrorCategory(c),
				Retries:  errors.GetRetryCount(c),
			}
		}
		out = append(out, registry.Activity{
			ID:                   def.TaskType,
			DisplayName:          def.DisplayName,
			Description:          def.Description,
			Category:             def.Category,
			Version:              version,
			TaskType:             def.TaskType,
			HTTPRoute:            def.HTTPRoute,
			ImplementationStatus: "completed",
			InputSchema:          def.InputSchema().ToMap(),
			OutputSchema:         def.OutputSchema().ToMap(),
			Errors:               codes,
			Timeout:              config.GetDuration(wcfg.Timeout).String(),
			Retries:              wcfg.MaxRetries,
			Tags:                 def.Tags,
		})
	}
	return out
}
