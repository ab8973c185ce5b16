// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	AssessmentsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessments_submitted_total",
			Help: "Completed self-assessments by severity band",
		},
		[]string{"severity"},
	)

	AssessmentSubmitFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "assessment_submit_failures_total",
			Help: "Self-assessment submissions that failed to persist",
		},
	)

	QuestionCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "question_cache_lookups_total",
			Help: "Active question cache lookups by result",
		},
		[]string{"result"},
	)

	LettersRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "letters_rendered_total",
			Help: "Rendered support letters by resolved language and type",
		},
		[]string{"language", "letter_type"},
	)

	ChatQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_queries_total",
			Help: "HopeBot queries by outcome",
		},
		[]string{"outcome"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP API request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)
)
