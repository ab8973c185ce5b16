package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hopeconnect/internal/assessment"
	"hopeconnect/internal/assessment/store"
	"hopeconnect/internal/certificates"
	"hopeconnect/internal/chat"
	"hopeconnect/internal/common/aws"
	"hopeconnect/internal/common/camunda"
	"hopeconnect/internal/common/config"
	"hopeconnect/internal/common/database"
	"hopeconnect/internal/common/logger"
	"hopeconnect/internal/common/observability"
	"hopeconnect/internal/directory"
	httpapi "hopeconnect/internal/http"
	"hopeconnect/internal/letters"
	"hopeconnect/internal/notify"
	"hopeconnect/internal/workers"

	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the Zeebe job workers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return fmt.Errorf("config load failed: %w", err)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, newLogger(cfg))
		},
	}
}

// server owns everything serve opens, in the order it must be closed.
type server struct {
	http     *http.Server
	zeebe    *camunda.Client
	workers  []worker.JobWorker
	closers  []func() error
	obs      *observability.Observability
	shutdown time.Duration
}

func serve(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	log.Info("starting hope-server", map[string]interface{}{"environment": cfg.App.Environment})

	srv, err := build(ctx, cfg, log)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", map[string]interface{}{"address": cfg.HTTP.Address})
		if err := srv.http.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received", nil)
	case err = <-errCh:
		log.Error("http server failed", map[string]interface{}{"error": err})
	}

	srv.stop(log)
	return err
}

func build(ctx context.Context, cfg *config.Config, log logger.Logger) (*server, error) {
	srv := &server{
		obs:      observability.New(cfg.App.Name, log),
		shutdown: config.GetDuration(cfg.HTTP.ShutdownTimeout),
	}
	var checks []httpapi.Check

	// --- PostgreSQL ---
	var pg *database.PostgresClient
	err := retryWithBackoff(ctx, func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, log, "PostgreSQL connection")
	if err != nil {
		return nil, err
	}
	srv.closers = append(srv.closers, pg.Close)
	checks = append(checks, httpapi.Check{Name: "postgres", Check: pg.Ping})
	log.Info("PostgreSQL connected", nil)

	// --- Redis (question cache) ---
	var rdb redis.Cmdable
	if cfg.Database.Redis.Enabled {
		rc, err := database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return nil, err
		}
		if err := retryWithBackoff(ctx, func() error { return rc.Ping(ctx) }, 10, 2*time.Second, log, "Redis connection"); err != nil {
			// The cache is optional; run against Postgres alone.
			log.Warn("redis unavailable, question cache disabled", map[string]interface{}{"error": err})
			_ = rc.Close()
		} else {
			rdb = rc.Client
			srv.closers = append(srv.closers, rc.Close)
			checks = append(checks, httpapi.Check{Name: "redis", Check: rc.Ping})
		}
	}

	// --- AWS (SES letters, SNS outreach) ---
	var mailer letters.Mailer
	var alerter assessment.Alerter
	if cfg.Notifications.Email.Enabled || cfg.Notifications.Outreach.Enabled {
		awsCfg, err := aws.LoadConfig(ctx, cfg.AWS.Region)
		if err != nil {
			return nil, fmt.Errorf("aws config: %w", err)
		}
		if cfg.Notifications.Email.Enabled {
			mailer = notify.NewLetterMailer(aws.NewSESClient(awsCfg), cfg.Notifications.Email.FromEmail, log)
		}
		if cfg.Notifications.Outreach.Enabled {
			alerter = notify.NewOutreach(aws.NewSNSClient(awsCfg), cfg.Notifications.Outreach.TopicARN, log)
		}
	}

	// --- Domain services ---
	assessments := store.New(pg.DB, log)
	questions := store.NewCachedQuestions(assessments, rdb, cfg.Assessment.QuestionCacheDuration(), log)
	assessmentSvc := assessment.NewService(questions, assessments, alerter, log)

	var letterRepo letters.Repository
	if cfg.Letters.Persist {
		letterRepo = letters.NewStore(pg.DB)
	}
	letterSvc := letters.NewService(letterRepo, mailer, log)
	responder := chat.NewResponder(log)

	deps := httpapi.Deps{
		Assessments:  assessmentSvc,
		Letters:      letterSvc,
		Chat:         responder,
		Certificates: certificates.NewStore(pg.DB, log),
	}

	// --- Elasticsearch (service directory) ---
	if cfg.Database.Elasticsearch.Enabled {
		dir, err := connectDirectory(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		deps.Directory = dir
	}

	// --- Zeebe workers ---
	if cfg.Camunda.Enabled {
		err := retryWithBackoff(ctx, func() error {
			var err error
			srv.zeebe, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
				GatewayAddress:         cfg.Camunda.BrokerAddress,
				UsePlaintextConnection: true,
				ConnectionTimeout:      config.GetDuration(cfg.Camunda.RequestTimeout),
			})
			return err
		}, 10, 2*time.Second, log, "Zeebe client initialization")
		if err != nil {
			return nil, err
		}
		srv.workers = workers.StartAll(srv.zeebe.GetClient(), cfg, workers.Services{
			Assessment: assessmentSvc,
			Letters:    letterSvc,
			Chat:       responder,
		}, log)
		checks = append(checks, httpapi.Check{Name: "zeebe", Check: srv.zeebe.HealthCheck})
	}

	// --- HTTP ---
	router := httpapi.NewRouter(log).WithRecorder(srv.obs)
	httpapi.NewAPI(deps, log, cfg.HTTP.MaxBodyBytes).Register(router)
	router.RegisterProbes(5*time.Second, checks...)

	srv.http = &http.Server{
		Addr:         cfg.HTTP.Address,
		Handler:      router,
		ReadTimeout:  config.GetDuration(cfg.HTTP.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.HTTP.WriteTimeout),
	}
	return srv, nil
}

func connectDirectory(ctx context.Context, cfg *config.Config, log logger.Logger) (*directory.Directory, error) {
	var es *database.ElasticsearchClient
	err := retryWithBackoff(ctx, func() error {
		var err error
		es, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return es.Ping(ctx)
	}, 15, 2*time.Second, log, "Elasticsearch connection")
	if err != nil {
		return nil, err
	}

	dir := directory.New(directory.Config{
		IndexName:  cfg.Directory.IndexName,
		MaxResults: cfg.Directory.MaxResults,
		Timeout:    config.GetDuration(cfg.Directory.SearchTimeout),
	}, es.Client, log)

	if cfg.Directory.IndexOnStart {
		if err := dir.EnsureIndex(ctx); err != nil {
			return nil, err
		}
		n, err := dir.Index(ctx, chat.DirectoryEntries())
		if err != nil {
			return nil, err
		}
		log.Info("service directory indexed", map[string]interface{}{"entries": n})
	}
	return dir, nil
}

func (s *server) stop(log logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdown)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		log.Error("http shutdown failed", map[string]interface{}{"error": err})
	}
	for _, w := range s.workers {
		w.Close()
		w.AwaitClose()
	}
	if s.zeebe != nil {
		if err := s.zeebe.Close(); err != nil {
			log.Error("error closing Zeebe client", map[string]interface{}{"error": err})
		}
	}
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			log.Warn("error closing connection", map[string]interface{}{"error": err})
		}
	}
	s.obs.Shutdown()
	log.Info("hope-server stopped", nil)
}
