package cmd

import (
	"context"
	"fmt"
	"io"

	"hopeconnect/internal/assessment/store"
	"hopeconnect/internal/common/config"
	"hopeconnect/internal/common/database"
	"hopeconnect/internal/common/logger"

	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	var seedFile string
	var skipSeed bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and seed the assessment questions",
		Long: `Apply the embedded SQL migrations that have not run yet, then upsert the
questionnaire from the YAML seed file and drop the cached question list.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return fmt.Errorf("config load failed: %w", err)
			}
			if seedFile == "" {
				seedFile = cfg.Assessment.SeedFile
			}
			if skipSeed {
				seedFile = ""
			}
			return migrate(cmd.Context(), cfg, seedFile, newLogger(cfg), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&seedFile, "seed", "", "question seed file (default: assessment.seed_file)")
	cmd.Flags().BoolVar(&skipSeed, "skip-seed", false, "apply migrations only")
	return cmd
}

func migrate(ctx context.Context, cfg *config.Config, seedFile string, log logger.Logger, out io.Writer) error {
	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		return err
	}
	defer pg.Close()
	if err := pg.Ping(ctx); err != nil {
		return err
	}

	applied, err := database.Migrate(ctx, pg.DB, log)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Applied %d migration(s)\n", len(applied))
	for _, name := range applied {
		fmt.Fprintf(out, "  %s\n", name)
	}

	if seedFile == "" {
		return nil
	}
	questions, err := store.LoadQuestionSeed(seedFile)
	if err != nil {
		return err
	}
	s := store.New(pg.DB, log)
	if err := s.UpsertQuestions(ctx, questions); err != nil {
		return err
	}
	fmt.Fprintf(out, "Seeded %d question(s) from %s\n", len(questions), seedFile)

	if cfg.Database.Redis.Enabled {
		rc, err := database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		defer rc.Close()
		cache := store.NewCachedQuestions(s, rc.Client, cfg.Assessment.QuestionCacheDuration(), log)
		if err := cache.Invalidate(ctx); err != nil {
			log.Warn("question cache not invalidated", map[string]interface{}{"error": err})
		}
	}
	return nil
}
