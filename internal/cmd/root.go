// Package cmd holds the hope-server command tree.
package cmd

import (
	"hopeconnect/internal/common/config"
	"hopeconnect/internal/common/logger"

	"github.com/spf13/cobra"
)

// Version is reported by --version and stamped into the activity registry.
const Version = "0.3.0"

// NewRootCommand builds the hope-server command tree.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hope-server",
		Short: "HopeConnect API, job workers and maintenance tasks",
		Long: `hope-server runs the HopeConnect backend: the self-assessment,
advocacy letter and HopeBot HTTP API together with the matching Zeebe job
workers. The migrate and registry commands maintain the database schema and
the activity registry.`,
		Version:      Version,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().String("config", "", "config file (default: configs/config.yaml)")

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewMigrateCommand())
	cmd.AddCommand(NewRegistryCommand())

	return cmd
}

// loadConfig honours --config, otherwise searches the default locations.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

func newLogger(cfg *config.Config) logger.Logger {
	return logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output).
		WithFields(map[string]interface{}{"service": cfg.App.Name, "version": Version})
}
