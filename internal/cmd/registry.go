package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"hopeconnect/internal/common/config"
	"hopeconnect/internal/workers"
	"hopeconnect/pkg/registry"

	"github.com/spf13/cobra"
)

const defaultRegistryPath = "configs/activity-registry.json"

func NewRegistryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Maintain the activity registry of job workers",
	}
	cmd.AddCommand(newRegistryGenerateCommand())
	cmd.AddCommand(newRegistryValidateCommand())
	return cmd
}

func newRegistryGenerateCommand() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write every worker's task type, schemas and error codes to the registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Worker timeouts come from config when it loads; the registry can
			// still be generated without a database configured.
			cfg, err := loadConfig(cmd)
			if err != nil {
				cfg = &config.Config{}
			}
			return generateRegistry(path, cfg, time.Now(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&path, "path", defaultRegistryPath, "registry file")
	return cmd
}

func newRegistryValidateCommand() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the registry for missing fields and duplicates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateRegistry(path, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&path, "path", defaultRegistryPath, "registry file")
	return cmd
}

func generateRegistry(path string, cfg *config.Config, now time.Time, out io.Writer) error {
	reg, err := registry.LoadRegistry(path)
	if errors.Is(err, fs.ErrNotExist) {
		reg = &registry.ActivityRegistry{Version: "1.0.0"}
	} else if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	activities := workers.Activities(cfg, Version)
	reg.Upsert(now, activities...)
	if err := reg.Validate(); err != nil {
		return err
	}
	if err := registry.SaveRegistry(reg, path); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %d activities to %s\n", len(activities), path)
	return nil
}

func validateRegistry(path string, out io.Writer) error {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}
	if err := reg.Validate(); err != nil {
		return fmt.Errorf("registry validation failed: %w", err)
	}
	fmt.Fprintf(out, "Registry validation passed. Found %d activities.\n", len(reg.Activities))
	return nil
}
