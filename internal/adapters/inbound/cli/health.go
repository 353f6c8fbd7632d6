package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	configAdapter "github.com/docforge/docforge/internal/adapters/outbound/config"
	"github.com/docforge/docforge/internal/adapters/outbound/tui"
	"github.com/docforge/docforge/internal/application"
)

func newHealthCmd() *cobra.Command {
	var (
		path       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check that the template and output locations exist",
		Long:  "Pre-flight probe: reports whether the template file, template directory, and output directory exist. Exits non-zero when unhealthy.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := configAdapter.New().Load(absPath)
			if err != nil {
				return err
			}

			health := application.NewHealthService().Check(
				resolvePath(absPath, cfg.TemplatePath),
				resolvePath(absPath, cfg.OutputPath),
			)

			if jsonOutput {
				if err := renderJSON(cmd, health); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHealth(health))
			}

			if !health.Healthy {
				return fmt.Errorf("unhealthy: %d issue(s) found", len(health.Issues))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Project path")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
