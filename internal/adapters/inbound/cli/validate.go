package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	configAdapter "github.com/docforge/docforge/internal/adapters/outbound/config"
	"github.com/docforge/docforge/internal/adapters/outbound/store"
	"github.com/docforge/docforge/internal/adapters/outbound/tui"
	"github.com/docforge/docforge/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		path       string
		template   string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the template without generating",
		Long:  "Check the template for required sections, example blocks, and tables. Warnings are advisory; missing sections fail the run.",
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
			if template != "" {
				cfg.TemplatePath = template
			}

			content, err := store.New().ReadTemplate(resolvePath(absPath, cfg.TemplatePath))
			if err != nil {
				return err
			}

			result := domain.ValidateTemplate(content)

			if jsonOutput {
				if err := renderJSON(cmd, result); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidation(result))
			}

			if !result.Valid {
				return fmt.Errorf("%w: %d missing section(s)", domain.ErrValidationFailed, len(result.Errors))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Project path")
	cmd.Flags().StringVar(&template, "template", "", "Template file path (overrides config)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
