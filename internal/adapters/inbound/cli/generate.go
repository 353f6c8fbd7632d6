package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	configAdapter "github.com/docforge/docforge/internal/adapters/outbound/config"
	"github.com/docforge/docforge/internal/adapters/outbound/gitinfo"
	"github.com/docforge/docforge/internal/adapters/outbound/store"
	"github.com/docforge/docforge/internal/adapters/outbound/tui"
	"github.com/docforge/docforge/internal/application"
	"github.com/docforge/docforge/internal/domain"
)

type generateOptions struct {
	path       string
	template   string
	output     string
	report     string
	placement  string
	docVersion string
	noValidate bool
	jsonOutput bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate documentation from the template",
		Long:  "Run the full pipeline: load the template, validate it, inject generation metadata, write the document, re-validate the output, and write the JSON validation report.",
		Args:  cobra.NoArgs,
		RunE:  runGenerate(opts),
	}

	cmd.Flags().StringVar(&opts.path, "path", ".", "Project path")
	addGenerateFlags(cmd, opts)

	return cmd
}

func addGenerateFlags(cmd *cobra.Command, opts *generateOptions) {
	cmd.Flags().StringVar(&opts.template, "template", "", "Template file path (overrides config)")
	cmd.Flags().StringVar(&opts.output, "output", "", "Output file path (overrides config)")
	cmd.Flags().StringVar(&opts.report, "report", "", "Report file path (overrides config)")
	cmd.Flags().StringVar(&opts.placement, "placement", "", "Metadata placement: after-title or append")
	cmd.Flags().StringVar(&opts.docVersion, "doc-version", "", "Version string stamped into the document")
	cmd.Flags().BoolVar(&opts.noValidate, "no-validate", false, "Generate even when required sections are missing")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the validation report as JSON")
}

func runGenerate(opts *generateOptions) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		runOpts, err := resolveRunOptions(opts)
		if err != nil {
			return err
		}

		svc := application.NewGenerateService(store.New(), gitinfo.New())
		report, err := svc.Run(runOpts)

		switch {
		case errors.Is(err, domain.ErrValidationFailed):
			if opts.jsonOutput {
				_ = renderJSON(cmd, report)
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidation(&domain.ValidationResult{
					Valid:         report.Valid,
					Errors:        report.Errors,
					Warnings:      report.Warnings,
					SectionsFound: report.SectionsFound,
				}))
			}
			return err
		case err != nil:
			return fmt.Errorf("generate failed: %w", err)
		}

		if opts.jsonOutput {
			return renderJSON(cmd, report)
		}
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
		return nil
	}
}

// resolveRunOptions merges .docforge.yaml with flag overrides. Relative
// paths are anchored at the project root.
func resolveRunOptions(opts *generateOptions) (application.RunOptions, error) {
	projectPath := opts.path
	if projectPath == "" {
		projectPath = "."
	}
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return application.RunOptions{}, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := configAdapter.New().Load(absPath)
	if err != nil {
		return application.RunOptions{}, err
	}

	if opts.template != "" {
		cfg.TemplatePath = opts.template
	}
	if opts.output != "" {
		cfg.OutputPath = opts.output
	}
	if opts.report != "" {
		cfg.ReportPath = opts.report
	}
	if opts.placement != "" {
		cfg.Metadata.Placement = domain.Placement(opts.placement)
	}
	if opts.docVersion != "" {
		cfg.Metadata.Version = opts.docVersion
	}
	if err := cfg.Validate(); err != nil {
		return application.RunOptions{}, err
	}

	return application.RunOptions{
		ProjectPath:    absPath,
		TemplatePath:   resolvePath(absPath, cfg.TemplatePath),
		OutputPath:     resolvePath(absPath, cfg.OutputPath),
		ReportPath:     resolvePath(absPath, cfg.ReportPath),
		Metadata:       cfg.Metadata,
		SkipValidation: opts.noValidate,
	}, nil
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
