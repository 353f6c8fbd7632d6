package cli

import (
	"github.com/spf13/cobra"

	"github.com/docforge/docforge/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var (
		logLevel string
		quiet    bool
	)
	rootOpts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "docforge",
		Short: "Generate and validate API documentation from Markdown templates",
		Long:  "Docforge reads a Markdown API docs template, validates its required sections and example blocks, stamps it with generation metadata, and writes the generated document plus a JSON validation report.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logLevel, quiet)
		},
		// Bare `docforge` runs the full pipeline, like `docforge generate`.
		Args:          cobra.NoArgs,
		RunE:          runGenerate(rootOpts),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Suppress log output below error")

	cmd.Flags().StringVar(&rootOpts.path, "path", ".", "Project path")
	addGenerateFlags(cmd, rootOpts)

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newHealthCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
