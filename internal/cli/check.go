package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that the required external tools are installed",
		Long: `Check runs every configured tool (git, make, jq, cast and forge by default)
with --version, using the same PATH as a generation run, and prints the result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			report, err := app.CheckDependencies.Run(cmd.Context())
			if renderErr := app.DependencyRenderer.Render(report); renderErr != nil {
				return fmt.Errorf("failed to render dependency report: %w", renderErr)
			}
			return err
		},
	}
}
