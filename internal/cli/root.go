package cli

import (
	"context"
	"fmt"

	"github.com/ethereum-optimism/predeploy-docs/internal/app"
	"github.com/ethereum-optimism/predeploy-docs/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
	// viperKey is the context key for the viper instance the app was built from
	viperKey contextKey = "viper"
)

// NewRootCmd creates the root command. Running it without a subcommand generates
// the upgrade documentation.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "predeploy-docs",
		Short: "Generate upgrade transaction docs for an OP Stack predeploy",
		Long: `predeploy-docs builds a predeploy contract at a given commit of the Optimism
monorepo, derives the Network Upgrade Transaction parameters (deployed address,
source hash, code hash, gas limit) and prints the specs Markdown section.

The repository is checked out at the requested commit for the duration of the
run and restored afterwards, including any stashed local changes.`,
		Example: `  predeploy-docs \
    --optimism-repo-path ../optimism \
    --fork-name Isthmus \
    --contract-name CrossL2Inbox \
    --from-address 0x4220000000000000000000000000000000000003 \
    --from-address-nonce 0 \
    --git-commit-hash 0123abcd \
    --proxy-address 0x4200000000000000000000000000000000000022`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			// Set up viper with the flags of the command being run
			v := config.SetupViper(cmd)

			// Initialize app with DI
			appInstance, err := app.InitApp(v, app.Streams{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()})
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			ctx = context.WithValue(ctx, viperKey, v)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				// Store cancel func to be called on command completion
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
		RunE: runGenerate,
	}

	// Echoed flags are visited in the order they were given
	rootCmd.Flags().SortFlags = false
	addRequestFlags(rootCmd)

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output and stream build output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Abort the run after this duration, 0 disables it")

	rootCmd.AddCommand(NewCheckCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// getViper retrieves the viper instance the app was built from
func getViper(cmd *cobra.Command) (*viper.Viper, error) {
	v, ok := cmd.Context().Value(viperKey).(*viper.Viper)
	if !ok {
		return nil, fmt.Errorf("configuration not initialized")
	}
	return v, nil
}
