package cli

import (
	"fmt"

	"github.com/ethereum-optimism/predeploy-docs/internal/cli/render"
	"github.com/ethereum-optimism/predeploy-docs/internal/config"
	"github.com/ethereum-optimism/predeploy-docs/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ambientFlags are never echoed into the generated document
var ambientFlags = map[string]bool{
	"debug":           true,
	"non-interactive": true,
	"timeout":         true,
}

// redactedFlags are echoed with a placeholder so secrets do not end up in the specs
var redactedFlags = map[string]string{
	"eth-rpc-url": "$ETH_RPC_URL",
}

func addRequestFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("optimism-repo-path", "", "Path to the Optimism monorepo (required)")
	f.String("fork-name", "", "Name of the network upgrade, e.g. Isthmus (required)")
	f.String("contract-name", "", "Name of the predeploy contract, e.g. CrossL2Inbox (required)")
	f.String("from-address", "", "Deployer address of the upgrade transaction (required)")
	f.Uint64("from-address-nonce", 0, "Nonce of the deployer address (required)")
	f.String("git-commit-hash", "", "Commit of the Optimism monorepo to build (required)")
	f.String("eth-rpc-url", "", "RPC URL used for gas estimation (defaults to $ETH_RPC_URL)")
	f.String("constructor-args", "", "Comma separated constructor arguments")
	f.String("template-path", "", "Template path (accepted for compatibility, unused)")
	f.String("proxy-address", "", "Proxy to point at the new implementation")
	f.Bool("copy-contract-bytecode", false, "Write the creation bytecode to the data path")
	f.String("params-out", "", "Also write the derived parameters to this file (.json or .yaml)")
	f.Bool("summary", true, "Print a summary table of the derived parameters")
	f.Bool("cross-check", true, "Verify address and source hashes with go-ethereum")
	f.Bool("check-nonce", true, "Warn when the deployer nonce on chain differs")

	// request bools take an explicit value so the echoed pairs parse back
	for _, name := range []string{"copy-contract-bytecode", "summary", "cross-check", "check-nonce"} {
		f.Lookup(name).NoOptDefVal = ""
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}
	v, err := getViper(cmd)
	if err != nil {
		return err
	}

	if app.Config.RepoPath == "" {
		return fmt.Errorf("%w: optimism repo path is required", domain.ErrInvalidRequest)
	}
	if !v.IsSet("from_address_nonce") {
		return fmt.Errorf("%w: from address nonce is required", domain.ErrInvalidRequest)
	}

	req := config.Request(v, echoArgs(cmd.Flags()))
	if req.TemplatePath != "" {
		app.Log.Warn("--template-path is ignored, the built-in template is always used", "path", req.TemplatePath)
	}

	result, err := app.GeneratePredeployDocs.Run(cmd.Context(), req)
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	if result.CopyCommand != "" {
		fmt.Fprintln(errOut, render.FormatInfo(fmt.Sprintf(
			"Final step: copy the contract bytecode to %s with the following command:\n", result.Params.DataPath)))
		fmt.Fprintf(errOut, "%s\n\n", result.CopyCommand)
	}

	if app.Config.Summary {
		return app.SummaryRenderer.Render(result)
	}
	if result.RestoreErr != nil {
		fmt.Fprintln(errOut, render.FormatWarning(fmt.Sprintf("Repository was not fully restored: %v", result.RestoreErr)))
	}
	return nil
}

// echoArgs rebuilds the flags given on the command line as name and value pairs.
// Bools carry an explicit value so every flag stays on its own echoed line.
func echoArgs(flags *pflag.FlagSet) []string {
	var args []string
	flags.Visit(func(f *pflag.Flag) {
		if ambientFlags[f.Name] {
			return
		}
		value := f.Value.String()
		if placeholder, ok := redactedFlags[f.Name]; ok {
			value = placeholder
		}
		args = append(args, "--"+f.Name, value)
	})
	return args
}
