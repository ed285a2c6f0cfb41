package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"xcode-sdk/internal/action"
	"xcode-sdk/internal/config"
	"xcode-sdk/internal/logger"
	"xcode-sdk/internal/sdk"
)

// options holds the parsed command line flags.
type options struct {
	frameworks bool
	open       bool
	reveal     bool
	copy       bool
	json       bool
	debug      bool
	configPath string
}

// newRootCmd builds the `sdk` command. Actions on the resolved path go through d.
func newRootCmd(d *action.Dispatcher) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "sdk [name]",
		Short: "Show the path of an Xcode SDK",
		Long: `sdk finds the installed Xcode SDK whose name best matches [name] and
prints its path. The best trigram match wins when several SDKs are similar.

Without a name, all installed SDKs are listed.`,
		Example: `  sdk mac
  sdk ios -f
  sdk watch --reveal
  sdk`,
		Version:       versionString(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,

		// PersistentPreRun sets up logging before anything else runs.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(opts.debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("frameworks") {
				opts.frameworks = cfg.Frameworks
			}

			records, err := sdk.Enumerator{Command: cfg.SDKCommand}.Load()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				return list(cmd, records, opts)
			}
			return find(d, records, args[0], opts)
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.frameworks, "frameworks", "f", false, "Use the System/Library/Frameworks path instead of the SDK path")
	flags.BoolVarP(&opts.open, "open", "o", false, "Open the path in Finder")
	flags.BoolVarP(&opts.reveal, "reveal", "r", false, "Reveal the path in Finder")
	flags.BoolVarP(&opts.copy, "copy", "c", false, "Copy the path to the clipboard")
	flags.BoolVar(&opts.json, "json", false, "List SDKs as JSON instead of a table")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.Path(), "Path to configuration file")

	return rootCmd
}

// list prints every SDK sorted by display name.
func list(cmd *cobra.Command, records []sdk.Record, opts *options) error {
	sdk.SortByName(records)
	if opts.json {
		return sdk.WriteJSON(cmd.OutOrStdout(), records)
	}
	return sdk.WriteTable(cmd.OutOrStdout(), records)
}

// find resolves name to a single SDK path and acts on it.
func find(d *action.Dispatcher, records []sdk.Record, name string, opts *options) error {
	records = sdk.DedupByBuildID(records)
	match, err := sdk.Best(records, name)
	if err != nil {
		return err
	}
	logger.Debug("[DEBUG] %q matched %q (score %.3f)\n", name, match.Record.DisplayName, match.Score)

	path := sdk.ResolvePath(match.Record, opts.frameworks)
	return d.Dispatch(action.Choose(opts.open, opts.reveal, opts.copy), path)
}

// Execute runs the CLI and exits non-zero on the first error.
func Execute() {
	if err := newRootCmd(action.New()).Execute(); err != nil {
		logger.Error("[ERROR] %s\n", err)
		os.Exit(1)
	}
}
