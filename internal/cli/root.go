// Package cli provides the command-line interface for doxdedup.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doxutil/doxdedup/internal/cli/commands"
	"github.com/doxutil/doxdedup/internal/cli/config"
	"github.com/doxutil/doxdedup/internal/cli/output"
)

var (
	cfgFile string
	cfg     *config.Config
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "doxdedup <index.xml>",
		Short: "Deduplicate <compound> entries in a Doxygen index",
		Long: `doxdedup removes duplicated <compound> elements from a Doxygen
index.xml by applying an XSLT stylesheet and overwriting the file in
place. It is meant to run as a dedicated step of a documentation build.

By default an embedded stylesheet is applied that keeps the first
<compound> per refid. A project-specific stylesheet can be supplied
with --stylesheet (relative paths resolve against --doc-dir), or is
picked up automatically from
<doc-dir>/thirdparty/doxygen/dedup_index.xsl when that file exists.`,
		Example: `  # Deduplicate in place
  doxdedup build/xml/index.xml

  # With a project stylesheet
  doxdedup --doc-dir doc build/xml/index.xml`,
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			var err error
			cfg, err = config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			// Store config and renderer in context for the commands
			ctx := commands.WithConfig(cmd.Context(), cfg)
			renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))
			ctx = commands.WithRenderer(ctx, renderer)
			cmd.SetContext(ctx)

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return commands.RunDedup(cmd, args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Doxygen index deduplication tool
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./doxdedup.yaml)")
	rootCmd.PersistentFlags().String("stylesheet", "", "XSLT stylesheet to apply (default: embedded dedup stylesheet)")
	rootCmd.PersistentFlags().String("doc-dir", "", "Documentation root for resolving relative stylesheet paths")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|json)")

	// Register completion for the output flag
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewWatchCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
