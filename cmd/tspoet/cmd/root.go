package cmd

import (
	"github.com/spf13/cobra"

	"github.com/teranos/tspoet/logger"
)

var (
	jsonLogs bool
	verbose  bool
)

// RootCmd is the tspoet entry point.
var RootCmd = &cobra.Command{
	Use:   "tspoet",
	Short: "Generate TypeScript class declarations",
	Long: `tspoet builds TypeScript class declarations from YAML manifests.

Classes are modeled as immutable specs: properties, a constructor with
overload signatures, methods, decorators and generics. Properties that
mirror a constructor parameter and are assigned with a plain
"this.x = x;" statement are collapsed into constructor parameter
shorthand (public x: number) in the emitted source.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Initialize(jsonLogs, verbose)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit logs as JSON")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	RootCmd.AddCommand(GenerateCmd)
}
