package cmd

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "webcopy",
		Short:         "AI-powered web content generator.",
		Long:          "Generate website page copy (home, about us, products, ...) from a short description using a hosted text-generation model.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file (.json, .yaml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logs")

	root.AddCommand(newGenerateCmd(opts))
	root.AddCommand(newCompleteCmd(opts))
	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newPageTypesCmd())
	root.AddCommand(newSchemaCmd())
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}
