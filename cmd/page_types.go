package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"web_copy_generator/generator"
)

func newPageTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "page-types",
		Short: "List the supported page types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSLUG")
			for _, pt := range generator.AllPageTypes() {
				fmt.Fprintf(w, "%s\t%s\n", pt, pt.Slug())
			}
			return w.Flush()
		},
	}
}
