package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"web_copy_generator/generator"
	"web_copy_generator/render"
)

func newGenerateCmd(root *rootOptions) *cobra.Command {
	var (
		pageType    string
		description string
		words       int
		model       string
		asHTML      bool
		dryRun      bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate copy for one page",
		Example: `  webcopy generate --page-type home --description "a bakery selling sourdough bread" --words 300
  webcopy generate --page-type faqs --description "bike repair" --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pt, err := generator.ParsePageType(pageType)
			if err != nil {
				return err
			}
			req := generator.GenerationRequest{PageType: pt, Description: description, WordCount: words}
			if err := generator.ValidateRequest(req); err != nil {
				return err
			}

			if dryRun {
				prompt, err := generator.BuildPrompt(pt, description, words)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), prompt)
				return nil
			}

			_, logger, agent, err := setup(root, model)
			if err != nil {
				return err
			}
			logger.WithField("page_type", pt.String()).Debug("[cli] generating")
			res, err := agent.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printResult(cmd, res, asHTML)
		},
	}
	cmd.Flags().StringVarP(&pageType, "page-type", "p", generator.Home.String(), "page type: home, about-us, contact-us, products, services, landing, faqs")
	cmd.Flags().StringVarP(&description, "description", "d", "", "brief description of the website")
	cmd.Flags().IntVarP(&words, "words", "w", generator.DefaultWordCount, "desired word count (50-2000)")
	cmd.Flags().StringVar(&model, "model", "", "model identifier (overrides config)")
	cmd.Flags().BoolVar(&asHTML, "html", false, "print HTML instead of Markdown")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the prompt without contacting the backend")
	return cmd
}

func printResult(cmd *cobra.Command, res generator.GenerationResult, asHTML bool) error {
	out := res.Text
	if asHTML {
		html, err := render.ToHTML(res.Text)
		if err != nil {
			return err
		}
		out = html
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	if res.Truncated {
		fmt.Fprintf(cmd.ErrOrStderr(), "note: trimmed to %d words\n", res.WordLimit)
	}
	return nil
}
