package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"web_copy_generator/generator"
)

func newCompleteCmd(root *rootOptions) *cobra.Command {
	var (
		promptFile string
		words      int
		model      string
		asHTML     bool
	)
	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Send a hand-written prompt and trim the answer",
		Long: `Send a free-form prompt (from --prompt-file, or stdin with "-") to the backend.
Without --words the limit is read from an "around N words" phrase in the prompt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prompt, err := readPrompt(cmd, promptFile)
			if err != nil {
				return err
			}
			if strings.TrimSpace(prompt) == "" {
				return fmt.Errorf("prompt is empty")
			}
			if words < 0 {
				return fmt.Errorf("--words must be positive, got %d", words)
			}
			limit := words
			if limit == 0 {
				limit, err = generator.ParseWordLimit(prompt)
				if err != nil {
					return fmt.Errorf("%w; pass --words", err)
				}
			}

			_, _, agent, err := setup(root, model)
			if err != nil {
				return err
			}
			res, err := agent.Complete(cmd.Context(), prompt, limit)
			if err != nil {
				return err
			}
			return printResult(cmd, res, asHTML)
		},
	}
	cmd.Flags().StringVarP(&promptFile, "prompt-file", "f", "-", `prompt file, "-" for stdin`)
	cmd.Flags().IntVarP(&words, "words", "w", 0, "word limit (default: parsed from the prompt)")
	cmd.Flags().StringVar(&model, "model", "", "model identifier (overrides config)")
	cmd.Flags().BoolVar(&asHTML, "html", false, "print HTML instead of Markdown")
	return cmd
}

func readPrompt(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}
