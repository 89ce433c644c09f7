package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	orchestration "github.com/koscakluka/dialogue-core/core"
	"github.com/koscakluka/dialogue-core/core/llms"
	"github.com/koscakluka/dialogue-core/core/scenario"
)

// validationStub stands in for a real generation client so scenarios with
// generated participants can be checked without an API key.
type validationStub struct{}

func (validationStub) Prompt(ctx context.Context, prompt string, opts ...llms.PromptOption) (*llms.Message, error) {
	return &llms.Message{Role: llms.MessageRoleAssistant}, nil
}

var validateCmd = &cobra.Command{
	Use:   "validate <scenario.yaml>",
	Short: "Check a scenario file without running it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scn, err := scenario.Load(args[0])
		if err != nil {
			return err
		}

		if _, err := orchestration.New(scn.Config(), orchestration.WithLLM(validationStub{})); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
