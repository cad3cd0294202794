package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soli0222/valentine-cli/internal/prompt"
)

func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask",
		Short: "Ask the question until the answer is yes",
		Args:  cobra.NoArgs,
		RunE:  runAsk,
	}
}

func runAsk(cmd *cobra.Command, args []string) error {
	session := prompt.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(),
		prompt.WithQuestion(cfg.Prompt.Question),
		prompt.WithLogger(logger),
		prompt.WithColor(colorEnabled()),
	)

	if _, err := session.Run(); err != nil {
		return fmt.Errorf("prompt session failed: %w", err)
	}
	return nil
}
