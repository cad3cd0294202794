package cli

import (
	"github.com/spf13/cobra"

	"github.com/soli0222/valentine-cli/internal/effects"
)

func newBurstCmd() *cobra.Command {
	var x, y float64
	cmd := &cobra.Command{
		Use:   "burst",
		Short: "Log a particle burst at the given coordinates",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			effects.TriggerParticleBurst(logger, x, y)
		},
	}
	cmd.Flags().Float64Var(&x, "x", 0, "x coordinate")
	cmd.Flags().Float64Var(&y, "y", 0, "y coordinate")
	return cmd
}
