package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/soli0222/valentine-cli/internal/effects"
)

func newTeleportCmd() *cobra.Command {
	var (
		width, height float64
		seed          int64
		count         int
	)
	cmd := &cobra.Command{
		Use:   "teleport",
		Short: "Print reproducible positions for the runaway No button",
		Long: `Prints one "x y" pair per line for consecutive seeds starting at --seed.
The same width, height and seed always print the same position.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTeleport(cmd, width, height, seed, count)
		},
	}
	cmd.Flags().Float64Var(&width, "width", 800, "viewport width")
	cmd.Flags().Float64Var(&height, "height", 600, "viewport height")
	cmd.Flags().Int64Var(&seed, "seed", 0, "first seed")
	cmd.Flags().IntVar(&count, "count", 1, "number of positions to print")
	return cmd
}

func runTeleport(cmd *cobra.Command, width, height float64, seed int64, count int) error {
	if !isFinite(width) || !isFinite(height) {
		return fmt.Errorf("width and height must be finite (got %v x %v)", width, height)
	}
	if count < 1 {
		return fmt.Errorf("count must be at least 1 (got %d)", count)
	}

	out := cmd.OutOrStdout()
	for i := 0; i < count; i++ {
		x, y := effects.TeleportPosition(width, height, seed+int64(i))
		logger.Debug("teleport position",
			zap.Int64("seed", seed+int64(i)),
			zap.Float64("x", x),
			zap.Float64("y", y))
		fmt.Fprintf(out, "%.2f %.2f\n", x, y)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
