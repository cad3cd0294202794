package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/soli0222/valentine-cli/internal/config"
	"github.com/soli0222/valentine-cli/internal/logging"
)

const skipSetupAnnotation = "skip-setup"

var (
	flagConfig  string
	flagVerbose bool
	flagNoColor bool

	cfg    *config.Config
	logger *zap.Logger

	newLogger = logging.New
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "valentine-cli",
		Short: "Ask the big question in your terminal",
		Long: `valentine-cli asks "Will you be my Valentine?" until the answer is yes.

Run without arguments to start the question loop. The teleport and burst
commands expose the helpers a web page can call for the runaway "No" button.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runAsk,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.config/valentine-cli/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "print the banner without colors")

	cmd.AddCommand(newAskCmd())
	cmd.AddCommand(newTeleportCmd())
	cmd.AddCommand(newBurstCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the config and builds the logger before a command runs.
func setup(cmd *cobra.Command, args []string) error {
	if _, ok := cmd.Annotations[skipSetupAnnotation]; ok {
		return nil
	}

	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, err = newLogger(cfg.Log.Level, cfg.Log.Format, flagVerbose)
	if err != nil {
		return err
	}
	logger.Debug("config loaded",
		zap.String("path", flagConfig),
		zap.String("log_level", cfg.Log.Level),
		zap.Bool("color", cfg.UI.Color))
	return nil
}

// colorEnabled reports whether banner styling is wanted.
func colorEnabled() bool {
	return cfg.UI.Color && !flagNoColor
}
