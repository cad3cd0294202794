package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soli0222/valentine-cli/internal/config"
	"github.com/soli0222/valentine-cli/internal/prompt"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "init",
		Short:       "Write a config file interactively",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipSetupAnnotation: "true"},
		RunE:        runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := flagConfig
	if configPath == "" {
		dir, err := config.Dir()
		if err != nil {
			return err
		}
		configPath = filepath.Join(dir, "config.yaml")
	}

	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		fmt.Fprintf(out, "config file already exists: %s\n", configPath)
		fmt.Fprint(out, "Overwrite? (y/N) ")
		if !in.Scan() || prompt.Classify(in.Text()) != prompt.Affirmative {
			fmt.Fprintln(out, "aborted")
			return nil
		}
	}

	fmt.Fprintln(out, "Setting up valentine-cli")
	question := ask(in, out, "Question", prompt.DefaultQuestion)
	color := ask(in, out, "Colored banner (yes/no)", "yes")
	level := ask(in, out, "Log level", "info")
	format := ask(in, out, "Log format (console/json)", "console")

	body := fmt.Sprintf(`prompt:
  question: %q

ui:
  color: %t

log:
  level: %q
  format: %q
`, question, prompt.Classify(color) != prompt.Negative, strings.ToLower(level), strings.ToLower(format))

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(body), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(out, "\nconfig file written: %s\n", configPath)
	return nil
}

func ask(scanner *bufio.Scanner, out io.Writer, label, defaultVal string) string {
	if defaultVal != "" {
		fmt.Fprintf(out, "%s [%s]: ", label, defaultVal)
	} else {
		fmt.Fprintf(out, "%s: ", label)
	}

	if scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		if input != "" {
			return input
		}
	}
	return defaultVal
}
