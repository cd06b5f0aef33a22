package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// logLevelEnv names the environment variable that sets the default log level.
const logLevelEnv = "SPANSEQ_LOG_LEVEL"

// app carries the streams and logger shared by every subcommand.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger

	text    string
	hasText bool
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "spanseq",
		Short:         "Search, slice and split text without copying it",
		Long:          "spanseq runs the spanseq library primitives over text from --text or stdin.",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			levelName, _ := cmd.Flags().GetString("log-level")
			level, err := parseLevel(levelName)
			if err != nil {
				return err
			}
			a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))

			a.hasText = cmd.Flags().Changed("text")
			a.text, _ = cmd.Flags().GetString("text")
			return nil
		},
	}

	root.PersistentFlags().String("log-level", os.Getenv(logLevelEnv), "Log level: debug|info|warn|error")
	root.PersistentFlags().String("text", "", "Input text (default: read stdin)")

	root.AddCommand(
		a.findCommand(),
		a.betweenCommand(),
		a.removeCommand(),
		a.charsCommand(),
		a.splitCommand(),
		a.jsonSpanCommand(),
		a.luaCommand(),
	)
	return root
}

// parseLevel maps a level name to a slog level. Empty means info.
func parseLevel(name string) (slog.Level, error) {
	if name == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

// input returns the text to operate on.
func (a *app) input() (string, error) {
	if a.hasText {
		return a.text, nil
	}
	data, err := io.ReadAll(a.in)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
