package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mchmarny/gradestat/pkg/config"
	"github.com/mchmarny/gradestat/pkg/logging"
	"github.com/mchmarny/gradestat/pkg/score"
	urfave "github.com/urfave/cli/v3"
)

const (
	appName      = "gradestat"
	appConfigKey = "app-config"
	envPrefix    = "GRADESTAT_"

	exitOK      = 0
	exitFailure = 1

	debugFlagName    = "debug"
	langFlagName     = "lang"
	formatFlagName   = "format"
	capacityFlagName = "capacity"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""
)

// Execute creates and runs the CLI application.
func Execute() {
	os.Exit(run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run executes the app and maps the outcome to a process exit code. Rejected
// input exits non-zero; its message has already been shown to the user.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	initLogging(errOut, config.Default().LogLevel())

	app := newApp()
	app.Reader = in
	app.Writer = out
	app.ErrWriter = errOut

	if err := app.Run(ctx, args); err != nil {
		if score.IsInputError(err) {
			slog.Debug("input rejected", "error", err)
		} else {
			slog.Error("fatal error", "error", err)
		}
		return exitFailure
	}
	return exitOK
}

func getConfig(cmd *urfave.Command) *config.Settings {
	if cfg, ok := cmd.Root().Metadata[appConfigKey].(*config.Settings); ok {
		return cfg
	}
	return config.Default()
}

func newApp() *urfave.Command {
	formats := make([]string, 0, len(score.Formats))
	for _, f := range score.Formats {
		formats = append(formats, string(f))
	}

	return &urfave.Command{
		Name:                  appName,
		Version:               fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Usage:                 "Summarize student test scores (average, max, min)",
		UsageText:             appName + " [options] < scores.txt",
		HideHelpCommand:       true,
		EnableShellCompletion: true,
		Metadata:              map[string]any{},
		Flags: []urfave.Flag{
			&urfave.BoolFlag{
				Name:    debugFlagName,
				Usage:   "Prints verbose logs (optional, default: false)",
				Sources: urfave.EnvVars(envPrefix + "DEBUG"),
			},
			&urfave.StringFlag{
				Name:    langFlagName,
				Usage:   "Display language for prompts and report [ja, en]",
				Sources: urfave.EnvVars(envPrefix+"LANG", "LANG"),
			},
			&urfave.StringFlag{
				Name:    formatFlagName,
				Usage:   fmt.Sprintf("Report format [%s]", strings.Join(formats, ", ")),
				Value:   string(score.FormatText),
				Sources: urfave.EnvVars(envPrefix + "FORMAT"),
			},
			&urfave.IntFlag{
				Name:    capacityFlagName,
				Usage:   "Maximum number of students",
				Value:   score.DefaultCapacity,
				Sources: urfave.EnvVars(envPrefix + "CAPACITY"),
			},
		},
		Before: func(ctx context.Context, cmd *urfave.Command) (context.Context, error) {
			cfg, err := config.New(
				int(cmd.Int(capacityFlagName)),
				cmd.String(langFlagName),
				cmd.String(formatFlagName),
				cmd.Bool(debugFlagName),
			)
			if err != nil {
				return ctx, err
			}

			initLogging(cmd.ErrWriter, cfg.LogLevel())
			slog.Debug("settings", "capacity", cfg.Capacity, "lang", cfg.Lang, "format", cfg.Format)

			cmd.Metadata[appConfigKey] = cfg
			return ctx, nil
		},
		Action: cmdSummarize,
	}
}

func initLogging(w io.Writer, level string) {
	logging.SetDefaultCLILogger(w, level)
}

// cmdSummarize collects the scores and, only when collection succeeded,
// prints the summary. Prompts share stdout with the text report; for
// structured formats they move to stderr so stdout stays parseable.
func cmdSummarize(ctx context.Context, cmd *urfave.Command) error {
	cfg := getConfig(cmd)
	msgs := cfg.Messages()

	promptOut := cmd.Writer
	if cfg.Format != score.FormatText {
		promptOut = cmd.ErrWriter
	}

	c := score.NewCollector(cmd.Reader, promptOut)
	c.Capacity = cfg.Capacity
	c.Messages = msgs

	start := time.Now()
	scores, err := c.Collect(ctx)
	if err != nil {
		return fmt.Errorf("collecting scores: %w", err)
	}
	slog.Debug("scores collected", "count", len(scores), "duration", time.Since(start))

	stats, err := score.Compute(scores)
	if err != nil {
		return fmt.Errorf("computing stats: %w", err)
	}

	if cfg.Format == score.FormatText {
		// terminate the last prompt line
		fmt.Fprintln(cmd.Writer)
	}

	if err := score.Report(cmd.Writer, stats, cfg.Format, msgs); err != nil {
		return fmt.Errorf("reporting stats: %w", err)
	}
	return nil
}
