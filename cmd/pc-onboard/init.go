package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/conn-castle/pc-onboard/internal/install"
	"github.com/conn-castle/pc-onboard/internal/messages"
	"github.com/conn-castle/pc-onboard/internal/onboard"
	"github.com/conn-castle/pc-onboard/internal/runner"
	"github.com/conn-castle/pc-onboard/internal/terminal"
)

var (
	runOnboard       = onboard.Run
	isInteractive    = terminal.IsInteractive
	stdoutIsTerminal = func() bool { return terminal.IsTerminal(os.Stdout) }
)

func newInitCmd(flags *globalFlags) *cobra.Command {
	var (
		runAll   bool
		noRunAll bool
		noPrompt bool
	)
	cmd := &cobra.Command{
		Use:   messages.InitUse,
		Short: messages.InitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runAll && noRunAll {
				return errors.New(messages.InitRunAllBoth)
			}
			repoRoot, cfg, err := resolveRepo(flags)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), levelFor(cfg.Verbose))

			var explicit *bool
			switch {
			case runAll:
				explicit = &runAll
			case noRunAll:
				no := false
				explicit = &no
			}

			exec := runner.New(logger, cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Verbose)
			summary, err := runOnboard(cmd.Context(), repoRoot, onboard.Options{
				Exec:        exec,
				Logger:      logger,
				Packages:    cfg.DevPackages,
				MiseBin:     cfg.MiseBin,
				RunAll:      explicit,
				Prompt:      !(noPrompt || cfg.NoPrompt),
				Interactive: isInteractive(),
				Prompter:    choosePrompter(cmd),
				Install:     install.Options{System: install.RealSystem{}, Logger: logger},
			})
			if err != nil {
				return err
			}

			printSummary(cmd.OutOrStdout(), summary)
			if summary.ExitCode != 0 {
				return &SilentExitError{Code: summary.ExitCode}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&runAll, "run-all", false, messages.InitFlagRunAll)
	cmd.Flags().BoolVar(&noRunAll, "no-run-all", false, messages.InitFlagNoRun)
	cmd.Flags().BoolVar(&noPrompt, "no-prompt", false, messages.InitFlagPrompt)
	return cmd
}

// choosePrompter uses the terminal confirm when stdout is a terminal and a plain line prompt otherwise.
func choosePrompter(cmd *cobra.Command) onboard.Prompter {
	if stdoutIsTerminal() {
		return onboard.HuhPrompter{Out: cmd.ErrOrStderr()}
	}
	return onboard.LinePrompter{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
}

func printSummary(out io.Writer, summary onboard.Summary) {
	_, _ = fmt.Fprintln(out, messages.InitSummaryHead)
	_, _ = fmt.Fprintf(out, messages.InitSummaryFmt, messages.InitSummaryManager, summary.Manager)

	python := messages.InitSummaryNone
	if summary.HasPython {
		python = fmt.Sprintf(messages.InitSummaryFromFmt, summary.Python.Value, summary.Python.Source)
	}
	_, _ = fmt.Fprintf(out, messages.InitSummaryFmt, messages.InitSummaryPython, python)
	_, _ = fmt.Fprintf(out, messages.InitSummaryFmt, messages.InitSummaryConfig, summary.Config.Path)

	backup := messages.InitSummaryNone
	if summary.Config.BackupPath != "" {
		backup = summary.Config.BackupPath
	}
	_, _ = fmt.Fprintf(out, messages.InitSummaryFmt, messages.InitSummaryBackup, backup)
	if summary.RanAll {
		_, _ = fmt.Fprintf(out, messages.InitSummaryFmt, messages.InitSummaryRunAll, fmt.Sprint(summary.ExitCode))
	}
}
