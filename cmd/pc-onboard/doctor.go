package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/pc-onboard/internal/doctor"
	"github.com/conn-castle/pc-onboard/internal/messages"
	"github.com/conn-castle/pc-onboard/internal/runner"
)

var (
	runDoctor                  = doctor.Run
	doctorSystem doctor.System = doctor.RealSystem{}
)

func newDoctorCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			repoRoot, cfg, err := resolveRepo(flags)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), levelFor(cfg.Verbose))

			_, _ = fmt.Fprintf(out, messages.RepositoryLineFmt, repoRoot)

			// Probe output is parsed, never shown.
			exec := runner.New(logger, io.Discard, io.Discard, false)
			results := runDoctor(cmd.Context(), repoRoot, doctor.Deps{
				System:    doctorSystem,
				Exec:      exec,
				Packages:  cfg.DevPackages,
				MiseBin:   cfg.MiseBin,
				PythonBin: cfg.PythonBin,
			})
			for _, r := range results {
				printResult(out, r, cfg.Verbose)
			}
			_, _ = fmt.Fprintln(out)

			if doctor.AnyFailed(results) {
				_, _ = fmt.Fprintln(out, color.YellowString(messages.DoctorFailureSummary))
				return &SilentExitError{Code: 1}
			}
			return nil
		},
	}
}

func printResult(out io.Writer, r doctor.Result, verbose bool) {
	label := color.New(color.FgGreen)
	status := messages.DoctorStatusOKLabel
	if !r.Passed() {
		label = color.New(color.FgRed)
		status = messages.DoctorStatusFailLabel
	}
	_, _ = label.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName)
	_, _ = fmt.Fprintln(out, r.Message)
	if !verbose {
		return
	}
	if r.Source != "" {
		_, _ = fmt.Fprintf(out, messages.DoctorSourceLineFmt, r.Source)
	}
	if r.Recommendation != "" {
		_, _ = fmt.Fprintf(out, messages.DoctorRecommendFmt, r.Recommendation)
	}
}
