package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/pc-onboard/internal/config"
	"github.com/conn-castle/pc-onboard/internal/messages"
	"github.com/conn-castle/pc-onboard/internal/root"
)

var loadConfig = config.Load

// globalFlags are shared by every subcommand.
type globalFlags struct {
	repoRoot string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.PersistentFlags().StringVarP(&flags.repoRoot, "repo-root", "r", "", messages.RootFlagRepoRoot)
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, messages.RootFlagVerbose)

	cmd.AddCommand(newDoctorCmd(flags))
	cmd.AddCommand(newInitCmd(flags))
	return cmd
}

// resolveRepo resolves the repository root and loads its configuration.
// The verbose flag is folded into the loaded config.
func resolveRepo(flags *globalFlags) (string, *config.Config, error) {
	cwd, err := getwd()
	if err != nil {
		return "", nil, err
	}
	repoRoot, err := root.ResolveRepoRoot(flags.repoRoot, cwd)
	if err != nil {
		return "", nil, err
	}
	cfg, err := loadConfig(repoRoot)
	if err != nil {
		return "", nil, err
	}
	if flags.verbose {
		cfg.Verbose = true
	}
	return repoRoot, cfg, nil
}
