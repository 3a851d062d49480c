package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/roll/internal/app"
	"github.com/cory-johannsen/roll/internal/config"
	"github.com/cory-johannsen/roll/internal/version"
)

const dieRollHelp = `Roll dice given in the form AdX. A and X are variables, separated by the
letter d, which stands for die or dice.

  - A is the number of dice to be rolled (omitted if 1).
  - X is the number of faces of each die. The faces are numbered from 1 to X,
    and each die yields a uniformly random integer in that range.

A signed integer at the very end of the notation is added to the total,
e.g. "3d10+2". Several groups may be combined, e.g. "2d6 1d8".`

// versionInfo is swapped in tests.
var versionInfo = version.Get

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the roll command. Output goes to cmd.OutOrStdout.
func NewRootCmd() *cobra.Command {
	var (
		configPath  string
		seed        uint64
		output      string
		showVersion bool
	)

	root := &cobra.Command{
		Use:           "roll [notation]",
		Short:         "Roll dice using dice notation",
		Long:          dieRollHelp,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if showVersion {
				return printVersion(out)
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cmd.Flags().Changed("seed") {
				cfg.Dice.Source = "seeded"
				cfg.Dice.Seed = seed
			}
			if cmd.Flags().Changed("output") {
				cfg.Output.Format = output
			}

			a, cleanup, err := app.InitializeApp(cfg)
			if err != nil {
				return fmt.Errorf("initializing: %w", err)
			}
			defer cleanup()

			var notation string
			if len(args) == 1 {
				notation = args[0]
			}
			return a.Run(out, notation)
		},
	}

	root.Flags().BoolVarP(&showVersion, "version", "v", false, "Display the version of the tool.")
	root.Flags().StringVar(&configPath, "config", "", "path to a YAML configuration file")
	root.Flags().Uint64Var(&seed, "seed", 0, "seed for reproducible rolls")
	root.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json, or yaml")

	return root
}

func printVersion(w io.Writer) error {
	v, ok := versionInfo()
	if !ok {
		_, err := fmt.Fprintln(w, "Version information not available.")
		return err
	}
	_, err := fmt.Fprintf(w, "Version: %s\n", v)
	return err
}
