package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/icm/network"
)

// AmplifyOptions holds flags for the amplify command.
type AmplifyOptions struct {
	*RootOptions
	Phases   []int32
	Feedback bool
	Search   bool
	Limit    int
	Config   string
}

// NewAmplifyCommand creates the amplify command.
func NewAmplifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AmplifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "amplify [program]",
		Short: "Run a chain of processors",
		Long: `Run one processor per phase setting, each output feeding the next
processor, and print the final signal.

With --search, every ordering of the phase settings is tried, and the
highest signal is printed with the ordering that produced it.

Flags override values from a --config file.

Example:
  icm amplify --phases 4,3,2,1,0 amp.icm
  icm amplify --feedback --search --phases 5,6,7,8,9 amp.icm
  icm amplify --config network.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAmplify(opts, args, cmd)
		},
	}

	cmd.Flags().Int32SliceVarP(&opts.Phases, "phases", "p", nil, "phase settings")
	cmd.Flags().BoolVar(&opts.Feedback, "feedback", false, "feed the last output back to the first processor")
	cmd.Flags().BoolVar(&opts.Search, "search", false, "search all orderings of the phase settings")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "concurrent searches (0 for GOMAXPROCS)")
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "YAML network configuration")

	return cmd
}

// amplifyConfig merges the configuration file with the command line.
func amplifyConfig(opts *AmplifyOptions, args []string, cmd *cobra.Command) (cfg *network.Config, err error) {
	cfg = &network.Config{}

	if len(opts.Config) != 0 {
		var inf *os.File
		inf, err = os.Open(opts.Config)
		if err != nil {
			return
		}
		defer inf.Close()

		cfg, err = network.LoadConfig(inf)
		if err != nil {
			err = fmt.Errorf("%v: %w", opts.Config, err)
			return
		}

		// Program paths are relative to the configuration.
		if len(cfg.Program) != 0 && !filepath.IsAbs(cfg.Program) {
			cfg.Program = filepath.Join(filepath.Dir(opts.Config), cfg.Program)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("phases") {
		cfg.Phases = opts.Phases
	}
	if flags.Changed("feedback") {
		cfg.Feedback = opts.Feedback
	}
	if flags.Changed("search") {
		cfg.Search = opts.Search
	}
	if flags.Changed("limit") {
		cfg.Limit = opts.Limit
	}
	if opts.Verbose {
		cfg.Verbose = true
	}
	if len(args) != 0 {
		cfg.Program = args[0]
	}

	err = cfg.Validate()
	return
}

func runAmplify(opts *AmplifyOptions, args []string, cmd *cobra.Command) (err error) {
	cfg, err := amplifyConfig(opts, args, cmd)
	if err != nil {
		return WrapExitError(ExitCommandError, f("config"), err)
	}

	prog, err := loadProgram(opts.RootOptions, cfg.Program)
	if err != nil {
		return WrapExitError(ExitCommandError, f("load"), err)
	}

	nw := cfg.Network(prog.Memory())

	out := cmd.OutOrStdout()
	if cfg.Search {
		signal, phases, err := nw.Search(cfg.Phases)
		if err != nil {
			return WrapExitError(ExitFailure, f("search"), err)
		}
		fmt.Fprintf(out, "%d %s\n", signal, formatPhases(phases))
		return nil
	}

	signal, err := nw.Run(cfg.Phases)
	if err != nil {
		return WrapExitError(ExitFailure, f("amplify"), err)
	}
	fmt.Fprintf(out, "%d\n", signal)

	return nil
}

// formatPhases formats phases the way --phases accepts them.
func formatPhases(phases []int32) string {
	text := make([]string, len(phases))
	for n, phase := range phases {
		text[n] = fmt.Sprint(phase)
	}
	return strings.Join(text, ",")
}
