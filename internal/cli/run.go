package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/icm/cpu"
	icmio "github.com/ezrec/icm/io"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Input  string
	Output string

	// CreateOutput opens the tape output file (for testing).
	// If nil, defaults to os.Create.
	CreateOutput func(name string) (io.WriteCloser, error)
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <program>",
		Short: "Run a program on a tape",
		Long: `Run a single processor, reading input values from the tape input
and writing each output value on its own line.

Example:
  echo 2,40 | icm run sum.icm
  icm run --input values.txt --output out.txt sum.icm`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgram(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "-", "tape input file")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "-", "tape output file")

	return cmd
}

func runProgram(opts *RunOptions, path string, cmd *cobra.Command) (err error) {
	prog, err := loadProgram(opts.RootOptions, path)
	if err != nil {
		return WrapExitError(ExitCommandError, f("load"), err)
	}

	tape := &icmio.Tape{
		Input:  cmd.InOrStdin(),
		Output: cmd.OutOrStdout(),
	}

	if opts.Input != "-" {
		inf, err := os.Open(opts.Input)
		if err != nil {
			return WrapExitError(ExitCommandError, f("input"), err)
		}
		defer inf.Close()
		tape.Input = inf
	}

	if opts.Output != "-" {
		create := opts.CreateOutput
		if create == nil {
			create = func(name string) (io.WriteCloser, error) {
				return os.Create(name)
			}
		}
		ouf, create_err := create(opts.Output)
		if create_err != nil {
			return WrapExitError(ExitCommandError, f("output"), create_err)
		}
		defer func() {
			close_err := ouf.Close()
			if err == nil && close_err != nil {
				err = WrapExitError(ExitCommandError, f("output"), close_err)
			}
		}()
		tape.Output = ouf
	}

	proc := cpu.NewProcessor(0, prog.Memory(), tape, tape)
	proc.Verbose = opts.Verbose

	err = proc.Run()
	if err != nil {
		if opts.Verbose {
			log.Printf("cpu:\n%v", proc)
		}
		var rt *cpu.ErrRuntime
		if errors.As(err, &rt) {
			if lineno := prog.Debug(rt.Ip); lineno > 0 {
				err = fmt.Errorf("%v:%d: %w", path, lineno, err)
			}
		}
		return WrapExitError(ExitFailure, f("run"), err)
	}

	return nil
}
