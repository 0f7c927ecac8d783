// Package cli implements the icm command line.
package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/ezrec/icm/program"
	"github.com/ezrec/icm/translate"
)

var f = translate.From

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Define  map[string]int // Loader predefines
}

// NewRootCommand creates the root command for the icm CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "icm",
		Short: "icm - integer code machine",
		Long: `Load, run and inspect integer code programs.

Programs are comma or whitespace separated integers, optionally with
labels, .equ definitions and $(...) expressions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringToIntVarP(&opts.Define, "define", "D", nil, "predefine NAME=VALUE for the loader")

	// Add subcommands
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewAmplifyCommand(opts))
	cmd.AddCommand(NewDisasmCommand(opts))

	return cmd
}

// Execute runs the command line with args, returning the exit code.
func Execute(args []string) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%v: %v\n", cmd.Name(), err)
	}

	return ExitCode(err)
}

// loadProgram loads a program file with the global loader settings.
func loadProgram(opts *RootOptions, path string) (prog *program.Program, err error) {
	ld := &program.Loader{Verbose: opts.Verbose}
	for equ, value := range opts.Define {
		if value < math.MinInt32 || value > math.MaxInt32 {
			err = program.ErrParseValue(equ)
			return
		}
		ld.Predefine(equ, int32(value))
	}

	return ld.ParseFile(path)
}
