package cli

import (
	"github.com/spf13/cobra"

	"github.com/ezrec/icm/program"
)

// NewDisasmCommand creates the disasm command.
func NewDisasmCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disasm <program>",
		Short: "Print a program listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := loadProgram(rootOpts, args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, f("load"), err)
			}
			return program.Listing(cmd.OutOrStdout(), prog.Memory())
		},
	}

	return cmd
}
