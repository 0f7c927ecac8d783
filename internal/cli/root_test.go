package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and stdin text.
func execute(t *testing.T, stdin string, args ...string) (stdout string, err error) {
	t.Helper()

	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err = cmd.Execute()
	stdout = out.String()
	return
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "icm", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"run", "amplify", "disasm"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	defineFlag := cmd.PersistentFlags().Lookup("define")
	require.NotNil(t, defineFlag)
	assert.Equal(t, "D", defineFlag.Shorthand)
}

func TestExitCode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(ExitSuccess, ExitCode(nil))
	assert.Equal(ExitFailure, ExitCode(errors.New("plain")))

	inner := errors.New("inner")
	err := WrapExitError(ExitCommandError, "load", inner)
	assert.Equal(ExitCommandError, ExitCode(err))
	assert.ErrorIs(err, inner)
	assert.Equal("load: inner", err.Error())

	assert.Equal("bare", (&ExitError{Code: ExitFailure, Message: "bare"}).Error())
}

func TestExecute(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(ExitCommandError, Execute([]string{"disasm", "testdata/missing.icm"}))
	assert.Equal(ExitSuccess, Execute([]string{"amplify", "--phases", "4,3,2,1,0", "testdata/amp.icm"}))
}
