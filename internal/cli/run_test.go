package cli

import (
	"bytes"
	"errors"
	stdio "io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/icm/cpu"
	"github.com/ezrec/icm/io"
)

func TestRun(t *testing.T) {
	assert := assert.New(t)

	out, err := execute(t, "2, 40\n", "run", "testdata/sum.icm")
	assert.NoError(err)
	assert.Equal("42\n", out)
}

func TestRunFiles(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	output := filepath.Join(dir, "output.txt")
	require.NoError(t, os.WriteFile(input, []byte("-5\n7\n"), 0o644))

	out, err := execute(t, "", "run", "-i", input, "-o", output, "testdata/sum.icm")
	assert.NoError(err)
	assert.Empty(out)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal("2\n", string(data))
}

func TestRunDefine(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "show.icm")
	require.NoError(t, os.WriteFile(path, []byte("$(SHOW + P0), K, HALT\n"), 0o644))

	out, err := execute(t, "", "run", "-D", "K=21", path)
	assert.NoError(err)
	assert.Equal("21\n", out)

	_, err = execute(t, "", "run", "-D", "K=4294967296", path)
	assert.Equal(ExitCommandError, ExitCode(err))

	_, err = execute(t, "", "run", path)
	assert.Equal(ExitCommandError, ExitCode(err))
}

func TestRunErrors(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.icm")
	require.NoError(t, os.WriteFile(bad, []byte("; header\n42\n"), 0o644))

	_, err := execute(t, "", "run", bad)
	assert.Equal(ExitFailure, ExitCode(err))
	assert.ErrorIs(err, cpu.ErrOpcodeUnknown)
	assert.Contains(err.Error(), "bad.icm:2:")

	// Tape runs dry before the second value.
	_, err = execute(t, "1\n", "run", "testdata/sum.icm")
	assert.Equal(ExitFailure, ExitCode(err))
	assert.ErrorIs(err, io.ErrChannelClosed)

	_, err = execute(t, "", "run", "testdata/missing.icm")
	assert.Equal(ExitCommandError, ExitCode(err))

	_, err = execute(t, "", "run", "-i", filepath.Join(dir, "missing.txt"), "testdata/sum.icm")
	assert.Equal(ExitCommandError, ExitCode(err))

	_, err = execute(t, "", "run")
	assert.Error(err)
}

var errCloseFailed = errors.New("close failed")

// closeFailure records tape output and fails to close.
type closeFailure struct {
	bytes.Buffer
}

func (cf *closeFailure) Close() error {
	return errCloseFailed
}

func TestRunOutputClose(t *testing.T) {
	assert := assert.New(t)

	out := &closeFailure{}
	opts := &RunOptions{
		RootOptions: &RootOptions{},
		Input:       "-",
		Output:      "tape.out",
		CreateOutput: func(name string) (stdio.WriteCloser, error) {
			assert.Equal("tape.out", name)
			return out, nil
		},
	}
	cmd := NewRunCommand(opts.RootOptions)

	cmd.SetIn(strings.NewReader("2 40"))
	err := runProgram(opts, "testdata/sum.icm", cmd)
	assert.ErrorIs(err, errCloseFailed)
	assert.Equal(ExitCommandError, ExitCode(err))
	assert.Equal("42\n", out.String())

	// A runtime failure is reported ahead of the close.
	out = &closeFailure{}
	cmd.SetIn(strings.NewReader("2"))
	err = runProgram(opts, "testdata/sum.icm", cmd)
	assert.ErrorIs(err, io.ErrChannelClosed)
	assert.Equal(ExitFailure, ExitCode(err))
}
