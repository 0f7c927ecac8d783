package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestDisasm(t *testing.T) {
	assert := assert.New(t)

	out, err := execute(t, "", "disasm", "testdata/sum.icm")
	assert.NoError(err)

	g := goldie.New(t)
	g.Assert(t, "sum", []byte(out))
}

func TestDisasmErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := execute(t, "", "disasm", "testdata/missing.icm")
	assert.Equal(ExitCommandError, ExitCode(err))

	_, err = execute(t, "", "disasm")
	assert.Error(err)
}
