package network

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	assert := assert.New(t)

	inf, err := os.Open("testdata/feedback.yaml")
	require.NoError(t, err)
	defer inf.Close()

	cfg, err := LoadConfig(inf)
	require.NoError(t, err)

	assert.Equal(&Config{
		Program:  "feedback.icm",
		Phases:   []int32{5, 6, 7, 8, 9},
		Feedback: true,
		Search:   true,
		Limit:    2,
	}, cfg)
	assert.NoError(cfg.Validate())

	nw := cfg.Network(feedback139629729)
	assert.True(nw.Feedback)
	assert.False(nw.Verbose)
	assert.Equal(2, nw.Limit)

	signal, phases, err := nw.Search(cfg.Phases)
	assert.NoError(err)
	assert.Equal(int32(139629729), signal)
	assert.Equal([]int32{9, 8, 7, 6, 5}, phases)
}

func TestLoadConfigEmpty(t *testing.T) {
	assert := assert.New(t)

	cfg, err := LoadConfig(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(&Config{}, cfg)
	assert.ErrorIs(cfg.Validate(), ErrNoProgram)
}

func TestLoadConfigErrors(t *testing.T) {
	table := map[string]string{
		"unknown-field": "program: a.icm\nphase: [1]\n",
		"bad-phase":     "program: a.icm\nphases: [one]\n",
		"wide-phase":    "program: a.icm\nphases: [4294967296]\n",
		"not-a-map":     "- program\n",
	}

	for name, text := range table {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			cfg, err := LoadConfig(strings.NewReader(text))
			assert.Error(err)
			assert.Nil(cfg)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	table := [](struct {
		name string
		cfg  Config
		err  error
	}){
		{"ok", Config{Program: "a.icm", Phases: []int32{0, 1}}, nil},
		{"no-program", Config{Phases: []int32{0}}, ErrNoProgram},
		{"no-phases", Config{Program: "a.icm"}, ErrNoPhases},
		{"repeat-run", Config{Program: "a.icm", Phases: []int32{1, 1}}, nil},
		{"repeat-search", Config{Program: "a.icm", Phases: []int32{1, 1}, Search: true}, ErrConfigPhaseDuplicate},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			err := entry.cfg.Validate()
			if entry.err == nil {
				assert.NoError(err)
			} else {
				assert.ErrorIs(err, entry.err)
			}
		})
	}
}
