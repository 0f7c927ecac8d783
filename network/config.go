package network

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// Config describes a network run.
type Config struct {
	Program  string  `yaml:"program"`  // Program file path.
	Phases   []int32 `yaml:"phases"`   // Phase settings, or the set to search.
	Feedback bool    `yaml:"feedback"` // Feedback loop mode.
	Search   bool    `yaml:"search"`   // Search all phase orderings.
	Verbose  bool    `yaml:"verbose"`
	Limit    int     `yaml:"limit,omitempty"` // Concurrent searches, 0 for GOMAXPROCS.
}

// LoadConfig reads a YAML network description.
func LoadConfig(input io.Reader) (cfg *Config, err error) {
	decoder := yaml.NewDecoder(input)
	decoder.KnownFields(true)

	cfg = &Config{}
	err = decoder.Decode(cfg)
	if errors.Is(err, io.EOF) {
		// An empty document is an empty configuration.
		err = nil
	}
	if err != nil {
		cfg = nil
		return
	}

	return
}

// Validate checks that the configuration describes a runnable network.
func (cfg *Config) Validate() (err error) {
	if len(cfg.Program) == 0 {
		return ErrNoProgram
	}

	if len(cfg.Phases) == 0 {
		return ErrNoPhases
	}

	if cfg.Search {
		seen := map[int32]bool{}
		for _, phase := range cfg.Phases {
			if seen[phase] {
				return ErrConfigPhaseDuplicate
			}
			seen[phase] = true
		}
	}

	return
}

// Network creates a network for memory using the configured settings.
func (cfg *Config) Network(memory []int32) (nw *Network) {
	nw = NewNetwork(memory, cfg.Feedback)
	nw.Verbose = cfg.Verbose
	nw.Limit = cfg.Limit

	return
}
