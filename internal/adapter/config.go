package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/casereach/internal/model"
)

// DefaultConfigFile is looked up in the working directory when no --config is given.
const DefaultConfigFile = ".casereach.yaml"

// Config holds run defaults read from a config file. Command-line flags
// override every value set here.
type Config struct {
	Parallel       int      `yaml:"parallel"`
	Shard          string   `yaml:"shard"`
	Exclude        []string `yaml:"exclude"`
	Reports        string   `yaml:"reports"`
	Verbose        bool     `yaml:"verbose"`
	FailOnFindings bool     `yaml:"fail-on-findings"`
	// Kinds switches finding kinds on or off; kinds not listed stay enabled.
	Kinds map[m.FindingKind]bool `yaml:"kinds"`
}

// Enabled reports whether findings of kind should be reported.
func (c Config) Enabled(kind m.FindingKind) bool {
	on, ok := c.Kinds[kind]

	return !ok || on
}

// LoadConfig reads the config file at path. A missing file yields the zero
// Config unless required is set.
func LoadConfig(path m.Path, required bool) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(string(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}

		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	return cfg, nil
}
