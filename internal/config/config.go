// Package config handles the protocompat.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jptrs93/protocompat/internal/wrapper"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the configuration file looked up when no path is given.
const FileName = "protocompat.yaml"

// Config represents the protocompat.yaml configuration file. Command-line
// flags override its values.
type Config struct {
	Version          int      `yaml:"version"`
	ProtoPaths       []string `yaml:"proto_paths,omitempty"`
	Out              string   `yaml:"out,omitempty"`
	GoPackage        string   `yaml:"go_package,omitempty"`
	Gen              string   `yaml:"gen,omitempty"`
	Adapter          string   `yaml:"adapter,omitempty"`
	Exclude          []string `yaml:"exclude,omitempty"`
	DescriptorSetOut string   `yaml:"descriptor_set_out,omitempty"`
	Clean            bool     `yaml:"clean,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Gen:     "all",
		Adapter: wrapper.AdapterLegacy.String(),
	}
}

// Load reads a Config from a file path. Unset gen and adapter values take
// their defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	cfg := Default()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if _, err := c.GenOpt(); err != nil {
		return err
	}
	if _, err := c.AdapterMode(); err != nil {
		return err
	}
	return nil
}

// GenOpt parses the gen setting.
func (c *Config) GenOpt() (wrapper.GenOpt, error) {
	if c.Gen == "" {
		return wrapper.All, nil
	}
	return wrapper.ParseGenOpt(c.Gen)
}

// AdapterMode parses the adapter setting.
func (c *Config) AdapterMode() (wrapper.Adapter, error) {
	return wrapper.ParseAdapter(c.Adapter)
}
