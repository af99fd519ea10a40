package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = ".cex.yaml"

type DataModels struct {
	Label            string `yaml:"label"`
	ModelColumn      string `yaml:"model-column"`
	CollectionColumn string `yaml:"collection-column"`
}

type Relations struct {
	IncludeHeader *bool `yaml:"include-header"`
}

type Fetch struct {
	Timeout   int    `yaml:"timeout"` // seconds
	UserAgent string `yaml:"user-agent"`
	MaxBytes  int64  `yaml:"max-bytes"`
}

type Serve struct {
	Addr string `yaml:"addr"`
}

type Config struct {
	DataModels DataModels `yaml:"datamodels"`
	Relations  Relations  `yaml:"relations"`
	Fetch      Fetch      `yaml:"fetch"`
	Serve      Serve      `yaml:"serve"`
}

// Load reads a YAML config file and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a validated Config with every default applied.
func Default() *Config {
	var cfg Config
	// The zero value always validates.
	_ = Validate(&cfg)
	return &cfg
}

// Resolve loads path if given, else $CEX_CONFIG, else DefaultFile when it
// exists. With none of those it returns Default().
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if env := os.Getenv("CEX_CONFIG"); env != "" {
		return Load(env)
	}
	cfg, err := Load(DefaultFile)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// IncludeRelationHeader reports whether relation set data keeps its header.
func (c *Config) IncludeRelationHeader() bool {
	return c.Relations.IncludeHeader == nil || *c.Relations.IncludeHeader
}

// TimeoutDuration returns the HTTP timeout for remote documents.
func (f Fetch) TimeoutDuration() time.Duration {
	return time.Duration(f.Timeout) * time.Second
}
