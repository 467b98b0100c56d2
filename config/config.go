package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// DbPathMemory selects an in-memory database instead of an on-disk one
const DbPathMemory = ":memory:"

// Config represents tool changeable settings
type Config struct {
	Limits Limits
	Db     Db
}

// Limits bound what the wire decoder accepts before trusting peer-provided
// length prefixes
type Limits struct {
	MaxAcceptedLength uint32 `yaml:"maxAcceptedLength"`
	FrameMaxSize      uint32 `yaml:"frameMaxSize"`
}

// Db settings, such as path to load/save and engine
type Db struct {
	DefaultPath string `yaml:"defaultPath"`
	Engine      string `yaml:"engine"`
}

// CreateDefault returns default config
func CreateDefault() (*Config, error) {
	return defaultConfig(), nil
}

// CreateFromFile reads config from given YAML file and merges it over
// the defaults
func CreateFromFile(path string) (*Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	if err = yaml.Unmarshal(file, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Limits: Limits{
			MaxAcceptedLength: 16 * 1024 * 1024,
			FrameMaxSize:      65536,
		},
		Db: Db{
			DefaultPath: "db",
			Engine:      "badger",
		},
	}
}
