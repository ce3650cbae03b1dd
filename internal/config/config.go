package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultServiceURL      = "https://api.sqlviz.dev/v1"
	DefaultTimeoutSeconds  = 30
	DefaultRevealThreshold = 0.30
	DefaultDataDir         = ".sqlviz"
)

type Config struct {
	DataDir         string        `yaml:"data_dir"`
	RevealThreshold float64       `yaml:"reveal_threshold"`
	Service         ServiceConfig `yaml:"service"`
}

type ServiceConfig struct {
	URL            string `yaml:"url"`
	APIKey         string `yaml:"api_key"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:         DefaultDataDir,
		RevealThreshold: DefaultRevealThreshold,
		Service: ServiceConfig{
			URL:            DefaultServiceURL,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
	}
}

// Load reads a yaml config over the defaults. SQLVIZ_API_KEY in the
// environment overrides the file so keys can stay out of dotfiles.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// FromEnv returns the default config with environment overrides applied,
// for runs without a config file.
func FromEnv() *Config {
	cfg := DefaultConfig()
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	if key := os.Getenv("SQLVIZ_API_KEY"); key != "" {
		c.Service.APIKey = key
	}
	if url := os.Getenv("SQLVIZ_SERVICE_URL"); url != "" {
		c.Service.URL = url
	}
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
