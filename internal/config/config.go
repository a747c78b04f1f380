package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the application's configuration model.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	LLM     LLMConfig     `yaml:"llm"`
	Storage StorageConfig `yaml:"storage"`
	Quota   QuotaConfig   `yaml:"quota"`
	Publish PublishConfig `yaml:"publish"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type LLMConfig struct {
	Provider string `yaml:"provider"` // "openai" or "none"
	Model    string `yaml:"model"`
	// If empty, read from env OPENAI_API_KEY
	APIKey string `yaml:"apiKey"`
	// Upper bound on one generation call, in seconds
	TimeoutSeconds int `yaml:"timeoutSeconds"`
}

type StorageConfig struct {
	DBPath string `yaml:"dbPath"`
}

// QuotaConfig caps AI generations; over-budget requests fall back to templates.
type QuotaConfig struct {
	MaxPerHour int `yaml:"maxPerHour"`
	MaxPerDay  int `yaml:"maxPerDay"`
}

type PublishConfig struct {
	// Interval between publish-loop runs, in seconds
	IntervalSeconds int `yaml:"intervalSeconds"`
	// Quiet hours (UTC) during which nothing is auto-published
	QuietHours []int `yaml:"quietHours"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns a sensible default configuration.
func Default() Config {
	return Config{
		Server:  ServerConfig{Addr: ":8080"},
		LLM:     LLMConfig{Provider: "none", Model: "gpt-4o-mini", TimeoutSeconds: 10},
		Storage: StorageConfig{DBPath: "./postcraft.db"},
		Quota:   QuotaConfig{MaxPerHour: 30, MaxPerDay: 200},
		Publish: PublishConfig{IntervalSeconds: 60, QuietHours: []int{0, 1, 2, 3, 4, 5}},
		Metrics: MetricsConfig{Addr: ""},
	}
}

// ResolveEnv fills in config fields from environment variables if not set.
func (c *Config) ResolveEnv() {
	if c.LLM.APIKey == "" && c.LLM.Provider == "openai" {
		c.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if c.Server.Addr == "" {
		if v := os.Getenv("PORT"); v != "" {
			c.Server.Addr = ":" + v
		}
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = os.Getenv("METRICS_ADDR")
	}
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	cfg.ResolveEnv()
	return cfg, nil
}

// Save writes YAML config to path, creating directories as needed.
func Save(path string, cfg Config) error {
	if path == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
