// Package config loads the server configuration from a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML configs can use Go duration
// strings like "30s".
type Duration time.Duration

// UnmarshalYAML decodes a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Knowledge source kinds.
const (
	KnowledgeBuiltin = "builtin"
	KnowledgeFile    = "file"
	KnowledgeRedis   = "redis"
)

// Config is the full server configuration. It is loaded once at startup
// and passed explicitly into constructors; nothing reads it from ambient
// state.
type Config struct {
	Listen     string     `yaml:"listen"`
	LogLevel   string     `yaml:"log_level"`
	Backend    Backend    `yaml:"backend"`
	Moderation Moderation `yaml:"moderation"`
	Knowledge  Knowledge  `yaml:"knowledge"`
}

// Backend configures the outbound REST API client.
type Backend struct {
	BaseURL string   `yaml:"base_url"`
	Timeout Duration `yaml:"timeout"`
}

// Moderation extends the built-in disallowed-word set.
type Moderation struct {
	ExtraWords []string `yaml:"extra_words"`
}

// Knowledge selects where the static topic table is loaded from.
type Knowledge struct {
	Source string `yaml:"source"` // builtin | file | redis
	File   string `yaml:"file"`
	Redis  Redis  `yaml:"redis"`
}

// Redis configures the redis-backed knowledge source.
type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Key      string `yaml:"key"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Listen:   ":5055",
		LogLevel: "info",
		Backend: Backend{
			BaseURL: "https://envirosense-ai-backend.onrender.com",
			Timeout: Duration(30 * time.Second),
		},
		Knowledge: Knowledge{Source: KnowledgeBuiltin},
	}
}

// Load reads a YAML configuration file, filling unset fields with
// defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Listen == "" {
		cfg.Listen = Default().Listen
	}
	if cfg.Backend.BaseURL == "" {
		cfg.Backend.BaseURL = Default().Backend.BaseURL
	}
	if cfg.Backend.Timeout == 0 {
		cfg.Backend.Timeout = Default().Backend.Timeout
	}
	if cfg.Knowledge.Source == "" {
		cfg.Knowledge.Source = KnowledgeBuiltin
	}
	return cfg, nil
}
