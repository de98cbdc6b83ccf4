package config

import (
	"fmt"
	"net/mail"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "PSYSITE_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PSYSITE_*). A double underscore separates
// nested keys: PSYSITE_SERVER__PORT -> server.port.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validThemes = map[Theme]bool{
	ThemeDark:  true,
	ThemeLight: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Site.Title == "" {
		return fmt.Errorf("site.title is required")
	}
	if c.Site.Author.Name == "" {
		return fmt.Errorf("site.author.name is required")
	}
	if c.Site.Email != "" {
		if _, err := mail.ParseAddress(c.Site.Email); err != nil {
			return fmt.Errorf("invalid site.email %q: %w", c.Site.Email, err)
		}
	}
	if !validThemes[c.Site.DefaultTheme] {
		return fmt.Errorf("invalid site.default_theme %q: must be one of dark, light", c.Site.DefaultTheme)
	}

	if c.Content.WordsPerMinute <= 0 {
		return fmt.Errorf("content.words_per_minute must be positive")
	}

	if c.UI.ProgressThreshold < 0 || c.UI.BackToTopThreshold < 0 {
		return fmt.Errorf("ui scroll thresholds must be non-negative")
	}
	if c.UI.SectionThreshold <= 0 || c.UI.SectionThreshold > 1 {
		return fmt.Errorf("ui.section_threshold must be in (0, 1], got %v", c.UI.SectionThreshold)
	}
	if c.UI.WobbleInterval <= 0 || c.UI.GiveawayReset <= 0 || c.UI.RevealDuration <= 0 {
		return fmt.Errorf("ui durations must be positive")
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	if c.Server.DataDir == "" {
		return fmt.Errorf("server.data_dir is required")
	}

	if c.Forms.RateLimit.Requests < 0 {
		return fmt.Errorf("forms.rate_limit.requests must be non-negative")
	}
	if c.Forms.RateLimit.Requests > 0 && c.Forms.RateLimit.Window <= 0 {
		return fmt.Errorf("forms.rate_limit.window must be positive when requests is set")
	}
	if c.Forms.SMTP.Host != "" && c.Forms.SMTP.To == "" {
		return fmt.Errorf("forms.smtp.to is required when forms.smtp.host is set")
	}

	if c.Build.OutputDir == "" {
		return fmt.Errorf("build.output_dir is required")
	}

	return nil
}
