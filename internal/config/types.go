package config

import "time"

// Theme is the colour scheme the page renders with when no cookie is set.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Config is the site-wide configuration, loaded once at startup and passed
// explicitly to every component that needs it.
type Config struct {
	Site    SiteConfig    `yaml:"site" koanf:"site"`
	Content ContentConfig `yaml:"content" koanf:"content"`
	UI      UIConfig      `yaml:"ui" koanf:"ui"`
	Server  ServerConfig  `yaml:"server" koanf:"server"`
	Forms   FormsConfig   `yaml:"forms" koanf:"forms"`
	Build   BuildConfig   `yaml:"build" koanf:"build"`
}

// SiteConfig describes the author and the public identity of the site.
type SiteConfig struct {
	Title        string       `yaml:"title" koanf:"title"`
	URL          string       `yaml:"url" koanf:"url"`
	Language     string       `yaml:"language" koanf:"language"`
	Author       AuthorConfig `yaml:"author" koanf:"author"`
	Email        string       `yaml:"email" koanf:"email"`
	Phone        string       `yaml:"phone" koanf:"phone"`
	CVPath       string       `yaml:"cv_path" koanf:"cv_path"`
	Socials      []SocialLink `yaml:"socials" koanf:"socials"`
	DefaultTheme Theme        `yaml:"default_theme" koanf:"default_theme"`
}

// AuthorConfig is the person shown in the hero card and blog bylines.
type AuthorConfig struct {
	Name   string `yaml:"name" koanf:"name"`
	Role   string `yaml:"role" koanf:"role"`
	Avatar string `yaml:"avatar" koanf:"avatar"`
}

// SocialLink is an outbound profile link shown in the header and contact section.
type SocialLink struct {
	Name string `yaml:"name" koanf:"name"`
	URL  string `yaml:"url" koanf:"url"`
}

// ContentConfig controls where extra blog posts are loaded from.
type ContentConfig struct {
	// Dir is an optional directory of markdown posts merged after the
	// built-in ones. Empty disables it.
	Dir            string `yaml:"dir" koanf:"dir"`
	Pattern        string `yaml:"pattern" koanf:"pattern"`
	WordsPerMinute int    `yaml:"words_per_minute" koanf:"words_per_minute"`
}

// UIConfig holds the thresholds and timings of the interactive chrome.
type UIConfig struct {
	ProgressThreshold  float64       `yaml:"progress_threshold" koanf:"progress_threshold"`
	BackToTopThreshold float64       `yaml:"back_to_top_threshold" koanf:"back_to_top_threshold"`
	SectionThreshold   float64       `yaml:"section_threshold" koanf:"section_threshold"`
	FilterScrollOffset float64       `yaml:"filter_scroll_offset" koanf:"filter_scroll_offset"`
	WobbleInterval     time.Duration `yaml:"wobble_interval" koanf:"wobble_interval"`
	GiveawayReset      time.Duration `yaml:"giveaway_reset" koanf:"giveaway_reset"`
	RevealDuration     time.Duration `yaml:"reveal_duration" koanf:"reveal_duration"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port            int    `yaml:"port" koanf:"port"`
	DataDir         string `yaml:"data_dir" koanf:"data_dir"`
	StaticDir       string `yaml:"static_dir" koanf:"static_dir"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Dev             bool   `yaml:"dev" koanf:"dev"`
}

// FormsConfig configures where captured submissions are forwarded.
type FormsConfig struct {
	WebhookURL string          `yaml:"webhook_url" koanf:"webhook_url"`
	SMTP       SMTPConfig      `yaml:"smtp" koanf:"smtp"`
	RateLimit  RateLimitConfig `yaml:"rate_limit" koanf:"rate_limit"`
}

// SMTPConfig enables email forwarding when Host is set.
type SMTPConfig struct {
	Host     string `yaml:"host" koanf:"host"`
	Port     int    `yaml:"port" koanf:"port"`
	Username string `yaml:"username" koanf:"username"`
	Password string `yaml:"password" koanf:"password"`
	From     string `yaml:"from" koanf:"from"`
	To       string `yaml:"to" koanf:"to"`
}

// Enabled reports whether email forwarding is configured.
func (s SMTPConfig) Enabled() bool {
	return s.Host != "" && s.To != ""
}

// RateLimitConfig bounds form submissions per client IP.
type RateLimitConfig struct {
	Requests int           `yaml:"requests" koanf:"requests"`
	Window   time.Duration `yaml:"window" koanf:"window"`
}

// BuildConfig configures static export.
type BuildConfig struct {
	OutputDir string `yaml:"output_dir" koanf:"output_dir"`
}
