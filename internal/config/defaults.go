package config

import "time"

// DefaultConfig returns a Config with sensible defaults for every field.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title:    "Елис Димитрова | Психолог & Автор",
			URL:      "http://localhost:8080",
			Language: "bg",
			Author: AuthorConfig{
				Name:   "Елис Димитрова",
				Role:   "Психолог & Автор",
				Avatar: "/images/avatar.jpg",
			},
			Email:  "elis@example.com",
			Phone:  "+359 888 123 456",
			CVPath: "/resume.pdf",
			Socials: []SocialLink{
				{Name: "LinkedIn", URL: "https://www.linkedin.com"},
				{Name: "Twitter", URL: "https://www.twitter.com"},
				{Name: "Facebook", URL: "https://www.facebook.com"},
			},
			DefaultTheme: ThemeDark,
		},
		Content: ContentConfig{
			Pattern:        "**/*.md",
			WordsPerMinute: 200,
		},
		UI: UIConfig{
			ProgressThreshold:  100,
			BackToTopThreshold: 300,
			SectionThreshold:   0.3,
			FilterScrollOffset: 100,
			WobbleInterval:     3 * time.Second,
			GiveawayReset:      5 * time.Second,
			RevealDuration:     500 * time.Millisecond,
		},
		Server: ServerConfig{
			Port:      8080,
			DataDir:   ".psysite",
			StaticDir: "public",
		},
		Forms: FormsConfig{
			SMTP: SMTPConfig{Port: 587},
			RateLimit: RateLimitConfig{
				Requests: 5,
				Window:   time.Minute,
			},
		},
		Build: BuildConfig{
			OutputDir: "dist",
		},
	}
}
