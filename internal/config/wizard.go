package config

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to psysite! Let's describe your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Author.
	name, err := (&promptui.Prompt{
		Label:    "Author name",
		Default:  cfg.Site.Author.Name,
		Validate: required("author name"),
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("author name: %w", err)
	}
	cfg.Site.Author.Name = name

	role, err := (&promptui.Prompt{
		Label:   "Role shown under the name",
		Default: cfg.Site.Author.Role,
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("author role: %w", err)
	}
	cfg.Site.Author.Role = role
	cfg.Site.Title = fmt.Sprintf("%s | %s", name, role)

	// 2. Contact email.
	email, err := (&promptui.Prompt{
		Label:   "Contact email",
		Default: cfg.Site.Email,
		Validate: func(s string) error {
			_, err := mail.ParseAddress(s)
			return err
		},
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("contact email: %w", err)
	}
	cfg.Site.Email = email

	// 3. Default theme.
	_, theme, err := (&promptui.Select{
		Label: "Default theme",
		Items: []string{string(ThemeDark), string(ThemeLight)},
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}
	cfg.Site.DefaultTheme = Theme(theme)

	// 4. Social links.
	socialStr, err := (&promptui.Prompt{
		Label:   "Social links (comma-separated Name=URL, leave blank for defaults)",
		Default: "",
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("social links: %w", err)
	}
	if socialStr != "" {
		socials, err := parseSocials(socialStr)
		if err != nil {
			return nil, err
		}
		cfg.Site.Socials = socials
	}

	// 5. Port.
	portStr, err := (&promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			_, err := strconv.Atoi(s)
			return err
		},
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 6. Optional webhook for form submissions.
	webhook, err := (&promptui.Prompt{
		Label:   "Webhook URL for form submissions (optional)",
		Default: "",
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("webhook url: %w", err)
	}
	cfg.Forms.WebhookURL = webhook

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func required(field string) promptui.ValidateFunc {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// parseSocials parses "LinkedIn=https://..., Twitter=https://..." pairs.
func parseSocials(s string) ([]SocialLink, error) {
	var links []SocialLink
	for _, part := range splitAndTrim(s) {
		name, url, ok := strings.Cut(part, "=")
		if !ok || strings.TrimSpace(name) == "" || strings.TrimSpace(url) == "" {
			return nil, fmt.Errorf("invalid social link %q: want Name=URL", part)
		}
		links = append(links, SocialLink{Name: strings.TrimSpace(name), URL: strings.TrimSpace(url)})
	}
	return links, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			result = append(result, token)
		}
	}
	return result
}
