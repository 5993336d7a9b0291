// Package config loads the bot configuration from either process environment
// variables or a local YAML file. The two sources are mutually exclusive:
// setting EMAIL_SENDER selects the environment source.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fl196/daily-news-bot/internal/digest"
)

// envMarker selects the environment source when set.
const envMarker = "EMAIL_SENDER"

type Config struct {
	Email     EmailConfig     `yaml:"email"`
	News      NewsConfig      `yaml:"news"`
	Scheduler SchedulerConfig `yaml:"scheduler"`

	// Output selects the delivery target: "email" (default) or "stdout"
	// for local dry runs.
	Output string `yaml:"output"`
}

type EmailConfig struct {
	SMTPServer     string `yaml:"smtp_server"`
	SMTPPort       int    `yaml:"smtp_port"`
	SenderEmail    string `yaml:"sender_email"`
	SenderPassword string `yaml:"sender_password"`
	RecipientEmail string `yaml:"recipient_email"`
}

type NewsConfig struct {
	APIKey     string   `yaml:"api_key"`
	Categories []string `yaml:"categories"`
	// Country is carried for config-file compatibility; the everything
	// endpoint takes no country parameter.
	Country             string `yaml:"country"`
	ArticlesPerCategory int    `yaml:"articles_per_category"`
}

type SchedulerConfig struct {
	Time string `yaml:"time"`
}

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR_NAME} patterns with environment variable values.
func expandEnvVars(s string) string {
	return envVarRegex.ReplaceAllStringFunc(s, func(match string) string {
		varName := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		if val, ok := os.LookupEnv(varName); ok {
			return val
		}
		return match
	})
}

func setDefaults(cfg *Config) {
	if cfg.Email.SMTPServer == "" {
		cfg.Email.SMTPServer = "smtp.gmail.com"
	}
	if cfg.Email.SMTPPort == 0 {
		cfg.Email.SMTPPort = 587
	}
	if len(cfg.News.Categories) == 0 {
		for _, c := range digest.Order {
			cfg.News.Categories = append(cfg.News.Categories, string(c))
		}
	}
	if cfg.News.Country == "" {
		cfg.News.Country = "in"
	}
	if cfg.News.ArticlesPerCategory == 0 {
		cfg.News.ArticlesPerCategory = 4
	}
	if cfg.Scheduler.Time == "" {
		cfg.Scheduler.Time = "07:00"
	}
	if cfg.Output == "" {
		cfg.Output = "email"
	}
}

func validate(cfg *Config) error {
	if cfg.News.APIKey == "" {
		return fmt.Errorf("config: news.api_key is required (set NEWS_API_KEY env var)")
	}
	switch cfg.Output {
	case "email":
		if cfg.Email.SenderEmail == "" {
			return fmt.Errorf("config: email.sender_email is required")
		}
		if cfg.Email.SenderPassword == "" {
			return fmt.Errorf("config: email.sender_password is required")
		}
		if cfg.Email.RecipientEmail == "" {
			return fmt.Errorf("config: email.recipient_email is required")
		}
	case "stdout":
	default:
		return fmt.Errorf("config: unsupported output %q (supported: email, stdout)", cfg.Output)
	}
	for _, c := range cfg.News.Categories {
		if !digest.Valid(digest.Category(c)) {
			return fmt.Errorf("config: unknown news category %q", c)
		}
	}
	return nil
}

// Load produces the configuration. When the EMAIL_SENDER environment
// variable is set the whole configuration comes from the environment;
// otherwise it is read from the YAML file at path. Sources are never merged.
func Load(path string) (*Config, error) {
	if os.Getenv(envMarker) != "" {
		cfg := fromEnv()
		setDefaults(cfg)
		if err := validate(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func fromEnv() *Config {
	return &Config{
		Email: EmailConfig{
			SenderEmail:    os.Getenv("EMAIL_SENDER"),
			SenderPassword: os.Getenv("EMAIL_PASSWORD"),
			RecipientEmail: os.Getenv("EMAIL_RECIPIENT"),
		},
		News: NewsConfig{
			APIKey: os.Getenv("NEWS_API_KEY"),
		},
		Scheduler: SchedulerConfig{
			Time: os.Getenv("SCHEDULER_TIME"),
		},
	}
}

// DigestCategories converts the configured category names to their typed
// form, preserving the canonical declaration order.
func (c *Config) DigestCategories() []digest.Category {
	enabled := make(map[digest.Category]bool, len(c.News.Categories))
	for _, name := range c.News.Categories {
		enabled[digest.Category(name)] = true
	}
	var out []digest.Category
	for _, cat := range digest.Order {
		if enabled[cat] {
			out = append(out, cat)
		}
	}
	return out
}
