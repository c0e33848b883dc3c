package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

/* Config is read once at startup and injected everywhere else */

// DefaultFile is the optional dotenv file read from the working directory
const DefaultFile = ".env"

type Config struct {
	GitHubWebhookSecret string `mapstructure:"GITHUB_WEBHOOK_SECRET"`
	GitHubToken         string `mapstructure:"GITHUB_TOKEN"`

	JiraServer     string `mapstructure:"JIRA_SERVER"`
	JiraUser       string `mapstructure:"JIRA_USER"`
	JiraAPIToken   string `mapstructure:"JIRA_API_TOKEN"`
	JiraProjectKey string `mapstructure:"JIRA_PROJECT_KEY"`
	JiraIssueType  string `mapstructure:"JIRA_ISSUE_TYPE"`
	JiraDueDays    int    `mapstructure:"JIRA_DUE_DAYS"`

	TriggerKeyword string `mapstructure:"TRIGGER_KEYWORD"`

	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     int    `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	DedupTTLHours int    `mapstructure:"DEDUP_TTL_HOURS"`

	LogFile string `mapstructure:"LOG_FILE"`
	Port    string `mapstructure:"PORT"`
	Debug   bool   `mapstructure:"DEBUG"`
}

var required = []string{
	"GITHUB_WEBHOOK_SECRET",
	"GITHUB_TOKEN",
	"JIRA_SERVER",
	"JIRA_USER",
	"JIRA_API_TOKEN",
}

var defaults = map[string]any{
	"JIRA_PROJECT_KEY": "GIH",
	"JIRA_ISSUE_TYPE":  "Issue",
	"JIRA_DUE_DAYS":    7,
	"TRIGGER_KEYWORD":  "/jira",
	"REDIS_HOST":       "redis_service",
	"REDIS_PORT":       6379,
	"REDIS_PASSWORD":   "",
	"REDIS_DB":         0,
	"DEDUP_TTL_HOURS":  24,
	"LOG_FILE":         "logs/github_jira_automation.log",
	"PORT":             "8000",
	"DEBUG":            false,
}

// GetConfig loads the configuration from .env and the environment
func GetConfig() (*Config, error) {
	return Load(DefaultFile)
}

// Load reads the dotenv file at path, when it exists, and lets
// environment variables override it.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	for _, key := range required {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}
	return &config, nil
}

// Validate reports every missing required key in one error
func (c *Config) Validate() error {
	values := map[string]string{
		"GITHUB_WEBHOOK_SECRET": c.GitHubWebhookSecret,
		"GITHUB_TOKEN":          c.GitHubToken,
		"JIRA_SERVER":           c.JiraServer,
		"JIRA_USER":             c.JiraUser,
		"JIRA_API_TOKEN":        c.JiraAPIToken,
	}

	var missing []string
	for _, key := range required {
		if strings.TrimSpace(values[key]) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if c.JiraDueDays <= 0 {
		return fmt.Errorf("JIRA_DUE_DAYS must be positive, got %d", c.JiraDueDays)
	}
	if c.DedupTTLHours <= 0 {
		return fmt.Errorf("DEDUP_TTL_HOURS must be positive, got %d", c.DedupTTLHours)
	}
	return nil
}

// RedisAddr returns host:port for the dedup cache
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + strconv.Itoa(c.RedisPort)
}

// DedupTTL returns how long a delivery id is remembered
func (c *Config) DedupTTL() time.Duration {
	return time.Duration(c.DedupTTLHours) * time.Hour
}

// DueIn returns the offset from creation time to the ticket due date
func (c *Config) DueIn() time.Duration {
	return time.Duration(c.JiraDueDays) * 24 * time.Hour
}

// Masked returns a copy safe to print, with every secret hidden
func (c *Config) Masked() Config {
	masked := *c
	masked.GitHubWebhookSecret = mask(c.GitHubWebhookSecret)
	masked.GitHubToken = mask(c.GitHubToken)
	masked.JiraAPIToken = mask(c.JiraAPIToken)
	masked.RedisPassword = mask(c.RedisPassword)
	return masked
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return "****"
}
