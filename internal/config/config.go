package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	env11 "github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

// Providers that can generate a commit message
const (
	ProviderCLI       = "cli"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config represents the main configuration structure
type Config struct {
	Verbose        bool          `yaml:"verbose" mapstructure:"verbose"`
	Timeout        time.Duration `yaml:"timeout" mapstructure:"timeout"`
	MaxOutputBytes int           `yaml:"max_output_bytes" mapstructure:"max_output_bytes"`
	Git            GitConfig     `yaml:"git" mapstructure:"git"`
	AI             AIConfig      `yaml:"ai" mapstructure:"ai"`
	UI             UIConfig      `yaml:"ui" mapstructure:"ui"`
}

// GitConfig holds Git-related configuration
type GitConfig struct {
	Binary string `yaml:"binary" mapstructure:"binary"`
}

// AIConfig selects and tunes the message generator
type AIConfig struct {
	Provider    string   `yaml:"provider" mapstructure:"provider"`
	Command     string   `yaml:"command" mapstructure:"command"`
	Args        []string `yaml:"args" mapstructure:"args"`
	Model       string   `yaml:"model" mapstructure:"model"`
	MaxTokens   int      `yaml:"max_tokens" mapstructure:"max_tokens"`
	Temperature float64  `yaml:"temperature" mapstructure:"temperature"`
}

// UIConfig holds user interface preferences
type UIConfig struct {
	Color   bool `yaml:"color" mapstructure:"color"`
	Spinner bool `yaml:"spinner" mapstructure:"spinner"`
}

// Credentials are API keys for the hosted providers, read from the
// environment only
type Credentials struct {
	OpenAIKey        string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string `env:"OPENAI_BASE_URL"`
	AnthropicKey     string `env:"ANTHROPIC_API_KEY"`
	AnthropicBaseURL string `env:"ANTHROPIC_BASE_URL"`
}

var defaultConfig = Config{
	Verbose:        false,
	Timeout:        0,
	MaxOutputBytes: 10 * 1024 * 1024,
	Git: GitConfig{
		Binary: "git",
	},
	AI: AIConfig{
		Provider:    ProviderCLI,
		Command:     "claude",
		Args:        []string{"-p"},
		MaxTokens:   1024,
		Temperature: 0.2,
	},
	UI: UIConfig{
		Color:   true,
		Spinner: true,
	},
}

// Default returns a copy of the built-in configuration
func Default() *Config {
	cfg := defaultConfig
	cfg.AI.Args = append([]string(nil), defaultConfig.AI.Args...)
	return &cfg
}

// SetDefaults sets default values in viper
func SetDefaults(v *viper.Viper) {
	v.SetDefault("verbose", defaultConfig.Verbose)
	v.SetDefault("timeout", defaultConfig.Timeout)
	v.SetDefault("max_output_bytes", defaultConfig.MaxOutputBytes)

	// Git defaults
	v.SetDefault("git.binary", defaultConfig.Git.Binary)

	// AI defaults
	v.SetDefault("ai.provider", defaultConfig.AI.Provider)
	v.SetDefault("ai.command", defaultConfig.AI.Command)
	v.SetDefault("ai.args", defaultConfig.AI.Args)
	v.SetDefault("ai.model", defaultConfig.AI.Model)
	v.SetDefault("ai.max_tokens", defaultConfig.AI.MaxTokens)
	v.SetDefault("ai.temperature", defaultConfig.AI.Temperature)

	// UI defaults
	v.SetDefault("ui.color", defaultConfig.UI.Color)
	v.SetDefault("ui.spinner", defaultConfig.UI.Spinner)
}

// NewViper prepares a viper instance reading cfgFile, or .ai-commit.yaml
// from the home or current directory, plus AI_COMMIT_* variables.
// A missing default config file is not an error.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".ai-commit")
	}

	v.SetEnvPrefix("AI_COMMIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return v, nil
}

// Load loads the configuration from viper
func Load(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &config, nil
}

// LoadCredentials reads provider API keys from the environment
func LoadCredentials() (*Credentials, error) {
	creds := new(Credentials)
	if err := env11.Parse(creds); err != nil {
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}
	return creds, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.AI.Provider {
	case ProviderCLI:
		if strings.TrimSpace(c.AI.Command) == "" {
			return fmt.Errorf("ai.command is required for the %s provider", ProviderCLI)
		}
	case ProviderOpenAI, ProviderAnthropic:
		if c.AI.MaxTokens <= 0 {
			return fmt.Errorf("ai.max_tokens must be positive")
		}
		if c.AI.Temperature < 0 || c.AI.Temperature > 2 {
			return fmt.Errorf("ai.temperature must be between 0 and 2")
		}
	default:
		return fmt.Errorf("unknown AI provider: %s", c.AI.Provider)
	}

	if strings.TrimSpace(c.Git.Binary) == "" {
		return fmt.Errorf("git.binary is required")
	}

	if c.MaxOutputBytes <= 0 {
		return fmt.Errorf("max_output_bytes must be positive")
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}

	return nil
}
