// Package config builds the immutable runtime configuration from an optional
// .env file, an optional configs/config.yml and the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

var (
	ErrMissingAPIKey       = errors.New("text-completion API key is not configured")
	ErrUnsupportedProvider = errors.New("unsupported llm provider")
)

type Config struct {
	Port     string
	LogLevel string
	LLM      LLM
	Server   Server
	CORS     CORS
}

// LLM configures the text-completion client.
type LLM struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string        // openai only; empty uses the public endpoint
	Timeout  time.Duration // 0 leaves the call unbounded
}

type Server struct {
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
}

type CORS struct {
	AllowedOrigins []string
}

// Options locate the optional files. Zero values use ".env" and "configs".
type Options struct {
	EnvFile   string
	ConfigDir string
}

var defaultModels = map[string]string{
	ProviderGemini: "gemini-1.5-flash",
	ProviderOpenAI: "gpt-4o-mini",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("llm.provider", ProviderGemini)
	v.SetDefault("llm.timeout", "0s")
	v.SetDefault("server.read_header_timeout", "10s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("cors.allowed_origins", []string{
		"http://localhost:5173",
		"http://localhost:5174",
		"http://localhost:3000",
	})
}

var envBindings = map[string]string{
	"port":                 "PORT",
	"log.level":            "LOG_LEVEL",
	"llm.provider":         "LLM_PROVIDER",
	"llm.model":            "LLM_MODEL",
	"llm.api_key":          "LLM_API_KEY",
	"llm.base_url":         "LLM_BASE_URL",
	"llm.timeout":          "LLM_TIMEOUT",
	"llm.gemini_api_key":   "GEMINI_API_KEY",
	"llm.openai_api_key":   "OPENAI_API_KEY",
	"server.write_timeout": "SERVER_WRITE_TIMEOUT",
	"cors.allowed_origins": "CORS_ALLOWED_ORIGINS",
}

// Load reads configuration once at startup. Missing files are not an error;
// a missing API key for the selected provider is.
func Load(opts Options) (*Config, error) {
	if opts.EnvFile == "" {
		opts.EnvFile = ".env"
	}
	if opts.ConfigDir == "" {
		opts.ConfigDir = "configs"
	}

	if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", opts.EnvFile, err)
	}

	v := viper.New()
	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	v.AddConfigPath(opts.ConfigDir)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port:     v.GetString("port"),
		LogLevel: strings.ToLower(v.GetString("log.level")),
		LLM: LLM{
			Provider: strings.ToLower(strings.TrimSpace(v.GetString("llm.provider"))),
			Model:    v.GetString("llm.model"),
			APIKey:   v.GetString("llm.api_key"),
			BaseURL:  v.GetString("llm.base_url"),
			Timeout:  v.GetDuration("llm.timeout"),
		},
		Server: Server{
			ReadHeaderTimeout: v.GetDuration("server.read_header_timeout"),
			WriteTimeout:      v.GetDuration("server.write_timeout"),
			IdleTimeout:       v.GetDuration("server.idle_timeout"),
		},
		CORS: CORS{AllowedOrigins: splitOrigins(v.GetStringSlice("cors.allowed_origins"))},
	}

	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = v.GetString("llm." + cfg.LLM.Provider + "_api_key")
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = defaultModels[cfg.LLM.Provider]
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, ok := defaultModels[c.LLM.Provider]; !ok {
		return fmt.Errorf("%w: %q (supported: %s, %s)", ErrUnsupportedProvider, c.LLM.Provider, ProviderGemini, ProviderOpenAI)
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("%w for provider %q", ErrMissingAPIKey, c.LLM.Provider)
	}
	if c.LLM.Timeout < 0 {
		return fmt.Errorf("llm.timeout must not be negative, got %s", c.LLM.Timeout)
	}
	return nil
}

// splitOrigins accepts both YAML lists and a comma separated env value.
func splitOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, o := range strings.Split(item, ",") {
			if o = strings.TrimSpace(o); o != "" {
				out = append(out, o)
			}
		}
	}
	return out
}
