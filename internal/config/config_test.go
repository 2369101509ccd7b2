package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

// isolate clears every bound variable for the duration of the test and
// points Load at an empty temp directory.
func isolate(t *testing.T) Options {
	t.Helper()
	for _, env := range envBindings {
		t.Setenv(env, "")
		_ = os.Unsetenv(env)
	}
	dir := t.TempDir()
	return Options{EnvFile: filepath.Join(dir, ".env"), ConfigDir: dir}
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoad_DefaultsWithGeminiKey(t *testing.T) {
	opts := isolate(t)
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg, err := Load(opts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.LLM.Provider != ProviderGemini || cfg.LLM.Model != "gemini-1.5-flash" || cfg.LLM.APIKey != "g-key" {
		t.Fatalf("unexpected llm config: %+v", cfg.LLM)
	}
	if cfg.LLM.Timeout != 0 {
		t.Fatalf("expected no llm timeout by default, got %s", cfg.LLM.Timeout)
	}
	if cfg.Server.WriteTimeout != 120*time.Second {
		t.Fatalf("write timeout: got %s", cfg.Server.WriteTimeout)
	}
	if len(cfg.CORS.AllowedOrigins) != 3 {
		t.Fatalf("cors origins: got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	opts := isolate(t)

	_, err := Load(opts)
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestLoad_UnsupportedProvider(t *testing.T) {
	opts := isolate(t)
	t.Setenv("LLM_PROVIDER", "watson")
	t.Setenv("LLM_API_KEY", "x")

	_, err := Load(opts)
	if !errors.Is(err, ErrUnsupportedProvider) {
		t.Fatalf("expected ErrUnsupportedProvider, got %v", err)
	}
}

func TestLoad_OpenAIFromEnv(t *testing.T) {
	opts := isolate(t)
	t.Setenv("LLM_PROVIDER", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "o-key")
	t.Setenv("GEMINI_API_KEY", "ignored")
	t.Setenv("LLM_TIMEOUT", "45s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load(opts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LLM.Provider != ProviderOpenAI || cfg.LLM.APIKey != "o-key" || cfg.LLM.Model != "gpt-4o-mini" {
		t.Fatalf("unexpected llm config: %+v", cfg.LLM)
	}
	if cfg.LLM.Timeout != 45*time.Second {
		t.Fatalf("timeout: got %s", cfg.LLM.Timeout)
	}
	if want := []string{"https://a.example", "https://b.example"}; !reflect.DeepEqual(cfg.CORS.AllowedOrigins, want) {
		t.Fatalf("origins: got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_ConfigFileAndEnvOverride(t *testing.T) {
	opts := isolate(t)
	writeFile(t, filepath.Join(opts.ConfigDir, "config.yml"), `
port: "9090"
log:
  level: debug
llm:
  provider: gemini
  model: gemini-1.5-pro
  api_key: file-key
`)
	t.Setenv("PORT", "7070")

	cfg, err := Load(opts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "7070" {
		t.Fatalf("env should override file port, got %q", cfg.Port)
	}
	if cfg.LogLevel != "debug" || cfg.LLM.Model != "gemini-1.5-pro" || cfg.LLM.APIKey != "file-key" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	opts := isolate(t)
	writeFile(t, opts.EnvFile, "GEMINI_API_KEY=from-dotenv\nLOG_LEVEL=WARN\n")

	cfg, err := Load(opts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LLM.APIKey != "from-dotenv" || cfg.LogLevel != "warn" {
		t.Fatalf("dotenv values not applied: %+v", cfg)
	}
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	opts := isolate(t)
	t.Setenv("GEMINI_API_KEY", "k")
	writeFile(t, filepath.Join(opts.ConfigDir, "config.yml"), "port: [unclosed\n")

	if _, err := Load(opts); err == nil {
		t.Fatalf("expected error for malformed config file")
	}
}

func TestLoad_ShippedConfigFollowsProvider(t *testing.T) {
	cases := []struct {
		provider string
		keyEnv   string
		want     string
	}{
		{provider: ProviderGemini, keyEnv: "GEMINI_API_KEY", want: "gemini-1.5-flash"},
		{provider: ProviderOpenAI, keyEnv: "OPENAI_API_KEY", want: "gpt-4o-mini"},
	}
	for _, tc := range cases {
		t.Run(tc.provider, func(t *testing.T) {
			opts := isolate(t)
			opts.ConfigDir = filepath.Join("..", "..", "configs")
			t.Setenv("LLM_PROVIDER", tc.provider)
			t.Setenv(tc.keyEnv, "k")

			cfg, err := Load(opts)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.LLM.Provider != tc.provider || cfg.LLM.Model != tc.want {
				t.Fatalf("%s provider got model %q, want %q", tc.provider, cfg.LLM.Model, tc.want)
			}
			if cfg.Server.WriteTimeout != 120*time.Second {
				t.Fatalf("write timeout: got %s", cfg.Server.WriteTimeout)
			}
		})
	}
}
