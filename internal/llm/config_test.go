package llm

import "testing"

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CNVCOACH_LLM_PROVIDER",
		"CNVCOACH_ANTHROPIC_API_KEY", "CNVCOACH_OPENAI_API_KEY",
		"CNVCOACH_GEMINI_API_KEY", "CNVCOACH_OPENROUTER_API_KEY",
		"CNVCOACH_LLM_RETRIES",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("CNVCOACH_LLM_PROVIDER", "openai")
	t.Setenv("CNVCOACH_OPENAI_API_KEY", "sk-test")
	t.Setenv("CNVCOACH_OPENAI_MODEL", "gpt-4o")
	t.Setenv("CNVCOACH_LLM_RETRIES", "3")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("openai config = %+v", cfg.OpenAI)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("retry attempts = %d, want 3", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	clearProviderEnv(t)

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("default provider = %q", cfg.Provider)
	}
	if cfg.Retry.MaxAttempts != 1 {
		t.Errorf("default retry attempts = %d, want 1", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnv_BadRetriesIgnored(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("CNVCOACH_LLM_RETRIES", "lots")

	if got := ConfigFromEnv().Retry.MaxAttempts; got != 1 {
		t.Errorf("retry attempts = %d, want 1", got)
	}
}

func TestDiscoverConfig_Priority(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("ANTHROPIC_API_KEY", "a-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" {
		t.Errorf("provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "g-key" {
		t.Errorf("api key = %q", cfg.Gemini.APIKey)
	}
}

func TestDiscoverConfig_NoKeys(t *testing.T) {
	clearProviderEnv(t)

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected discovery to fail with no keys")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"anthropic with key", func(c *Config) { c.Anthropic.APIKey = "k" }, false},
		{"anthropic without key", func(c *Config) {}, true},
		{"openai without key", func(c *Config) { c.Provider = "openai" }, true},
		{"mock needs nothing", func(c *Config) { c.Provider = "mock" }, false},
		{"unknown provider", func(c *Config) { c.Provider = "cohere" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
