package llm

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"openai without key", Config{Provider: "openai"}, true},
		{"openrouter with key", Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "k"}}, false},
		{"mock needs nothing", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "what"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("PULSE_LLM_PROVIDER", "openrouter")
	t.Setenv("PULSE_OPENROUTER_API_KEY", "sk-test")
	t.Setenv("PULSE_OPENROUTER_MODEL", "deepseek/deepseek-chat")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openrouter" {
		t.Errorf("provider = %q, want openrouter", cfg.Provider)
	}
	if cfg.OpenRouter.APIKey != "sk-test" {
		t.Errorf("api key = %q, want sk-test", cfg.OpenRouter.APIKey)
	}
	if cfg.OpenRouter.Model != "deepseek/deepseek-chat" {
		t.Errorf("model = %q", cfg.OpenRouter.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("retry attempts = %d, want default 3", cfg.Retry.MaxAttempts)
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g")
	t.Setenv("OPENAI_API_KEY", "o")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" {
		t.Errorf("provider = %q, want gemini (highest priority)", cfg.Provider)
	}
}

func TestDiscoverConfigNothingSet(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected discovery to fail with no keys set")
	}
}
