package model

import "time"

// Config holds the full aequery configuration tree. Populated from
// defaults, then ~/.aequery/config.yaml, then AEQUERY_* env vars, then
// CLI flags.
type Config struct {
	LLM       LLMConfig       `yaml:"llm" mapstructure:"llm"`
	Data      DataConfig      `yaml:"data" mapstructure:"data"`
	Cache     CacheConfig     `yaml:"cache" mapstructure:"cache"`
	RateLimit RateLimitConfig `yaml:"rate_limit" mapstructure:"rate_limit"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
}

// LLMConfig configures the language model used for question interpretation.
type LLMConfig struct {
	// Provider name: "openai", "anthropic", "ollama"
	Provider string `yaml:"provider" mapstructure:"provider"`

	// Model name (provider-specific)
	Model string `yaml:"model" mapstructure:"model"`

	// APIKey for OpenAI/Anthropic (normally from environment)
	APIKey string `yaml:"-" mapstructure:"-"`

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string `yaml:"base_url,omitempty" mapstructure:"base_url"`

	// Timeout for one interpretation round-trip, seconds
	Timeout int `yaml:"timeout" mapstructure:"timeout"`

	// MaxTokens for the model response
	MaxTokens int `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// DataConfig describes the dataset to load.
type DataConfig struct {
	// Path to the adverse-events CSV file
	Path string `yaml:"path" mapstructure:"path"`

	// SubjectColumn identifies rows by trial participant
	SubjectColumn string `yaml:"subject_column" mapstructure:"subject_column"`
}

// CacheConfig configures the interpretation cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// RateLimitConfig paces calls to the LLM API.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// OutputConfig controls logging and console output.
type OutputConfig struct {
	Verbose   bool   `yaml:"verbose" mapstructure:"verbose"`
	LogLevel  string `yaml:"log_level" mapstructure:"log_level"`
	LogFormat string `yaml:"log_format" mapstructure:"log_format"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:  "openai",
			Model:     "gpt-4o-mini",
			Timeout:   30,
			MaxTokens: 500,
		},
		Data: DataConfig{
			Path:          "ae_data.csv",
			SubjectColumn: "USUBJID",
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 2,
			Burst:             2,
		},
		Output: OutputConfig{
			LogLevel:  "info",
			LogFormat: "console",
		},
	}
}
