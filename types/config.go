package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose   bool            `mapstructure:"verbose"`
	JSON      bool            `mapstructure:"json"`
	Config    string          `mapstructure:"config"`
	Data      DataConfig      `mapstructure:"data" validate:"required"`
	LLM       LLMConfig       `mapstructure:"llm" validate:"omitempty"`
	Server    ServerConfig    `mapstructure:"server" validate:"omitempty"`
	Telemetry TelemetryConfig `mapstructure:"telemetry" validate:"omitempty"`
}

// DataConfig holds data storage configuration
type DataConfig struct {
	Dir    string `mapstructure:"dir" validate:"omitempty"`
	File   string `mapstructure:"file" validate:"required"`
	Format string `mapstructure:"format" validate:"required,oneof=json yaml toml"`
}

// LLMConfig holds configuration for the AI breakdown provider
type LLMConfig struct {
	Provider    string  `mapstructure:"provider" validate:"omitempty,oneof=gemini openai ollama claude"`
	ModelName   string  `mapstructure:"modelName" validate:"omitempty,min=1"`
	APIKey      string  `mapstructure:"apiKey" validate:"omitempty,min=1"`
	BaseURL     string  `mapstructure:"baseUrl" validate:"omitempty,url"`
	Temperature float64 `mapstructure:"temperature" validate:"omitempty,min=0,max=2"`
	MaxTokens   int     `mapstructure:"maxTokens" validate:"omitempty,min=1"`
	// RequestTimeoutSeconds bounds a single breakdown request end to end
	RequestTimeoutSeconds int `mapstructure:"requestTimeoutSeconds" validate:"omitempty,min=5,max=600"`
	// Debug enables request/response logging within the provider (tied to --verbose)
	Debug bool `mapstructure:"debug"`
}

// ServerConfig holds settings for the local HTTP API
type ServerConfig struct {
	Addr string `mapstructure:"addr" validate:"omitempty,hostname_port"`
}

// TelemetryConfig controls anonymous usage reporting
type TelemetryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	APIKey  string `mapstructure:"apiKey" validate:"omitempty,min=1"`
	Host    string `mapstructure:"host" validate:"omitempty,url"`
}
