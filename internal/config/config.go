package config

// Repository backend names accepted by RepositoryConfig.Backend.
const (
	BackendAgent        = "agent"
	BackendPrepopulated = "prepopulated"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Repository RepositoryConfig `mapstructure:"repository" validate:"required"`
	LLM        LLMConfig        `mapstructure:"llm"`
	Tracing    TracingConfig    `mapstructure:"tracing"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// RepositoryConfig selects the excuse repository variant and holds the static
// excuse list used by the prepopulated variant.
type RepositoryConfig struct {
	Backend string   `mapstructure:"backend" validate:"required,oneof=agent prepopulated"`
	Excuses []string `mapstructure:"excuses"`
}

// LLMConfig contains all LLM integration related settings.
// GeminiAPIKey is only required by the agent-backed repository; its absence is
// reported when the Gemini backend is constructed.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	ModelName    string `mapstructure:"model_name" validate:"required"`
}

// TracingConfig controls OpenTelemetry trace export.
type TracingConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	OTLPEndpoint string `mapstructure:"otlp_endpoint" validate:"required_if=Enabled true"`
	ServiceName  string `mapstructure:"service_name"`
}

// MetricsConfig controls the Prometheus /metrics endpoint.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
