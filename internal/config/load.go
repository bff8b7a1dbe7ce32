package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "EXCUSE"

// excuseSeparator splits the EXCUSE_REPOSITORY_EXCUSES environment variable.
// Excuses routinely contain commas, so a pipe is used instead.
const excuseSeparator = "|"

// Options tweaks where Load looks for configuration.
type Options struct {
	// EnvFile is the dotenv file to read before the environment. Missing files are ignored.
	EnvFile string
	// ConfigFile is an optional YAML config file. Missing files are ignored.
	ConfigFile string
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadWithOptions(Options{EnvFile: ".env", ConfigFile: "config.yaml"})
}

// LoadWithOptions is Load with explicit file locations.
func LoadWithOptions(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		// godotenv never overrides variables that are already set.
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read env file %s: %w", opts.EnvFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
			}
			slog.Debug("config file not found, using environment only", "path", opts.ConfigFile)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about; bind the
	// ones without defaults explicitly.
	for _, key := range []string{"llm.gemini_api_key", "repository.excuses"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(excuseListHook())); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if len(cfg.Repository.Excuses) == 0 {
		cfg.Repository.Excuses = append([]string(nil), DefaultExcuses...)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", defaultPort)
	v.SetDefault("server.log_level", defaultLogLevel)
	v.SetDefault("repository.backend", defaultBackend)
	v.SetDefault("llm.model_name", defaultModelName)
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.otlp_endpoint", defaultOTLPAddress)
	v.SetDefault("tracing.service_name", defaultServiceName)
	v.SetDefault("metrics.enabled", true)
}

// excuseListHook splits a string into a pipe-separated list when decoding
// into a []string field. Excuses is the only such field.
func excuseListHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf([]string{}) {
			return data, nil
		}
		raw, _ := data.(string)
		out := []string{}
		for _, part := range strings.Split(raw, excuseSeparator) {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out, nil
	}
}
