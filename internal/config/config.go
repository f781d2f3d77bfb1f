// Package config loads linkrank settings from defaults, an optional config
// file, a .env file and LINKRANK_* environment variables, in increasing
// precedence. Command-line flags bound to the same viper keys win over all.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/katalvlaran/linkrank/rank"
)

// DefaultMaxSamples is the default per-request sample cap of the HTTP API.
const DefaultMaxSamples = 1_000_000

// EnvPrefix is the prefix of every environment override, e.g. LINKRANK_DAMPING.
const EnvPrefix = "LINKRANK"

// ErrInvalidConfig indicates a setting outside its domain.
var ErrInvalidConfig = errors.New("config: invalid setting")

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ServerConfig holds the HTTP API settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
	MaxSamples      int           `mapstructure:"max_samples"` // cap on samples per request
}

// Config holds all runtime configuration.
type Config struct {
	Damping       float64      `mapstructure:"damping"`
	Samples       int          `mapstructure:"samples"`
	Tolerance     float64      `mapstructure:"tolerance"`
	MaxIterations int          `mapstructure:"max_iterations"`
	Seed          int64        `mapstructure:"seed"` // 0 = time-seeded
	Log           LogConfig    `mapstructure:"log"`
	Server        ServerConfig `mapstructure:"server"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("damping", 0.85)
	v.SetDefault("samples", 10000)
	v.SetDefault("tolerance", 0.001)
	v.SetDefault("max_iterations", 0)
	v.SetDefault("seed", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.max_body_bytes", int64(8<<20))
	v.SetDefault("server.max_samples", DefaultMaxSamples)
}

// New returns a viper instance wired for linkrank: defaults, the LINKRANK_
// env prefix with "." mapped to "_", and the config file if one exists.
// cfgFile, when set, must exist; otherwise .linkrank.yaml is looked up in the
// working directory and the home directory. A .env file in the working
// directory is loaded into the process environment first.
func New(cfgFile string) (*viper.Viper, error) {
	// A missing .env is normal.
	_ = godotenv.Load()

	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", cfgFile, err)
		}
		return v, nil
	}

	v.SetConfigName(".linkrank")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	return v, nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every setting against its domain.
func (c Config) Validate() error {
	if err := rank.ValidateDamping(c.Damping); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Samples < 1 {
		return fmt.Errorf("%w: samples must be ≥ 1, got %d", ErrInvalidConfig, c.Samples)
	}
	if !(c.Tolerance > 0) {
		return fmt.Errorf("%w: tolerance must be > 0, got %v", ErrInvalidConfig, c.Tolerance)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("%w: max_iterations must be ≥ 0, got %d", ErrInvalidConfig, c.MaxIterations)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: server.max_body_bytes must be > 0", ErrInvalidConfig)
	}
	if c.Server.MaxSamples < 1 {
		return fmt.Errorf("%w: server.max_samples must be ≥ 1, got %d", ErrInvalidConfig, c.Server.MaxSamples)
	}

	return nil
}
