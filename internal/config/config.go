package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"
)

var (
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")
	ErrMissingAddress     = errors.New("HOST_PORT address is not set")
)

type Config struct {
	Env          string             `mapstructure:"env"`
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	TutorService TutorServiceConfig `mapstructure:"tutor_service"`
	Health       HealthConfig       `mapstructure:"health"`
	StaticDir    string             `mapstructure:"static_dir"`
}

type ServerConfig struct {
	Address        string   `mapstructure:"address"`
	ReadTimeout    int      `mapstructure:"read_timeout_seconds"`
	WriteTimeout   int      `mapstructure:"write_timeout_seconds"`
	IdleTimeout    int      `mapstructure:"idle_timeout_seconds"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	URL             string `mapstructure:"url"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime_seconds"`
	ConnMaxIdleTime int    `mapstructure:"conn_max_idle_time_seconds"`
}

// TutorServiceConfig is only read by tutor-web.
type TutorServiceConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type HealthConfig struct {
	Message string `mapstructure:"message"`
}

// Load reads config.<service>.<env>.yaml (optional) and applies environment
// overrides. DATABASE_URL and HOST_PORT must resolve to non-empty values.
func Load(service string) (*Config, error) {
	env := os.Getenv("ENV")
	if env == "" {
		env = "local"
	}

	v := viper.New()
	v.SetConfigName(fmt.Sprintf("config.%s.%s", service, env))
	v.SetConfigType("yaml")
	v.AddConfigPath("/configs")   // Kubernetes mount
	v.AddConfigPath("./configs")  // repo root
	v.AddConfigPath("../configs") // cmd/<service>

	if err := v.ReadInConfig(); err != nil {
		slog.Info("no config file found, using environment", "service", service, "error", err)
	}

	v.SetDefault("env", env)
	v.SetDefault("server.read_timeout_seconds", 15)
	v.SetDefault("server.write_timeout_seconds", 15)
	v.SetDefault("server.idle_timeout_seconds", 60)
	v.SetDefault("tutor_service.base_url", "http://localhost:3030")
	v.SetDefault("tutor_service.timeout_seconds", 10)
	v.SetDefault("health.message", "I'm good. You've already asked me")
	v.SetDefault("static_dir", "./static")

	v.AutomaticEnv()

	v.BindEnv("database.url", "DATABASE_URL")
	v.BindEnv("server.address", "HOST_PORT")
	v.BindEnv("tutor_service.base_url", "TUTOR_SERVICE_URL")
	v.BindEnv("static_dir", "STATIC_DIR")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return ErrMissingDatabaseURL
	}
	if c.Server.Address == "" {
		return ErrMissingAddress
	}
	return nil
}
