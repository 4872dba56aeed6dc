package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix     = "EDUVIZ"
	configPathEnv = "EDUVIZ_CONFIG_PATH"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverNone     = "none"

	maxPortRetries = 20
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")

	v.SetDefault("http.addr", ":5000")
	v.SetDefault("http.port_retries", 5)
	v.SetDefault("http.read_header_timeout", 5*time.Second)
	v.SetDefault("http.idle_timeout", 2*time.Minute)
	v.SetDefault("http.shutdown_timeout", 15*time.Second)
	v.SetDefault("http.max_request_bytes", 1<<20)
	v.SetDefault("http.cors_origins", []string{"*"})

	v.SetDefault("mesh.enabled", true)
	v.SetDefault("mesh.addr", ":5002")
	v.SetDefault("mesh.preview_size", 256)

	v.SetDefault("db.driver", DriverSQLite)
	v.SetDefault("db.dsn", "")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.channel", "eduviz:animations")

	v.SetDefault("otel.enabled", false)
	v.SetDefault("otel.service_name", "eduviz")
	v.SetDefault("otel.endpoint", "")
	v.SetDefault("otel.insecure", false)
	v.SetDefault("otel.sample_ratio", 0.1)

	v.SetDefault("metrics.enabled", false)
}

// Load resolves configuration from defaults, an optional config file, EDUVIZ_* env vars
// and whatever flags the caller bound on v. A nil v uses a fresh viper instance.
func Load(v *viper.Viper) (*Config, error) {
	return LoadFrom(v, os.Getenv(configPathEnv))
}

// LoadFrom is Load with an explicit config file; an empty path searches ./config.
func LoadFrom(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	setDefaults(v)

	if p := strings.TrimSpace(path); p != "" {
		v.SetConfigFile(p)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", p, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Legacy knobs rank below the config file, EDUVIZ_* env and flags.
	if mode := strings.TrimSpace(os.Getenv("LOG_MODE")); mode != "" {
		v.SetDefault("env", mode)
	}
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		v.SetDefault("http.addr", ":"+port)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func normalize(cfg *Config) error {
	cfg.Env = strings.TrimSpace(cfg.Env)
	if cfg.Env == "" {
		cfg.Env = "development"
	}

	cfg.HTTP.Addr = strings.TrimSpace(cfg.HTTP.Addr)
	if cfg.HTTP.Addr == "" {
		return errors.New("http.addr is required")
	}
	if cfg.HTTP.PortRetries < 0 || cfg.HTTP.PortRetries > maxPortRetries {
		return fmt.Errorf("http.port_retries must be between 0 and %d", maxPortRetries)
	}
	if cfg.HTTP.MaxRequestBytes <= 0 {
		cfg.HTTP.MaxRequestBytes = 1 << 20
	}
	if cfg.HTTP.ShutdownTimeout <= 0 {
		cfg.HTTP.ShutdownTimeout = 15 * time.Second
	}
	origins := cfg.HTTP.CORSOrigins[:0]
	for _, o := range cfg.HTTP.CORSOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cfg.HTTP.CORSOrigins = origins

	cfg.Mesh.Addr = strings.TrimSpace(cfg.Mesh.Addr)
	if cfg.Mesh.Enabled && cfg.Mesh.Addr == "" {
		return errors.New("mesh.addr is required when mesh.enabled")
	}
	if cfg.Mesh.PreviewSize <= 0 {
		cfg.Mesh.PreviewSize = 256
	}

	cfg.DB.Driver = strings.ToLower(strings.TrimSpace(cfg.DB.Driver))
	cfg.DB.DSN = strings.TrimSpace(cfg.DB.DSN)
	switch cfg.DB.Driver {
	case DriverPostgres:
		if cfg.DB.DSN == "" {
			return errors.New("db.dsn is required for the postgres driver")
		}
	case DriverSQLite:
		if cfg.DB.DSN == "" {
			cfg.DB.DSN = "eduviz.db"
		}
	case "", DriverNone:
		cfg.DB.Driver = DriverNone
	default:
		return fmt.Errorf("unsupported db.driver %q", cfg.DB.Driver)
	}

	cfg.Redis.Addr = strings.TrimSpace(cfg.Redis.Addr)
	cfg.Redis.Channel = strings.TrimSpace(cfg.Redis.Channel)
	if cfg.Redis.Channel == "" {
		cfg.Redis.Channel = "eduviz:animations"
	}

	cfg.OTel.ServiceName = strings.TrimSpace(cfg.OTel.ServiceName)
	if cfg.OTel.ServiceName == "" {
		cfg.OTel.ServiceName = "eduviz"
	}
	if cfg.OTel.SampleRatio < 0 {
		cfg.OTel.SampleRatio = 0
	}
	if cfg.OTel.SampleRatio > 1 {
		cfg.OTel.SampleRatio = 1
	}
	return nil
}
