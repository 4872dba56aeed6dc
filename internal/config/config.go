package config

import "time"

type HTTPConfig struct {
	Addr              string        `mapstructure:"addr"`
	PortRetries       int           `mapstructure:"port_retries"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
	MaxRequestBytes   int64         `mapstructure:"max_request_bytes"`

	// CORSOrigins lists allowed browser origins; "*" allows any origin without credentials.
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type MeshConfig struct {
	// Enabled runs the mesh service next to the generation API.
	Enabled     bool   `mapstructure:"enabled"`
	Addr        string `mapstructure:"addr"`
	PreviewSize int    `mapstructure:"preview_size"`
}

type DBConfig struct {
	// Driver is one of "postgres", "sqlite" or "none".
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type RedisConfig struct {
	// Addr enables the Redis realtime bus when set.
	Addr    string `mapstructure:"addr"`
	Channel string `mapstructure:"channel"`
}

type OTelConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	ServiceName string  `mapstructure:"service_name"`
	Endpoint    string  `mapstructure:"endpoint"`
	Insecure    bool    `mapstructure:"insecure"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
}

type MetricsConfig struct {
	// Enabled serves Prometheus text metrics at GET /metrics on the API listener.
	Enabled bool `mapstructure:"enabled"`
}

type Config struct {
	Env     string        `mapstructure:"env"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Mesh    MeshConfig    `mapstructure:"mesh"`
	DB      DBConfig      `mapstructure:"db"`
	Redis   RedisConfig   `mapstructure:"redis"`
	OTel    OTelConfig    `mapstructure:"otel"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}
