package config

import "fmt"

type Config struct {
	Session       SessionConfig       `mapstructure:"session"`
	Bus           BusConfig           `mapstructure:"bus"`
	Region        RegionConfig        `mapstructure:"region"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	Billing       BillingConfig       `mapstructure:"billing"`
	Observability ObservabilityConfig `mapstructure:"observability"`
	Logging       LoggingConfig       `mapstructure:"logging"`
}

type SessionConfig struct {
	// Role identifies which terminal this process renders:
	// desktop (clinic console), doctor (practitioner H5), patient (patient H5).
	Role           string `mapstructure:"role"`
	Name           string `mapstructure:"name"`
	Port           int    `mapstructure:"port"`
	Environment    string `mapstructure:"environment"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type BusConfig struct {
	// Backend selects the broadcast transport: inproc, nats, or redis.
	Backend string      `mapstructure:"backend"`
	Channel string      `mapstructure:"channel"`
	Nats    NatsConfig  `mapstructure:"nats"`
	Redis   RedisConfig `mapstructure:"redis"`
}

type NatsConfig struct {
	URL string `mapstructure:"url" yaml:"url"`
}

type RedisConfig struct {
	Addr                string `mapstructure:"addr"`
	DB                  int    `mapstructure:"db"`
	Username            string `mapstructure:"username"`
	Password            string `mapstructure:"password"`
	PoolSize            int    `mapstructure:"pool_size"`
	MinIdleConns        int    `mapstructure:"min_idle_conns"`
	DialTimeoutSeconds  int    `mapstructure:"dial_timeout_seconds"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds"`
}

type RegionConfig struct {
	// Code is "cn" or "us"; it drives currency/date formatting and the
	// default region for phone number validation.
	Code        string `mapstructure:"code"`
	PhoneRegion string `mapstructure:"phone_region"`
}

type NotificationsConfig struct {
	OverlaySeconds int `mapstructure:"overlay_seconds"`
	ToastSeconds   int `mapstructure:"toast_seconds"`
}

type BillingConfig struct {
	// Rules override the built-in keyword pricing table. Order matters:
	// the first keyword that matches a record type wins.
	Rules        []BillingRule `mapstructure:"rules"`
	DefaultPrice int64         `mapstructure:"default_price"`
}

type BillingRule struct {
	Keyword string `mapstructure:"keyword"`
	Price   int64  `mapstructure:"price"`
}

type ObservabilityConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	ServiceName    string        `mapstructure:"service_name"`
	ServiceVersion string        `mapstructure:"service_version"`
	Tracing        TracingConfig `mapstructure:"tracing"`
	Metrics        MetricsConfig `mapstructure:"metrics"`
}

type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
	SamplingRate float64 `mapstructure:"sampling_rate"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string       `mapstructure:"level"`  // debug, info, warn, error
	Format string       `mapstructure:"format"` // text, json
	Output OutputConfig `mapstructure:"output"`
}

type OutputConfig struct {
	Stdout bool          `mapstructure:"stdout"`
	File   FileLogConfig `mapstructure:"file"`
	Loki   LokiConfig    `mapstructure:"loki"`
}

type FileLogConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`        // e.g. "logs/app.log"
	MaxSizeMB  int    `mapstructure:"max_size_mb"` // rotate after N MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type LokiConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"` // e.g. "http://localhost:3100"
	Username string `mapstructure:"username"` // for Grafana Cloud basic auth
	Password string `mapstructure:"password"`
}

func (c *Config) Validate() error {
	switch c.Session.Role {
	case "", "desktop", "doctor", "patient":
	default:
		return fmt.Errorf("unknown session role %q", c.Session.Role)
	}

	switch c.Bus.Backend {
	case "", "inproc", "nats", "redis":
	default:
		return fmt.Errorf("unknown bus backend %q", c.Bus.Backend)
	}

	switch c.Region.Code {
	case "", "cn", "us":
	default:
		return fmt.Errorf("unknown region code %q", c.Region.Code)
	}

	for i, r := range c.Billing.Rules {
		if r.Keyword == "" {
			return fmt.Errorf("billing rule %d has an empty keyword", i)
		}
		if r.Price < 0 {
			return fmt.Errorf("billing rule %q has a negative price", r.Keyword)
		}
	}

	return nil
}

// ApplyDefaults fills the zero values that have a meaningful built-in
// fallback. It runs after viper unmarshalling so a config file only needs
// to state what it overrides.
func (c *Config) ApplyDefaults() {
	if c.Session.Role == "" {
		c.Session.Role = "desktop"
	}
	if c.Session.Name == "" {
		c.Session.Name = c.Session.Role
	}
	if c.Session.Port == 0 {
		c.Session.Port = 8080
	}
	if c.Session.Environment == "" {
		c.Session.Environment = "development"
	}
	if c.Bus.Backend == "" {
		c.Bus.Backend = "inproc"
	}
	if c.Bus.Channel == "" {
		c.Bus.Channel = "region_state_sync"
	}
	if c.Region.Code == "" {
		c.Region.Code = "cn"
	}
	if c.Region.PhoneRegion == "" {
		c.Region.PhoneRegion = "CN"
	}
	if c.Notifications.OverlaySeconds == 0 {
		c.Notifications.OverlaySeconds = 8
	}
	if c.Notifications.ToastSeconds == 0 {
		c.Notifications.ToastSeconds = 3
	}
	if c.Observability.ServiceName == "" {
		c.Observability.ServiceName = "mediman"
	}
}
