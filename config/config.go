// Package config loads client configuration from a YAML file with
// environment overrides, via viper. All knobs have working defaults;
// an empty config connects to production endpoints unauthenticated.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration for the client library.
type Config struct {
	WS   *WSConfig   `mapstructure:"ws"`
	Rest *RestConfig `mapstructure:"rest"`
	Auth *AuthConfig `mapstructure:"auth"`
}

// WSConfig controls the persistent WebSocket API connection.
type WSConfig struct {
	URL                  string        `mapstructure:"url"`
	ConnectionTimeout    time.Duration `mapstructure:"connection_timeout"`
	InitialRetryDelay    time.Duration `mapstructure:"initial_retry_delay"`
	MaxRetryDelay        time.Duration `mapstructure:"max_retry_delay"`
	MaxReconnectAttempts int           `mapstructure:"max_reconnect_attempts"`
	CallTimeout          time.Duration `mapstructure:"call_timeout"`
	CloseAckTimeout      time.Duration `mapstructure:"close_ack_timeout"`
	ShutdownTimeout      time.Duration `mapstructure:"shutdown_timeout"`
}

// RestConfig controls the stateless REST transport.
type RestConfig struct {
	BaseURL             string        `mapstructure:"base_url"`
	RequestTimeout      time.Duration `mapstructure:"request_timeout"`
	ConnectTimeout      time.Duration `mapstructure:"connect_timeout"`
	MaxIdleConnsPerHost int           `mapstructure:"max_idle_conns_per_host"`
	IdleConnTimeout     time.Duration `mapstructure:"idle_conn_timeout"`
	UserAgent           string        `mapstructure:"user_agent"`
}

// AuthConfig carries API credentials. RecvWindow is the request timing
// window in milliseconds folded into every signed payload.
type AuthConfig struct {
	APIKey     string `mapstructure:"api_key"`
	APISecret  string `mapstructure:"api_secret"`
	RecvWindow int64  `mapstructure:"recv_window"`
}

const (
	defaultWSURL     = "wss://ws-api.binance.com:443/ws-api/v3"
	defaultRestURL   = "https://api.binance.com"
	defaultUserAgent = "tradewire-binance-spot/1.0"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("ws.url", defaultWSURL)
	v.SetDefault("ws.connection_timeout", 10*time.Second)
	v.SetDefault("ws.initial_retry_delay", time.Second)
	v.SetDefault("ws.max_retry_delay", 60*time.Second)
	v.SetDefault("ws.max_reconnect_attempts", 5)
	v.SetDefault("ws.call_timeout", 30*time.Second)
	v.SetDefault("ws.close_ack_timeout", 5*time.Second)
	v.SetDefault("ws.shutdown_timeout", 10*time.Second)

	v.SetDefault("rest.base_url", defaultRestURL)
	v.SetDefault("rest.request_timeout", 30*time.Second)
	v.SetDefault("rest.connect_timeout", 10*time.Second)
	v.SetDefault("rest.max_idle_conns_per_host", 10)
	v.SetDefault("rest.idle_conn_timeout", 90*time.Second)
	v.SetDefault("rest.user_agent", defaultUserAgent)

	v.SetDefault("auth.api_key", "")
	v.SetDefault("auth.api_secret", "")
	v.SetDefault("auth.recv_window", int64(5000))
}

// Default returns the configuration with every knob at its default.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	// Unmarshal of pure defaults cannot fail.
	_ = v.Unmarshal(cfg)
	return cfg
}

// Load reads the YAML file at path, applies BINANCE_* environment
// overrides (e.g. BINANCE_AUTH_API_KEY), and fills in defaults for
// anything unset. An empty path skips the file and uses defaults plus
// environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("BINANCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
