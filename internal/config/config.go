package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Config holds the configuration for the portfolio server.
type Config struct {
	// Listen is the address the server will listen on.
	Listen string `yaml:"listen" mapstructure:"listen"`
	// LogLevel controls log verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	// Storage selects and configures the storage backend.
	Storage *StorageConfig `yaml:"storage" mapstructure:"storage"`
	// Session holds the session cookie settings.
	Session *SessionConfig `yaml:"session" mapstructure:"session"`
	// Admin holds the bootstrap admin account settings.
	Admin *AdminConfig `yaml:"admin" mapstructure:"admin"`
}

// StorageConfig selects the storage backend.
type StorageConfig struct {
	// Backend is either "memory" or "surrealdb".
	Backend string `yaml:"backend" mapstructure:"backend"`
	// SurrealDB holds the connection settings for the surrealdb backend.
	SurrealDB *SurrealDBConfig `yaml:"surrealdb" mapstructure:"surrealdb"`
}

// SurrealDBConfig holds the connection settings for the surrealdb backend.
type SurrealDBConfig struct {
	// URL is the websocket endpoint of the database, e.g. "ws://localhost:8000/rpc".
	URL string `yaml:"url" mapstructure:"url"`
	// Namespace is the SurrealDB namespace to use.
	Namespace string `yaml:"namespace" mapstructure:"namespace"`
	// Database is the SurrealDB database to use.
	Database string `yaml:"database" mapstructure:"database"`
	// Username is the database username.
	Username string `yaml:"username" mapstructure:"username"`
	// Password is the database password.
	Password string `yaml:"password" mapstructure:"password"`
}

// SessionConfig holds the session cookie settings.
type SessionConfig struct {
	// Key is the secret used to authenticate session cookies.
	Key string `yaml:"key" mapstructure:"key"`
	// MaxAge is the cookie lifetime in seconds.
	MaxAge int `yaml:"max_age" mapstructure:"max_age"`
	// Secure marks the cookie as HTTPS-only. Disable for local development.
	Secure bool `yaml:"secure" mapstructure:"secure"`
}

// AdminConfig holds the bootstrap admin account settings.
type AdminConfig struct {
	// Username of the account provisioned at startup when absent.
	Username string `yaml:"username" mapstructure:"username"`
	// Password for the bootstrap account, hashed before it is stored.
	Password string `yaml:"password" mapstructure:"password"`
}

// Load reads the configuration from the specified path and returns a Config.
// If path is empty, common locations are searched. Environment variables with
// the PORTFOLIO_ prefix override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.portfolio")
		v.AddConfigPath("/etc/portfolio")
	}

	if err := v.ReadInConfig(); err != nil {
		// Defaults plus environment variables are enough to run.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.Debug("using config file", "file", v.ConfigFileUsed())
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "0.0.0.0:5000")
	v.SetDefault("log_level", "info")
	v.SetDefault("storage.backend", "memory")
	v.SetDefault("storage.surrealdb.url", "ws://localhost:8000/rpc")
	v.SetDefault("storage.surrealdb.namespace", "portfolio")
	v.SetDefault("storage.surrealdb.database", "portfolio")
	v.SetDefault("storage.surrealdb.username", "root")
	v.SetDefault("session.max_age", 86400) // 24 hours
	v.SetDefault("session.secure", true)
	v.SetDefault("admin.username", "admin")
}

func validateConfig(c *Config) error {
	if c.Session == nil || c.Session.Key == "" {
		return fmt.Errorf("session.key is required")
	}
	if c.Storage != nil && c.Storage.Backend == "surrealdb" {
		if c.Storage.SurrealDB == nil || c.Storage.SurrealDB.URL == "" {
			return fmt.Errorf("storage.surrealdb.url is required for the surrealdb backend")
		}
	}
	return nil
}
