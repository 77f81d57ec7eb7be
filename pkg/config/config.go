package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	// Session cookie signing key. Falls back to an insecure built-in default
	// so the service can boot in development; deployments must set it.
	SecretKey string `mapstructure:"secret_key"`

	// SQLite database file path (":memory:" works for tests).
	DBPath string `mapstructure:"db_path"`

	// Optional API settings
	APIHost string `mapstructure:"api_host"`
	APIPort int    `mapstructure:"api_port"`

	// Origins allowed on the public /api routes
	CORSOrigins []string `mapstructure:"cors_origins"`

	// Session lifetime
	SessionTTLHours int `mapstructure:"session_ttl_hours"`

	ConfigPath string
}

const (
	DefaultDBPath          = "labcms.db"
	DefaultAPIHost         = "0.0.0.0"
	DefaultAPIPort         = 8080
	DefaultSessionTTLHours = 24

	// InsecureSecretKey is the documented fallback signing key. Anyone who
	// knows it can forge session cookies.
	InsecureSecretKey = "labcms-insecure-default-secret"
)

func Load(configPath string) (*Config, error) {
	// Set defaults
	viper.SetDefault("secret_key", InsecureSecretKey)
	viper.SetDefault("db_path", DefaultDBPath)
	viper.SetDefault("api_host", DefaultAPIHost)
	viper.SetDefault("api_port", DefaultAPIPort)
	viper.SetDefault("cors_origins", []string{"*"})
	viper.SetDefault("session_ttl_hours", DefaultSessionTTLHours)

	// Allow environment variable overrides (LABCMS_SECRET_KEY, LABCMS_DB_PATH, ...)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("LABCMS")

	// The config file is optional; env vars and defaults cover everything.
	if configPath != "" {
		viper.SetConfigFile(configPath)
		viper.SetConfigType("yaml")
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.ConfigPath = configPath

	if cfg.SecretKey == InsecureSecretKey {
		log.Println("WARNING: secret_key is unset, using the insecure built-in default. Set LABCMS_SECRET_KEY before exposing this service.")
	}

	return &cfg, nil
}

func (c *Config) IsDevMode() bool {
	return viper.GetBool("dev_mode")
}
