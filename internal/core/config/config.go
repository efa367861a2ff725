package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Store holds the document-store connection settings.
	Store StoreConfig `mapstructure:",squash"`

	// Redis holds the snapshot cache settings.
	Redis RedisConfig `mapstructure:",squash"`

	// Dashboard holds the snapshot engine tuning knobs.
	Dashboard DashboardConfig `mapstructure:",squash"`
}

// StoreConfig holds the hosted document-store connection details.
// When URL is empty the service falls back to the in-memory store,
// which is only useful for local development.
type StoreConfig struct {
	// URL is the base URL of the document-store REST API.
	URL string `mapstructure:"STORE_URL"`
	// APIKey authenticates requests against the store.
	APIKey string `mapstructure:"STORE_API_KEY"`
	// TimeoutSeconds bounds each store request.
	TimeoutSeconds int `mapstructure:"STORE_TIMEOUT_SECONDS" default:"10"`
}

// RedisConfig holds the optional Redis connection used to cache snapshots.
type RedisConfig struct {
	// URL is the Redis connection string (redis://[:password@]host[:port][/db]).
	// Empty disables snapshot caching.
	URL string `mapstructure:"REDIS_URL"`
}

// DashboardConfig tunes the snapshot aggregation engine.
type DashboardConfig struct {
	// WindowDays is the shipment window size in days.
	WindowDays int `mapstructure:"DASHBOARD_WINDOW_DAYS" default:"30"`
	// MaxRows bounds the shipment window read.
	MaxRows int `mapstructure:"DASHBOARD_MAX_ROWS" default:"400"`
	// RecentLimit bounds the recent-shipments list in the snapshot.
	RecentLimit int `mapstructure:"DASHBOARD_RECENT_LIMIT" default:"10"`
	// UsersScanLimit bounds the in-memory user count fallback.
	UsersScanLimit int `mapstructure:"DASHBOARD_USERS_SCAN_LIMIT" default:"500"`
	// FinanceMaxRows bounds the month-to-date financial read.
	FinanceMaxRows int `mapstructure:"DASHBOARD_FINANCE_MAX_ROWS" default:"500"`
	// CacheTTLSeconds is how long an assembled snapshot is served from cache.
	CacheTTLSeconds int `mapstructure:"DASHBOARD_CACHE_TTL_SECONDS" default:"60"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
