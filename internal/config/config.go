// Package config loads the application configuration via viper, from
// environment variables (prefix INVOICE_) with an optional .env file.
// Flags on the CLI override whatever is loaded here.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config groups the module's configuration.
type Config struct {
	HTTP     HTTPConfig
	Defaults DefaultsConfig
	Counter  CounterConfig
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Host         string
	Port         int
	Debug        bool
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Addr returns the listen address.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DefaultsConfig seeds the settings of freshly created invoices.
type DefaultsConfig struct {
	Locale      string
	Currency    string
	VATRate     float64
	PaymentDays int
}

// CounterConfig locates the invoice number counter file.
type CounterConfig struct {
	Path string
}

// Load reads the configuration. Environment variables win over the
// optional .env file; unset values fall back to the defaults below.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // the file is optional

	v.SetEnvPrefix("INVOICE")
	v.AutomaticEnv()

	v.SetDefault("HTTP_HOST", "")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("HTTP_DEBUG", false)
	v.SetDefault("HTTP_READ_TIMEOUT", "30s")
	v.SetDefault("HTTP_WRITE_TIMEOUT", "60s")

	v.SetDefault("DEFAULT_LOCALE", "de-DE")
	v.SetDefault("DEFAULT_CURRENCY", "EUR")
	v.SetDefault("DEFAULT_VAT_RATE", 19.0)
	v.SetDefault("DEFAULT_PAYMENT_DAYS", 14)

	v.SetDefault("COUNTER_PATH", defaultCounterPath())

	cfg := &Config{
		HTTP: HTTPConfig{
			Host:         v.GetString("HTTP_HOST"),
			Port:         v.GetInt("HTTP_PORT"),
			Debug:        v.GetBool("HTTP_DEBUG"),
			ReadTimeout:  v.GetDuration("HTTP_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("HTTP_WRITE_TIMEOUT"),
		},
		Defaults: DefaultsConfig{
			Locale:      v.GetString("DEFAULT_LOCALE"),
			Currency:    v.GetString("DEFAULT_CURRENCY"),
			VATRate:     v.GetFloat64("DEFAULT_VAT_RATE"),
			PaymentDays: v.GetInt("DEFAULT_PAYMENT_DAYS"),
		},
		Counter: CounterConfig{
			Path: v.GetString("COUNTER_PATH"),
		},
	}

	if cfg.Defaults.VATRate < 0 {
		return nil, fmt.Errorf("config: default VAT rate must not be negative, got %v", cfg.Defaults.VATRate)
	}
	if cfg.Defaults.PaymentDays < 0 {
		return nil, fmt.Errorf("config: default payment days must not be negative, got %d", cfg.Defaults.PaymentDays)
	}
	return cfg, nil
}

// defaultCounterPath stores the counter under the user config directory,
// falling back to the working directory.
func defaultCounterPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "invoice-counts.json"
	}
	return filepath.Join(dir, "invoice-creator", "counts.json")
}
