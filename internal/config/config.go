package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the default config file location.
const ConfigPath = "config.yaml"

// FileConfig represents configuration loaded from YAML.
type FileConfig struct {
	LogLevel         string  `yaml:"logLevel"`
	DataDir          string  `yaml:"dataDir"`
	RedisAddr        string  `yaml:"redisAddr"`
	RedisPassword    string  `yaml:"redisPassword"`
	SessionSecret    string  `yaml:"sessionSecret"`
	TaxRate          float64 `yaml:"taxRate"`
	ShippingFee      float64 `yaml:"shippingFee"`
	FreeShippingOver float64 `yaml:"freeShippingOver"`
	ProcessingDelay  string  `yaml:"processingDelay"`
}

// Load reads config from path (defaults to config.yaml). A missing file
// is not an error; the demo defaults apply.
func Load(path string) (FileConfig, error) {
	cfg := defaults()
	if path == "" {
		path = ConfigPath
	}
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}
	// Override with environment variables
	if v := os.Getenv("STOREFRONT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("STOREFRONT_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("STOREFRONT_REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("STOREFRONT_REDIS_PASSWORD"); v != "" {
		cfg.RedisPassword = v
	}
	if v := os.Getenv("STOREFRONT_SESSION_SECRET"); v != "" {
		cfg.SessionSecret = v
	}
	if v := os.Getenv("STOREFRONT_TAX_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.TaxRate = f
		}
	}
	if v := os.Getenv("STOREFRONT_PROCESSING_DELAY"); v != "" {
		cfg.ProcessingDelay = v
	}
	if err := validateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func defaults() FileConfig {
	return FileConfig{
		LogLevel:         "info",
		DataDir:          "data",
		SessionSecret:    "techstore-demo-secret",
		TaxRate:          0.08,
		ShippingFee:      9.99,
		FreeShippingOver: 100,
		ProcessingDelay:  "2s",
	}
}

func validateConfig(cfg FileConfig) error {
	if cfg.SessionSecret == "" {
		return errors.New("config: sessionSecret is required")
	}
	if cfg.DataDir == "" && cfg.RedisAddr == "" {
		return errors.New("config: dataDir or redisAddr is required")
	}
	if cfg.TaxRate < 0 {
		return errors.New("config: taxRate must be >= 0")
	}
	if cfg.ShippingFee < 0 {
		return errors.New("config: shippingFee must be >= 0")
	}
	return nil
}

// ParseProcessingDelay parses the optional checkout delay duration string.
func ParseProcessingDelay(delayStr string) (time.Duration, error) {
	if delayStr == "" {
		return 0, nil
	}
	dur, err := time.ParseDuration(delayStr)
	if err != nil {
		return 0, fmt.Errorf("invalid processingDelay duration: %w", err)
	}
	return dur, nil
}
