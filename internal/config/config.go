// Package config reads the machine's settings from flags and environment variables.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds the runtime settings of the beverage machine service.
type Config struct {
	RunAddress       string `env:"RUN_ADDRESS"`
	ServiceName      string `env:"SERVICE_NAME"`
	Env              string `env:"ENV"`
	LogLevel         string `env:"LOG_LEVEL"`
	LogFile          string `env:"LOG_FILE"`
	MetricsNamespace string `env:"METRICS_NAMESPACE"`
	InitialStock     int    `env:"INITIAL_STOCK"`
	RestockQuantity  int    `env:"RESTOCK_QUANTITY"`
	ReportWebhookURL string `env:"REPORT_WEBHOOK_URL"`
}

// Parse reads the command line flags and the environment. Environment variables win over flags.
func Parse() (*Config, error) {
	return ParseArgs(flag.CommandLine, os.Args[1:])
}

// ParseArgs is Parse over an explicit flag set and argument list.
func ParseArgs(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	fs.StringVar(&cfg.RunAddress, "a", ":8080", "address and port for HTTP server")
	fs.StringVar(&cfg.ServiceName, "s", "beverage-machine", "service name attached to logs")
	fs.StringVar(&cfg.Env, "e", "dev", "deployment environment")
	fs.StringVar(&cfg.LogLevel, "l", "info", "log level")
	fs.StringVar(&cfg.LogFile, "log-file", "", "file receiving a copy of the logs")
	fs.StringVar(&cfg.MetricsNamespace, "m", "vending", "prometheus metrics namespace")
	fs.IntVar(&cfg.InitialStock, "stock", 10, "initial units per beverage")
	fs.IntVar(&cfg.RestockQuantity, "restock", 0, "units added automatically after a shortage, 0 disables")
	fs.StringVar(&cfg.ReportWebhookURL, "r", "", "URL receiving printed purchases reports")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	// only variables that are set overwrite the flag values
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.RunAddress == "" {
		c.RunAddress = ":8080"
	}
	if c.InitialStock < 0 {
		return fmt.Errorf("%w: initial stock %d", ErrInvalidConfig, c.InitialStock)
	}
	if c.RestockQuantity < 0 {
		return fmt.Errorf("%w: restock quantity %d", ErrInvalidConfig, c.RestockQuantity)
	}
	return nil
}
