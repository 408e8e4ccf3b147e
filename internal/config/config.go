package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type (
	// Config represents an application configuration.
	Config struct {
		// The data source name (DSN) for connecting to the database.
		// Operations are kept in memory when it is empty.
		DSN string `yaml:"dsn" env:"DATABASE_URI"`
		// Subconfigs.
		HTTPServer HTTPServer `yaml:"http_server"`
		Logger     Logger     `yaml:"logger"`
	}
	// Config for HTTP server.
	HTTPServer struct {
		// The server startup address.
		Address string `yaml:"run_address" env:"RUN_ADDRESS" env-default:"127.0.0.1:8080"`
		// Read Header Timeout in seconds.
		Timeout time.Duration `yaml:"timeout" env-default:"5s"`
		// Idle timeout in seconds.
		IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
		// Shutdown timeout in seconds.
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"30s"`
	}
	// Config for application's logger.
	Logger struct {
		// Path to store log files.
		Path string `yaml:"path" env:"LOG_PATH"`
		// Application logging level.
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
		// Log files details.
		MaxSizeMB  int `yaml:"max_size_mb" env-default:"100"`
		MaxBackups int `yaml:"max_backups" env-default:"3"`
		MaxAgeDays int `yaml:"max_age_days" env-default:"28"`
	}
)

// Load returns a configuration populated from the YAML file at path
// and then from environment variables. A missing file is not an error:
// defaults and environment are used instead.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if err = cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("read config file %s: %w", path, err)
			}
			return &cfg, nil
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("stat config file %s: %w", path, err)
		}
	}

	// ReadConfig above already applies env and defaults.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment variables: %w", err)
	}

	return &cfg, nil
}

// MustLoad returns an application configuration which is populated
// from the given configuration file, flags and environment variables.
// Environment variables take precedence over flags.
func MustLoad() *Config {
	configPath := flag.String("config", "./config/local.yml", "path to the config file")
	address := flag.String("a", "", "server startup address")
	dsn := flag.String("d", "", "server data source name")
	flag.Parse()

	cfg, err := Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if *address != "" && os.Getenv("RUN_ADDRESS") == "" {
		cfg.HTTPServer.Address = *address
	}
	if *dsn != "" && os.Getenv("DATABASE_URI") == "" {
		cfg.DSN = *dsn
	}

	return cfg
}
