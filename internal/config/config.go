// Package config handles configuration loading and management
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidPort is returned when the port is outside 1..65535.
	ErrInvalidPort = errors.New("port must be between 1 and 65535")
	// ErrEmptyResultsDir is returned when no results directory is configured.
	ErrEmptyResultsDir = errors.New("results directory must not be empty")
	// ErrInvalidLogFormat is returned for formats other than text and json.
	ErrInvalidLogFormat = errors.New("log format must be text or json")
	// ErrNegativeTimeout is returned for a negative shutdown timeout.
	ErrNegativeTimeout = errors.New("shutdown timeout must not be negative")
)

// Config holds the application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Results ResultsConfig `yaml:"results"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// ResultsConfig points at the directory result files are read from.
type ResultsConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig configures the logrus logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Results: ResultsConfig{
			Dir: DefaultResultsDir,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment (including a .env file if present), in increasing precedence.
func Load(path string) (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if the file doesn't exist
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing yaml %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Server.Host = getEnv(EnvHost, c.Server.Host)
	c.Results.Dir = getEnv(EnvResultsDir, c.Results.Dir)
	// An unparsable LOG_LEVEL falls back to the configured level, matching InitLogger.
	if level := os.Getenv(EnvLogLevel); level != "" {
		if _, err := logrus.ParseLevel(level); err == nil {
			c.Logging.Level = level
		}
	}
	c.Logging.Format = getEnv(EnvLogFormat, c.Logging.Format)

	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvPort, err)
		}
		c.Server.Port = port
	}

	if v := os.Getenv(EnvShutdownTimeout); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvShutdownTimeout, err)
		}
		c.Server.ShutdownTimeout = timeout
	}

	return nil
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Server.Port)
	}

	if strings.TrimSpace(c.Results.Dir) == "" {
		return ErrEmptyResultsDir
	}

	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format)
	}

	if c.Server.ShutdownTimeout < 0 {
		return ErrNegativeTimeout
	}

	return nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) String() string {
	hostDisplay := c.Server.Host
	if hostDisplay == "" {
		hostDisplay = "(all interfaces)"
	}

	return fmt.Sprintf(`Current Configuration:
======================
Host:              %s
Port:              %d
Results Dir:       %s
Shutdown Timeout:  %s
Log Level:         %s
Log Format:        %s`,
		hostDisplay,
		c.Server.Port,
		c.Results.Dir,
		c.Server.ShutdownTimeout,
		c.Logging.Level,
		c.Logging.Format,
	)
}
