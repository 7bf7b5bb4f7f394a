package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/ethpandaops/test-runs/internal/config"
	"github.com/sirupsen/logrus"
)

// InitLogger creates the shared logger with its level taken from LOG_LEVEL.
func InitLogger() {
	Logger = logrus.New()

	// Set log level from environment variable
	logLevel := os.Getenv(config.EnvLogLevel)
	if logLevel == "" {
		logLevel = config.DefaultLogLevel
	}

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		// Can't use Logger here since it might not be set up yet
		fmt.Printf("Invalid LOG_LEVEL '%s', defaulting to 'info'\n", logLevel)
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)

	if strings.EqualFold(os.Getenv(config.EnvLogFormat), "json") {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	}
}

// configureLogger applies validated logging settings to log.
func configureLogger(log *logrus.Logger, cfg config.LoggingConfig) {
	if level, err := logrus.ParseLevel(cfg.Level); err == nil {
		log.SetLevel(level)
	}

	if strings.EqualFold(cfg.Format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
		return
	}

	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
