package config

import "time"

const (
	// DefaultHost binds the listener on all interfaces.
	DefaultHost = ""
	// DefaultPort is the port the results server listens on.
	DefaultPort = 4141
	// DefaultResultsDir is where the test runner writes result files.
	DefaultResultsDir = "test-data"
	// DefaultLogLevel is the logrus level used when none is configured.
	DefaultLogLevel = "info"
	// DefaultLogFormat selects the logrus text formatter.
	DefaultLogFormat = "text"
	// DefaultShutdownTimeout bounds graceful shutdown of the HTTP server.
	DefaultShutdownTimeout = 5 * time.Second
	// DefaultEnvFile is loaded when no --env flag is given.
	DefaultEnvFile = ".env"
)

// Environment variables. EnvConfigFile is read by the CLI, the rest by Load.
const (
	EnvConfigFile      = "TEST_RUNS_CONFIG"
	EnvHost            = "TEST_RUNS_HOST"
	EnvPort            = "TEST_RUNS_PORT"
	EnvResultsDir      = "TEST_RUNS_RESULTS_DIR"
	EnvShutdownTimeout = "TEST_RUNS_SHUTDOWN_TIMEOUT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
)
