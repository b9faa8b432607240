// Package constants provides centralized definitions of constants used throughout the application
package constants

// Environment variable names
const (
	// EnvServerPort is the port the jobs API listens on
	EnvServerPort = "JOBTRACKER_PORT"

	// EnvServerAddress is the address of the jobs API used by the CLI
	EnvServerAddress = "JOBTRACKER_SERVER_ADDRESS"

	// EnvLogLevel selects the logrus level (trace, debug, info, warn, error)
	EnvLogLevel = "LOG_LEVEL"
)

// Database environment variable names
const (
	EnvDBHost       = "DB_HOST"
	EnvDBPort       = "DB_PORT"
	EnvDBUser       = "DB_USER"
	EnvDBPassword   = "DB_PASSWORD"
	EnvDBName       = "DB_NAME"
	EnvDBSSLEnabled = "DB_SSL_ENABLED"
)
