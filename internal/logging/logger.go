package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Config is used to set up logging.
type Config struct {
	// LogLevel is the minimum level to be logged.
	LogLevel string

	// LogJSON controls outputing logs in a JSON format.
	LogJSON bool

	// Name is the name the returned logger will use to prefix log lines.
	Name string
}

// EnvLogLevel names the environment variable that overrides DefaultLogLevel.
const EnvLogLevel = "DECCONST_LOG_LEVEL"

// DefaultLogLevel is the level used when neither a flag nor EnvLogLevel
// sets one.
const DefaultLogLevel = "WARN"

// LogLevelDefault returns the value of EnvLogLevel if it is set and
// DefaultLogLevel otherwise.
func LogLevelDefault() string {
	if level := os.Getenv(EnvLogLevel); level != "" {
		return level
	}
	return DefaultLogLevel
}

// Setup builds the logger used by the decconst commands.
// Log lines are written to out, which is usually the error stream of the UI
// so that they never mix with command output.
func Setup(config Config, out io.Writer) (hclog.InterceptLogger, error) {
	if !ValidateLogLevel(config.LogLevel) {
		return nil, fmt.Errorf("Invalid log level: %s. Valid log levels are: %v",
			config.LogLevel, allowedLogLevels)
	}

	logger := hclog.NewInterceptLogger(&hclog.LoggerOptions{
		Level:      LevelFromString(config.LogLevel),
		Name:       config.Name,
		Output:     out,
		JSONFormat: config.LogJSON,
	})
	return logger, nil
}
