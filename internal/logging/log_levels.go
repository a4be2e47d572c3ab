package logging

import (
	"strings"

	"github.com/hashicorp/go-hclog"
)

var (
	allowedLogLevels = []string{"TRACE", "DEBUG", "INFO", "WARN", "ERR", "ERROR"}
)

// AllowedLogLevels returns the level names accepted by ValidateLogLevel.
func AllowedLogLevels() []string {
	c := make([]string, len(allowedLogLevels))
	copy(c, allowedLogLevels)
	return c
}

// ValidateLogLevel verifies that a new log level is valid
func ValidateLogLevel(minLevel string) bool {
	newLevel := strings.ToUpper(minLevel)
	for _, level := range allowedLogLevels {
		if level == newLevel {
			return true
		}
	}
	return false
}

// LevelFromString accepts ERR as an alias of ERROR.
func LevelFromString(level string) hclog.Level {
	if strings.ToUpper(level) == "ERR" {
		level = "ERROR"
	}
	return hclog.LevelFromString(level)
}
