// Package logging wires the engine's structured logger.
package logging

import (
	"os"

	"go.uber.org/zap"
)

var globalLogger *zap.Logger

// Init builds the global logger. level is one of debug/info/warn/error; empty defaults to info.
func Init(level string) error {
	env := os.Getenv("WINGSPAN_ENV")
	var config zap.Config
	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}

	switch level {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	built, err := config.Build()
	if err != nil {
		return err
	}
	globalLogger = built
	return nil
}

// Get returns the global logger, falling back to a development logger if Init was never called.
func Get() *zap.Logger {
	if globalLogger == nil {
		globalLogger, _ = zap.NewDevelopment()
	}
	return globalLogger
}

// Sync flushes any buffered log entries.
func Sync() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}

// WithMatch returns a logger scoped to a single match.
func WithMatch(matchID string) *zap.Logger {
	return Get().With(zap.String("match_id", matchID))
}

// WithPlayer returns a logger scoped to a match and player.
func WithPlayer(matchID, playerID string) *zap.Logger {
	return Get().With(zap.String("match_id", matchID), zap.String("player_id", playerID))
}
