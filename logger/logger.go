package logger

import (
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
)

var defaultLogger *slog.Logger
var validate *validator.Validate

// LogLevel represents log levels
type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

// Config holds logger configuration
type Config struct {
	Level  LogLevel `toml:"level" validate:"required,oneof=debug info warn error"`
	Format string   `toml:"format" validate:"required,oneof=text json"` // "text" or "json"
}

// Validate validates the logger configuration
func (c *Config) Validate() error {
	validate = validator.New(validator.WithRequiredStructEnabled())
	return validate.Struct(c)
}

// Init initializes the global logger with the given configuration
func Init(config Config) {
	if err := config.Validate(); err != nil {
		slog.Error("Invalid logger configuration", "error", err)
	}
	var level slog.Level
	switch config.Level {
	case LevelDebug:
		level = slog.LevelDebug
	case LevelInfo:
		level = slog.LevelInfo
	case LevelWarn:
		level = slog.LevelWarn
	case LevelError:
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: level,
	}

	switch config.Format {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

func ensure() *slog.Logger {
	if defaultLogger == nil {
		defaultLogger = slog.Default()
	}
	return defaultLogger
}

// Debug logs at debug level
func Debug(msg string, args ...any) {
	ensure().Debug(msg, args...)
}

// Info logs at info level
func Info(msg string, args ...any) {
	ensure().Info(msg, args...)
}

// Warn logs at warn level
func Warn(msg string, args ...any) {
	ensure().Warn(msg, args...)
}

// Error logs at error level
func Error(msg string, args ...any) {
	ensure().Error(msg, args...)
}

// With returns a logger with additional context
func With(args ...any) *slog.Logger {
	return ensure().With(args...)
}

// Fatal logs an error and exits the program
func Fatal(msg string, args ...any) {
	ensure().Error(msg, args...)
	os.Exit(1)
}

// Node creates a logger with node class context
func Node(class string) *slog.Logger {
	return ensure().With("node", class)
}

// Gender creates a logger with node and gender context
func Gender(class, gender string) *slog.Logger {
	return ensure().With("node", class, "gender", gender)
}

// Service creates a logger with service context
func Service(service string) *slog.Logger {
	return ensure().With("service", service)
}
