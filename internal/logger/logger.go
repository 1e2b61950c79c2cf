package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/protectedpay/protectedpay-api/internal/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It discards everything until one of the
// Init functions runs.
var Log = zap.NewNop()

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level       string `json:"level"`
	Stage       string `json:"stage"`
	EnableJSON  bool   `json:"enable_json"`
	EnableColor bool   `json:"enable_color"`
}

// InitLogger configures Log for a stage: JSON in prod, colored console
// elsewhere, level from LOG_LEVEL
func InitLogger(stage string) {
	level := os.Getenv(constants.EnvLogLevel)
	if level == "" {
		level = "info"
	}
	InitLoggerWithConfig(LoggerConfig{
		Level:       level,
		Stage:       stage,
		EnableJSON:  stage == constants.ProdEnvironment,
		EnableColor: stage != constants.ProdEnvironment,
	})
}

// InitLoggerWithConfig replaces Log and panics if zap rejects the config
func InitLoggerWithConfig(config LoggerConfig) {
	built, err := New(config)
	if err != nil {
		panic(err)
	}
	Log = built
}

// New builds a logger without touching Log
func New(config LoggerConfig) (*zap.Logger, error) {
	level := ParseLevel(config.Level)
	if config.Stage == constants.TestEnvironment {
		level = zapcore.WarnLevel
	}

	jsonOutput := config.EnableJSON || config.Stage == constants.ProdEnvironment

	var zapConfig zap.Config
	if jsonOutput {
		zapConfig = zap.NewProductionConfig()
		zapConfig.EncoderConfig.TimeKey = "timestamp"
		zapConfig.EncoderConfig.MessageKey = "message"
		zapConfig.InitialFields = map[string]interface{}{
			"service": constants.ServiceName,
			"stage":   config.Stage,
		}
	} else {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		if config.EnableColor {
			zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.DisableStacktrace = jsonOutput && level > zapcore.DebugLevel

	built, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return built, nil
}

// ParseLevel maps a level name to a zap level, defaulting to info
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func Info(msg string, fields ...zapcore.Field) {
	Log.Info(msg, fields...)
}

func Error(msg string, fields ...zapcore.Field) {
	Log.Error(msg, fields...)
}

func Debug(msg string, fields ...zapcore.Field) {
	Log.Debug(msg, fields...)
}

func Warn(msg string, fields ...zapcore.Field) {
	Log.Warn(msg, fields...)
}

// Fatal logs at FatalLevel and exits the process
func Fatal(msg string, fields ...zapcore.Field) {
	Log.Fatal(msg, fields...)
}

// Component returns a child logger tagged with a component name
func Component(name string) *zap.Logger {
	return Log.With(zap.String("component", name))
}

// Sync flushes any buffered log entries
func Sync() error {
	return Log.Sync()
}
