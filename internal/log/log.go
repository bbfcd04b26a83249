// Package log builds the zap loggers used by the command line tool.
package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvProduction selects JSON output at info level.
const EnvProduction = "prod"

// New creates a logger for env. Any env other than EnvProduction gets a
// colored development logger at debug level.
func New(env string) (*zap.Logger, error) {
	var config zap.Config

	if env == EnvProduction {
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	config.OutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger, nil
}

// WithLevel creates a logger for env with an explicit minimum level name
// such as "debug" or "warn". An empty level keeps the env default.
func WithLevel(env, level string) (*zap.Logger, error) {
	if level == "" {
		return New(env)
	}

	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	logger, err := New(env)
	if err != nil {
		return nil, err
	}

	return logger.WithOptions(zap.IncreaseLevel(parsed)), nil
}
