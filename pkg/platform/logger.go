package platform

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger builds the process logger. Server deployments get JSON
// output; the CLI gets console encoding on stderr so stdout stays
// machine-readable.
func InitLogger(console bool) *zap.Logger {
	level := zapcore.InfoLevel
	if lvl, err := zapcore.ParseLevel(GetEnv("LOG_LEVEL", "info")); err == nil {
		level = lvl
	}

	if console {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		cfg.OutputPaths = []string{"stderr"}
		logger, err := cfg.Build()
		if err != nil {
			return zap.NewNop()
		}
		return logger
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func LogFatal(logger *zap.Logger, msg string, err error) {
	logger.Error(msg, zap.Error(err))
	_ = logger.Sync()
	os.Exit(1)
}
