package logger

import (
	"log"
	"mindfulness-service/internal/app/config"
	"mindfulness-service/internal/pkg/constvars"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func NewZapLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *zap.Logger {
	logLevel := parseLevel(driverConfig.Logger.Level)

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	if internalConfig.App.Env != constvars.EnvironmentProduction {
		cfg := zap.Config{
			Level:            zap.NewAtomicLevelAt(logLevel),
			Development:      internalConfig.App.Env == constvars.EnvironmentDevelopment,
			Encoding:         "json",
			EncoderConfig:    encoderConfig,
			OutputPaths:      []string{"stdout"},
			ErrorOutputPaths: []string{"stderr"},
		}
		zapLogger, err := cfg.Build()
		if err != nil {
			log.Fatalf("Error while initializing zap logger: %v", err)
		}
		return zapLogger
	}

	// Production writes rotated files; errors are also mirrored to stderr.
	output := zapcore.AddSync(newRollingFile(driverConfig.Logger, driverConfig.Logger.OutputFileName))
	errorOutput := zapcore.NewMultiWriteSyncer(
		zapcore.Lock(os.Stderr),
		zapcore.AddSync(newRollingFile(driverConfig.Logger, driverConfig.Logger.OutputErrorFileName)),
	)

	encoder := zapcore.NewJSONEncoder(encoderConfig)
	core := zapcore.NewTee(
		zapcore.NewCore(encoder, output, zap.NewAtomicLevelAt(logLevel)),
		zapcore.NewCore(encoder, errorOutput, zap.LevelEnablerFunc(func(level zapcore.Level) bool {
			return level >= zapcore.ErrorLevel && level >= logLevel
		})),
	)

	return zap.New(core, zap.AddCaller(), zap.ErrorOutput(zapcore.Lock(os.Stderr)))
}

func newRollingFile(cfg config.Logger, fileName string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    cfg.MaxSizeInMegabytes,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeInDays,
		Compress:   true,
	}
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
