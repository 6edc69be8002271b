package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	AccessLogger *zap.Logger
	DBLogger     *zap.Logger
)

func newFileLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

func InitLoggers() error {
	var err error
	AccessLogger, err = newFileLogger("access.log")
	if err != nil {
		return err
	}
	DBLogger, err = newFileLogger("db.log")
	if err != nil {
		return err
	}
	return nil
}

func SyncLoggers() error {
	if err := AccessLogger.Sync(); err != nil {
		return err
	}
	return DBLogger.Sync()
}
