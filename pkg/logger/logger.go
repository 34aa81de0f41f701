package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels accepted by InitLogger. Anything between two levels
// rounds down to the lower one.
const (
	DebugLevel = 0
	InfoLevel  = 10
	WarnLevel  = 20
	ErrorLevel = 30
)

// Logger is a no-op until InitLogger runs
var Logger = zap.NewNop()

// Sugar ..
var Sugar = Logger.Sugar()

// InitLogger replaces Logger and Sugar with a console logger writing to stderr
func InitLogger(level int) error {
	l, err := NewConfig(level).Build()
	if err != nil {
		return err
	}
	Logger = l
	Sugar = Logger.Sugar()
	return nil
}

// NewConfig builds the zap config for a verbosity level. Debug output keeps
// timestamps and callers; the quieter levels print bare level and message
// lines since they share stderr with command output.
func NewConfig(level int) zap.Config {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(selectLoggingLevel(level))
	if level >= InfoLevel {
		cfg.Development = false
		cfg.DisableCaller = true
		cfg.DisableStacktrace = true
		cfg.EncoderConfig.TimeKey = ""
		cfg.EncoderConfig.EncodeTime = nil
	}
	return cfg
}

func selectLoggingLevel(level int) zapcore.Level {
	switch {
	case level < InfoLevel:
		return zap.DebugLevel
	case level < WarnLevel:
		return zap.InfoLevel
	case level < ErrorLevel:
		return zap.WarnLevel
	}
	return zap.ErrorLevel
}
