package logger

import (
	"io"
	"os"

	"github.com/MirrorChyan/macdl/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	level = zap.NewAtomicLevelAt(zap.InfoLevel)
)

func SetLevel(l string) {
	level.SetLevel(getLevel(l))
}

func New(conf *config.Config) *zap.Logger {
	return NewWithSink(conf, os.Stdout)
}

// NewWithSink logs to sink instead of stdout. The CLI uses stderr so that
// command output stays clean.
func NewWithSink(conf *config.Config, sink io.Writer) *zap.Logger {
	SetLevel(conf.Log.Level)
	var (
		encoder = getConsoleEncoder()
		core    = zapcore.NewCore(
			encoder,
			zapcore.AddSync(sink),
			level,
		)
	)

	if conf.Log.File != "" {
		fileCore := zapcore.NewCore(
			getJSONEncoder(),
			zapcore.AddSync(getLumberjackLogger(conf)),
			level,
		)
		core = zapcore.NewTee(core, fileCore)
	}

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}

func getLevel(l string) zapcore.Level {
	switch l {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	case "fatal":
		return zap.FatalLevel
	default:
		return zap.InfoLevel
	}
}

func getLumberjackLogger(conf *config.Config) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   conf.Log.File,
		MaxSize:    conf.Log.MaxSize,
		MaxBackups: conf.Log.MaxBackups,
		MaxAge:     conf.Log.MaxAge,
		Compress:   conf.Log.Compress,
	}
}

func getConsoleEncoder() zapcore.Encoder {
	conf := zap.NewProductionEncoderConfig()
	conf.TimeKey = "time"
	conf.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewConsoleEncoder(conf)
}

func getJSONEncoder() zapcore.Encoder {
	conf := zap.NewProductionEncoderConfig()
	conf.TimeKey = "time"
	conf.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(conf)
}
