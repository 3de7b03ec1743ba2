package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NOOPLogger discards everything. Servers built without a logger use it.
var NOOPLogger = zap.NewNop().Sugar()

type Options struct {
	Debug bool
	// File switches output from stdout to a rotated log file.
	File string
}

func New(opts Options) *zap.SugaredLogger {
	level := zap.InfoLevel
	if opts.Debug {
		level = zap.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var output zapcore.WriteSyncer
	if opts.File != "" {
		output = zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    500,
			MaxAge:     30,
			MaxBackups: 3,
			Compress:   true,
			LocalTime:  true,
		})
	} else {
		output = zapcore.Lock(os.Stdout)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), output, level)
	return zap.New(core, zap.AddCaller()).Sugar()
}
