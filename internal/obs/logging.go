// Package obs contains observability utilities such as logging.
package obs

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fairyhunter13/catalog-cart-simulator/internal/config"
)

// Logger is the global structured logger used by the simulator.
//
// It starts as a no-op logger so packages can log before InitLogger runs
// (and in tests).
var Logger = zap.NewNop()

// InitLogger initializes the global Logger from cfg.
//
// Output goes to stderr; stdout belongs to the interactive session.
func InitLogger(cfg config.Config) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.WarnLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if cfg.LogEncoding == "json" {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), level)
	Logger = zap.New(core).With(zap.String("env", cfg.AppEnv))
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Logger.Sync()
}
