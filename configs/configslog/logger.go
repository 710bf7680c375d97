package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the structured logger, SLog the sugared one. Both are set by InitLogger
// before anything else runs; packages use them as package-level singletons.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger builds the application logger. APP_ENV=production switches to the
// JSON production config, everything else gets the console development config.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		panic("failed to initialize zap logger: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger flushes buffered log entries. Call it with defer from main.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
