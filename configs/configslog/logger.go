package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapılandırılmış (structured) logger, SLog ise sugared logger'dır.
// InitLogger çağrılmadan kullanılmamalıdır.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger ortam değişkenine göre zap logger'ı başlatır.
// APP_ENV=production -> JSON çıktı, aksi halde renkli konsol çıktısı.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := cfg.Build()
	if err != nil {
		// Logger olmadan devam edilemez.
		panic("zap logger başlatılamadı: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger tamponlanmış log kayıtlarını boşaltır. main'de defer ile çağrılır.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
