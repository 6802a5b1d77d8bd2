package configsdatabase

import (
	"fmt"
	"os"
	"time"

	"randevu.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// BuildDSN ortam değişkenlerinden Postgres bağlantı cümlesini üretir.
func BuildDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		env("DB_HOST", "localhost"),
		env("DB_PORT", "5432"),
		env("DB_USER", "postgres"),
		env("DB_PASSWORD", ""),
		env("DB_NAME", "randevu"),
		env("DB_SSLMODE", "disable"),
		env("DB_TIMEZONE", "Europe/Istanbul"),
	)
}

// InitDB GORM/Postgres bağlantı havuzunu başlatır.
// TranslateError açık: unique ihlalleri gorm.ErrDuplicatedKey olarak döner.
func InitDB() {
	gormCfg := &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	}

	conn, err := gorm.Open(postgres.Open(BuildDSN()), gormCfg)
	if err != nil {
		configslog.Log.Fatal("Veritabanı bağlantısı kurulamadı", zap.Error(err))
	}

	sqlDB, err := conn.DB()
	if err != nil {
		configslog.Log.Fatal("Veritabanı havuzuna erişilemedi", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	db = conn
	configslog.SLog.Info("Veritabanı bağlantısı kuruldu.")
}

// GetDB aktif *gorm.DB örneğini döndürür.
func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("GetDB çağrıldı ancak veritabanı başlatılmamış (InitDB unutuldu mu?)")
	}
	return db
}

// CloseDB bağlantı havuzunu kapatır. main'de defer ile çağrılır.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Veritabanı kapatılırken havuza erişilemedi", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
	}
}
