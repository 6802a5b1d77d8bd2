package migrations

import (
	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateUsersTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating users & password_reset_tokens tables...")
	err := db.AutoMigrate(&models.User{}, &models.PasswordResetToken{})
	if err != nil {
		configslog.Log.Error("Failed to migrate users & password_reset_tokens tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Users & password_reset_tokens tables migrated successfully")
	return nil
}
