package migrations

import (
	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateRolesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating roles table...")
	err := db.AutoMigrate(&models.Role{})
	if err != nil {
		configslog.Log.Error("Failed to migrate roles table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Roles table migrated successfully")
	return nil
}
