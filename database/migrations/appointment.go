package migrations

import (
	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateAppointmentsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating appointments table...")
	err := db.AutoMigrate(&models.Appointment{})
	if err != nil {
		configslog.Log.Error("Failed to migrate appointments table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Appointments table migrated successfully")
	return nil
}
