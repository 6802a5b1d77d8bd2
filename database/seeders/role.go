package seeders

import (
	"errors"

	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SeedRoles(db *gorm.DB) error {
	rolesToSeed := []models.Role{
		{Name: models.RoleNameAdmin, Description: "Sistem yöneticisi; tüm kullanıcıları ve randevuları yönetir"},
		{Name: models.RoleNameUser, Description: "Standart kullanıcı; sadece kendi randevularını yönetir"},
	}

	var createdCount int64 = 0
	var errorOccurred bool = false

	configslog.SLog.Info("Roller seed işlemi başlıyor...")

	for _, roleToSeed := range rolesToSeed {
		var existingRole models.Role
		result := db.Where("name = ?", roleToSeed.Name).First(&existingRole)

		if result.Error == nil {
			configslog.SLog.Debugf("Rol '%s' zaten mevcut, oluşturma atlanıyor.", roleToSeed.Name)
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Rol kontrol edilirken veritabanı hatası",
				zap.String("role_name", roleToSeed.Name),
				zap.Error(result.Error),
			)
			errorOccurred = true
			continue
		}

		configslog.SLog.Infof("Rol '%s' oluşturuluyor...", roleToSeed.Name)

		if err := db.Create(&roleToSeed).Error; err != nil {
			configslog.Log.Error("Rol oluşturulamadı",
				zap.String("role_name", roleToSeed.Name),
				zap.Error(err),
			)
			errorOccurred = true
			continue
		}

		configslog.SLog.Infof("Rol '%s' başarıyla oluşturuldu (ID: %d).", roleToSeed.Name, roleToSeed.ID)
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet yeni rol başarıyla seed edildi.", createdCount)
	} else if !errorOccurred {
		configslog.SLog.Info("Tüm roller zaten mevcut, yeni ekleme yapılmadı.")
	}

	if errorOccurred {
		return errors.New("roller seed edilirken en az bir hata oluştu")
	}

	configslog.SLog.Info("Roller seed işlemi başarıyla tamamlandı.")
	return nil
}
