package seeders

import (
	"errors"

	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SeedServices(db *gorm.DB) error {
	servicesToSeed := []models.Service{
		{Name: "Genel Muayene", Description: "Genel sağlık kontrolü ve muayene randevusu"},
		{Name: "Diş Kontrolü", Description: "Diş hekimi kontrol randevusu"},
		{Name: "Saç Kesimi", Description: "Kuaför saç kesimi randevusu"},
		{Name: "Danışmanlık", Description: "Birebir danışmanlık görüşmesi"},
	}

	var createdCount int64 = 0
	var errorOccurred bool = false

	configslog.SLog.Info("Hizmetler seed işlemi başlıyor...")

	for _, serviceToSeed := range servicesToSeed {
		var existingService models.Service
		result := db.Where("name = ?", serviceToSeed.Name).First(&existingService)

		if result.Error == nil {
			configslog.SLog.Debugf("Hizmet '%s' zaten mevcut, oluşturma atlanıyor.", serviceToSeed.Name)
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Hizmet kontrol edilirken veritabanı hatası",
				zap.String("service_name", serviceToSeed.Name),
				zap.Error(result.Error),
			)
			errorOccurred = true
			continue
		}

		configslog.SLog.Infof("Hizmet '%s' oluşturuluyor...", serviceToSeed.Name)

		if err := db.Create(&serviceToSeed).Error; err != nil {
			configslog.Log.Error("Hizmet oluşturulamadı",
				zap.String("service_name", serviceToSeed.Name),
				zap.Error(err),
			)
			errorOccurred = true
			continue
		}

		configslog.SLog.Infof("Hizmet '%s' başarıyla oluşturuldu (ID: %d).", serviceToSeed.Name, serviceToSeed.ID)
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet yeni hizmet başarıyla seed edildi.", createdCount)
	} else if !errorOccurred {
		configslog.SLog.Info("Tüm hizmetler zaten mevcut, yeni ekleme yapılmadı.")
	}

	if errorOccurred {
		return errors.New("hizmetler seed edilirken en az bir hata oluştu")
	}

	configslog.SLog.Info("Hizmetler seed işlemi başarıyla tamamlandı.")
	return nil
}
