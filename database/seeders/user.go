package seeders

import (
	"errors"
	"os"

	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// SeedAdminUser varsayılan yönetici hesabını oluşturur. Kullanıcı adı ve şifre
// ADMIN_USERNAME / ADMIN_PASSWORD ortam değişkenleriyle değiştirilebilir.
func SeedAdminUser(db *gorm.DB) error {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = defaultAdminUsername
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = defaultAdminPassword
		configslog.SLog.Warn("ADMIN_PASSWORD tanımlı değil, varsayılan şifre kullanılıyor. Üretimde mutlaka değiştirin!")
	}

	var adminRole models.Role
	if err := db.Where("name = ?", models.RoleNameAdmin).First(&adminRole).Error; err != nil {
		configslog.Log.Error("Admin rolü bulunamadı, önce rol seeder çalıştırılmalı", zap.Error(err))
		return err
	}

	var existingUser models.User
	result := db.Where("username = ?", username).First(&existingUser)
	if result.Error == nil {
		configslog.SLog.Debugf("Yönetici kullanıcısı '%s' zaten mevcut, oluşturma atlanıyor.", username)
		return nil
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Yönetici kullanıcısı kontrol edilirken veritabanı hatası", zap.Error(result.Error))
		return result.Error
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Yönetici şifresi hash'lenemedi", zap.Error(err))
		return err
	}

	adminUser := models.User{
		Username:     username,
		PasswordHash: string(hashedBytes),
		RoleID:       adminRole.ID,
	}
	if err := db.Create(&adminUser).Error; err != nil {
		configslog.Log.Error("Yönetici kullanıcısı oluşturulamadı", zap.String("username", username), zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Yönetici kullanıcısı '%s' başarıyla oluşturuldu (ID: %d).", username, adminUser.ID)
	return nil
}
