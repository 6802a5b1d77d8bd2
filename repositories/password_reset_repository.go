package repositories

import (
	"context"
	"errors"
	"time"

	"randevu.link/configs"
	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IPasswordResetRepository şifre sıfırlama token işlemleri için arayüz.
type IPasswordResetRepository interface {
	Create(ctx context.Context, token *models.PasswordResetToken) error
	FindUsableByToken(ctx context.Context, token string, now time.Time) (*models.PasswordResetToken, error)
	MarkUsed(ctx context.Context, id uint, now time.Time) error
}

// PasswordResetRepository IPasswordResetRepository arayüzünü uygular.
type PasswordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository yeni bir PasswordResetRepository örneği oluşturur.
func NewPasswordResetRepository() IPasswordResetRepository {
	return &PasswordResetRepository{db: configs.GetDB()}
}

func (r *PasswordResetRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create yeni bir sıfırlama token kaydı oluşturur.
func (r *PasswordResetRepository) Create(ctx context.Context, token *models.PasswordResetToken) error {
	if token == nil || token.UserID == 0 || token.Token == "" {
		return errors.New("eksik alanlı sıfırlama token'ı oluşturulamaz")
	}
	return r.getDB(ctx).Create(token).Error
}

// FindUsableByToken süresi dolmamış ve kullanılmamış token'ı getirir.
func (r *PasswordResetRepository) FindUsableByToken(ctx context.Context, token string, now time.Time) (*models.PasswordResetToken, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	var resetToken models.PasswordResetToken
	err := r.getDB(ctx).
		Where("token = ? AND used_at IS NULL AND expires_at > ?", token, now).
		First(&resetToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("PasswordResetRepository.FindUsableByToken: DB error", zap.Error(err))
		return nil, err
	}
	return &resetToken, nil
}

// MarkUsed token'ı tek kullanımlık olarak işaretler.
func (r *PasswordResetRepository) MarkUsed(ctx context.Context, id uint, now time.Time) error {
	if id == 0 {
		return errors.New("geçersiz token ID")
	}
	result := r.getDB(ctx).Model(&models.PasswordResetToken{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", now)
	if result.Error != nil {
		configslog.Log.Error("PasswordResetRepository.MarkUsed: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IPasswordResetRepository = (*PasswordResetRepository)(nil)
