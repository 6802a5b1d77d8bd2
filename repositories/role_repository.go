package repositories

import (
	"context"
	"errors"

	"randevu.link/configs"
	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IRoleRepository rol referans verisi için veritabanı işlemleri arayüzü.
type IRoleRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Role, error)
	FindByName(ctx context.Context, name string) (*models.Role, error)
	FindAll(ctx context.Context) ([]models.Role, error)
}

// RoleRepository IRoleRepository arayüzünü uygular.
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository yeni bir RoleRepository örneği oluşturur.
func NewRoleRepository() IRoleRepository {
	return &RoleRepository{db: configs.GetDB()}
}

func (r *RoleRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// FindByID belirli bir ID'ye sahip rolü bulur.
func (r *RoleRepository) FindByID(ctx context.Context, id uint) (*models.Role, error) {
	if id == 0 {
		return nil, errors.New("geçersiz Role ID")
	}
	var role models.Role
	err := r.getDB(ctx).First(&role, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("RoleRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &role, nil
}

// FindByName rol adına göre (tam eşleşme) rolü bulur.
func (r *RoleRepository) FindByName(ctx context.Context, name string) (*models.Role, error) {
	if name == "" {
		return nil, ErrNotFound
	}
	var role models.Role
	err := r.getDB(ctx).Where("name = ?", name).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("RoleRepository.FindByName: DB error", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return &role, nil
}

// FindAll tüm rolleri ada göre sıralı döndürür (dropdown için).
func (r *RoleRepository) FindAll(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	err := r.getDB(ctx).Order("name asc").Find(&roles).Error
	if err != nil {
		configslog.Log.Error("RoleRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return roles, nil
}

var _ IRoleRepository = (*RoleRepository)(nil)
