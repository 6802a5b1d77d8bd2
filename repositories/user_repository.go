package repositories

import (
	"context"
	"errors"
	"time"

	"randevu.link/configs"
	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/pkg/queryparams"
	"randevu.link/pkg/turkishsearch"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IUserRepository kullanıcı veritabanı işlemleri için arayüz.
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.User, int64, error)
	UpdateRole(ctx context.Context, userID uint, roleID uint) error
	UpdatePasswordHash(ctx context.Context, userID uint, passwordHash string) error
	Delete(ctx context.Context, user *models.User, deletedByUserID uint) error
	Count(ctx context.Context) (int64, error)
}

// UserRepository IUserRepository arayüzünü uygular.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository yeni bir UserRepository örneği oluşturur.
func NewUserRepository() IUserRepository {
	return &UserRepository{db: configs.GetDB()}
}

func (r *UserRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create yeni kullanıcı kaydı oluşturur. Unique ihlali gorm.ErrDuplicatedKey
// olarak yukarı taşınır.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user == nil || user.Username == "" || user.PasswordHash == "" || user.RoleID == 0 {
		return errors.New("eksik alanlı kullanıcı oluşturulamaz")
	}
	return r.getDB(ctx).Create(user).Error
}

// FindByID kullanıcıyı rolüyle birlikte getirir.
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if id == 0 {
		return nil, errors.New("geçersiz User ID")
	}
	var user models.User
	err := r.getDB(ctx).Preload("Role").First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// FindByUsername kullanıcı adına göre (büyük/küçük harf duyarlı, tam eşleşme)
// kullanıcıyı rolüyle birlikte getirir.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if username == "" {
		return nil, ErrNotFound
	}
	var user models.User
	err := r.getDB(ctx).Preload("Role").Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserRepository.FindByUsername: DB error", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// FindAllPaginated kullanıcıları rolleriyle birlikte sayfalayarak getirir.
func (r *UserRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.User, int64, error) {
	var users []models.User
	var totalCount int64

	query := r.getDB(ctx).Model(&models.User{})
	if params.Name != "" {
		sqlFragment, args := turkishsearch.SQLFilter("users.username", params.Name)
		query = query.Where(sqlFragment, args...)
	}

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("UserRepository.Count (Paginated): DB error", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return users, 0, nil
	}

	allowedSortColumns := map[string]string{
		"id":         "users.id",
		"username":   "users.username",
		"created_at": "users.created_at",
	}
	orderColumn, ok := allowedSortColumns[params.SortBy]
	if !ok {
		orderColumn = "users.username"
	}

	err := query.
		Preload("Role").
		Order(orderColumn + " " + params.OrderBy).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&users).Error
	if err != nil {
		configslog.Log.Error("UserRepository.Find (Paginated): DB error", zap.Error(err))
		return nil, totalCount, err
	}
	return users, totalCount, nil
}

// UpdateRole yalnızca kullanıcının rolünü değiştirir.
func (r *UserRepository) UpdateRole(ctx context.Context, userID uint, roleID uint) error {
	if userID == 0 || roleID == 0 {
		return errors.New("geçersiz kullanıcı veya rol ID")
	}
	result := r.getDB(ctx).Model(&models.User{}).Where("id = ?", userID).Update("role_id", roleID)
	if result.Error != nil {
		configslog.Log.Error("UserRepository.UpdateRole: DB error", zap.Uint("userID", userID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePasswordHash kullanıcının şifre hash'ini değiştirir.
func (r *UserRepository) UpdatePasswordHash(ctx context.Context, userID uint, passwordHash string) error {
	if userID == 0 || passwordHash == "" {
		return errors.New("geçersiz kullanıcı ID veya boş hash")
	}
	result := r.getDB(ctx).Model(&models.User{}).Where("id = ?", userID).Update("password_hash", passwordHash)
	if result.Error != nil {
		configslog.Log.Error("UserRepository.UpdatePasswordHash: DB error", zap.Uint("userID", userID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete kullanıcıyı soft delete ile siler ve DeletedBy'ı işler.
// Kullanıcının randevuları silinmez; sahiplik kaydı değişmeden kalır.
func (r *UserRepository) Delete(ctx context.Context, user *models.User, deletedByUserID uint) error {
	if user == nil || user.ID == 0 {
		return errors.New("silinecek kullanıcı geçerli değil")
	}
	now := time.Now().UTC()
	updateData := map[string]interface{}{"deleted_at": now, "deleted_by": &deletedByUserID}

	result := r.getDB(ctx).Model(user).Where("id = ? AND deleted_at IS NULL", user.ID).Updates(updateData)
	if result.Error != nil {
		configslog.Log.Error("UserRepository.Delete: DB error", zap.Uint("id", user.ID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count silinmemiş kullanıcı sayısını döndürür.
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.User{}).Count(&count).Error
	return count, err
}

var _ IUserRepository = (*UserRepository)(nil)
