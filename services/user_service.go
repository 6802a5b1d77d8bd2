package services

import (
	"context"
	"errors"
	"strings"

	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/pkg/queryparams"
	"randevu.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserServiceError özel servis hataları
type UserServiceError string

func (e UserServiceError) Error() string { return string(e) }

// Hata sabitleri
const (
	ErrUserNotFound       UserServiceError = "kullanıcı bulunamadı"
	ErrRoleNotFound       UserServiceError = "seçilen rol bulunamadı"
	ErrUserCreationFailed UserServiceError = "kullanıcı oluşturulamadı"
	ErrUserSelfDelete     UserServiceError = "kendi hesabınızı silemezsiniz"
)

// IUserService kullanıcı yönetimi (dashboard) işlemleri için arayüz.
type IUserService interface {
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetAllUsersPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetAllRoles(ctx context.Context) ([]models.Role, error)
	CreateUser(ctx context.Context, actingUserID uint, username, password string, roleID uint) (*models.User, error)
	UpdateUserRole(ctx context.Context, actingUserID uint, userID uint, roleID uint) error
	DeleteUser(ctx context.Context, actingUserID uint, userID uint) error
	GetUserCount(ctx context.Context) (int64, error)
}

// UserService IUserService arayüzünü uygular.
type UserService struct {
	userRepo repositories.IUserRepository
	roleRepo repositories.IRoleRepository
}

// NewUserService yeni bir UserService örneği oluşturur.
func NewUserService() IUserService {
	return &UserService{
		userRepo: repositories.NewUserRepository(),
		roleRepo: repositories.NewRoleRepository(),
	}
}

// GetUserByID kullanıcıyı rolüyle birlikte getirir.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetAllUsersPaginated kullanıcıları rolleriyle birlikte listeler.
func (s *UserService) GetAllUsersPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()

	users, totalCount, err := s.userRepo.FindAllPaginated(ctx, params)
	if err != nil {
		configslog.Log.Error("Kullanıcı listesi alınırken hata", zap.Error(err))
		return nil, err
	}
	return paginate(users, totalCount, params), nil
}

// GetAllRoles rol dropdown'ı için tüm rolleri döndürür.
func (s *UserService) GetAllRoles(ctx context.Context) ([]models.Role, error) {
	return s.roleRepo.FindAll(ctx)
}

// CreateUser yönetici adına, seçilen rolle yeni kullanıcı oluşturur.
func (s *UserService) CreateUser(ctx context.Context, actingUserID uint, username, password string, roleID uint) (*models.User, error) {
	username = strings.TrimSpace(username)
	if err := validateCredentialsInput(username, password); err != nil {
		return nil, err
	}
	if roleID == 0 {
		return nil, ErrRoleNotFound
	}

	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUserCreationFailed
	}

	role, err := s.roleRepo.FindByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hashed,
		RoleID:       role.ID,
		Role:         *role,
	}
	if err := s.userRepo.Create(contextWithUserID(ctx, actingUserID), user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		configslog.Log.Error("CreateUser: kullanıcı oluşturulamadı", zap.String("username", username), zap.Error(err))
		return nil, ErrUserCreationFailed
	}

	configslog.SLog.Infof("Yönetici kullanıcı oluşturdu: %s (ID %d, Rol: %s, Oluşturan: %d)",
		user.Username, user.ID, role.Name, actingUserID)
	return user, nil
}

// UpdateUserRole kullanıcının rolünü değiştirir.
func (s *UserService) UpdateUserRole(ctx context.Context, actingUserID uint, userID uint, roleID uint) error {
	if _, err := s.GetUserByID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.roleRepo.FindByID(ctx, roleID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRoleNotFound
		}
		return err
	}

	if err := s.userRepo.UpdateRole(contextWithUserID(ctx, actingUserID), userID, roleID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		configslog.Log.Error("UpdateUserRole: rol güncellenemedi",
			zap.Uint("userID", userID), zap.Uint("roleID", roleID), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Kullanıcı rolü güncellendi: ID %d -> rol %d (Güncelleyen: %d)", userID, roleID, actingUserID)
	return nil
}

// DeleteUser kullanıcıyı siler. Yönetici kendi hesabını silemez;
// kullanıcının randevuları silinmez (sahiplik kaydı değişmez).
func (s *UserService) DeleteUser(ctx context.Context, actingUserID uint, userID uint) error {
	if userID == actingUserID {
		return ErrUserSelfDelete
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.userRepo.Delete(contextWithUserID(ctx, actingUserID), user, actingUserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		configslog.Log.Error("DeleteUser: kullanıcı silinemedi", zap.Uint("userID", userID), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Kullanıcı silindi: ID %d (Silen: %d)", userID, actingUserID)
	return nil
}

// GetUserCount toplam kullanıcı sayısını döndürür (dashboard ana sayfa).
func (s *UserService) GetUserCount(ctx context.Context) (int64, error) {
	return s.userRepo.Count(ctx)
}

var _ IUserService = (*UserService)(nil)
