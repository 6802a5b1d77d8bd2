package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthServiceError özel servis hataları
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

// Hata sabitleri
const (
	// Geçersiz kullanıcı adı ile yanlış şifre ayırt edilmez (enumeration koruması).
	ErrInvalidCredentials       AuthServiceError = "geçersiz kullanıcı adı veya şifre"
	ErrUsernameTaken            AuthServiceError = "bu kullanıcı adı zaten kullanılıyor"
	ErrDefaultRoleMissing       AuthServiceError = "varsayılan kullanıcı rolü bulunamadı, lütfen yöneticinize başvurun"
	ErrAuthUsernameRequired     AuthServiceError = "kullanıcı adı zorunludur"
	ErrAuthUsernameTooLong      AuthServiceError = "kullanıcı adı en fazla 50 karakter olabilir"
	ErrAuthPasswordTooShort     AuthServiceError = "şifre en az 6 karakter olmalıdır"
	ErrAuthPasswordHashFailed   AuthServiceError = "şifre oluşturulurken hata oluştu"
	ErrAuthRegistrationFailed   AuthServiceError = "kayıt sırasında bir hata oluştu"
	ErrAuthUserNotFound         AuthServiceError = "kullanıcı bulunamadı"
	ErrAuthCurrentPasswordWrong AuthServiceError = "mevcut şifre hatalı"
	ErrResetTokenInvalid        AuthServiceError = "şifre sıfırlama bağlantısı geçersiz veya süresi dolmuş"
)

// Şifre sıfırlama token'larının geçerlilik süresi.
const passwordResetTokenTTL = time.Hour

// IAuthService kimlik doğrulama işlemleri için arayüz.
type IAuthService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	UpdatePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error
	CreatePasswordResetToken(ctx context.Context, username string) (*models.PasswordResetToken, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// AuthService IAuthService arayüzünü uygular.
type AuthService struct {
	userRepo  repositories.IUserRepository
	roleRepo  repositories.IRoleRepository
	resetRepo repositories.IPasswordResetRepository
}

// NewAuthService yeni bir AuthService örneği oluşturur.
func NewAuthService() IAuthService {
	return &AuthService{
		userRepo:  repositories.NewUserRepository(),
		roleRepo:  repositories.NewRoleRepository(),
		resetRepo: repositories.NewPasswordResetRepository(),
	}
}

// validateCredentialsInput kayıt ve şifre değişikliği için ortak validasyon.
func validateCredentialsInput(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return ErrAuthUsernameRequired
	}
	if len(username) > models.UsernameMaxLength {
		return ErrAuthUsernameTooLong
	}
	return validateNewPassword(password)
}

func validateNewPassword(password string) error {
	if len(password) < 6 {
		return ErrAuthPasswordTooShort
	}
	return nil
}

// hashPassword bcrypt ile tuzlu, yavaş tek yönlü hash üretir.
func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrAuthPasswordHashFailed
	}
	return string(hashed), nil
}

// Register yeni kullanıcıyı varsayılan "User" rolüyle kaydeder.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if err := validateCredentialsInput(username, password); err != nil {
		return nil, err
	}

	// Aynı kullanıcı adı açıkça reddedilir; yarış durumuna karşı unique index
	// son sözü söyler.
	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrAuthRegistrationFailed
	}

	userRole, err := s.roleRepo.FindByName(ctx, models.RoleNameUser)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDefaultRoleMissing
		}
		return nil, ErrAuthRegistrationFailed
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hashed,
		RoleID:       userRole.ID,
		Role:         *userRole,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		configslog.Log.Error("Register: kullanıcı oluşturulamadı", zap.String("username", username), zap.Error(err))
		return nil, ErrAuthRegistrationFailed
	}

	configslog.SLog.Infof("Yeni kullanıcı kaydedildi: %s (ID %d)", user.Username, user.ID)
	return user, nil
}

// Authenticate kullanıcı adı/şifre doğrular; başarıda rolüyle birlikte
// kullanıcıyı döndürür. Oturum açma handler katmanında yapılır.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// UpdatePassword mevcut şifreyi doğrulayıp yenisini yazar.
func (s *AuthService) UpdatePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	if userID == 0 {
		return ErrAuthUserNotFound
	}
	if err := validateNewPassword(newPassword); err != nil {
		return err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAuthUserNotFound
		}
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return ErrAuthCurrentPasswordWrong
	}

	hashed, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	ctxWithUser := context.WithValue(ctx, models.ContextUserIDKey, userID)
	if err := s.userRepo.UpdatePasswordHash(ctxWithUser, userID, hashed); err != nil {
		configslog.Log.Error("UpdatePassword: hash güncellenemedi", zap.Uint("userID", userID), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Kullanıcı şifresini güncelledi: ID %d", userID)
	return nil
}

// CreatePasswordResetToken kullanıcı için tek kullanımlık token üretir.
// Kullanıcı yoksa ErrAuthUserNotFound döner; handler enumeration'a izin
// vermemek için her durumda aynı mesajı gösterir.
func (s *AuthService) CreatePasswordResetToken(ctx context.Context, username string) (*models.PasswordResetToken, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAuthUserNotFound
		}
		return nil, err
	}

	token := &models.PasswordResetToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().UTC().Add(passwordResetTokenTTL),
	}
	if err := s.resetRepo.Create(ctx, token); err != nil {
		configslog.Log.Error("CreatePasswordResetToken: token oluşturulamadı", zap.Uint("userID", user.ID), zap.Error(err))
		return nil, fmt.Errorf("sıfırlama token'ı oluşturulamadı: %w", err)
	}
	configslog.SLog.Infof("Şifre sıfırlama token'ı üretildi: kullanıcı ID %d", user.ID)
	return token, nil
}

// ResetPassword geçerli token ile şifreyi değiştirir ve token'ı tüketir.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if err := validateNewPassword(newPassword); err != nil {
		return err
	}

	now := time.Now().UTC()
	resetToken, err := s.resetRepo.FindUsableByToken(ctx, token, now)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrResetTokenInvalid
		}
		return err
	}

	hashed, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	ctxWithUser := context.WithValue(ctx, models.ContextUserIDKey, resetToken.UserID)
	if err := s.userRepo.UpdatePasswordHash(ctxWithUser, resetToken.UserID, hashed); err != nil {
		configslog.Log.Error("ResetPassword: hash güncellenemedi", zap.Uint("userID", resetToken.UserID), zap.Error(err))
		return err
	}
	if err := s.resetRepo.MarkUsed(ctxWithUser, resetToken.ID, now); err != nil {
		configslog.Log.Error("ResetPassword: token tüketilemedi", zap.Uint("tokenID", resetToken.ID), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Şifre sıfırlandı: kullanıcı ID %d", resetToken.UserID)
	return nil
}

var _ IAuthService = (*AuthService)(nil)
