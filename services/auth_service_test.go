package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"randevu.link/models"

	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService() (*AuthService, *stubUserRepo, *stubRoleRepo, *stubResetRepo) {
	userRepo := newStubUserRepo()
	roleRepo := newStubRoleRepo()
	resetRepo := newStubResetRepo()
	service := &AuthService{userRepo: userRepo, roleRepo: roleRepo, resetRepo: resetRepo}
	return service, userRepo, roleRepo, resetRepo
}

func TestRegisterAssignsDefaultUserRole(t *testing.T) {
	service, userRepo, _, _ := newTestAuthService()
	ctx := context.Background()

	user, err := service.Register(ctx, "ayse", "gizli123")
	if err != nil {
		t.Fatalf("Register hata döndürdü: %v", err)
	}
	if user.ID == 0 {
		t.Error("kayıtlı kullanıcıya ID atanmadı")
	}
	if user.Role.Name != models.RoleNameUser {
		t.Errorf("varsayılan rol %q olmalı, %q geldi", models.RoleNameUser, user.Role.Name)
	}

	stored, err := userRepo.FindByUsername(ctx, "ayse")
	if err != nil {
		t.Fatalf("kayıtlı kullanıcı bulunamadı: %v", err)
	}
	if stored.PasswordHash == "gizli123" {
		t.Error("şifre düz metin olarak saklanmış")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("gizli123")) != nil {
		t.Error("saklanan hash orijinal şifreyle doğrulanamadı")
	}
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	service, _, _, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := service.Register(ctx, "ayse", "gizli123"); err != nil {
		t.Fatalf("ilk kayıt başarısız: %v", err)
	}
	if _, err := service.Register(ctx, "ayse", "baska123"); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("ErrUsernameTaken bekleniyordu, %v geldi", err)
	}
}

func TestRegisterValidatesInput(t *testing.T) {
	service, _, _, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := service.Register(ctx, "", "gizli123"); !errors.Is(err, ErrAuthUsernameRequired) {
		t.Errorf("boş kullanıcı adı: ErrAuthUsernameRequired bekleniyordu, %v geldi", err)
	}
	if _, err := service.Register(ctx, "ayse", "kısa"); !errors.Is(err, ErrAuthPasswordTooShort) {
		t.Errorf("kısa şifre: ErrAuthPasswordTooShort bekleniyordu, %v geldi", err)
	}
}

func TestRegisterFailsWithoutDefaultRole(t *testing.T) {
	service, _, roleRepo, _ := newTestAuthService()
	roleRepo.roles = nil

	if _, err := service.Register(context.Background(), "ayse", "gizli123"); !errors.Is(err, ErrDefaultRoleMissing) {
		t.Errorf("ErrDefaultRoleMissing bekleniyordu, %v geldi", err)
	}
}

func TestAuthenticateRoundTrip(t *testing.T) {
	service, _, _, _ := newTestAuthService()
	ctx := context.Background()

	registered, err := service.Register(ctx, "mehmet", "gizli123")
	if err != nil {
		t.Fatalf("Register hata döndürdü: %v", err)
	}

	user, err := service.Authenticate(ctx, "mehmet", "gizli123")
	if err != nil {
		t.Fatalf("doğru bilgilerle giriş başarısız: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("beklenen kullanıcı ID %d, %d geldi", registered.ID, user.ID)
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	service, _, _, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := service.Register(ctx, "mehmet", "gizli123"); err != nil {
		t.Fatalf("Register hata döndürdü: %v", err)
	}

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"yanlış şifre", "mehmet", "yanlis123"},
		{"bilinmeyen kullanıcı", "yok-boyle-biri", "gizli123"},
		{"boş şifre", "mehmet", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := service.Authenticate(ctx, tc.username, tc.password); !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("ErrInvalidCredentials bekleniyordu, %v geldi", err)
			}
		})
	}
}

func TestAuthenticateRejectsEmptyStoredHash(t *testing.T) {
	service, userRepo, _, _ := newTestAuthService()

	// Bozuk kayıt: hash'i boş kullanıcı asla giriş yapamamalı.
	userRepo.add(models.User{Username: "bozuk", PasswordHash: "", RoleID: 2})

	if _, err := service.Authenticate(context.Background(), "bozuk", "herhangi"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("ErrInvalidCredentials bekleniyordu, %v geldi", err)
	}
}

func TestUpdatePasswordRequiresCurrentPassword(t *testing.T) {
	service, _, _, _ := newTestAuthService()
	ctx := context.Background()

	user, err := service.Register(ctx, "mehmet", "gizli123")
	if err != nil {
		t.Fatalf("Register hata döndürdü: %v", err)
	}

	if err := service.UpdatePassword(ctx, user.ID, "yanlis123", "yeni-sifre"); !errors.Is(err, ErrAuthCurrentPasswordWrong) {
		t.Errorf("ErrAuthCurrentPasswordWrong bekleniyordu, %v geldi", err)
	}

	if err := service.UpdatePassword(ctx, user.ID, "gizli123", "yeni-sifre"); err != nil {
		t.Fatalf("şifre güncellenemedi: %v", err)
	}
	if _, err := service.Authenticate(ctx, "mehmet", "yeni-sifre"); err != nil {
		t.Errorf("yeni şifreyle giriş başarısız: %v", err)
	}
	if _, err := service.Authenticate(ctx, "mehmet", "gizli123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("eski şifre hâlâ geçerli: %v", err)
	}
}

func TestPasswordResetFlow(t *testing.T) {
	service, _, _, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := service.Register(ctx, "mehmet", "gizli123"); err != nil {
		t.Fatalf("Register hata döndürdü: %v", err)
	}

	token, err := service.CreatePasswordResetToken(ctx, "mehmet")
	if err != nil {
		t.Fatalf("token oluşturulamadı: %v", err)
	}
	if token.Token == "" {
		t.Fatal("boş token üretildi")
	}

	if err := service.ResetPassword(ctx, token.Token, "yepyeni-sifre"); err != nil {
		t.Fatalf("şifre sıfırlanamadı: %v", err)
	}
	if _, err := service.Authenticate(ctx, "mehmet", "yepyeni-sifre"); err != nil {
		t.Errorf("sıfırlanan şifreyle giriş başarısız: %v", err)
	}

	// Token tek kullanımlıktır.
	if err := service.ResetPassword(ctx, token.Token, "bir-sifre-daha"); !errors.Is(err, ErrResetTokenInvalid) {
		t.Errorf("kullanılmış token: ErrResetTokenInvalid bekleniyordu, %v geldi", err)
	}
}

func TestResetPasswordRejectsExpiredToken(t *testing.T) {
	service, _, _, resetRepo := newTestAuthService()
	ctx := context.Background()

	if _, err := service.Register(ctx, "mehmet", "gizli123"); err != nil {
		t.Fatalf("Register hata döndürdü: %v", err)
	}
	token, err := service.CreatePasswordResetToken(ctx, "mehmet")
	if err != nil {
		t.Fatalf("token oluşturulamadı: %v", err)
	}

	resetRepo.tokens[token.Token].ExpiresAt = time.Now().UTC().Add(-time.Minute)

	if err := service.ResetPassword(ctx, token.Token, "yepyeni-sifre"); !errors.Is(err, ErrResetTokenInvalid) {
		t.Errorf("süresi dolmuş token: ErrResetTokenInvalid bekleniyordu, %v geldi", err)
	}
}

func TestCreatePasswordResetTokenUnknownUser(t *testing.T) {
	service, _, _, _ := newTestAuthService()

	if _, err := service.CreatePasswordResetToken(context.Background(), "yok-boyle-biri"); !errors.Is(err, ErrAuthUserNotFound) {
		t.Errorf("ErrAuthUserNotFound bekleniyordu, %v geldi", err)
	}
}
