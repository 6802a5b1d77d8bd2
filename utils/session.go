package utils

import (
	"errors"

	"randevu.link/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Oturumda tutulan anahtarlar.
const (
	SessionKeyUserID   = "user_id"
	SessionKeyUserName = "user_name"
	SessionKeyRoleName = "role_name"
)

var (
	ErrSessionStoreMissing = errors.New("session store bulunamadı")
	ErrSessionKeyMissing   = errors.New("oturumda beklenen anahtar yok")
)

// SessionStart istek için oturumu başlatır/yükler.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, ErrSessionStoreMissing
	}
	return store.Get(c)
}

// SetSessionUser başarılı giriş sonrası oturum kimliğini yazar.
// Oturum yalnızca {kullanıcı ID, kullanıcı adı, rol adı} taşır.
func SetSessionUser(sess *session.Session, user *models.User) {
	sess.Set(SessionKeyUserID, user.ID)
	sess.Set(SessionKeyUserName, user.Username)
	sess.Set(SessionKeyRoleName, user.Role.Name)
}

// GetUserIDFromSession oturumdaki kullanıcı ID'sini döndürür.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	id, ok := sess.Get(SessionKeyUserID).(uint)
	if !ok || id == 0 {
		return 0, ErrSessionKeyMissing
	}
	return id, nil
}

// GetUserNameFromSession oturumdaki kullanıcı adını döndürür.
func GetUserNameFromSession(sess *session.Session) (string, error) {
	name, ok := sess.Get(SessionKeyUserName).(string)
	if !ok || name == "" {
		return "", ErrSessionKeyMissing
	}
	return name, nil
}

// GetRoleNameFromSession oturumdaki rol adını döndürür.
func GetRoleNameFromSession(sess *session.Session) (string, error) {
	role, ok := sess.Get(SessionKeyRoleName).(string)
	if !ok || role == "" {
		return "", ErrSessionKeyMissing
	}
	return role, nil
}

// DestroySession sunucu taraflı oturum durumunu tamamen temizler.
func DestroySession(sess *session.Session) error {
	return sess.Destroy()
}
