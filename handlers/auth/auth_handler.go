package handlers // handlers/auth paketi

import (
	"errors"

	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/pkg/flashmessages"
	"randevu.link/pkg/renderer"
	"randevu.link/services"
	"randevu.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler giriş, kayıt, çıkış ve şifre işlemleri için handler.
type AuthHandler struct {
	service services.IAuthService
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{service: services.NewAuthService()}
}

// homeFor rol adına göre giriş sonrası hedef yolu döndürür.
func homeFor(roleName string) string {
	if roleName == models.RoleNameAdmin {
		return "/dashboard/home"
	}
	return "/panel/home"
}

// ShowLogin giriş formunu gösterir.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	renderData := fiber.Map{"Title": "Giriş Yap"}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))
	return renderer.Render(c, "auth/login", "layouts/auth_layout", renderData)
}

// Login kimlik doğrular ve oturumu başlatır.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	user, err := h.service.Authenticate(c.UserContext(), username, password)
	if err != nil {
		errMsg := string(services.ErrInvalidCredentials)
		if !errors.Is(err, services.ErrInvalidCredentials) {
			// Altyapı hatası: kullanıcıya genel mesaj, detayı log'a.
			errMsg = "Giriş sırasında bir hata oluştu, lütfen tekrar deneyin."
			configslog.Log.Error("Login error", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("Login: oturum başlatılamadı", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Oturum başlatılamadı.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	// Oturum sabitleme (fixation) koruması: girişte yeni oturum kimliği.
	if err := sess.Regenerate(); err != nil {
		configslog.Log.Error("Login: oturum yenilenemedi", zap.Error(err))
	}
	utils.SetSessionUser(sess, user)
	if err := sess.Save(); err != nil {
		configslog.Log.Error("Login: oturum kaydedilemedi", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Oturum başlatılamadı.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	configslog.SLog.Infof("Kullanıcı giriş yaptı: %s (Rol: %s)", user.Username, user.Role.Name)
	return c.Redirect(homeFor(user.Role.Name), fiber.StatusFound)
}

// ShowRegister kayıt formunu gösterir.
func (h *AuthHandler) ShowRegister(c *fiber.Ctx) error {
	renderData := fiber.Map{
		"Title":    "Kayıt Ol",
		"FormData": flashmessages.GetFlashFormData(c),
	}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))
	return renderer.Render(c, "auth/register", "layouts/auth_layout", renderData)
}

// Register yeni kullanıcıyı varsayılan rolle kaydeder.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	if _, err := h.service.Register(c.UserContext(), username, password); err != nil {
		var svcErr services.AuthServiceError
		errMsg := "Kayıt sırasında bir hata oluştu, lütfen tekrar deneyin."
		if errors.As(err, &svcErr) {
			errMsg = svcErr.Error()
		} else {
			configslog.Log.Error("Register error", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		_ = flashmessages.SetFlashFormData(c, fiber.Map{"Username": username})
		return c.Redirect("/auth/register", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kayıt başarılı! Artık giriş yapabilirsiniz.")
	return c.Redirect("/auth/login", fiber.StatusFound)
}

// Logout oturumu sonlandırır; her zaman başarılıdır.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sess, err := utils.SessionStart(c); err == nil {
		if err := utils.DestroySession(sess); err != nil {
			configslog.Log.Error("Logout: oturum sonlandırılamadı", zap.Error(err))
		}
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Başarıyla çıkış yaptınız.")
	return c.Redirect("/auth/login", fiber.StatusSeeOther)
}

// Profile oturum sahibinin profil sayfasını gösterir.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	renderData := fiber.Map{"Title": "Profilim"}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))
	return renderer.Render(c, "auth/profile", "layouts/panel_layout", renderData)
}

// UpdatePassword profil sayfasından şifre değiştirir.
func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	current := c.FormValue("current_password")
	newPassword := c.FormValue("new_password")

	if err := h.service.UpdatePassword(c.UserContext(), userID, current, newPassword); err != nil {
		var svcErr services.AuthServiceError
		errMsg := "Şifre güncellenirken bir hata oluştu."
		if errors.As(err, &svcErr) {
			errMsg = svcErr.Error()
		} else {
			configslog.Log.Error("UpdatePassword error", zap.Uint("userID", userID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Şifreniz başarıyla güncellendi.")
	}
	return c.Redirect("/auth/profile", fiber.StatusSeeOther)
}

// ShowForgotPassword şifre sıfırlama isteği formunu gösterir.
func (h *AuthHandler) ShowForgotPassword(c *fiber.Ctx) error {
	renderData := fiber.Map{"Title": "Şifremi Unuttum"}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))
	return renderer.Render(c, "auth/forgot_password", "layouts/auth_layout", renderData)
}

// RequestPasswordReset token üretir. Hesabın var olup olmadığı dışarı
// sızdırılmaz: her durumda aynı bilgi mesajı gösterilir.
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	username := c.FormValue("username")

	if _, err := h.service.CreatePasswordResetToken(c.UserContext(), username); err != nil {
		if !errors.Is(err, services.ErrAuthUserNotFound) {
			configslog.Log.Error("RequestPasswordReset error", zap.Error(err))
		}
	}
	// TODO: token'ı e-posta ile ilet; SMTP entegrasyonu bağlanana kadar
	// yalnızca üretiliyor ve loglanıyor.
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey,
		"Hesap mevcutsa şifre sıfırlama bağlantısı oluşturuldu.")
	return c.Redirect("/auth/login", fiber.StatusSeeOther)
}

// ShowResetPassword token'lı sıfırlama formunu gösterir.
func (h *AuthHandler) ShowResetPassword(c *fiber.Ctx) error {
	renderData := fiber.Map{
		"Title": "Şifre Sıfırla",
		"Token": c.Params("token"),
	}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))
	return renderer.Render(c, "auth/reset_password", "layouts/auth_layout", renderData)
}

// ResetPassword token ile yeni şifreyi kaydeder.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	token := c.FormValue("token")
	newPassword := c.FormValue("new_password")

	if err := h.service.ResetPassword(c.UserContext(), token, newPassword); err != nil {
		var svcErr services.AuthServiceError
		errMsg := "Şifre sıfırlanırken bir hata oluştu."
		if errors.As(err, &svcErr) {
			errMsg = svcErr.Error()
		} else {
			configslog.Log.Error("ResetPassword error", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/auth/password/reset/"+token, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Şifreniz sıfırlandı, giriş yapabilirsiniz.")
	return c.Redirect("/auth/login", fiber.StatusFound)
}
