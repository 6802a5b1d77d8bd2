package routes

import (
	"randevu.link/configs" // Session ve CSRF konfigürasyonu için
	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/utils" // rootRedirector içindeki session yardımcıları için

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama
	app.Use(initializeSessionAndLocals())
	app.Use(configs.SetupCSRF()) // CSRF session'dan sonra gelmeli

	// --- Rota Grupları ---
	registerAuthRoutes(app)      // /auth rotaları
	registerDashboardRoutes(app) // /dashboard rotaları
	registerPanelRoutes(app)     // /panel rotaları

	// --- Kök URL ("/") Yönlendirmesi ---
	app.Get("/", rootRedirector)

	// --- 404 Handler ---
	// En sonda, eşleşmeyen tüm rotaları yakalar.
	app.Use(notFoundHandler)
}

// initializeSessionAndLocals session store'u ve giriş yapmış kullanıcının
// temel bilgilerini her istek için locals'a yerleştirir.
func initializeSessionAndLocals() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Next()
		}
		userID, idErr := utils.GetUserIDFromSession(sess)
		if idErr == nil {
			c.Locals("userID", userID)
		}
		if userName, err := utils.GetUserNameFromSession(sess); err == nil {
			c.Locals("userName", userName)
		}
		if roleName, err := utils.GetRoleNameFromSession(sess); err == nil {
			c.Locals("roleName", roleName)
			c.Locals("isAdmin", roleName == models.RoleNameAdmin)
		}
		if idErr == nil {
			// Kayan sona erme: her istekte oturum süresi yenilenir.
			if err := sess.Save(); err != nil {
				configslog.Log.Warn("Oturum süresi yenilenemedi", zap.Error(err))
			}
		}
		return c.Next()
	}
}

// rootRedirector giriş durumuna ve role göre kök URL'i yönlendirir.
func rootRedirector(c *fiber.Ctx) error {
	userIDRaw := c.Locals("userID")
	if userIDRaw == nil {
		return c.Redirect("/auth/login", fiber.StatusTemporaryRedirect)
	}
	if isAdmin, ok := c.Locals("isAdmin").(bool); ok && isAdmin {
		return c.Redirect("/dashboard/home", fiber.StatusFound)
	}
	return c.Redirect("/panel/home", fiber.StatusFound)
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kaynak bulunamadı"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Sayfa Bulunamadı"}, "layouts/error_layout")
	}
}
