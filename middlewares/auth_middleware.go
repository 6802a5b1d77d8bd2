package middlewares

import (
	"randevu.link/models"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware oturum gerektiren rotaları korur. Geçerli oturum yoksa
// giriş sayfasına yönlendirir (dönüş URL'si taşınmaz).
func AuthMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	return c.Next()
}

// GuestMiddleware giriş yapmış kullanıcıyı login/register sayfalarından
// rolüne uygun ana sayfaya geri gönderir.
func GuestMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Next()
	}
	if roleName, _ := c.Locals("roleName").(string); roleName == models.RoleNameAdmin {
		return c.Redirect("/dashboard/home", fiber.StatusFound)
	}
	return c.Redirect("/panel/home", fiber.StatusFound)
}

// requireRole oturum rolünü rota grubunun gerektirdiği rolle karşılaştırır.
// Rol eşitliği düzdür: hiyerarşi veya izin bileşimi yoktur.
// Uyumsuzlukta tutarlı olarak 403 döner (yönlendirme değil).
func requireRole(required string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleName, ok := c.Locals("roleName").(string)
		if !ok || roleName != required {
			return fiber.NewError(fiber.StatusForbidden, "Bu sayfaya erişim yetkiniz yok.")
		}
		return c.Next()
	}
}

// RequireUser yalnızca "User" rolüne izin verir (panel rotaları).
func RequireUser() fiber.Handler {
	return requireRole(models.RoleNameUser)
}

// RequireAdmin yalnızca "Admin" rolüne izin verir (dashboard rotaları).
func RequireAdmin() fiber.Handler {
	return requireRole(models.RoleNameAdmin)
}
