package renderer

import (
	"net/http"

	"randevu.link/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// View tarafında kullanılan flash anahtarları.
const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
)

// SetFlashMessages flash mesajlarını render verisine işler.
func SetFlashMessages(data fiber.Map, flash flashmessages.FlashData) {
	if flash.Success != "" {
		data[FlashSuccessKeyView] = flash.Success
	}
	if flash.Error != "" {
		data[FlashErrorKeyView] = flash.Error
	}
}

// Render ortak locals'ları (oturum bilgisi, CSRF token) ekleyip verilen
// view'u belirtilen layout ile çizer.
func Render(c *fiber.Ctx, view string, layout string, data fiber.Map, status ...int) error {
	if data == nil {
		data = fiber.Map{}
	}

	if userID, ok := c.Locals("userID").(uint); ok {
		data["UserID"] = userID
	}
	if userName, ok := c.Locals("userName").(string); ok {
		data["UserName"] = userName
	}
	if roleName, ok := c.Locals("roleName").(string); ok {
		data["RoleName"] = roleName
	}
	if isAdmin, ok := c.Locals("isAdmin").(bool); ok {
		data["IsAdmin"] = isAdmin
	}
	if token := c.Locals("csrf"); token != nil {
		data["CsrfToken"] = token
	}

	st := http.StatusOK
	if len(status) > 0 {
		st = status[0]
	}
	return c.Status(st).Render(view, data, layout)
}
