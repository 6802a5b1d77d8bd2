package handlers // handlers/panel paketi

import (
	"randevu.link/configs/configslog"
	"randevu.link/pkg/flashmessages"
	"randevu.link/pkg/renderer"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelHomeHandler kullanıcı panelinin ana sayfası.
type PanelHomeHandler struct {
	appointmentService services.IAppointmentService
}

// NewPanelHomeHandler yeni bir PanelHomeHandler örneği oluşturur.
func NewPanelHomeHandler() *PanelHomeHandler {
	return &PanelHomeHandler{appointmentService: services.NewAppointmentService()}
}

// PanelHomeHandler panel ana sayfasını randevu özetiyle gösterir.
func (h *PanelHomeHandler) PanelHomeHandler(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	appointmentCount, err := h.appointmentService.GetAppointmentCountForUser(c.UserContext(), userID)
	if err != nil {
		configslog.Log.Error("Panel - Home: randevu sayısı alınamadı", zap.Uint("userID", userID), zap.Error(err))
	}

	renderData := fiber.Map{
		"Title":            "Panelim",
		"AppointmentCount": appointmentCount,
	}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))
	return renderer.Render(c, "panel/home", "layouts/panel_layout", renderData)
}
