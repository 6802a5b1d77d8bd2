package handlers // handlers/dashboard paketi

import (
	"randevu.link/configs/configslog"
	"randevu.link/pkg/flashmessages"
	"randevu.link/pkg/renderer"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HomeHandler yönetim panelinin ana sayfası.
type HomeHandler struct {
	userService        services.IUserService
	appointmentService services.IAppointmentService
	catalogService     services.ICatalogService
}

// NewHomeHandler yeni bir HomeHandler örneği oluşturur.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{
		userService:        services.NewUserService(),
		appointmentService: services.NewAppointmentService(),
		catalogService:     services.NewCatalogService(),
	}
}

// HomePage sayaç özetleriyle yönetim ana sayfasını gösterir.
func (h *HomeHandler) HomePage(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCount, err := h.userService.GetUserCount(ctx)
	if err != nil {
		configslog.Log.Error("Dashboard - Home: kullanıcı sayısı alınamadı", zap.Error(err))
	}
	appointmentCount, err := h.appointmentService.GetAppointmentCount(ctx)
	if err != nil {
		configslog.Log.Error("Dashboard - Home: randevu sayısı alınamadı", zap.Error(err))
	}
	serviceCount, err := h.catalogService.GetServiceCount(ctx)
	if err != nil {
		configslog.Log.Error("Dashboard - Home: hizmet sayısı alınamadı", zap.Error(err))
	}

	renderData := fiber.Map{
		"Title":            "Yönetim Paneli",
		"UserCount":        userCount,
		"AppointmentCount": appointmentCount,
		"ServiceCount":     serviceCount,
	}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))
	return renderer.Render(c, "dashboard/home", "layouts/dashboard_layout", renderData)
}
