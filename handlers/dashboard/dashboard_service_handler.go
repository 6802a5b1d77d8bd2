package handlers // handlers/dashboard paketi

import (
	"errors"
	"fmt"

	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/pkg/flashmessages"
	"randevu.link/pkg/queryparams"
	"randevu.link/pkg/renderer"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ServiceHandler hizmet kataloğu yönetimi için handler (Dashboard).
type ServiceHandler struct {
	service services.ICatalogService
}

// NewServiceHandler yeni bir ServiceHandler örneği oluşturur.
func NewServiceHandler() *ServiceHandler {
	return &ServiceHandler{service: services.NewCatalogService()}
}

// ListServices tüm hizmetleri listeler.
func (h *ServiceHandler) ListServices(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("name")
	}
	if params.SortBy == "" {
		params.SortBy = "name"
	}
	params.Validate()

	paginatedResult, err := h.service.GetAllServicesPaginated(c.UserContext(), params)

	renderData := fiber.Map{
		"Title":  "Hizmet Yönetimi",
		"Result": paginatedResult,
		"Params": params,
	}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))

	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Hizmetler listelenirken bir hata oluştu."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Service{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Dashboard - ListServices Error", zap.Error(err))
	}
	return renderer.Render(c, "dashboard/services/list", "layouts/dashboard_layout", renderData)
}

// ShowCreateService hizmet oluşturma formunu gösterir.
func (h *ServiceHandler) ShowCreateService(c *fiber.Ctx) error {
	renderData := fiber.Map{
		"Title":    "Yeni Hizmet",
		"FormData": flashmessages.GetFlashFormData(c),
	}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))
	return renderer.Render(c, "dashboard/services/create", "layouts/dashboard_layout", renderData)
}

// CreateService yeni hizmet oluşturur.
func (h *ServiceHandler) CreateService(c *fiber.Ctx) error {
	adminUserID, ok := c.Locals("userID").(uint)
	if !ok || adminUserID == 0 {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	name := c.FormValue("name")
	description := c.FormValue("description")

	if _, err := h.service.CreateService(c.UserContext(), adminUserID, name, description); err != nil {
		var svcErr services.CatalogServiceError
		errMsg := "Hizmet oluşturulurken bir hata oluştu."
		if errors.As(err, &svcErr) {
			errMsg = svcErr.Error()
		} else {
			configslog.Log.Error("Dashboard - CreateService Error", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		_ = flashmessages.SetFlashFormData(c, fiber.Map{"Name": name, "Description": description})
		return c.Redirect("/dashboard/services/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Hizmet başarıyla oluşturuldu!")
	return c.Redirect("/dashboard/services", fiber.StatusFound)
}

// ShowUpdateService hizmet düzenleme formunu gösterir.
func (h *ServiceHandler) ShowUpdateService(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz hizmet kimliği.")
		return c.Redirect("/dashboard/services", fiber.StatusSeeOther)
	}

	service, err := h.service.GetServiceByID(c.UserContext(), uint(id))
	if err != nil {
		errMsg := "Hizmet bulunamadı."
		if !errors.Is(err, services.ErrCatalogServiceNotFound) {
			errMsg = "Hizmet bilgileri alınırken bir hata oluştu."
			configslog.Log.Error("Dashboard - ShowUpdateService Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/dashboard/services", fiber.StatusSeeOther)
	}

	renderData := fiber.Map{
		"Title":   "Hizmeti Düzenle",
		"Service": service,
	}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))
	return renderer.Render(c, "dashboard/services/update", "layouts/dashboard_layout", renderData)
}

// UpdateService hizmet bilgilerini günceller.
func (h *ServiceHandler) UpdateService(c *fiber.Ctx) error {
	adminUserID, ok := c.Locals("userID").(uint)
	if !ok || adminUserID == 0 {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz hizmet kimliği.")
		return c.Redirect("/dashboard/services", fiber.StatusSeeOther)
	}

	name := c.FormValue("name")
	description := c.FormValue("description")

	if err := h.service.UpdateService(c.UserContext(), adminUserID, uint(id), name, description); err != nil {
		var svcErr services.CatalogServiceError
		errMsg := "Hizmet güncellenirken bir hata oluştu."
		if errors.As(err, &svcErr) {
			errMsg = svcErr.Error()
		} else {
			configslog.Log.Error("Dashboard - UpdateService Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect(fmt.Sprintf("/dashboard/services/update/%d", id), fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Hizmet başarıyla güncellendi!")
	return c.Redirect("/dashboard/services", fiber.StatusFound)
}

// DeleteService hizmeti siler. Randevusu olan hizmet silinemez.
func (h *ServiceHandler) DeleteService(c *fiber.Ctx) error {
	adminUserID, ok := c.Locals("userID").(uint)
	if !ok || adminUserID == 0 {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz hizmet kimliği.")
		return c.Redirect("/dashboard/services", fiber.StatusSeeOther)
	}

	if err := h.service.DeleteService(c.UserContext(), adminUserID, uint(id)); err != nil {
		var svcErr services.CatalogServiceError
		errMsg := "Hizmet silinirken bir hata oluştu."
		if errors.As(err, &svcErr) {
			errMsg = svcErr.Error()
		} else {
			configslog.Log.Error("Dashboard - DeleteService Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Hizmet başarıyla silindi!")
	}
	return c.Redirect("/dashboard/services", fiber.StatusSeeOther)
}
