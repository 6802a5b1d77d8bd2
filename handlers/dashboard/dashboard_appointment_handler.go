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

// AppointmentHandler tüm randevuların yönetimi için handler (Dashboard).
type AppointmentHandler struct {
	service services.IAppointmentService
}

// NewAppointmentHandler yeni bir AppointmentHandler örneği oluşturur.
func NewAppointmentHandler() *AppointmentHandler {
	return &AppointmentHandler{service: services.NewAppointmentService()}
}

// ListAppointments sistemdeki tüm randevuları listeler.
func (h *AppointmentHandler) ListAppointments(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("appointment_date")
	}
	if params.SortBy == "" {
		params.SortBy = "appointment_date"
	}
	params.Validate()

	paginatedResult, err := h.service.GetAllAppointmentsPaginated(c.UserContext(), params)

	renderData := fiber.Map{
		"Title":    "Randevu Yönetimi",
		"Result":   paginatedResult,
		"Params":   params,
		"Statuses": models.AppointmentStatuses(),
	}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))

	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Randevular listelenirken bir hata oluştu."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Appointment{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Dashboard - ListAppointments Error", zap.Error(err))
	}
	return renderer.Render(c, "dashboard/appointments/list", "layouts/dashboard_layout", renderData)
}

// ShowUpdateStatus randevu durumu değiştirme formunu gösterir.
func (h *AppointmentHandler) ShowUpdateStatus(c *fiber.Ctx) error {
	adminUserID, _ := c.Locals("userID").(uint)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz randevu kimliği.")
		return c.Redirect("/dashboard/appointments", fiber.StatusSeeOther)
	}

	appointment, err := h.service.GetAppointmentByID(c.UserContext(), uint(id), adminUserID)
	if err != nil {
		errMsg := "Randevu bulunamadı."
		if !errors.Is(err, services.ErrAppointmentNotFound) {
			errMsg = "Randevu bilgileri alınırken bir hata oluştu."
			configslog.Log.Error("Dashboard - ShowUpdateStatus Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/dashboard/appointments", fiber.StatusSeeOther)
	}

	renderData := fiber.Map{
		"Title":       "Randevu Durumunu Güncelle",
		"Appointment": appointment,
		"Statuses":    models.AppointmentStatuses(),
	}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))
	return renderer.Render(c, "dashboard/appointments/status", "layouts/dashboard_layout", renderData)
}

// UpdateStatus randevunun durumunu değiştirir. Sadece admin erişebilir.
func (h *AppointmentHandler) UpdateStatus(c *fiber.Ctx) error {
	adminUserID, ok := c.Locals("userID").(uint)
	if !ok || adminUserID == 0 {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz randevu kimliği.")
		return c.Redirect("/dashboard/appointments", fiber.StatusSeeOther)
	}
	status := c.FormValue("status")

	if err := h.service.UpdateAppointmentStatus(c.UserContext(), uint(id), adminUserID, status); err != nil {
		var svcErr services.AppointmentServiceError
		errMsg := "Randevu durumu güncellenirken bir hata oluştu."
		if errors.As(err, &svcErr) {
			errMsg = svcErr.Error()
		} else {
			configslog.Log.Error("Dashboard - UpdateStatus Error", zap.Int("id", id), zap.String("status", status), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect(fmt.Sprintf("/dashboard/appointments/status/%d", id), fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Randevu durumu başarıyla güncellendi!")
	return c.Redirect("/dashboard/appointments", fiber.StatusFound)
}

// DeleteAppointment randevuyu siler.
func (h *AppointmentHandler) DeleteAppointment(c *fiber.Ctx) error {
	adminUserID, ok := c.Locals("userID").(uint)
	if !ok || adminUserID == 0 {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz randevu kimliği.")
		return c.Redirect("/dashboard/appointments", fiber.StatusSeeOther)
	}

	if err := h.service.DeleteAppointment(c.UserContext(), uint(id), adminUserID); err != nil {
		var svcErr services.AppointmentServiceError
		errMsg := "Randevu silinirken bir hata oluştu."
		if errors.As(err, &svcErr) {
			errMsg = svcErr.Error()
		} else {
			configslog.Log.Error("Dashboard - DeleteAppointment Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Randevu başarıyla silindi!")
	}
	return c.Redirect("/dashboard/appointments", fiber.StatusSeeOther)
}
