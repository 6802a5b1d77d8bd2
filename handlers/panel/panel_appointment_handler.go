package handlers // handlers/panel paketi

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/pkg/flashmessages"
	"randevu.link/pkg/queryparams"
	"randevu.link/pkg/renderer"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelAppointmentHandler kullanıcının kendi randevuları için handler.
type PanelAppointmentHandler struct {
	service        services.IAppointmentService
	catalogService services.ICatalogService
}

// NewPanelAppointmentHandler yeni bir PanelAppointmentHandler örneği oluşturur.
func NewPanelAppointmentHandler() *PanelAppointmentHandler {
	return &PanelAppointmentHandler{
		service:        services.NewAppointmentService(),
		catalogService: services.NewCatalogService(),
	}
}

// formValueUint form alanını uint olarak okur; çözülemezse 0 döner.
func formValueUint(c *fiber.Ctx, key string) uint {
	v, err := strconv.Atoi(c.FormValue(key))
	if err != nil || v < 0 {
		return 0
	}
	return uint(v)
}

// parseAppointmentDate formdan gelen tarih değerini çözer
// (datetime-local girdisi veya boşluklu biçim).
func parseAppointmentDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("geçersiz tarih biçimi: %q", value)
}

// ListAppointments kullanıcının kendi randevularını listeler.
func (h *PanelAppointmentHandler) ListAppointments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("appointment_date")
	}
	if params.SortBy == "" {
		params.SortBy = "appointment_date"
	}
	params.Validate()

	paginatedResult, err := h.service.GetAppointmentsForUser(c.UserContext(), userID, params)

	renderData := fiber.Map{
		"Title":    "Randevularım",
		"Result":   paginatedResult,
		"Params":   params,
		"Statuses": models.AppointmentStatuses(),
	}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))

	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Randevular listelenirken bir hata oluştu."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Appointment{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Panel - ListAppointments Error", zap.Uint("userID", userID), zap.Error(err))
	}
	return renderer.Render(c, "panel/appointments/list", "layouts/panel_layout", renderData)
}

// ShowCreateAppointment yeni randevu formunu hizmet dropdown'ı ile gösterir.
func (h *PanelAppointmentHandler) ShowCreateAppointment(c *fiber.Ctx) error {
	catalog, err := h.catalogService.GetAllServices(c.UserContext())
	if err != nil {
		configslog.Log.Error("Panel - ShowCreateAppointment: hizmetler alınamadı", zap.Error(err))
	}

	renderData := fiber.Map{
		"Title":    "Yeni Randevu",
		"Services": catalog,
		"FormData": flashmessages.GetFlashFormData(c),
	}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))
	return renderer.Render(c, "panel/appointments/create", "layouts/panel_layout", renderData)
}

// CreateAppointment yeni randevu oluşturur. Formdan durum alanı okunmaz:
// yeni kayıt her zaman Bekliyor durumuyla açılır.
func (h *PanelAppointmentHandler) CreateAppointment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	serviceID := formValueUint(c, "service_id")
	dateValue := c.FormValue("appointment_date")

	redirectBack := func(errMsg string) error {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		_ = flashmessages.SetFlashFormData(c, fiber.Map{
			"ServiceID":       serviceID,
			"AppointmentDate": dateValue,
		})
		return c.Redirect("/panel/appointments/create", fiber.StatusSeeOther)
	}

	date, err := parseAppointmentDate(dateValue)
	if err != nil {
		return redirectBack("Lütfen geçerli bir randevu tarihi girin.")
	}

	if _, err := h.service.CreateAppointment(c.UserContext(), userID, serviceID, date); err != nil {
		var svcErr services.AppointmentServiceError
		errMsg := "Randevu kaydedilirken bir hata oluştu."
		if errors.As(err, &svcErr) {
			errMsg = svcErr.Error()
		} else {
			configslog.Log.Error("Panel - CreateAppointment Error", zap.Uint("userID", userID), zap.Error(err))
		}
		return redirectBack(errMsg)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Randevu başarıyla oluşturuldu!")
	return c.Redirect("/panel/appointments", fiber.StatusFound)
}

// ShowUpdateAppointment düzenleme formunu gösterir (sadece kendi randevusu).
func (h *PanelAppointmentHandler) ShowUpdateAppointment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz randevu kimliği.")
		return c.Redirect("/panel/appointments", fiber.StatusSeeOther)
	}
	appointmentID := uint(id)

	appointment, err := h.service.GetAppointmentByID(c.UserContext(), appointmentID, userID)
	if err != nil {
		errMsg := "Randevu bulunamadı veya bu randevuyu düzenleme yetkiniz yok."
		if !errors.Is(err, services.ErrAppointmentNotFound) && !errors.Is(err, services.ErrAppointmentForbidden) {
			errMsg = "Randevu bilgileri alınırken bir hata oluştu."
			configslog.Log.Error("Panel - ShowUpdateAppointment Error", zap.Uint("id", appointmentID), zap.Uint("userID", userID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/panel/appointments", fiber.StatusSeeOther)
	}

	catalog, err := h.catalogService.GetAllServices(c.UserContext())
	if err != nil {
		configslog.Log.Error("Panel - ShowUpdateAppointment: hizmetler alınamadı", zap.Error(err))
	}

	renderData := fiber.Map{
		"Title":       "Randevuyu Düzenle",
		"Appointment": appointment,
		"Services":    catalog,
		"FormData":    flashmessages.GetFlashFormData(c),
	}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))
	return renderer.Render(c, "panel/appointments/update", "layouts/panel_layout", renderData)
}

// UpdateAppointment hizmet ve tarihi günceller; durum kullanıcı tarafından
// değiştirilemez (yalnızca dashboard'daki durum sayfasından değişir).
func (h *PanelAppointmentHandler) UpdateAppointment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz randevu kimliği.")
		return c.Redirect("/panel/appointments", fiber.StatusSeeOther)
	}
	appointmentID := uint(id)
	redirectPathOnError := fmt.Sprintf("/panel/appointments/update/%d", appointmentID)

	serviceID := formValueUint(c, "service_id")
	date, err := parseAppointmentDate(c.FormValue("appointment_date"))
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Lütfen geçerli bir randevu tarihi girin.")
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	if err := h.service.UpdateAppointment(c.UserContext(), appointmentID, userID, serviceID, date); err != nil {
		var svcErr services.AppointmentServiceError
		errMsg := "Güncelleme sırasında bir hata oluştu."
		if errors.As(err, &svcErr) {
			errMsg = svcErr.Error()
		} else {
			configslog.Log.Error("Panel - UpdateAppointment Error", zap.Uint("id", appointmentID), zap.Uint("userID", userID), zap.Error(err))
		}
		if errors.Is(err, services.ErrAppointmentNotFound) || errors.Is(err, services.ErrAppointmentForbidden) {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
			return c.Redirect("/panel/appointments", fiber.StatusSeeOther)
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Randevu başarıyla güncellendi!")
	return c.Redirect("/panel/appointments", fiber.StatusFound)
}

// DeleteAppointment randevuyu siler (sadece kendi randevusu).
func (h *PanelAppointmentHandler) DeleteAppointment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz randevu kimliği.")
		return c.Redirect("/panel/appointments", fiber.StatusSeeOther)
	}

	if err := h.service.DeleteAppointment(c.UserContext(), uint(id), userID); err != nil {
		var svcErr services.AppointmentServiceError
		errMsg := "Randevu silinirken bir hata oluştu."
		if errors.As(err, &svcErr) {
			errMsg = svcErr.Error()
		} else {
			configslog.Log.Error("Panel - DeleteAppointment Error", zap.Int("id", id), zap.Uint("userID", userID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Randevu başarıyla silindi!")
	}
	return c.Redirect("/panel/appointments", fiber.StatusSeeOther)
}
