package handlers // handlers/dashboard paketi

import (
	"errors"
	"fmt"
	"strconv"

	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/pkg/flashmessages"
	"randevu.link/pkg/queryparams"
	"randevu.link/pkg/renderer"
	"randevu.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UserHandler kullanıcı yönetimi için handler (Dashboard).
type UserHandler struct {
	service services.IUserService
}

// NewUserHandler yeni bir UserHandler örneği oluşturur.
func NewUserHandler() *UserHandler {
	return &UserHandler{service: services.NewUserService()}
}

// formValueUint form alanını uint olarak okur; çözülemezse 0 döner.
func formValueUint(c *fiber.Ctx, key string) uint {
	v, err := strconv.Atoi(c.FormValue(key))
	if err != nil || v < 0 {
		return 0
	}
	return uint(v)
}

// ListUsers tüm kullanıcıları rolleriyle listeler.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("username")
	}
	if params.SortBy == "" {
		params.SortBy = "username"
	}
	params.Validate()

	paginatedResult, err := h.service.GetAllUsersPaginated(c.UserContext(), params)

	renderData := fiber.Map{
		"Title":  "Kullanıcı Yönetimi",
		"Result": paginatedResult,
		"Params": params,
	}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))

	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Kullanıcılar listelenirken bir hata oluştu."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.User{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Dashboard - ListUsers Error", zap.Error(err))
	}
	return renderer.Render(c, "dashboard/users/list", "layouts/dashboard_layout", renderData)
}

// ShowCreateUser kullanıcı oluşturma formunu rol dropdown'ı ile gösterir.
func (h *UserHandler) ShowCreateUser(c *fiber.Ctx) error {
	roles, err := h.service.GetAllRoles(c.UserContext())
	if err != nil {
		configslog.Log.Error("Dashboard - ShowCreateUser: roller alınamadı", zap.Error(err))
	}

	renderData := fiber.Map{
		"Title":    "Yeni Kullanıcı",
		"Roles":    roles,
		"FormData": flashmessages.GetFlashFormData(c),
	}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))
	return renderer.Render(c, "dashboard/users/create", "layouts/dashboard_layout", renderData)
}

// CreateUser seçilen rolle yeni kullanıcı oluşturur.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	adminUserID, ok := c.Locals("userID").(uint)
	if !ok || adminUserID == 0 {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	username := c.FormValue("username")
	password := c.FormValue("password")
	roleID := formValueUint(c, "role_id")

	if _, err := h.service.CreateUser(c.UserContext(), adminUserID, username, password, roleID); err != nil {
		errMsg := "Kullanıcı oluşturulurken bir hata oluştu."
		var authErr services.AuthServiceError
		var userErr services.UserServiceError
		switch {
		case errors.As(err, &authErr):
			errMsg = authErr.Error()
		case errors.As(err, &userErr):
			errMsg = userErr.Error()
		default:
			configslog.Log.Error("Dashboard - CreateUser Error", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		_ = flashmessages.SetFlashFormData(c, fiber.Map{"Username": username, "RoleID": roleID})
		return c.Redirect("/dashboard/users/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kullanıcı başarıyla oluşturuldu!")
	return c.Redirect("/dashboard/users", fiber.StatusFound)
}

// ShowUpdateUserRole rol değiştirme formunu gösterir.
func (h *UserHandler) ShowUpdateUserRole(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz kullanıcı kimliği.")
		return c.Redirect("/dashboard/users", fiber.StatusSeeOther)
	}

	user, err := h.service.GetUserByID(c.UserContext(), uint(id))
	if err != nil {
		errMsg := "Kullanıcı bulunamadı."
		if !errors.Is(err, services.ErrUserNotFound) {
			errMsg = "Kullanıcı bilgileri alınırken bir hata oluştu."
			configslog.Log.Error("Dashboard - ShowUpdateUserRole Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/dashboard/users", fiber.StatusSeeOther)
	}

	roles, err := h.service.GetAllRoles(c.UserContext())
	if err != nil {
		configslog.Log.Error("Dashboard - ShowUpdateUserRole: roller alınamadı", zap.Error(err))
	}

	renderData := fiber.Map{
		"Title": "Kullanıcı Rolünü Düzenle",
		"User":  user,
		"Roles": roles,
	}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))
	return renderer.Render(c, "dashboard/users/role", "layouts/dashboard_layout", renderData)
}

// UpdateUserRole kullanıcının rolünü değiştirir.
func (h *UserHandler) UpdateUserRole(c *fiber.Ctx) error {
	adminUserID, ok := c.Locals("userID").(uint)
	if !ok || adminUserID == 0 {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz kullanıcı kimliği.")
		return c.Redirect("/dashboard/users", fiber.StatusSeeOther)
	}
	roleID := formValueUint(c, "role_id")

	if err := h.service.UpdateUserRole(c.UserContext(), adminUserID, uint(id), roleID); err != nil {
		var svcErr services.UserServiceError
		errMsg := "Rol güncellenirken bir hata oluştu."
		if errors.As(err, &svcErr) {
			errMsg = svcErr.Error()
		} else {
			configslog.Log.Error("Dashboard - UpdateUserRole Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect(fmt.Sprintf("/dashboard/users/role/%d", id), fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kullanıcı rolü başarıyla güncellendi!")
	return c.Redirect("/dashboard/users", fiber.StatusFound)
}

// DeleteUser kullanıcıyı siler.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	adminUserID, ok := c.Locals("userID").(uint)
	if !ok || adminUserID == 0 {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz kullanıcı kimliği.")
		return c.Redirect("/dashboard/users", fiber.StatusSeeOther)
	}

	if err := h.service.DeleteUser(c.UserContext(), adminUserID, uint(id)); err != nil {
		var svcErr services.UserServiceError
		errMsg := "Kullanıcı silinirken bir hata oluştu."
		if errors.As(err, &svcErr) {
			errMsg = svcErr.Error()
		} else {
			configslog.Log.Error("Dashboard - DeleteUser Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kullanıcı başarıyla silindi!")
	}
	return c.Redirect("/dashboard/users", fiber.StatusSeeOther)
}
