package routes

import (
	panel_handlers "randevu.link/handlers/panel"
	"randevu.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerPanelRoutes /panel altındaki rotaları ve middleware'leri tanımlar.
// Sadece "User" rolündeki kullanıcıların erişimine izin verilir.
func registerPanelRoutes(app *fiber.App) {
	panelHomeHandler := panel_handlers.NewPanelHomeHandler()
	appointmentHandler := panel_handlers.NewPanelAppointmentHandler()

	panelGroup := app.Group("/panel")
	panelGroup.Use(
		middlewares.AuthMiddleware, // 1. Giriş yapmış mı?
		middlewares.RequireUser(),  // 2. Normal kullanıcı mı?
	)

	// --- Panel Ana Sayfa ---
	panelGroup.Get("/home", panelHomeHandler.PanelHomeHandler) // GET /panel/home

	// --- Kullanıcının Kendi Randevuları ---
	panelGroup.Get("/appointments", appointmentHandler.ListAppointments)                 // GET /panel/appointments
	panelGroup.Get("/appointments/create", appointmentHandler.ShowCreateAppointment)     // GET /panel/appointments/create
	panelGroup.Post("/appointments/create", appointmentHandler.CreateAppointment)        // POST /panel/appointments/create
	panelGroup.Get("/appointments/update/:id", appointmentHandler.ShowUpdateAppointment) // GET /panel/appointments/update/{id}
	panelGroup.Post("/appointments/update/:id", appointmentHandler.UpdateAppointment)    // POST /panel/appointments/update/{id}
	panelGroup.Post("/appointments/delete/:id", appointmentHandler.DeleteAppointment)    // POST /panel/appointments/delete/{id} (Formdan silme)
	panelGroup.Delete("/appointments/delete/:id", appointmentHandler.DeleteAppointment)  // DELETE /panel/appointments/delete/{id} (JS/API için)
}
