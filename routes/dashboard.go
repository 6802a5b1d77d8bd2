package routes

import (
	handlers "randevu.link/handlers/dashboard" // Dashboard handler'ları
	"randevu.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerDashboardRoutes /dashboard altındaki rotaları ve middleware'leri tanımlar.
// Sadece "Admin" rolündeki kullanıcılar erişebilir.
func registerDashboardRoutes(app *fiber.App) {
	homeHandler := handlers.NewHomeHandler()
	userHandler := handlers.NewUserHandler()
	appointmentHandler := handlers.NewAppointmentHandler()
	serviceHandler := handlers.NewServiceHandler()

	dashboardGroup := app.Group("/dashboard")
	dashboardGroup.Use(
		middlewares.AuthMiddleware,  // 1. Giriş yapmış mı?
		middlewares.RequireAdmin(), // 2. Yönetici mi?
	)

	// --- Ana Sayfa ---
	dashboardGroup.Get("/home", homeHandler.HomePage) // GET /dashboard/home

	// --- Kullanıcı Yönetimi ---
	dashboardGroup.Get("/users", userHandler.ListUsers)                     // GET /dashboard/users
	dashboardGroup.Get("/users/create", userHandler.ShowCreateUser)         // GET /dashboard/users/create
	dashboardGroup.Post("/users/create", userHandler.CreateUser)            // POST /dashboard/users/create
	dashboardGroup.Get("/users/role/:id", userHandler.ShowUpdateUserRole)   // GET /dashboard/users/role/{id}
	dashboardGroup.Post("/users/role/:id", userHandler.UpdateUserRole)      // POST /dashboard/users/role/{id}
	dashboardGroup.Post("/users/delete/:id", userHandler.DeleteUser)        // POST /dashboard/users/delete/{id} (Form için)
	dashboardGroup.Delete("/users/delete/:id", userHandler.DeleteUser)      // DELETE /dashboard/users/delete/{id} (API/JS için)

	// --- Randevu Yönetimi ---
	dashboardGroup.Get("/appointments", appointmentHandler.ListAppointments)            // GET /dashboard/appointments
	dashboardGroup.Get("/appointments/status/:id", appointmentHandler.ShowUpdateStatus) // GET /dashboard/appointments/status/{id}
	dashboardGroup.Post("/appointments/status/:id", appointmentHandler.UpdateStatus)    // POST /dashboard/appointments/status/{id}
	dashboardGroup.Post("/appointments/delete/:id", appointmentHandler.DeleteAppointment)   // POST /dashboard/appointments/delete/{id}
	dashboardGroup.Delete("/appointments/delete/:id", appointmentHandler.DeleteAppointment) // DELETE /dashboard/appointments/delete/{id}

	// --- Hizmet Yönetimi ---
	dashboardGroup.Get("/services", serviceHandler.ListServices)                  // GET /dashboard/services
	dashboardGroup.Get("/services/create", serviceHandler.ShowCreateService)      // GET /dashboard/services/create
	dashboardGroup.Post("/services/create", serviceHandler.CreateService)         // POST /dashboard/services/create
	dashboardGroup.Get("/services/update/:id", serviceHandler.ShowUpdateService)  // GET /dashboard/services/update/{id}
	dashboardGroup.Post("/services/update/:id", serviceHandler.UpdateService)     // POST /dashboard/services/update/{id}
	dashboardGroup.Post("/services/delete/:id", serviceHandler.DeleteService)     // POST /dashboard/services/delete/{id}
	dashboardGroup.Delete("/services/delete/:id", serviceHandler.DeleteService)   // DELETE /dashboard/services/delete/{id}
}
