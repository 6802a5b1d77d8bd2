package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"randevu.link/configs/configsdatabase"
	"randevu.link/configs/configslog"
	"randevu.link/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env dosyası opsiyonel; ortam değişkenleri zaten tanımlı olabilir.
	_ = godotenv.Load()

	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		AppName:      "randevu.link",
		Views:        engine,
		ErrorHandler: appErrorHandler,
	})

	routes.SetupRoutes(app)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	// Graceful shutdown: SIGINT/SIGTERM geldiğinde sunucuyu kapat.
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Sunucu kapatılırken hata oluştu", zap.Error(err))
		}
	}()

	configslog.SLog.Infof("Sunucu %s portunda başlatılıyor...", port)
	if err := app.Listen(":" + port); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}

	configslog.SLog.Info("Sunucu durduruldu.")
}

// appErrorHandler handler'lardan dönen hataları HTML hata sayfalarına çevirir.
func appErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Sunucuda beklenmeyen bir hata oluştu."

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	} else {
		configslog.Log.Error("Beklenmeyen hata", zap.String("path", c.Path()), zap.Error(err))
	}

	view := "errors/500"
	title := "Sunucu Hatası"
	switch code {
	case fiber.StatusNotFound:
		view = "errors/404"
		title = "Sayfa Bulunamadı"
	case fiber.StatusForbidden:
		view = "errors/403"
		title = "Erişim Engellendi"
	}

	if renderErr := c.Status(code).Render(view, fiber.Map{
		"Title":   title,
		"Message": message,
	}, "layouts/error_layout"); renderErr != nil {
		return c.Status(code).SendString(message)
	}
	return nil
}
