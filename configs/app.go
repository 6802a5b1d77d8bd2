package configs

import (
	"os"
	"strconv"
	"time"

	"randevu.link/configs/configsdatabase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"
)

// GetDB servis ve repository katmanlarının kullandığı kısayoldur.
func GetDB() *gorm.DB {
	return configsdatabase.GetDB()
}

// SessionIdleTimeout oturumun boşta kalma süresini döndürür.
// SESSION_EXP_MINUTES ile ayarlanır, varsayılan 30 dakikadır.
// Oturum her kaydedildiğinde süre yenilenir (kayan/sliding sona erme).
func SessionIdleTimeout() time.Duration {
	if v := os.Getenv("SESSION_EXP_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
	}
	return 30 * time.Minute
}

// SetupSession sunucu taraflı oturum deposunu hazırlar.
// Çerez yalnızca opak oturum kimliğini taşır; kullanıcı bilgisi sunucuda tutulur.
func SetupSession() *session.Store {
	return session.New(session.Config{
		Expiration:     SessionIdleTimeout(),
		KeyLookup:      "cookie:randevu_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

// SetupCSRF form gönderimlerini anti-forgery token ile korur.
func SetupCSRF() fiber.Handler {
	return csrf.New(csrf.Config{
		KeyLookup:      "form:_csrf",
		CookieName:     "randevu_csrf",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		ContextKey:     "csrf",
	})
}
