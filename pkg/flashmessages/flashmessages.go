package flashmessages

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Oturumda tutulan flash anahtarları. Bir sonraki istekte okunur ve silinir;
// TempData benzeri, yanıt kapsamlı durumdur.
const (
	FlashSuccessKey  = "flash_success"
	FlashErrorKey    = "flash_error"
	flashFormDataKey = "flash_form_data"
)

// FlashData bir isteğe taşınan mesaj çiftidir.
type FlashData struct {
	Success string
	Error   string
}

var errNoSessionStore = errors.New("session store bulunamadı")

func sessionFromCtx(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, errNoSessionStore
	}
	return store.Get(c)
}

// SetFlashMessage verilen anahtara tek seferlik mesaj yazar.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := sessionFromCtx(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessages bekleyen mesajları okur ve oturumdan temizler.
func GetFlashMessages(c *fiber.Ctx) FlashData {
	sess, err := sessionFromCtx(c)
	if err != nil {
		return FlashData{}
	}

	var flash FlashData
	if v, ok := sess.Get(FlashSuccessKey).(string); ok {
		flash.Success = v
		sess.Delete(FlashSuccessKey)
	}
	if v, ok := sess.Get(FlashErrorKey).(string); ok {
		flash.Error = v
		sess.Delete(FlashErrorKey)
	}
	if flash.Success != "" || flash.Error != "" {
		_ = sess.Save()
	}
	return flash
}

// SetFlashFormData hatalı form gönderimini, formu tekrar doldurmak üzere saklar.
func SetFlashFormData(c *fiber.Ctx, data interface{}) error {
	sess, err := sessionFromCtx(c)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	sess.Set(flashFormDataKey, string(raw))
	return sess.Save()
}

// GetFlashFormData saklanan form verisini okur ve temizler.
func GetFlashFormData(c *fiber.Ctx) map[string]interface{} {
	sess, err := sessionFromCtx(c)
	if err != nil {
		return nil
	}
	raw, ok := sess.Get(flashFormDataKey).(string)
	if !ok || raw == "" {
		return nil
	}
	sess.Delete(flashFormDataKey)
	_ = sess.Save()

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil
	}
	return data
}
