package flashmessages

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Flash message session keys.
const (
	FlashSuccessKey = "flash_success"
	FlashErrorKey   = "flash_error"
	FlashWarningKey = "flash_warning"
)

func store(c *fiber.Ctx) *session.Store {
	s, _ := c.Locals("session_store").(*session.Store)
	return s
}

// SetFlashMessage stores a one-shot message under the given key.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	st := store(c)
	if st == nil {
		return nil
	}
	sess, err := st.Get(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessage pops the message stored under key, or "" when absent.
func GetFlashMessage(c *fiber.Ctx, key string) string {
	st := store(c)
	if st == nil {
		return ""
	}
	sess, err := st.Get(c)
	if err != nil {
		return ""
	}
	msg, _ := sess.Get(key).(string)
	if msg != "" {
		sess.Delete(key)
		_ = sess.Save()
	}
	return msg
}
