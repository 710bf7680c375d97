package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SessionUserIDKey is the session key holding the authenticated owner's id.
const SessionUserIDKey = "user_id"

// SessionStart returns the request's session from the store placed in locals
// by the router middleware.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, errors.New("session store not configured")
	}
	return store.Get(c)
}

// GetUserIDFromSession extracts the logged-in user id, if any.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	raw := sess.Get(SessionUserIDKey)
	switch v := raw.(type) {
	case uint:
		return v, nil
	case int:
		return uint(v), nil
	case int64:
		return uint(v), nil
	}
	return 0, errors.New("no user in session")
}
