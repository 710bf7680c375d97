package configs

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

var sessionStore *session.Store

// SetupSession creates (once) the cookie-backed session store used by the
// admin panel. Sessions expire after 24 hours of inactivity.
func SetupSession() *session.Store {
	if sessionStore != nil {
		return sessionStore
	}
	cookieSecure := os.Getenv("APP_ENV") == "production"
	sessionStore = session.New(session.Config{
		Expiration:     24 * time.Hour,
		KeyLookup:      "cookie:portfolio_session",
		CookieHTTPOnly: true,
		CookieSecure:   cookieSecure,
		CookieSameSite: "Lax",
	})
	return sessionStore
}
