package panel

import (
	"errors"

	"vedang.dev/configs/configslog"
	"vedang.dev/pkg/flashmessages"
	"vedang.dev/pkg/renderer"
	"vedang.dev/services"
	"vedang.dev/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler serves the owner login for the panel.
type AuthHandler struct {
	auth services.IAuthService
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{auth: services.NewAuthService()}
}

// ShowLogin renders the login form; an already-authenticated owner goes
// straight to the panel.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	if sess, err := utils.SessionStart(c); err == nil {
		if userID, err := utils.GetUserIDFromSession(sess); err == nil && userID != 0 {
			return c.Redirect("/panel", fiber.StatusFound)
		}
	}
	return renderer.Render(c, "auth/login", "layouts/auth_layout", fiber.Map{
		"Title": "Sign In",
	})
}

// Login checks credentials and opens the owner session.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	user, err := h.auth.Authenticate(c.UserContext(), email, password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			configslog.Log.Error("Login failed", zap.String("email", email), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid email or password.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("Login: session start failed", zap.Error(err))
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	sess.Set(utils.SessionUserIDKey, user.ID)
	if err := sess.Save(); err != nil {
		configslog.Log.Error("Login: session save failed", zap.Error(err))
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	return c.Redirect("/panel", fiber.StatusFound)
}

// Logout destroys the owner session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sess, err := utils.SessionStart(c); err == nil {
		_ = sess.Destroy()
	}
	return c.Redirect("/auth/login", fiber.StatusFound)
}
