package middlewares

import (
	"vedang.dev/pkg/flashmessages"
	"vedang.dev/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware guards the panel group: requests without a logged-in owner
// session are redirected to the login form.
func AuthMiddleware(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return c.Redirect("/auth/login", fiber.StatusTemporaryRedirect)
	}
	userID, err := utils.GetUserIDFromSession(sess)
	if err != nil || userID == 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Please sign in first.")
		return c.Redirect("/auth/login", fiber.StatusTemporaryRedirect)
	}
	c.Locals("userID", userID)
	return c.Next()
}
