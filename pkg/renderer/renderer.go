package renderer

import (
	"net/http"

	"vedang.dev/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// View data keys for flash messages pulled into every render.
const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
	FlashWarningKeyView = "Warning"
)

// Render renders a template inside a layout, merging any pending flash
// messages into the view data. Explicit keys already present in data win over
// flashed ones.
func Render(c *fiber.Ctx, template, layout string, data fiber.Map, status ...int) error {
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data[FlashSuccessKeyView]; !ok {
		if msg := flashmessages.GetFlashMessage(c, flashmessages.FlashSuccessKey); msg != "" {
			data[FlashSuccessKeyView] = msg
		}
	}
	if _, ok := data[FlashErrorKeyView]; !ok {
		if msg := flashmessages.GetFlashMessage(c, flashmessages.FlashErrorKey); msg != "" {
			data[FlashErrorKeyView] = msg
		}
	}
	if _, ok := data[FlashWarningKeyView]; !ok {
		if msg := flashmessages.GetFlashMessage(c, flashmessages.FlashWarningKey); msg != "" {
			data[FlashWarningKeyView] = msg
		}
	}

	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	return c.Status(code).Render(template, data, layout)
}
