package panel

import (
	"vedang.dev/configs/configslog"
	"vedang.dev/models"
	"vedang.dev/pkg/flashmessages"
	"vedang.dev/pkg/mailer"
	"vedang.dev/pkg/queryparams"
	"vedang.dev/pkg/renderer"
	"vedang.dev/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MessageHandler is the owner's inbox of visitor messages.
type MessageHandler struct {
	service services.IContactService
}

func NewMessageHandler(notifier mailer.Notifier) *MessageHandler {
	return &MessageHandler{service: services.NewContactService(notifier)}
}

func (h *MessageHandler) ListMessages(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	result, err := h.service.GetMessagesPaginated(c.UserContext(), params)
	renderData := fiber.Map{
		"Title":  "Messages",
		"Result": result,
		"Params": params,
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Messages could not be listed."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.ContactMessage{}}
		configslog.Log.Error("Panel ListMessages failed", zap.Error(err))
	}
	return renderer.Render(c, "panel/messages/list", "layouts/panel_layout", renderData)
}

// ShowMessage renders one message and marks it read.
func (h *MessageHandler) ShowMessage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid id.")
		return c.Redirect("/panel/messages", fiber.StatusSeeOther)
	}
	msg, err := h.service.GetMessageByID(c.UserContext(), uint(id))
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Message not found.")
		return c.Redirect("/panel/messages", fiber.StatusSeeOther)
	}

	if !msg.IsRead {
		if err := h.service.SetMessageRead(c.UserContext(), msg.ID, true); err != nil {
			configslog.Log.Error("Panel ShowMessage: mark read failed", zap.Uint("id", msg.ID), zap.Error(err))
		} else {
			msg.IsRead = true
		}
	}

	return renderer.Render(c, "panel/messages/show", "layouts/panel_layout", fiber.Map{
		"Title":   msg.Subject,
		"Message": msg,
	})
}

// ToggleRead flips the read flag on a message.
func (h *MessageHandler) ToggleRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid id.")
		return c.Redirect("/panel/messages", fiber.StatusSeeOther)
	}
	msg, err := h.service.GetMessageByID(c.UserContext(), uint(id))
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Message not found.")
		return c.Redirect("/panel/messages", fiber.StatusSeeOther)
	}
	if err := h.service.SetMessageRead(c.UserContext(), msg.ID, !msg.IsRead); err != nil {
		configslog.Log.Error("Panel ToggleRead failed", zap.Uint("id", msg.ID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Message could not be updated.")
	}
	return c.Redirect("/panel/messages", fiber.StatusFound)
}

func (h *MessageHandler) DeleteMessage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid id.")
		return c.Redirect("/panel/messages", fiber.StatusSeeOther)
	}
	if err := h.service.DeleteMessage(c.UserContext(), uint(id)); err != nil {
		configslog.Log.Error("Panel DeleteMessage failed", zap.Int("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Message could not be deleted.")
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Message deleted.")
	}
	return c.Redirect("/panel/messages", fiber.StatusFound)
}
