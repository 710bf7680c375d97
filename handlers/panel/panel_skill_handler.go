package panel

import (
	"errors"
	"strconv"

	"vedang.dev/configs/configslog"
	"vedang.dev/models"
	"vedang.dev/pkg/flashmessages"
	"vedang.dev/pkg/queryparams"
	"vedang.dev/pkg/renderer"
	"vedang.dev/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SkillHandler is the explicit skill CRUD for the panel.
type SkillHandler struct {
	service        services.ISkillService
	invalidateHome func()
}

// NewSkillHandler wires the skill CRUD. invalidateHome is invoked after every
// successful write so the public home page drops its featured cache.
func NewSkillHandler(invalidateHome func()) *SkillHandler {
	if invalidateHome == nil {
		invalidateHome = func() {}
	}
	return &SkillHandler{
		service:        services.NewSkillService(),
		invalidateHome: invalidateHome,
	}
}

func (h *SkillHandler) ListSkills(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("proficiency")
	}
	params.Validate()

	result, err := h.service.GetSkillsPaginated(c.UserContext(), params)
	renderData := fiber.Map{
		"Title":  "Skills",
		"Result": result,
		"Params": params,
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Skills could not be listed."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Skill{}}
		configslog.Log.Error("Panel ListSkills failed", zap.Error(err))
	}
	return renderer.Render(c, "panel/skills/list", "layouts/panel_layout", renderData)
}

func (h *SkillHandler) ShowCreateSkill(c *fiber.Ctx) error {
	return renderer.Render(c, "panel/skills/create", "layouts/panel_layout", fiber.Map{
		"Title":      "New Skill",
		"Categories": models.SkillCategories(),
	})
}

func (h *SkillHandler) CreateSkill(c *fiber.Ctx) error {
	var skill models.Skill
	if err := c.BodyParser(&skill); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid form data.")
		return c.Redirect("/panel/skills/create", fiber.StatusSeeOther)
	}

	if err := h.service.CreateSkill(c.UserContext(), &skill); err != nil {
		configslog.Log.Error("Panel CreateSkill failed", zap.String("name", skill.Name), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Skill could not be created: "+err.Error())
		return c.Redirect("/panel/skills/create", fiber.StatusSeeOther)
	}

	h.invalidateHome()
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Skill created.")
	return c.Redirect("/panel/skills", fiber.StatusFound)
}

func (h *SkillHandler) ShowUpdateSkill(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid id.")
		return c.Redirect("/panel/skills", fiber.StatusSeeOther)
	}
	skill, err := h.service.GetSkillByID(c.UserContext(), uint(id))
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Skill not found.")
		return c.Redirect("/panel/skills", fiber.StatusSeeOther)
	}
	return renderer.Render(c, "panel/skills/update", "layouts/panel_layout", fiber.Map{
		"Title":      "Edit Skill",
		"Skill":      skill,
		"Categories": models.SkillCategories(),
	})
}

func (h *SkillHandler) UpdateSkill(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid id.")
		return c.Redirect("/panel/skills", fiber.StatusSeeOther)
	}
	redirectOnError := "/panel/skills/update/" + strconv.Itoa(id)

	data := map[string]interface{}{
		"name":        c.FormValue("name"),
		"category":    c.FormValue("category"),
		"icon":        c.FormValue("icon"),
		"is_featured": parseCheckbox(c.FormValue("is_featured")),
	}
	if proficiency, perr := strconv.Atoi(c.FormValue("proficiency", "50")); perr == nil {
		data["proficiency"] = proficiency
	}

	if err := h.service.UpdateSkill(c.UserContext(), uint(id), data); err != nil {
		if errors.Is(err, services.ErrSkillNotFound) {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Skill not found.")
			return c.Redirect("/panel/skills", fiber.StatusSeeOther)
		}
		configslog.Log.Error("Panel UpdateSkill failed", zap.Int("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Update failed: "+err.Error())
		return c.Redirect(redirectOnError, fiber.StatusSeeOther)
	}

	h.invalidateHome()
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Skill updated.")
	return c.Redirect(redirectOnError, fiber.StatusFound)
}

func (h *SkillHandler) DeleteSkill(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid id.")
		return c.Redirect("/panel/skills", fiber.StatusSeeOther)
	}
	if err := h.service.DeleteSkill(c.UserContext(), uint(id)); err != nil {
		configslog.Log.Error("Panel DeleteSkill failed", zap.Int("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Skill could not be deleted.")
	} else {
		h.invalidateHome()
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Skill deleted.")
	}
	return c.Redirect("/panel/skills", fiber.StatusFound)
}
