package panel

import (
	"errors"
	"io"
	"strconv"

	"vedang.dev/configs/configslog"
	"vedang.dev/models"
	"vedang.dev/pkg/flashmessages"
	"vedang.dev/pkg/queryparams"
	"vedang.dev/pkg/renderer"
	"vedang.dev/pkg/storage"
	"vedang.dev/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProjectHandler is the explicit project CRUD for the panel. Every field it
// accepts is declared here; nothing is derived from model metadata at
// runtime.
type ProjectHandler struct {
	service        services.IProjectService
	skills         services.ISkillService
	blobs          storage.Store
	invalidateHome func()
}

// NewProjectHandler wires the project CRUD. invalidateHome is invoked after
// every successful write so the public home page drops its featured cache.
func NewProjectHandler(blobs storage.Store, invalidateHome func()) *ProjectHandler {
	if invalidateHome == nil {
		invalidateHome = func() {}
	}
	return &ProjectHandler{
		service:        services.NewProjectService(),
		skills:         services.NewSkillService(),
		blobs:          blobs,
		invalidateHome: invalidateHome,
	}
}

// ListProjects lists projects for the panel with pagination.
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("Panel ListProjects: query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	result, err := h.service.GetProjectsPaginated(c.UserContext(), params)
	renderData := fiber.Map{
		"Title":  "Projects",
		"Result": result,
		"Params": params,
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Projects could not be listed."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Project{}}
		configslog.Log.Error("Panel ListProjects failed", zap.Error(err))
	}
	return renderer.Render(c, "panel/projects/list", "layouts/panel_layout", renderData)
}

// ShowCreateProject renders the creation form.
func (h *ProjectHandler) ShowCreateProject(c *fiber.Ctx) error {
	allSkills, err := h.skills.GetAllSkills(c.UserContext())
	if err != nil {
		configslog.Log.Error("Panel ShowCreateProject: skills load failed", zap.Error(err))
	}
	return renderer.Render(c, "panel/projects/create", "layouts/panel_layout", fiber.Map{
		"Title":     "New Project",
		"AllSkills": allSkills,
		"Statuses": []string{
			models.ProjectStatusCompleted,
			models.ProjectStatusInProgress,
			models.ProjectStatusPlanned,
		},
	})
}

// CreateProject creates a project from the form, uploading an image to the
// blob store when one was attached.
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var project models.Project
	if err := c.BodyParser(&project); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid form data.")
		return c.Redirect("/panel/projects/create", fiber.StatusSeeOther)
	}

	if ref, err := h.storeUpload(c, "image", "portfolio/projects"); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Image upload failed: "+err.Error())
		return c.Redirect("/panel/projects/create", fiber.StatusSeeOther)
	} else if ref != "" {
		project.Image = ref
	}

	err := h.service.CreateProject(c.UserContext(), &project, parseTechnologyIDs(c))
	if err != nil {
		configslog.Log.Error("Panel CreateProject failed", zap.String("title", project.Title), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Project could not be created: "+err.Error())
		return c.Redirect("/panel/projects/create", fiber.StatusSeeOther)
	}

	h.invalidateHome()
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Project created.")
	return c.Redirect("/panel/projects", fiber.StatusFound)
}

// ShowUpdateProject renders the edit form.
func (h *ProjectHandler) ShowUpdateProject(c *fiber.Ctx) error {
	project, err := h.service.GetProjectByID(c.UserContext(), c.Params("id"))
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Project not found.")
		return c.Redirect("/panel/projects", fiber.StatusSeeOther)
	}
	allSkills, serr := h.skills.GetAllSkills(c.UserContext())
	if serr != nil {
		configslog.Log.Error("Panel ShowUpdateProject: skills load failed", zap.Error(serr))
	}
	return renderer.Render(c, "panel/projects/update", "layouts/panel_layout", fiber.Map{
		"Title":     "Edit Project",
		"Project":   project,
		"AllSkills": allSkills,
		"Statuses": []string{
			models.ProjectStatusCompleted,
			models.ProjectStatusInProgress,
			models.ProjectStatusPlanned,
		},
	})
}

// UpdateProject applies the declared field set from the form.
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	id := c.Params("id")
	redirectOnError := "/panel/projects/update/" + id

	data := map[string]interface{}{
		"title":             c.FormValue("title"),
		"short_description": c.FormValue("short_description"),
		"description":       c.FormValue("description"),
		"github_url":        c.FormValue("github_url"),
		"live_url":          c.FormValue("live_url"),
		"status":            c.FormValue("status"),
		"is_featured":       parseCheckbox(c.FormValue("is_featured")),
	}
	if order, err := strconv.Atoi(c.FormValue("display_order", "0")); err == nil {
		data["display_order"] = order
	}
	if ref, err := h.storeUpload(c, "image", "portfolio/projects"); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Image upload failed: "+err.Error())
		return c.Redirect(redirectOnError, fiber.StatusSeeOther)
	} else if ref != "" {
		data["image"] = ref
	}

	err := h.service.UpdateProject(c.UserContext(), id, data, parseTechnologyIDs(c))
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Project not found.")
			return c.Redirect("/panel/projects", fiber.StatusSeeOther)
		}
		configslog.Log.Error("Panel UpdateProject failed", zap.String("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Update failed: "+err.Error())
		return c.Redirect(redirectOnError, fiber.StatusSeeOther)
	}

	h.invalidateHome()
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Project updated.")
	return c.Redirect(redirectOnError, fiber.StatusFound)
}

// DeleteProject removes a project.
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteProject(c.UserContext(), id); err != nil {
		configslog.Log.Error("Panel DeleteProject failed", zap.String("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Project could not be deleted.")
	} else {
		h.invalidateHome()
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Project deleted.")
	}
	return c.Redirect("/panel/projects", fiber.StatusFound)
}

// storeUpload reads an optional multipart file field and stores it in the
// blob store, returning the reference. Returns "" when the field is absent.
func (h *ProjectHandler) storeUpload(c *fiber.Ctx, field, folder string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil || fileHeader == nil {
		return "", nil
	}
	f, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return h.blobs.Store(c.UserContext(), data, storage.Metadata{
		Folder:      folder,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
}

// parseTechnologyIDs reads the multi-valued technologies field. Nil means
// the field was not submitted at all, so existing links stay untouched.
func parseTechnologyIDs(c *fiber.Ctx) []uint {
	var values []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		values = form.Value["technologies"]
	} else {
		args := c.Request().PostArgs()
		for _, v := range args.PeekMulti("technologies") {
			values = append(values, string(v))
		}
	}
	if values == nil {
		return nil
	}
	ids := make([]uint, 0, len(values))
	for _, v := range values {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			ids = append(ids, uint(id))
		}
	}
	return ids
}

func parseCheckbox(v string) bool {
	return v == "true" || v == "on" || v == "1"
}
