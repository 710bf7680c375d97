package panel

import (
	"errors"
	"io"

	"vedang.dev/configs/configslog"
	"vedang.dev/models"
	"vedang.dev/pkg/flashmessages"
	"vedang.dev/pkg/renderer"
	"vedang.dev/pkg/storage"
	"vedang.dev/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ResumeHandler manages resume uploads and activation from the panel.
type ResumeHandler struct {
	service services.IResumeService
	blobs   storage.Store
}

func NewResumeHandler(blobs storage.Store) *ResumeHandler {
	return &ResumeHandler{
		service: services.NewResumeService(),
		blobs:   blobs,
	}
}

// ListResumes lists every upload, newest first.
func (h *ResumeHandler) ListResumes(c *fiber.Ctx) error {
	resumes, err := h.service.GetAllResumes(c.UserContext())
	renderData := fiber.Map{
		"Title":   "Resumes",
		"Resumes": resumes,
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Resumes could not be listed."
		configslog.Log.Error("Panel ListResumes failed", zap.Error(err))
	}
	return renderer.Render(c, "panel/resumes/list", "layouts/panel_layout", renderData)
}

// UploadResume stores the document in the blob store and saves the row. When
// the active box is checked the activation rule demotes every other row.
func (h *ResumeHandler) UploadResume(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil || fileHeader == nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Please choose a file to upload.")
		return c.Redirect("/panel/resumes", fiber.StatusSeeOther)
	}
	f, err := fileHeader.Open()
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Upload failed: "+err.Error())
		return c.Redirect("/panel/resumes", fiber.StatusSeeOther)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Upload failed: "+err.Error())
		return c.Redirect("/panel/resumes", fiber.StatusSeeOther)
	}

	ref, err := h.blobs.Store(c.UserContext(), data, storage.Metadata{
		Folder:      "portfolio/documents",
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		configslog.Log.Error("Panel UploadResume: blob store failed", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Upload failed: "+err.Error())
		return c.Redirect("/panel/resumes", fiber.StatusSeeOther)
	}

	title := c.FormValue("title")
	if title == "" {
		title = "My Resume"
	}
	resume := &models.Resume{
		Title:    title,
		File:     ref,
		IsActive: parseCheckbox(c.FormValue("is_active", "on")),
	}
	if err := h.service.SaveResume(c.UserContext(), resume); err != nil {
		configslog.Log.Error("Panel UploadResume: save failed", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Resume could not be saved.")
		return c.Redirect("/panel/resumes", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Resume uploaded.")
	return c.Redirect("/panel/resumes", fiber.StatusFound)
}

// ActivateResume marks an existing upload as the active one.
func (h *ResumeHandler) ActivateResume(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid id.")
		return c.Redirect("/panel/resumes", fiber.StatusSeeOther)
	}
	resume, err := h.service.GetResumeByID(c.UserContext(), uint(id))
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Resume not found.")
		return c.Redirect("/panel/resumes", fiber.StatusSeeOther)
	}

	resume.IsActive = true
	if err := h.service.SaveResume(c.UserContext(), resume); err != nil {
		configslog.Log.Error("Panel ActivateResume failed", zap.Int("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Resume could not be activated.")
		return c.Redirect("/panel/resumes", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Resume activated.")
	return c.Redirect("/panel/resumes", fiber.StatusFound)
}

// DeleteResume removes an upload record. The blob itself is left to the
// store owner's retention rules.
func (h *ResumeHandler) DeleteResume(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Invalid id.")
		return c.Redirect("/panel/resumes", fiber.StatusSeeOther)
	}
	if err := h.service.DeleteResume(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, services.ErrResumeNotFound) {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Resume not found.")
		} else {
			configslog.Log.Error("Panel DeleteResume failed", zap.Int("id", id), zap.Error(err))
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Resume could not be deleted.")
		}
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Resume deleted.")
	}
	return c.Redirect("/panel/resumes", fiber.StatusFound)
}
