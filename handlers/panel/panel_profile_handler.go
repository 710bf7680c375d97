package panel

import (
	"io"

	"vedang.dev/configs/configslog"
	"vedang.dev/pkg/flashmessages"
	"vedang.dev/pkg/renderer"
	"vedang.dev/pkg/storage"
	"vedang.dev/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProfileHandler edits the owner profile from the panel.
type ProfileHandler struct {
	service services.IProfileService
	blobs   storage.Store
}

func NewProfileHandler(blobs storage.Store) *ProfileHandler {
	return &ProfileHandler{
		service: services.NewProfileService(),
		blobs:   blobs,
	}
}

func (h *ProfileHandler) ShowProfile(c *fiber.Ctx) error {
	profile, err := h.service.GetProfile(c.UserContext())
	if err != nil {
		configslog.Log.Error("Panel ShowProfile failed", zap.Error(err))
	}
	return renderer.Render(c, "panel/profile", "layouts/panel_layout", fiber.Map{
		"Title":   "Profile",
		"Profile": profile,
	})
}

// UpdateProfile applies the declared profile fields, uploading a new profile
// image when one was attached.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	data := map[string]interface{}{
		"name":         c.FormValue("name"),
		"tagline":      c.FormValue("tagline"),
		"bio":          c.FormValue("bio"),
		"email":        c.FormValue("email"),
		"github_url":   c.FormValue("github_url"),
		"linkedin_url": c.FormValue("linkedin_url"),
		"twitter_url":  c.FormValue("twitter_url"),
		"location":     c.FormValue("location"),
	}

	if fileHeader, err := c.FormFile("profile_image"); err == nil && fileHeader != nil {
		f, err := fileHeader.Open()
		if err == nil {
			defer f.Close()
			if raw, rerr := io.ReadAll(f); rerr == nil {
				ref, serr := h.blobs.Store(c.UserContext(), raw, storage.Metadata{
					Folder:      "portfolio/profile",
					Filename:    fileHeader.Filename,
					ContentType: fileHeader.Header.Get("Content-Type"),
				})
				if serr != nil {
					configslog.Log.Error("Panel UpdateProfile: image upload failed", zap.Error(serr))
					_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Image upload failed: "+serr.Error())
					return c.Redirect("/panel/profile", fiber.StatusSeeOther)
				}
				data["profile_image"] = ref
			}
		}
	}

	if err := h.service.SaveProfile(c.UserContext(), data); err != nil {
		configslog.Log.Error("Panel UpdateProfile failed", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Profile could not be saved.")
		return c.Redirect("/panel/profile", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Profile saved.")
	return c.Redirect("/panel/profile", fiber.StatusFound)
}
