package site

import (
	"errors"
	"mime"
	"net/http"
	"path"
	"time"

	"vedang.dev/configs/configslog"
	"vedang.dev/models"
	"vedang.dev/pkg/flashmessages"
	"vedang.dev/pkg/mailer"
	"vedang.dev/pkg/queryparams"
	"vedang.dev/pkg/renderer"
	"vedang.dev/pkg/storage"
	"vedang.dev/services"

	"github.com/gofiber/fiber/v2"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// ResumeDownloadName is the fixed filename offered on resume download,
// regardless of what was uploaded.
const ResumeDownloadName = "Vedang_Deshmukh_Resume.pdf"

const homeCacheKey = "home_featured"

type homeContent struct {
	Projects []models.Project
	Skills   []models.Skill
}

// SiteHandler serves the public pages.
type SiteHandler struct {
	profiles services.IProfileService
	projects services.IProjectService
	skills   services.ISkillService
	contact  services.IContactService
	resumes  services.IResumeService
	blobs    storage.Store
	cache    *gocache.Cache
}

// NewSiteHandler wires the public handler with its collaborators.
func NewSiteHandler(blobs storage.Store, notifier mailer.Notifier) *SiteHandler {
	return &SiteHandler{
		profiles: services.NewProfileService(),
		projects: services.NewProjectService(),
		skills:   services.NewSkillService(),
		contact:  services.NewContactService(notifier),
		resumes:  services.NewResumeService(),
		blobs:    blobs,
		cache:    gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// Home renders the profile with up to six featured projects and eight
// featured skills. The featured block is cached for a few minutes; the
// profile is always read fresh.
func (h *SiteHandler) Home(c *fiber.Ctx) error {
	profile, err := h.profiles.GetProfile(c.UserContext())
	if err != nil {
		return h.renderError(c, err, "Home: profile load failed")
	}

	var featured homeContent
	if cached, ok := h.cache.Get(homeCacheKey); ok {
		featured = cached.(homeContent)
	} else {
		projects, err := h.projects.GetFeaturedProjects(c.UserContext())
		if err != nil {
			return h.renderError(c, err, "Home: featured projects load failed")
		}
		skills, err := h.skills.GetFeaturedSkills(c.UserContext())
		if err != nil {
			return h.renderError(c, err, "Home: featured skills load failed")
		}
		featured = homeContent{Projects: projects, Skills: skills}
		h.cache.Set(homeCacheKey, featured, gocache.DefaultExpiration)
	}

	return renderer.Render(c, "site/home", "layouts/site_layout", fiber.Map{
		"Title":            "Home",
		"Profile":          profile,
		"FeaturedProjects": featured.Projects,
		"FeaturedSkills":   featured.Skills,
	})
}

// About renders the profile and skills grouped by category label.
func (h *SiteHandler) About(c *fiber.Ctx) error {
	profile, err := h.profiles.GetProfile(c.UserContext())
	if err != nil {
		return h.renderError(c, err, "About: profile load failed")
	}
	groups, err := h.skills.GetSkillsByCategory(c.UserContext())
	if err != nil {
		return h.renderError(c, err, "About: skills load failed")
	}
	return renderer.Render(c, "site/about", "layouts/site_layout", fiber.Map{
		"Title":            "About",
		"Profile":          profile,
		"SkillsByCategory": groups,
	})
}

// Projects renders the searchable, filterable listing together with the
// technology facet options.
func (h *SiteHandler) Projects(c *fiber.Ctx) error {
	var filter queryparams.ProjectFilter
	if err := c.QueryParser(&filter); err != nil {
		configslog.Log.Warn("Projects: query parse error", zap.Error(err))
		filter = queryparams.ProjectFilter{}
	}

	projects, err := h.projects.ListProjects(c.UserContext(), filter)
	if err != nil {
		return h.renderError(c, err, "Projects: listing failed")
	}
	facets, err := h.projects.GetTechnologyFacets(c.UserContext())
	if err != nil {
		return h.renderError(c, err, "Projects: facet load failed")
	}

	return renderer.Render(c, "site/projects", "layouts/site_layout", fiber.Map{
		"Title":           "Projects",
		"Projects":        projects,
		"AllTechnologies": facets,
		"SearchQuery":     filter.Search,
		"CurrentTech":     filter.Tech,
		"CurrentStatus":   filter.Status,
	})
}

// ProjectDetail renders one project and up to three related ones. Unknown or
// malformed ids get the 404 page.
func (h *SiteHandler) ProjectDetail(c *fiber.Ctx) error {
	project, err := h.projects.GetProjectByID(c.UserContext(), c.Params("id"))
	if errors.Is(err, services.ErrProjectNotFound) {
		return h.renderNotFound(c)
	}
	if err != nil {
		return h.renderError(c, err, "ProjectDetail: load failed")
	}

	related, err := h.projects.GetRelatedProjects(c.UserContext(), project)
	if err != nil {
		return h.renderError(c, err, "ProjectDetail: related load failed")
	}

	return renderer.Render(c, "site/project_detail", "layouts/site_layout", fiber.Map{
		"Title":           project.Title,
		"Project":         project,
		"RelatedProjects": related,
	})
}

// ShowContact renders the contact form.
func (h *SiteHandler) ShowContact(c *fiber.Ctx) error {
	profile, err := h.profiles.GetProfile(c.UserContext())
	if err != nil {
		return h.renderError(c, err, "Contact: profile load failed")
	}
	return renderer.Render(c, "site/contact", "layouts/site_layout", fiber.Map{
		"Title":       "Contact",
		"Profile":     profile,
		"FieldErrors": map[string]string{},
	})
}

// SubmitContact accepts a submission. Valid input is persisted, the owner is
// notified best-effort and the visitor is redirected back; invalid input
// re-renders the form with field errors and the submitted values.
func (h *SiteHandler) SubmitContact(c *fiber.Ctx) error {
	var form services.ContactForm
	if err := c.BodyParser(&form); err != nil {
		configslog.Log.Warn("Contact: body parse error", zap.Error(err))
	}

	result, fieldErrors, err := h.contact.SubmitContactForm(c.UserContext(), form)
	if err != nil {
		return h.renderError(c, err, "Contact: submission failed")
	}
	if fieldErrors != nil {
		profile, perr := h.profiles.GetProfile(c.UserContext())
		if perr != nil {
			return h.renderError(c, perr, "Contact: profile load failed")
		}
		return renderer.Render(c, "site/contact", "layouts/site_layout", fiber.Map{
			"Title":       "Contact",
			"Profile":     profile,
			"FieldErrors": fieldErrors,
			"FormData":    form,
		})
	}

	if result.MailFailed {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashWarningKey,
			"Message saved but email notification failed. I will still get back to you!")
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey,
			"Thank you! Your message has been sent successfully.")
	}
	return c.Redirect("/contact", fiber.StatusFound)
}

// DownloadResume streams the active resume with a fixed attachment filename.
// No active resume is a 404.
func (h *SiteHandler) DownloadResume(c *fiber.Ctx) error {
	resume, err := h.resumes.GetActiveResume(c.UserContext())
	if errors.Is(err, services.ErrNoActiveResume) {
		return h.renderNotFound(c)
	}
	if err != nil {
		return h.renderError(c, err, "Resume: lookup failed")
	}

	data, err := h.blobs.Fetch(c.UserContext(), resume.File)
	if errors.Is(err, storage.ErrNotFound) {
		configslog.Log.Error("Resume: blob missing", zap.Uint("resume_id", resume.ID), zap.String("ref", resume.File))
		return h.renderNotFound(c)
	}
	if err != nil {
		return h.renderError(c, err, "Resume: blob fetch failed")
	}

	contentType := mime.TypeByExtension(path.Ext(resume.File))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+ResumeDownloadName+`"`)
	return c.Send(data)
}

// InvalidateHomeCache drops the cached featured block. The router hands it to
// the panel project and skill handlers, which call it after successful writes.
func (h *SiteHandler) InvalidateHomeCache() {
	h.cache.Delete(homeCacheKey)
}

func (h *SiteHandler) renderNotFound(c *fiber.Ctx) error {
	return renderer.Render(c, "errors/404", "layouts/error_layout", fiber.Map{
		"Title": "Page Not Found",
	}, http.StatusNotFound)
}

func (h *SiteHandler) renderError(c *fiber.Ctx, err error, logMsg string) error {
	configslog.Log.Error(logMsg, zap.Error(err))
	return renderer.Render(c, "errors/500", "layouts/error_layout", fiber.Map{
		"Title": "Something Went Wrong",
	}, http.StatusInternalServerError)
}
