package api

import (
	"vedang.dev/configs/configslog"
	"vedang.dev/pkg/storage"
	"vedang.dev/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// quickSearchResult is the wire shape of one quick-search hit.
type quickSearchResult struct {
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
}

// APIHandler serves the small JSON surface used by the front-end scripts.
type APIHandler struct {
	skills   services.ISkillService
	projects services.IProjectService
	blobs    storage.Store
}

func NewAPIHandler(blobs storage.Store) *APIHandler {
	return &APIHandler{
		skills:   services.NewSkillService(),
		projects: services.NewProjectService(),
		blobs:    blobs,
	}
}

// Skills returns every skill as {name, proficiency, category, icon}, with
// the raw category code.
func (h *APIHandler) Skills(c *fiber.Ctx) error {
	projections, err := h.skills.GetSkillProjections(c.UserContext())
	if err != nil {
		configslog.Log.Error("API skills failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(fiber.Map{"skills": projections})
}

// SearchProjects is the ajax quick search: up to five title-or-description
// matches. Empty or missing q returns an empty result list.
func (h *APIHandler) SearchProjects(c *fiber.Ctx) error {
	summaries, err := h.projects.QuickSearch(c.UserContext(), c.Query("q"))
	if err != nil {
		configslog.Log.Error("API project search failed", zap.String("q", c.Query("q")), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	results := make([]quickSearchResult, 0, len(summaries))
	for _, s := range summaries {
		r := quickSearchResult{
			Title:       s.Title,
			URL:         s.URL,
			Description: s.Description,
		}
		if s.Image != nil {
			url := h.blobs.URL(*s.Image)
			r.Image = &url
		}
		results = append(results, r)
	}
	return c.JSON(fiber.Map{"results": results})
}
