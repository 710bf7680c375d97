package panel

import (
	"vedang.dev/configs/configslog"
	"vedang.dev/pkg/renderer"
	"vedang.dev/repositories"
	"vedang.dev/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HomeHandler renders the panel dashboard.
type HomeHandler struct {
	projectRepo repositories.IProjectRepository
	messageRepo repositories.IContactMessageRepository
	resumes     services.IResumeService
}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{
		projectRepo: repositories.NewProjectRepository(),
		messageRepo: repositories.NewContactMessageRepository(),
		resumes:     services.NewResumeService(),
	}
}

// Dashboard shows content counts and the unread inbox size.
func (h *HomeHandler) Dashboard(c *fiber.Ctx) error {
	projectCount, err := h.projectRepo.GetProjectCount()
	if err != nil {
		configslog.Log.Error("Dashboard: project count failed", zap.Error(err))
	}
	unread, err := h.messageRepo.CountUnread()
	if err != nil {
		configslog.Log.Error("Dashboard: unread count failed", zap.Error(err))
	}
	activeResume, _ := h.resumes.GetActiveResume(c.UserContext())

	return renderer.Render(c, "panel/home", "layouts/panel_layout", fiber.Map{
		"Title":          "Dashboard",
		"ProjectCount":   projectCount,
		"UnreadMessages": unread,
		"ActiveResume":   activeResume,
	})
}
