package routes

import (
	panel_handlers "vedang.dev/handlers/panel"
	"vedang.dev/middlewares"
	"vedang.dev/pkg/mailer"
	"vedang.dev/pkg/storage"

	"github.com/gofiber/fiber/v2"
)

// registerPanelRoutes wires the owner's admin screens under /panel. The whole
// group sits behind the session auth guard. invalidateHome drops the public
// home page's featured cache after project and skill edits.
func registerPanelRoutes(app *fiber.App, blobs storage.Store, notifier mailer.Notifier, invalidateHome func()) {
	homeHandler := panel_handlers.NewHomeHandler()
	projectHandler := panel_handlers.NewProjectHandler(blobs, invalidateHome)
	skillHandler := panel_handlers.NewSkillHandler(invalidateHome)
	resumeHandler := panel_handlers.NewResumeHandler(blobs)
	messageHandler := panel_handlers.NewMessageHandler(notifier)
	profileHandler := panel_handlers.NewProfileHandler(blobs)

	panelGroup := app.Group("/panel")
	panelGroup.Use(middlewares.AuthMiddleware)

	panelGroup.Get("/", homeHandler.Dashboard)

	panelGroup.Get("/projects", projectHandler.ListProjects)
	panelGroup.Get("/projects/create", projectHandler.ShowCreateProject)
	panelGroup.Post("/projects/create", projectHandler.CreateProject)
	panelGroup.Get("/projects/update/:id", projectHandler.ShowUpdateProject)
	panelGroup.Post("/projects/update/:id", projectHandler.UpdateProject)
	panelGroup.Post("/projects/delete/:id", projectHandler.DeleteProject)
	panelGroup.Delete("/projects/delete/:id", projectHandler.DeleteProject)

	panelGroup.Get("/skills", skillHandler.ListSkills)
	panelGroup.Get("/skills/create", skillHandler.ShowCreateSkill)
	panelGroup.Post("/skills/create", skillHandler.CreateSkill)
	panelGroup.Get("/skills/update/:id", skillHandler.ShowUpdateSkill)
	panelGroup.Post("/skills/update/:id", skillHandler.UpdateSkill)
	panelGroup.Post("/skills/delete/:id", skillHandler.DeleteSkill)
	panelGroup.Delete("/skills/delete/:id", skillHandler.DeleteSkill)

	panelGroup.Get("/resumes", resumeHandler.ListResumes)
	panelGroup.Post("/resumes/upload", resumeHandler.UploadResume)
	panelGroup.Post("/resumes/activate/:id", resumeHandler.ActivateResume)
	panelGroup.Post("/resumes/delete/:id", resumeHandler.DeleteResume)
	panelGroup.Delete("/resumes/delete/:id", resumeHandler.DeleteResume)

	panelGroup.Get("/messages", messageHandler.ListMessages)
	panelGroup.Get("/messages/:id", messageHandler.ShowMessage)
	panelGroup.Post("/messages/toggle-read/:id", messageHandler.ToggleRead)
	panelGroup.Post("/messages/delete/:id", messageHandler.DeleteMessage)
	panelGroup.Delete("/messages/delete/:id", messageHandler.DeleteMessage)

	panelGroup.Get("/profile", profileHandler.ShowProfile)
	panelGroup.Post("/profile", profileHandler.UpdateProfile)
}
