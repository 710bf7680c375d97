package main

import (
	"os"

	"vedang.dev/configs/configsdatabase"
	"vedang.dev/configs/configslog"
	"vedang.dev/pkg/mailer"
	"vedang.dev/pkg/storage"
	"vedang.dev/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	blobs, err := storage.FromEnv()
	if err != nil {
		configslog.Log.Fatal("Failed to initialize blob storage", zap.Error(err))
	}
	notifier := mailer.NewSMTPNotifier()

	engine := html.New("./views", ".html")
	// Templates hold blob references; blobURL resolves them against the
	// configured store.
	engine.AddFunc("blobURL", blobs.URL)
	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/site_layout",
		AppName:     "vedang.dev",
		BodyLimit:   20 * 1024 * 1024, // resume and image uploads
	})

	app.Static("/static", "./static")

	// Local storage serves uploads itself; Cloudinary references are
	// absolute URLs and need no route.
	if os.Getenv("STORAGE_BACKEND") != "cloudinary" {
		mediaRoot := os.Getenv("MEDIA_ROOT")
		if mediaRoot == "" {
			mediaRoot = "./media"
		}
		app.Static("/media", mediaRoot)
	}

	routes.SetupRoutes(app, blobs, notifier)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":3000"
	}
	configslog.SLog.Infof("Listening on %s", addr)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("Server stopped", zap.Error(err))
	}
}
