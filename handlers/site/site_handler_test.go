package site

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"vedang.dev/configs/configsdatabase"
	"vedang.dev/configs/configslog"
	"vedang.dev/database"
	"vedang.dev/models"
	"vedang.dev/pkg/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type noopNotifier struct{}

func (noopNotifier) NotifyContact(models.ContactMessage) error { return nil }

func setupSiteApp(t *testing.T) (*fiber.App, *SiteHandler, *gorm.DB) {
	t.Helper()
	configslog.InitLogger()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.RunMigrationsInOrder(db))
	configsdatabase.SetDB(db)

	blobs := storage.NewLocalStore(t.TempDir(), "/media")
	engine := html.New("../../views", ".html")
	engine.AddFunc("blobURL", blobs.URL)

	handler := NewSiteHandler(blobs, noopNotifier{})
	app := fiber.New(fiber.Config{Views: engine})
	app.Get("/", handler.Home)
	return app, handler, db
}

func getPage(t *testing.T, app *fiber.App, url string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestHomeFeaturedCacheInvalidation(t *testing.T) {
	app, handler, db := setupSiteApp(t)

	require.NoError(t, db.Create(&models.Project{
		Title: "Telemetry Gateway", Status: models.ProjectStatusCompleted, IsFeatured: true,
	}).Error)

	status, body := getPage(t, app, "/")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Telemetry Gateway")

	require.NoError(t, db.Create(&models.Project{
		Title: "Spectrum Analyzer", Status: models.ProjectStatusCompleted, IsFeatured: true,
	}).Error)

	// The featured block is cached, so the new project is not visible yet.
	_, body = getPage(t, app, "/")
	assert.Contains(t, body, "Telemetry Gateway")
	assert.NotContains(t, body, "Spectrum Analyzer")

	// Dropping the cache, as the panel write handlers do, makes the next
	// render pick it up.
	handler.InvalidateHomeCache()
	_, body = getPage(t, app, "/")
	assert.Contains(t, body, "Spectrum Analyzer")
}
