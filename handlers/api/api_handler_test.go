package api

import (
	"encoding/json"
	"fmt"
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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
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

	handler := NewAPIHandler(storage.NewLocalStore(t.TempDir(), "/media"))
	app := fiber.New()
	app.Get("/api/skills", handler.Skills)
	app.Get("/api/search-projects", handler.SearchProjects)
	return app, db
}

func getJSON(t *testing.T, app *fiber.App, url string, out interface{}) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
	return resp.StatusCode
}

func TestSkillsEndpoint(t *testing.T) {
	app, db := setupTestApp(t)

	require.NoError(t, db.Create(&models.Skill{
		Name: "Python", Category: models.SkillCategoryProgramming, Proficiency: 90, Icon: "fa-python",
	}).Error)
	require.NoError(t, db.Create(&models.Skill{
		Name: "TensorFlow", Category: models.SkillCategoryAIML, Proficiency: 70,
	}).Error)

	var payload struct {
		Skills []struct {
			Name        string `json:"name"`
			Proficiency int    `json:"proficiency"`
			Category    string `json:"category"`
			Icon        string `json:"icon"`
		} `json:"skills"`
	}
	status := getJSON(t, app, "/api/skills", &payload)
	require.Equal(t, http.StatusOK, status)

	require.Len(t, payload.Skills, 2)
	// Default order puts the higher proficiency first; the category is the
	// raw stored code, not a display label.
	assert.Equal(t, "Python", payload.Skills[0].Name)
	assert.Equal(t, "programming", payload.Skills[0].Category)
	assert.Equal(t, "fa-python", payload.Skills[0].Icon)
	assert.Equal(t, "ai_ml", payload.Skills[1].Category)
}

func TestSkillsEndpointEmpty(t *testing.T) {
	app, _ := setupTestApp(t)

	var payload struct {
		Skills []json.RawMessage `json:"skills"`
	}
	status := getJSON(t, app, "/api/skills", &payload)
	assert.Equal(t, http.StatusOK, status)
	assert.NotNil(t, payload.Skills)
	assert.Empty(t, payload.Skills)
}

type searchPayload struct {
	Results []struct {
		Title       string  `json:"title"`
		URL         string  `json:"url"`
		Description string  `json:"description"`
		Image       *string `json:"image"`
	} `json:"results"`
}

func TestSearchProjectsEndpoint(t *testing.T) {
	app, db := setupTestApp(t)

	project := models.Project{
		Title:            "Face Recognition System",
		ShortDescription: "Realtime face recognition.",
		Image:            "portfolio/projects/face.png",
		Status:           models.ProjectStatusCompleted,
	}
	require.NoError(t, db.Create(&project).Error)

	var payload searchPayload
	status := getJSON(t, app, "/api/search-projects?q=face", &payload)
	require.Equal(t, http.StatusOK, status)

	require.Len(t, payload.Results, 1)
	hit := payload.Results[0]
	assert.Equal(t, "Face Recognition System", hit.Title)
	assert.Equal(t, "/projects/"+project.ID.String(), hit.URL)
	assert.Equal(t, "Realtime face recognition.", hit.Description)
	require.NotNil(t, hit.Image)
	assert.Equal(t, "/media/portfolio/projects/face.png", *hit.Image)
}

func TestSearchProjectsEmptyQuery(t *testing.T) {
	app, db := setupTestApp(t)

	require.NoError(t, db.Create(&models.Project{
		Title: "Anything", Status: models.ProjectStatusCompleted,
	}).Error)

	for _, url := range []string{"/api/search-projects", "/api/search-projects?q="} {
		var payload searchPayload
		status := getJSON(t, app, url, &payload)
		assert.Equal(t, http.StatusOK, status)
		assert.NotNil(t, payload.Results)
		assert.Empty(t, payload.Results)
	}
}

func TestSearchProjectsLimit(t *testing.T) {
	app, db := setupTestApp(t)

	for i := 0; i < 8; i++ {
		require.NoError(t, db.Create(&models.Project{
			Title:  fmt.Sprintf("Telemetry Node %d", i),
			Status: models.ProjectStatusCompleted,
		}).Error)
	}

	var payload searchPayload
	status := getJSON(t, app, "/api/search-projects?q=telemetry", &payload)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, payload.Results, 5)
}
