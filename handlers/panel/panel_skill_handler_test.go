package panel

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vedang.dev/configs/configsdatabase"
	"vedang.dev/configs/configslog"
	"vedang.dev/database"
	"vedang.dev/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupPanelDB(t *testing.T) *gorm.DB {
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
	return db
}

func postForm(t *testing.T, app *fiber.App, url, form string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(form))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestCreateSkillInvalidatesHomeCache(t *testing.T) {
	db := setupPanelDB(t)

	invalidated := 0
	handler := NewSkillHandler(func() { invalidated++ })
	app := fiber.New()
	app.Post("/panel/skills/create", handler.CreateSkill)

	resp := postForm(t, app, "/panel/skills/create", "name=Go&category=programming&proficiency=80")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, 1, invalidated)

	var skill models.Skill
	require.NoError(t, db.Where("name = ?", "Go").First(&skill).Error)
	assert.Equal(t, models.SkillCategoryProgramming, skill.Category)
}

func TestCreateSkillInvalidFormSkipsInvalidation(t *testing.T) {
	setupPanelDB(t)

	invalidated := 0
	handler := NewSkillHandler(func() { invalidated++ })
	app := fiber.New()
	app.Post("/panel/skills/create", handler.CreateSkill)

	resp := postForm(t, app, "/panel/skills/create", "category=programming")
	defer resp.Body.Close()

	// Missing name is rejected by the service; nothing to invalidate.
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Zero(t, invalidated)
}
