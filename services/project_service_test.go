package services

import (
	"context"
	"fmt"
	"testing"

	"vedang.dev/models"
	"vedang.dev/pkg/queryparams"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createSkill(t *testing.T, db *gorm.DB, name, category string) models.Skill {
	t.Helper()
	skill := models.Skill{Name: name, Category: category, Proficiency: 70}
	require.NoError(t, db.Create(&skill).Error)
	return skill
}

func createProject(t *testing.T, db *gorm.DB, project models.Project) models.Project {
	t.Helper()
	require.NoError(t, db.Create(&project).Error)
	return project
}

func TestGetFeaturedProjectsCapped(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProjectService()

	for i := 0; i < FeaturedProjectLimit+2; i++ {
		createProject(t, db, models.Project{
			Title:        fmt.Sprintf("Featured %d", i),
			Status:       models.ProjectStatusCompleted,
			IsFeatured:   true,
			DisplayOrder: i,
		})
	}
	createProject(t, db, models.Project{Title: "Background work", Status: models.ProjectStatusCompleted})

	featured, err := svc.GetFeaturedProjects(context.Background())
	require.NoError(t, err)
	assert.Len(t, featured, FeaturedProjectLimit)
	for i, p := range featured {
		assert.True(t, p.IsFeatured)
		assert.Equal(t, i, p.DisplayOrder)
	}
}

func TestListProjectsEmptyFilterReturnsAllInDefaultOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProjectService()

	createProject(t, db, models.Project{Title: "Second", Status: models.ProjectStatusCompleted, DisplayOrder: 5})
	createProject(t, db, models.Project{Title: "Third", Status: models.ProjectStatusPlanned, DisplayOrder: 9})
	createProject(t, db, models.Project{Title: "First", Status: models.ProjectStatusCompleted, IsFeatured: true, DisplayOrder: 7})

	projects, err := svc.ListProjects(context.Background(), queryparams.ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, projects, 3)
	// Featured first, then display order ascending.
	assert.Equal(t, "First", projects[0].Title)
	assert.Equal(t, "Second", projects[1].Title)
	assert.Equal(t, "Third", projects[2].Title)
}

func TestListProjectsSearchesLinkedSkillNames(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProjectService()
	ctx := context.Background()

	arduino := createSkill(t, db, "Arduino", models.SkillCategoryTool)
	createSkill(t, db, "Blockchain", models.SkillCategoryOther)

	meter := createProject(t, db, models.Project{
		Title:        "IoT Energy Meter",
		Description:  "Smart meter streaming IoT readings over MQTT.",
		Status:       models.ProjectStatusCompleted,
		Technologies: []models.Skill{arduino},
	})
	createProject(t, db, models.Project{
		Title:       "Face Recognition System",
		Description: "Realtime face recognition with OpenCV.",
		Status:      models.ProjectStatusCompleted,
	})

	t.Run("matches by linked skill name", func(t *testing.T) {
		projects, err := svc.ListProjects(ctx, queryparams.ProjectFilter{Search: "arduino"})
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, meter.ID, projects[0].ID)
	})

	t.Run("no match for unlinked term", func(t *testing.T) {
		projects, err := svc.ListProjects(ctx, queryparams.ProjectFilter{Search: "blockchain"})
		require.NoError(t, err)
		assert.Empty(t, projects)
	})

	t.Run("title and description hit appears once", func(t *testing.T) {
		// "iot" matches both the title and the description of the meter.
		projects, err := svc.ListProjects(ctx, queryparams.ProjectFilter{Search: "iot"})
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, meter.ID, projects[0].ID)
	})
}

func TestListProjectsTechAndStatusFilters(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProjectService()
	ctx := context.Background()

	python := createSkill(t, db, "Python", models.SkillCategoryProgramming)
	opencv := createSkill(t, db, "OpenCV", models.SkillCategoryAIML)

	done := createProject(t, db, models.Project{
		Title: "AI Health Bot", Status: models.ProjectStatusCompleted,
		Technologies: []models.Skill{python, opencv},
	})
	wip := createProject(t, db, models.Project{
		Title: "Veronica Chatbot", Status: models.ProjectStatusInProgress,
		Technologies: []models.Skill{python},
	})

	t.Run("tech filter is case-insensitive exact", func(t *testing.T) {
		projects, err := svc.ListProjects(ctx, queryparams.ProjectFilter{Tech: "python"})
		require.NoError(t, err)
		assert.Len(t, projects, 2)

		// "Open" is a prefix, not the full name, so it must not match.
		projects, err = svc.ListProjects(ctx, queryparams.ProjectFilter{Tech: "Open"})
		require.NoError(t, err)
		assert.Empty(t, projects)
	})

	t.Run("status filter", func(t *testing.T) {
		projects, err := svc.ListProjects(ctx, queryparams.ProjectFilter{Status: models.ProjectStatusInProgress})
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, wip.ID, projects[0].ID)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		projects, err := svc.ListProjects(ctx, queryparams.ProjectFilter{
			Tech: "opencv", Status: models.ProjectStatusCompleted,
		})
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, done.ID, projects[0].ID)
	})
}

func TestGetProjectByID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProjectService()
	ctx := context.Background()

	python := createSkill(t, db, "Python", models.SkillCategoryProgramming)
	created := createProject(t, db, models.Project{
		Title: "AI Health Bot", Status: models.ProjectStatusCompleted,
		Technologies: []models.Skill{python},
	})

	found, err := svc.GetProjectByID(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.Title, found.Title)
	require.Len(t, found.Technologies, 1)
	assert.Equal(t, "Python", found.Technologies[0].Name)

	_, err = svc.GetProjectByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrProjectNotFound)

	_, err = svc.GetProjectByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestGetRelatedProjects(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProjectService()
	ctx := context.Background()

	python := createSkill(t, db, "Python", models.SkillCategoryProgramming)
	rust := createSkill(t, db, "Rust", models.SkillCategoryProgramming)

	subject := createProject(t, db, models.Project{
		Title: "Subject", Status: models.ProjectStatusCompleted,
		Technologies: []models.Skill{python},
	})
	for i := 0; i < RelatedProjectLimit+2; i++ {
		createProject(t, db, models.Project{
			Title: fmt.Sprintf("Sibling %d", i), Status: models.ProjectStatusCompleted,
			Technologies: []models.Skill{python},
		})
	}
	unrelated := createProject(t, db, models.Project{
		Title: "Unrelated", Status: models.ProjectStatusCompleted,
		Technologies: []models.Skill{rust},
	})

	related, err := svc.GetRelatedProjects(ctx, &subject)
	require.NoError(t, err)
	assert.Len(t, related, RelatedProjectLimit)
	for _, p := range related {
		assert.NotEqual(t, subject.ID, p.ID, "a project is never related to itself")
		assert.NotEqual(t, unrelated.ID, p.ID)
	}
}

func TestGetRelatedProjectsWithoutTechnologies(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProjectService()

	bare := createProject(t, db, models.Project{Title: "Bare", Status: models.ProjectStatusCompleted})

	related, err := svc.GetRelatedProjects(context.Background(), &bare)
	require.NoError(t, err)
	assert.Empty(t, related)
}

func TestQuickSearch(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProjectService()
	ctx := context.Background()

	t.Run("empty query yields empty result", func(t *testing.T) {
		results, err := svc.QuickSearch(ctx, "")
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})

	for i := 0; i < QuickSearchLimit+2; i++ {
		createProject(t, db, models.Project{
			Title:            fmt.Sprintf("Robotics Demo %d", i),
			ShortDescription: "A robotics showcase.",
			Status:           models.ProjectStatusCompleted,
		})
	}

	t.Run("capped at five hits", func(t *testing.T) {
		results, err := svc.QuickSearch(ctx, "robotics")
		require.NoError(t, err)
		assert.Len(t, results, QuickSearchLimit)
		for _, r := range results {
			assert.Contains(t, r.URL, "/projects/")
			assert.Equal(t, "A robotics showcase.", r.Description)
			assert.Nil(t, r.Image)
		}
	})

	t.Run("image reference carried when set", func(t *testing.T) {
		withImage := createProject(t, db, models.Project{
			Title:  "Pathfinding Visualizer",
			Image:  "portfolio/projects/pathfinding.png",
			Status: models.ProjectStatusCompleted,
		})
		results, err := svc.QuickSearch(ctx, "pathfinding")
		require.NoError(t, err)
		require.Len(t, results, 1)
		require.NotNil(t, results[0].Image)
		assert.Equal(t, withImage.Image, *results[0].Image)
	})
}

func TestAttachTechnologiesByName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProjectService()
	ctx := context.Background()

	createSkill(t, db, "Python", models.SkillCategoryProgramming)
	project := createProject(t, db, models.Project{Title: "Loader", Status: models.ProjectStatusCompleted})

	// "python" resolves to the existing skill, "Rust" gets created.
	require.NoError(t, svc.AttachTechnologiesByName(ctx, &project, []string{"python", "Rust"}))

	var rust models.Skill
	require.NoError(t, db.Where("name = ?", "Rust").First(&rust).Error)
	assert.Equal(t, models.SkillCategoryOther, rust.Category)
	assert.Equal(t, 50, rust.Proficiency)

	var skillCount int64
	require.NoError(t, db.Model(&models.Skill{}).Count(&skillCount).Error)
	assert.EqualValues(t, 2, skillCount, "the existing skill is reused, not duplicated")

	reloaded, err := svc.GetProjectByID(ctx, project.ID.String())
	require.NoError(t, err)
	assert.Len(t, reloaded.Technologies, 2)

	// Attaching the same names again does not duplicate the links.
	require.NoError(t, svc.AttachTechnologiesByName(ctx, &project, []string{"python", "Rust"}))
	reloaded, err = svc.GetProjectByID(ctx, project.ID.String())
	require.NoError(t, err)
	assert.Len(t, reloaded.Technologies, 2)
}
