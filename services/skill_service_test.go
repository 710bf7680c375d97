package services

import (
	"context"
	"testing"

	"vedang.dev/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertSkillByNameCreatesThenUpdates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSkillService()
	ctx := context.Background()

	created, skill, err := svc.UpsertSkillByName(ctx, "Terraform", 60)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Terraform", skill.Name)
	assert.Equal(t, 60, skill.Proficiency)
	assert.Equal(t, models.SkillCategoryOther, skill.Category)

	created, skill, err = svc.UpsertSkillByName(ctx, "Terraform", 85)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 85, skill.Proficiency)

	var count int64
	require.NoError(t, db.Model(&models.Skill{}).Where("name = ?", "Terraform").Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var stored models.Skill
	require.NoError(t, db.Where("name = ?", "Terraform").First(&stored).Error)
	assert.Equal(t, 85, stored.Proficiency)
}

func TestUpsertSkillByNameValidation(t *testing.T) {
	setupTestDB(t)
	svc := NewSkillService()
	ctx := context.Background()

	cases := []struct {
		name        string
		skillName   string
		proficiency int
	}{
		{"empty name", "", 50},
		{"whitespace name", "   ", 50},
		{"proficiency below range", "Go", -1},
		{"proficiency above range", "Go", 101},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.UpsertSkillByName(ctx, tc.skillName, tc.proficiency)
			assert.ErrorIs(t, err, ErrSkillInvalidInput)
		})
	}
}

func TestGetSkillsByCategoryPartitionsEverySkill(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSkillService()

	seed := []models.Skill{
		{Name: "Python", Category: models.SkillCategoryProgramming, Proficiency: 90},
		{Name: "C++", Category: models.SkillCategoryProgramming, Proficiency: 75},
		{Name: "Django", Category: models.SkillCategoryFramework, Proficiency: 85},
		{Name: "PostgreSQL", Category: models.SkillCategoryDatabase, Proficiency: 80},
		{Name: "TensorFlow", Category: models.SkillCategoryAIML, Proficiency: 70},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	groups, err := svc.GetSkillsByCategory(context.Background())
	require.NoError(t, err)

	total := 0
	seen := make(map[string]bool)
	for _, group := range groups {
		assert.NotEmpty(t, group.Label)
		assert.NotEmpty(t, group.Skills)
		for _, skill := range group.Skills {
			assert.False(t, seen[skill.Name], "skill %s grouped twice", skill.Name)
			seen[skill.Name] = true
			assert.Equal(t, group.Label, skill.CategoryLabel())
			total++
		}
	}
	assert.Equal(t, len(seed), total)

	// Highest proficiency first decides both group order and order within a
	// group, so Python leads the programming group.
	require.NotEmpty(t, groups)
	assert.Equal(t, "Programming Languages", groups[0].Label)
	assert.Equal(t, "Python", groups[0].Skills[0].Name)
}

func TestGetSkillProjectionsUseRawCategoryCodes(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSkillService()

	require.NoError(t, db.Create(&models.Skill{
		Name: "scikit-learn", Category: models.SkillCategoryAIML, Proficiency: 65, Icon: "fa-brain",
	}).Error)

	projections, err := svc.GetSkillProjections(context.Background())
	require.NoError(t, err)
	require.Len(t, projections, 1)
	assert.Equal(t, "scikit-learn", projections[0].Name)
	assert.Equal(t, "ai_ml", projections[0].Category)
	assert.Equal(t, 65, projections[0].Proficiency)
	assert.Equal(t, "fa-brain", projections[0].Icon)
}

func TestGetFeaturedSkillsCapped(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSkillService()

	for i := 0; i < FeaturedSkillLimit+4; i++ {
		require.NoError(t, db.Create(&models.Skill{
			Name:        "Skill " + string(rune('A'+i)),
			Category:    models.SkillCategoryTool,
			Proficiency: 50 + i,
			IsFeatured:  true,
		}).Error)
	}
	require.NoError(t, db.Create(&models.Skill{
		Name: "Hidden", Category: models.SkillCategoryTool, Proficiency: 99,
	}).Error)

	skills, err := svc.GetFeaturedSkills(context.Background())
	require.NoError(t, err)
	assert.Len(t, skills, FeaturedSkillLimit)
	for _, s := range skills {
		assert.True(t, s.IsFeatured)
	}
	// Default order is proficiency descending.
	for i := 1; i < len(skills); i++ {
		assert.GreaterOrEqual(t, skills[i-1].Proficiency, skills[i].Proficiency)
	}
}
