package seeders

import (
	"errors"

	"vedang.dev/configs/configslog"
	"vedang.dev/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedSkills creates the initial skill set. Existing names are left alone, so
// proficiency edits made from the panel survive reseeding.
func SeedSkills(db *gorm.DB) error {
	skills := []models.Skill{
		{Name: "Python", Category: models.SkillCategoryProgramming, Proficiency: 85, Icon: "fab fa-python", IsFeatured: true},
		{Name: "JavaScript", Category: models.SkillCategoryProgramming, Proficiency: 75, Icon: "fab fa-js", IsFeatured: true},
		{Name: "Java", Category: models.SkillCategoryProgramming, Proficiency: 70, Icon: "fab fa-java"},
		{Name: "C++", Category: models.SkillCategoryProgramming, Proficiency: 65, Icon: "fas fa-code"},
		{Name: "Django", Category: models.SkillCategoryFramework, Proficiency: 80, Icon: "fas fa-server", IsFeatured: true},
		{Name: "React", Category: models.SkillCategoryFramework, Proficiency: 70, Icon: "fab fa-react", IsFeatured: true},
		{Name: "Bootstrap", Category: models.SkillCategoryFramework, Proficiency: 85, Icon: "fab fa-bootstrap"},
		{Name: "Kivy", Category: models.SkillCategoryFramework, Proficiency: 60, Icon: "fas fa-mobile-alt"},
		{Name: "TensorFlow", Category: models.SkillCategoryAIML, Proficiency: 75, Icon: "fas fa-brain", IsFeatured: true},
		{Name: "PyTorch", Category: models.SkillCategoryAIML, Proficiency: 70, Icon: "fas fa-fire", IsFeatured: true},
		{Name: "Scikit-learn", Category: models.SkillCategoryAIML, Proficiency: 80, Icon: "fas fa-chart-line", IsFeatured: true},
		{Name: "OpenCV", Category: models.SkillCategoryAIML, Proficiency: 75, Icon: "fas fa-eye", IsFeatured: true},
		{Name: "Pandas", Category: models.SkillCategoryAIML, Proficiency: 85, Icon: "fas fa-table"},
		{Name: "NumPy", Category: models.SkillCategoryAIML, Proficiency: 80, Icon: "fas fa-calculator"},
		{Name: "SQLite", Category: models.SkillCategoryDatabase, Proficiency: 75, Icon: "fas fa-database"},
		{Name: "PostgreSQL", Category: models.SkillCategoryDatabase, Proficiency: 65, Icon: "fas fa-database"},
		{Name: "MongoDB", Category: models.SkillCategoryDatabase, Proficiency: 60, Icon: "fas fa-leaf"},
		{Name: "Git", Category: models.SkillCategoryTool, Proficiency: 80, Icon: "fab fa-git-alt"},
		{Name: "Docker", Category: models.SkillCategoryTool, Proficiency: 55, Icon: "fab fa-docker"},
		{Name: "Linux", Category: models.SkillCategoryTool, Proficiency: 70, Icon: "fab fa-linux"},
		{Name: "Arduino", Category: models.SkillCategoryTool, Proficiency: 75, Icon: "fas fa-microchip"},
	}

	var createdCount int
	for _, skill := range skills {
		var existing models.Skill
		result := db.Where("name = ?", skill.Name).First(&existing)
		if result.Error == nil {
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}
		if err := db.Create(&skill).Error; err != nil {
			configslog.Log.Error("Failed to seed skill", zap.String("name", skill.Name), zap.Error(err))
			return err
		}
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d skills seeded.", createdCount)
	} else {
		configslog.SLog.Debug("All skills already present, nothing seeded.")
	}
	return nil
}
