package seeders

import (
	"errors"
	"strings"

	"vedang.dev/configs/configslog"
	"vedang.dev/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type projectSeed struct {
	project      models.Project
	technologies []string
}

// SeedProjects creates the initial portfolio projects and links their
// technologies. Technology names resolve by case-insensitive substring; a
// miss creates a new skill in the "other" category.
func SeedProjects(db *gorm.DB) error {
	seeds := []projectSeed{
		{
			project: models.Project{
				Title:            "IoT Energy Meter",
				ShortDescription: "Smart energy monitoring system using IoT technology",
				Description:      "A comprehensive IoT-based Smart Energy Meter project that monitors and tracks energy consumption in real-time, with data logging, analytics and remote monitoring.",
				GitHubURL:        "https://github.com/vedang18200/Iot-Energy-meter",
				Status:           models.ProjectStatusCompleted,
				IsFeatured:       true,
			},
			technologies: []string{"Arduino", "C++", "IoT"},
		},
		{
			project: models.Project{
				Title:            "Veronica AI Chatbot",
				ShortDescription: "Intelligent conversational AI chatbot with natural language processing",
				Description:      "An advanced chatbot built with Python and natural language processing, featuring context-aware conversations and machine learning based responses.",
				GitHubURL:        "https://github.com/vedang18200/VeronicaIAI",
				Status:           models.ProjectStatusCompleted,
				IsFeatured:       true,
			},
			technologies: []string{"Python", "TensorFlow", "NLP"},
		},
		{
			project: models.Project{
				Title:            "Face Recognition System",
				ShortDescription: "Real-time face recognition with database integration",
				Description:      "A face recognition system using computer vision and machine learning for real-time detection and recognition, backed by a database of known faces.",
				GitHubURL:        "https://github.com/vedang18200/face_recognition-",
				Status:           models.ProjectStatusCompleted,
				IsFeatured:       true,
			},
			technologies: []string{"Python", "OpenCV", "Machine Learning"},
		},
		{
			project: models.Project{
				Title:            "AI Health Bot",
				ShortDescription: "Healthcare chatbot providing medical assistance and guidance",
				Description:      "An AI-powered health bot providing medical information and health guidance, combining a healthcare knowledge base with conversational AI.",
				GitHubURL:        "https://github.com/vedang18200/The-AI-health-Bot",
				Status:           models.ProjectStatusCompleted,
				IsFeatured:       true,
			},
			technologies: []string{"Python", "AI", "Healthcare"},
		},
	}

	var createdCount int
	for _, seed := range seeds {
		var existing models.Project
		result := db.Where("title = ?", seed.project.Title).First(&existing)
		if result.Error == nil {
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		project := seed.project
		if err := db.Create(&project).Error; err != nil {
			configslog.Log.Error("Failed to seed project", zap.String("title", project.Title), zap.Error(err))
			return err
		}
		for _, name := range seed.technologies {
			skill, err := findOrCreateSkill(db, name)
			if err != nil {
				return err
			}
			if err := db.Model(&project).Association("Technologies").Append(skill); err != nil {
				return err
			}
		}
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d projects seeded.", createdCount)
	} else {
		configslog.SLog.Debug("All projects already present, nothing seeded.")
	}
	return nil
}

func findOrCreateSkill(db *gorm.DB, name string) (*models.Skill, error) {
	var skill models.Skill
	err := db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%").Order("id ASC").First(&skill).Error
	if err == nil {
		return &skill, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	skill = models.Skill{Name: name, Category: models.SkillCategoryOther, Proficiency: 50}
	if err := db.Create(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}
