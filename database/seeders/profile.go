package seeders

import (
	"errors"

	"vedang.dev/configs/configslog"
	"vedang.dev/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedProfile creates the owner profile when none exists. Only ever one row.
func SeedProfile(db *gorm.DB) error {
	var existing models.Profile
	err := db.First(&existing).Error
	if err == nil {
		configslog.SLog.Debug("Profile already exists, skipping seed.")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	profile := models.Profile{
		Name:      "Vedang Deshmukh",
		Tagline:   "Aspiring AIML Student and Developer",
		Bio:       "I am a second-year Computer Science student specializing in Artificial Intelligence and Machine Learning. I excel at crafting elegant digital experiences and am proficient in various programming languages and technologies.",
		Email:     "vedangdeshmukh777@gmail.com",
		GitHubURL: "https://github.com/vedang18200",
		Location:  "India",
	}
	if err := db.Create(&profile).Error; err != nil {
		configslog.Log.Error("Failed to seed profile", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Profile seeded.")
	return nil
}
