package seeders

import (
	"errors"
	"os"

	"vedang.dev/configs/configslog"
	"vedang.dev/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedOwnerUser creates the panel owner account from ADMIN_EMAIL and
// ADMIN_PASSWORD when no account exists yet.
func SeedOwnerUser(db *gorm.DB) error {
	var existing models.User
	err := db.First(&existing).Error
	if err == nil {
		configslog.SLog.Debug("Owner user already exists, skipping seed.")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme"
		configslog.SLog.Warn("ADMIN_PASSWORD not set, seeding owner with the default password")
	}

	user := models.User{Name: "Owner", Email: email}
	if err := user.SetPassword(password); err != nil {
		return err
	}
	if err := db.Create(&user).Error; err != nil {
		configslog.Log.Error("Failed to seed owner user", zap.String("email", email), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Owner user seeded: %s", email)
	return nil
}
