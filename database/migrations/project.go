package migrations

import (
	"vedang.dev/configs/configslog"
	"vedang.dev/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateProjectsTables creates the projects table and the
// project_technologies join table.
func MigrateProjectsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating projects & project_technologies tables...")
	if err := db.AutoMigrate(&models.Project{}); err != nil {
		configslog.Log.Error("Failed to migrate projects tables", zap.Error(err))
		return err
	}
	return nil
}
