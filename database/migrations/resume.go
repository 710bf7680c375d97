package migrations

import (
	"vedang.dev/configs/configslog"
	"vedang.dev/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateResumesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating resumes table...")
	if err := db.AutoMigrate(&models.Resume{}); err != nil {
		configslog.Log.Error("Failed to migrate resumes table", zap.Error(err))
		return err
	}
	return nil
}
