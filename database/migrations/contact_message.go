package migrations

import (
	"vedang.dev/configs/configslog"
	"vedang.dev/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateContactMessagesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating contact_messages table...")
	if err := db.AutoMigrate(&models.ContactMessage{}); err != nil {
		configslog.Log.Error("Failed to migrate contact_messages table", zap.Error(err))
		return err
	}
	return nil
}
