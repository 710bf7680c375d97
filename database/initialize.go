package database

import (
	"vedang.dev/configs/configslog"
	"vedang.dev/database/migrations"
	"vedang.dev/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize runs migrations and/or seeders inside a single transaction.
// A failure in either phase rolls everything back.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Neither -migrate nor -seed given, nothing to do.")
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if migrate {
			configslog.SLog.Info("Running migrations...")
			if err := RunMigrationsInOrder(tx); err != nil {
				return err
			}
			configslog.SLog.Info("Migrations completed.")
		}
		if seed {
			configslog.SLog.Info("Running seeders...")
			if err := RunSeeders(tx); err != nil {
				return err
			}
			configslog.SLog.Info("Seeders completed.")
		}
		return nil
	})
	if err != nil {
		configslog.Log.Error("Database initialization failed, transaction rolled back", zap.Error(err))
		return
	}
	configslog.SLog.Info("Database initialization completed successfully")
}

// RunMigrationsInOrder migrates every table leaf-first so foreign keys
// resolve: skills before projects (join table), standalone tables last.
func RunMigrationsInOrder(db *gorm.DB) error {
	if err := migrations.MigrateUsersTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateProfilesTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateSkillsTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateProjectsTables(db); err != nil {
		return err
	}
	if err := migrations.MigrateResumesTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateContactMessagesTable(db); err != nil {
		return err
	}
	return nil
}

// RunSeeders populates the owner account, profile and initial content.
// Every seeder is idempotent; re-running changes nothing.
func RunSeeders(db *gorm.DB) error {
	if err := seeders.SeedOwnerUser(db); err != nil {
		return err
	}
	if err := seeders.SeedProfile(db); err != nil {
		return err
	}
	if err := seeders.SeedSkills(db); err != nil {
		return err
	}
	if err := seeders.SeedProjects(db); err != nil {
		return err
	}
	return nil
}
