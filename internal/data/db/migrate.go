package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/eduviz/internal/config"
	"github.com/yungbote/eduviz/internal/domain/content"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&content.Animation{},
	)
}

func EnsureAnimationIndexes(db *gorm.DB, driver string) error {
	stmt := `
		CREATE INDEX IF NOT EXISTS idx_animation_created_at
		ON animation (created_at DESC);
	`
	if driver == config.DriverPostgres {
		stmt = `
			CREATE INDEX IF NOT EXISTS idx_animation_created_at
			ON animation (created_at DESC)
			WHERE deleted_at IS NULL;
		`
	}
	if err := db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("create idx_animation_created_at: %w", err)
	}
	return nil
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	if err := EnsureAnimationIndexes(s.db, s.driver); err != nil {
		s.log.Error("Animation index migration failed", "error", err)
		return err
	}
	return nil
}
