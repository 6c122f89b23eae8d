// Package migration applies the database schema. Development installs
// use gorm AutoMigrate; shared deployments run the versioned goose
// scripts so schema history stays reviewable.
package migration

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed scripts/*.sql
var scriptsFS embed.FS

// Strategy applies the schema in one particular way.
type Strategy interface {
	Name() string
	Migrate(db *gorm.DB, models ...interface{}) error
}

type gormAutoMigrateStrategy struct{}

func NewGormAutoMigrateStrategy() Strategy {
	return gormAutoMigrateStrategy{}
}

func (gormAutoMigrateStrategy) Name() string { return "gorm_auto_migrate" }

func (gormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}

type gooseStrategy struct {
	dialect string
}

// NewGooseStrategy runs the embedded SQL scripts. Dialect is "mysql" or
// "sqlite3" to match the configured database driver.
func NewGooseStrategy(dialect string) Strategy {
	return gooseStrategy{dialect: dialect}
}

func (gooseStrategy) Name() string { return "goose" }

func (s gooseStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(scriptsFS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(sqlDB, "scripts"); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}
	return nil
}
