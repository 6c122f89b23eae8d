package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"fibernet/internal/infrastructure/persistence/models"
	"fibernet/internal/shared/logger"
)

// AllModels lists every persistence model in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.HeadendModel{},
		&models.FDHModel{},
		&models.SplitterModel{},
		&models.AssetModel{},
		&models.CustomerModel{},
		&models.AssignmentModel{},
		&models.TechnicianModel{},
		&models.TaskModel{},
		&models.AuditModel{},
	}
}

type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks a strategy from the server mode and database driver.
// Debug mode auto-migrates, everything else runs the goose scripts.
func NewManager(mode, driver string, log logger.Interface) *Manager {
	var strategy Strategy
	if strings.EqualFold(mode, "debug") {
		strategy = NewGormAutoMigrateStrategy()
	} else {
		dialect := "mysql"
		if strings.EqualFold(driver, "sqlite") {
			dialect = "sqlite3"
		}
		strategy = NewGooseStrategy(dialect)
	}
	return &Manager{strategy: strategy, logger: log}
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{strategy: strategy, logger: log}
}

func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.Name())

	if err := m.strategy.Migrate(db, AllModels()...); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.Name(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.Name(), err)
	}

	m.logger.Infow("database migration completed", "strategy", m.strategy.Name())
	return nil
}
