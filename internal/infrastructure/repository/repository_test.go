package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tansy/internal/infrastructure/database"
	"tansy/internal/infrastructure/migration"
	"tansy/internal/infrastructure/persistence/models"
	"tansy/internal/shared/config"
)

// setupTestDB opens a fresh SQLite file under the test's temp dir with
// foreign keys on and the real migrations applied, so constraint
// behavior matches production exactly.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tansy_test.db")
	db, err := database.Open(&config.DatabaseConfig{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, database.Close(db))
	})

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, migration.Up(sqlDB))

	return db
}

// seedTicket inserts a row directly, bypassing the domain layer, so
// tests can control stored timestamps.
func seedTicket(t *testing.T, db *gorm.DB, title, status, priority, assignee, tags, createdAt string) uint {
	t.Helper()

	model := &models.TicketModel{
		Title:     title,
		Status:    status,
		Priority:  priority,
		Assignee:  assignee,
		Tags:      tags,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, db.Create(model).Error)
	return model.ID
}

func fetchModel(t *testing.T, db *gorm.DB, id uint) models.TicketModel {
	t.Helper()

	var model models.TicketModel
	require.NoError(t, db.First(&model, id).Error)
	return model
}
