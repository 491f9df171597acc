package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tx_test.db")
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gdb.Exec(`CREATE TABLE items (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT NOT NULL)`).Error)
	return gdb
}

func countItems(t *testing.T, gdb *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, gdb.Table("items").Count(&count).Error)
	return count
}

func TestRunInTransaction_Commit(t *testing.T) {
	gdb := setupDB(t)
	tm := NewTransactionManager(gdb)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		tx := GetTxFromContext(ctx, gdb)
		return tx.Exec(`INSERT INTO items (name) VALUES ('kept')`).Error
	})
	require.NoError(t, err)

	assert.EqualValues(t, 1, countItems(t, gdb))
}

func TestRunInTransaction_Rollback(t *testing.T) {
	gdb := setupDB(t)
	tm := NewTransactionManager(gdb)

	sentinel := errors.New("abort")
	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		tx := GetTxFromContext(ctx, gdb)
		if err := tx.Exec(`INSERT INTO items (name) VALUES ('discarded')`).Error; err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	assert.EqualValues(t, 0, countItems(t, gdb), "failed transactions leave no rows behind")
}

func TestGetTxFromContext_FallsBackToDefault(t *testing.T) {
	gdb := setupDB(t)

	tx := GetTxFromContext(context.Background(), gdb)
	require.NotNil(t, tx)
	assert.NoError(t, tx.Exec(`INSERT INTO items (name) VALUES ('direct')`).Error)
}
