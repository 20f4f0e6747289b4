package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_SQLiteInMemory(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NotNil(t, db)

	type probe struct {
		ID   uint
		Name string
	}
	require.NoError(t, db.AutoMigrate(&probe{}))
	assert.True(t, HasTable(db, "probes"))
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	db, err := Connect(Config{Driver: "postgres"})
	assert.Error(t, err)
	assert.Nil(t, db)
}

func TestConnect_MySQLInvalidConnection(t *testing.T) {
	cfg := Config{
		Driver:         "mysql",
		Host:           "localhost",
		Port:           9999, // unused port
		User:           "root",
		Password:       "wrongpassword",
		Name:           "bloom",
		TimeoutSeconds: 1,
	}

	db, err := Connect(cfg)
	assert.Error(t, err)
	assert.Nil(t, db)
}

func TestGetTableColumns_SQLite(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)

	type logEntry struct {
		ID   uint `gorm:"primaryKey"`
		Date string
		Mood string
	}
	require.NoError(t, db.AutoMigrate(&logEntry{}))

	columns, err := GetTableColumns(db, "log_entries")
	require.NoError(t, err)

	fields := make(map[string]bool)
	for _, c := range columns {
		fields[c.Field] = true
	}
	assert.True(t, fields["id"])
	assert.True(t, fields["date"])
	assert.True(t, fields["mood"])
}
