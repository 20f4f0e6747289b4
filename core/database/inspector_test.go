package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockMySQL(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestGetTableColumns_MySQL(t *testing.T) {
	db, mock := newMockMySQL(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("ID", "BIGINT UNSIGNED", "NO", "PRI", nil, "auto_increment").
		AddRow("Date", "VARCHAR(10)", "NO", "UNI", nil, "").
		AddRow("Mood", "LONGTEXT", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `log_entries`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "log_entries")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	// Field and type strings come back lowercased for comparison.
	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "bigint unsigned", columns[0].Type)
	assert.Equal(t, "date", columns[1].Field)
	assert.Equal(t, "varchar(10)", columns[1].Type)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTableColumns_MySQLQueryError(t *testing.T) {
	db, mock := newMockMySQL(t)

	mock.ExpectQuery("SHOW COLUMNS FROM `missing`").WillReturnError(assert.AnError)

	_, err := GetTableColumns(db, "missing")
	assert.Error(t, err)
}
