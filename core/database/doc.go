// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure either an SQLite file database (the default for
// a single-user local installation) or a MySQL connection, selected by the
// Driver config field.
//
// # Connect
//
// Connect establishes the connection for the configured driver. Features own
// their schema and auto-migrate their models on load.
//
// # Schema Inspection
//
// HasTable and GetTableColumns support the doctor command, which verifies
// that the journal and library tables exist with the expected columns.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("database connection failed", err)
//	}
package database
