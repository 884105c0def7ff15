// Package mock provides in-memory test doubles for integration tests.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory SQLite database that stands in for
// PostgreSQL during integration tests.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens the shared in-memory database and migrates the given
// models. The same connection is reused across scenarios.
func NewDb(models map[string]any) *Db {
	dbOnce.Do(func() {
		db = open(models)
	})
	return db
}

func open(models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps the shared in-memory schema alive.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	modelList := make([]any, 0, len(models))
	for _, model := range models {
		modelList = append(modelList, model)
	}
	if err := dbConn.AutoMigrate(modelList...); err != nil {
		panic(fmt.Sprintf("failed to migrate test database. err: %s", err.Error()))
	}

	return &Db{
		DbConn: dbConn,
		models: models,
	}
}

// ClearDB removes every row from every registered table.
func (d *Db) ClearDB() error {
	for _, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// GetModel returns the registered model for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
