package database

import (
	"database/sql"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/stockroom/inventory-api/models"
)

// DB is the store client. It owns the underlying connection: opened once at
// process start, injected into the repositories, closed at shutdown.
type DB struct {
	Gorm *gorm.DB

	sqlDB *sql.DB
}

// Open connects to Postgres and verifies the connection.
func Open(dsn string) (*DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	return &DB{Gorm: gormDB, sqlDB: sqlDB}, nil
}

// Migrate creates or updates the two tables.
func (d *DB) Migrate() error {
	return d.Gorm.AutoMigrate(&models.Category{}, &models.Product{})
}

func (d *DB) Close() error {
	return d.sqlDB.Close()
}
