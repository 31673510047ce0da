package database

import (
	"fmt"
	"log"

	"github.com/avelazco/social-api/internal/config"
	"github.com/avelazco/social-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the database connection. DATABASE_URL selects Postgres,
// the discrete DB_* variables select MySQL, and without either the
// server falls back to a local SQLite file.
func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(dialector(cfg), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established")
	return nil
}

func dialector(cfg *config.Config) gorm.Dialector {
	switch {
	case cfg.DatabaseURL != "":
		return postgres.Open(cfg.DatabaseURL)
	case cfg.DBName != "":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBName,
		)
		return mysql.Open(dsn)
	default:
		return sqlite.Open(cfg.SQLitePath)
	}
}

func Migrate() error {
	log.Println("Running database migrations...")
	err := DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Post{},
		&models.Group{},
		&models.UserGroup{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Println("Database migrations completed")
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
