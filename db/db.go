package db

import (
	"errors"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/IanFindlay/nc-news/models"
	"github.com/IanFindlay/nc-news/utils"
)

// Connect opens the database named by DB_URL and migrates the schema. The
// handle is returned to the caller rather than stored in a package global so
// the accessors stay independently testable.
func Connect() (*gorm.DB, error) {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		return nil, errors.New("the environment variable DB_URL must be defined")
	}

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: utils.GetGormLogger(),
	})
	if err != nil {
		return nil, err
	}

	// Parents before children so the foreign keys resolve.
	err = database.AutoMigrate(
		&models.Topic{},
		&models.User{},
		&models.Article{},
		&models.Comment{},
	)
	if err != nil {
		return nil, err
	}

	return database, nil
}
