package db

import (
	"errors"
	"os"

	"github.com/gurpreetgarry91/pbs-backend/models"
	"github.com/gurpreetgarry91/pbs-backend/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect ouvre la connexion Postgres à partir de DB_URL.
// La connexion est injectée dans les handlers, pas de variable globale.
func Connect() (*gorm.DB, error) {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		return nil, errors.New("DB_URL environment variable is not set")
	}

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: utils.GetGormLogger(),
	})
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		return nil, err
	}

	utils.LogSuccess("Database connection successful")
	return database, nil
}

// Migrate crée les tables si elles n'existent pas.
// Pas un système de migration: ni versionnage, ni altération de schéma existant.
func Migrate(database *gorm.DB) error {
	err := database.AutoMigrate(
		&models.User{},
		&models.MasterSubscription{},
		&models.UserSubscription{},
		&models.Media{},
		&models.Advertisement{},
	)
	if err != nil {
		utils.LogError(err, "Error migrating database")
		return err
	}

	utils.LogSuccess("All tables created successfully")
	return nil
}
