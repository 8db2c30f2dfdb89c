package database

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"moviehub/internal/config"
	"moviehub/internal/http-api/models"
)

// ConnectDB opens the postgres connection and brings the schema up to date.
func ConnectDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Connected to the database successfully")
	return db, nil
}

// Migrate creates/updates every table, including the actor_movie join table
// carrying role_name. Shared with the sqlite-backed tests.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Movie{}, "Actors", &models.MovieActor{}); err != nil {
		return fmt.Errorf("setup actor_movie join table: %w", err)
	}
	return db.AutoMigrate(
		&models.Movie{},
		&models.Genre{},
		&models.Actor{},
		&models.User{},
		&models.UserSettings{},
		&models.UserLogin{},
		&models.FavoriteMovie{},
		&models.WatchHistory{},
	)
}
