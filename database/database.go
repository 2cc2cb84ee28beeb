package database

import (
	"fmt"

	"github.com/lshigami/QuizMe/config"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDatabase opens the postgres connection when the configured driver is
// "postgres". For the in-memory driver it returns a nil *gorm.DB; the
// repository wiring falls back to the memory store in that case.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Database.Driver != "postgres" {
		log.Info().Msg("Using in-memory store, skipping database connection")
		return nil, nil
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name)

	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey, which the quiz code retry loop relies on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to database")
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	log.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.Name).Msg("Database connected")
	return db, nil
}
