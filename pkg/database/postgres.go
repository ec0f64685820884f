package database

import (
	"time"

	"github.com/eventhub/events-api/internal/models"
	"github.com/eventhub/events-api/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewPostgresDB opens the shared connection every repository uses. The store
// being unreachable at startup is not fatal: the pool reconnects on demand,
// so requests fail until the store comes back instead of the process dying.
func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:               gormlogger.Default.LogMode(gormlogger.Warn),
		DisableAutomaticPing: true,
	})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("invalid database configuration")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("failed to get sql.DB")
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		logger.Logger.Error().Err(err).Msg("database unreachable at startup, continuing")
	}

	if err := db.AutoMigrate(&models.Event{}, &models.JoinedEvent{}); err != nil {
		logger.Logger.Error().Err(err).Msg("auto-migrate failed")
	}

	return db
}
