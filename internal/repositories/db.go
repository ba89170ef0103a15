package repositories

import (
	"fmt"
	"log"

	"finflow/internal/config"
	"finflow/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewRepository builds the transaction store from configuration. With a
// DATABASE_URL it opens Postgres and migrates the schema; otherwise it falls
// back to the in-memory store, which matches the demo deployment.
func NewRepository() (TransactionRepository, error) {
	dsn := config.GetEnv("DATABASE_URL", "")
	if dsn == "" {
		log.Println("no DATABASE_URL configured, using in-memory store")
		return NewMemoryRepository(), nil
	}

	db, err := openPostgres(dsn)
	if err != nil {
		return nil, err
	}
	return NewGormRepository(db), nil
}

func openPostgres(dsn string) (*gorm.DB, error) {
	logLevel := logger.Warn
	if !config.IsProduction() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.Transaction{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(config.GetIntEnv("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetMaxOpenConns(config.GetIntEnv("DB_MAX_OPEN_CONNS", 100))

	return db, nil
}
