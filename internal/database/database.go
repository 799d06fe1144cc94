package database

import (
	"fmt"

	"trivia-backend/internal/config"
	"trivia-backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DefaultCategories is the reference data a fresh database is seeded with.
var DefaultCategories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}

func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "postgres", "":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
		)
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(cfg.DBPath + "?_foreign_keys=on"), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

func Connect(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := Open(dialector)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.DBDriver, err)
	}

	log.Info("database connected", zap.String("driver", cfg.DBDriver))
	return db, nil
}

// Open wraps gorm.Open with driver error translation enabled so store
// failures surface as gorm.ErrForeignKeyViolated and friends.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
}

func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	if err := db.AutoMigrate(&models.Category{}, &models.Question{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	log.Info("database migrated")
	return nil
}

// SeedCategories inserts DefaultCategories when the categories table is empty.
func SeedCategories(db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	cats := make([]models.Category, 0, len(DefaultCategories))
	for _, t := range DefaultCategories {
		cats = append(cats, models.Category{Type: t})
	}
	if err := db.Create(&cats).Error; err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	log.Info("categories seeded", zap.Int("count", len(cats)))
	return nil
}
