package database

import (
	"testing"

	"trivia-backend/internal/config"
	"trivia-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
)

func TestDialectorRejectsUnknownDriver(t *testing.T) {
	_, err := Dialector(&config.Config{DBDriver: "mysql"})
	assert.Error(t, err)
}

func TestDialectorKnownDrivers(t *testing.T) {
	d, err := Dialector(&config.Config{DBDriver: "postgres", DBHost: "localhost", DBPort: "5432"})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	d, err = Dialector(&config.Config{DBDriver: "sqlite", DBPath: "x.db"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())
}

func TestMigrateAndSeedIsIdempotent(t *testing.T) {
	log := zaptest.NewLogger(t)
	db, err := Open(sqlite.Open(":memory:?_foreign_keys=on"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, AutoMigrate(db, log))
	require.NoError(t, SeedCategories(db, log))
	require.NoError(t, SeedCategories(db, log))

	var cats []models.Category
	require.NoError(t, db.Order("id").Find(&cats).Error)
	require.Len(t, cats, len(DefaultCategories))
	assert.Equal(t, "Science", cats[0].Type)
	assert.Equal(t, "Sports", cats[5].Type)
}
