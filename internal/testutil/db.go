// Package testutil builds seeded in-memory databases for package tests.
package testutil

import (
	"fmt"
	"testing"

	"trivia-backend/internal/database"
	"trivia-backend/internal/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDB returns a migrated sqlite database holding the default categories.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open(":memory:?_foreign_keys=on"))
	require.NoError(t, err)

	// Each connection to :memory: is a separate database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	log := zaptest.NewLogger(t)
	require.NoError(t, database.AutoMigrate(db, log))
	require.NoError(t, database.SeedCategories(db, log))
	return db
}

// SeedQuestions inserts n questions into category, numbered from 1.
func SeedQuestions(t testing.TB, db *gorm.DB, category uint, n int) []models.Question {
	t.Helper()

	questions := make([]models.Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, models.Question{
			Question:   fmt.Sprintf("Question %d in category %d?", i, category),
			Answer:     fmt.Sprintf("Answer %d", i),
			Category:   category,
			Difficulty: (i % 5) + 1,
		})
	}
	if n > 0 {
		require.NoError(t, db.Create(&questions).Error)
	}
	return questions
}

func AddQuestion(t testing.TB, db *gorm.DB, text string, category uint) models.Question {
	t.Helper()

	q := models.Question{Question: text, Answer: "answer", Category: category, Difficulty: 1}
	require.NoError(t, db.Create(&q).Error)
	return q
}
