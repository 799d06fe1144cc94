package main

import (
	"trivia-backend/internal/config"
	"trivia-backend/internal/database"
	"trivia-backend/internal/handlers"
	"trivia-backend/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//go:generate swag init -g cmd/server/main.go -d ../.. -o ../../docs

// @title           Trivia API
// @version         1.0
// @description     Trivia questions by category, with search and a quiz picker
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg := config.Load()

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.AutoMigrate(db, log); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}
	if cfg.SeedCategories {
		if err := database.SeedCategories(db, log); err != nil {
			log.Fatal("failed to seed categories", zap.Error(err))
		}
	}

	trivia := services.NewTriviaService(db, cfg.QuestionsPerPage)
	r := handlers.NewRouter(trivia, log)

	log.Info("server starting", zap.String("port", cfg.ServerPort), zap.Int("questions_per_page", trivia.PerPage()))
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}
